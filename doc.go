// Package glcts provides a conformance test harness for GLES3-style
// graphics contexts.
//
// # Overview
//
// glcts organizes conformance checks into a tree of named groups and
// cases, runs them depth-first with a cooperative single-threaded
// runner, and aggregates per-case results into a suite report. The
// graphics context under test is an external collaborator: the host
// hands the suite a [gl.Context] and consumes the report.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glcts"
//	    "github.com/gogpu/glcts/gl"
//	    _ "github.com/gogpu/glcts/gl/glsoft"
//	)
//
//	ctx, _ := gl.Default().NewContext(256, 256)
//	s := glcts.New("gles3", glcts.WithContext(ctx))
//	s.Root().Add(glcts.NewCase("smoke", "error register starts clean", func(c *glcts.C) {
//	    c.ExpectError(gl.NoError)
//	}))
//	report, err := s.Run()
//
// # Architecture
//
// The module is organized into:
//   - Harness: Suite, Group, Case, C, Runner (this package)
//   - Context surface: gl (enums, Context interface, provider registry)
//   - Reference contexts: gl/glsoft (software), gl/glwgpu (WebGPU probe)
//   - Utilities: surface (pixel buffers), compare (pixel comparison),
//     pattern (deterministic generators), manifest (run lists)
//   - Conformance suites: suites/... (representative case packages)
//
// # Result Model
//
// Case-local assertion failures are recorded on the case and never stop
// the suite; only setup errors (tree construction, case Init) abort a
// run. A case that requires an unavailable feature skips itself with a
// neutral NotSupported status.
package glcts

// Version information
const (
	// Version is the current version of the harness
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
