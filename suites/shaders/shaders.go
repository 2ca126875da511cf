// Package shaders holds shader translation conformance cases. The
// harness front-ends WGSL through naga and validates the SPIR-V it
// emits, independent of any device.
package shaders

import (
	"encoding/binary"

	"github.com/gogpu/naga"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/suites"
)

// spirvMagic is the first word of every valid SPIR-V module.
const spirvMagic = 0x07230203

func init() {
	suites.Register("shaders", New)
}

// New builds the shader translation case group.
func New() *glcts.Group {
	g := glcts.NewGroup("shaders", "WGSL to SPIR-V translation cases")
	g.Add(newCompileCases(), newRejectCases())
	return g
}

// compileToWords compiles WGSL and fails the case unless the output is
// a well-formed SPIR-V word stream.
func compileToWords(c *glcts.C, source string) []uint32 {
	spirv, err := naga.Compile(source)
	if err != nil {
		c.Fatalf("compile failed: %v", err)
	}
	if len(spirv) == 0 || len(spirv)%4 != 0 {
		c.Fatalf("SPIR-V output is %d bytes, want a non-empty multiple of 4", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != spirvMagic {
		c.Fatalf("SPIR-V magic = %#08x, want %#08x", words[0], spirvMagic)
	}
	return words
}

func newCompileCases() *glcts.Group {
	g := glcts.NewGroup("compile", "valid WGSL must translate to valid SPIR-V")

	g.Add(glcts.NewCase("minimal_compute",
		"an empty compute entry point must compile",
		func(c *glcts.C) {
			compileToWords(c, `
@compute @workgroup_size(1)
fn main() {}
`)
		}))

	g.Add(glcts.NewCase("vertex_fragment_pair",
		"a position-only vertex stage and a flat-color fragment stage must compile together",
		func(c *glcts.C) {
			words := compileToWords(c, `
@vertex
fn vs_main(@location(0) pos: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`)
			// Header is magic, version, generator, bound, schema.
			if len(words) < 5 {
				c.Errorf("SPIR-V module has %d words, want at least the 5-word header", len(words))
			}
		}))

	g.Add(glcts.NewCase("compute_with_storage",
		"a compute stage reading and writing a storage buffer must compile",
		func(c *glcts.C) {
			compileToWords(c, `
@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] * 2u;
}
`)
		}))

	g.Add(glcts.NewCase("deterministic_output",
		"compiling the same source twice must produce identical SPIR-V",
		func(c *glcts.C) {
			const src = `
@compute @workgroup_size(8, 8)
fn main() {}
`
			first, err := naga.Compile(src)
			if err != nil {
				c.Fatalf("compile failed: %v", err)
			}
			second, err := naga.Compile(src)
			if err != nil {
				c.Fatalf("recompile failed: %v", err)
			}
			if len(first) != len(second) {
				c.Fatalf("output sizes differ: %d vs %d bytes", len(first), len(second))
			}
			for i := range first {
				if first[i] != second[i] {
					c.Errorf("outputs diverge at byte %d", i)
					return
				}
			}
		}))

	return g
}

func newRejectCases() *glcts.Group {
	g := glcts.NewGroup("reject", "malformed WGSL must fail to translate")

	reject := func(name, desc, source string) *glcts.Case {
		return glcts.NewCase(name, desc, func(c *glcts.C) {
			if _, err := naga.Compile(source); err == nil {
				c.Errorf("compile succeeded, want an error")
			}
		})
	}

	g.Add(reject("syntax_error",
		"source with a syntax error must be rejected",
		`@compute @workgroup_size(1) fn main() { let x = ; }`))

	g.Add(reject("unknown_type",
		"a reference to an undeclared type must be rejected",
		`@compute @workgroup_size(1) fn main() { var x: notatype; }`))

	g.Add(reject("redefined_function",
		"two functions with the same name must be rejected",
		`fn twice() {} fn twice() {}`))

	return g
}
