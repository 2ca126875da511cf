// Package negative contains negative-API conformance cases: calls
// with deliberately invalid or boundary-value arguments that must
// raise the GLES3-mandated error code and have no other effect.
package negative

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/suites"
)

// badEnum is an enumerant no GLES target or format uses; the
// untyped -1 of script-based conformance tests.
const badEnum = ^uint32(0)

func init() {
	suites.Register("negative", New)
}

// New builds the negative-API suite group.
func New() *glcts.Group {
	g := glcts.NewGroup("negative", "negative API error code checks")
	g.Add(
		newBufferCases(),
		newTextureCases(),
		newFramebufferCases(),
		newDrawCases(),
	)
	return g
}
