// Package render holds positive rendering conformance cases: scissored
// clears, flat-shaded draws, and texture upload round trips, each
// checked pixel-by-pixel against an independently generated reference.
package render

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/compare"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/suites"
	"github.com/gogpu/glcts/surface"
)

// targetSize is the edge length of the offscreen render target every
// case draws into. Keeping cases off the default framebuffer makes
// them independent of the configured window size.
const targetSize = 64

func init() {
	suites.Register("render", New)
}

// New builds the render case group.
func New() *glcts.Group {
	g := glcts.NewGroup("render", "pixel-verified rendering cases")
	g.Add(newClearCases(), newDrawCases(), newTextureCases())
	return g
}

// bindTarget creates a texture-backed framebuffer of targetSize and
// leaves it bound for both drawing and readback. The objects are
// released when the case finishes.
func bindTarget(c *glcts.C, ctx gl.Context) {
	tex := ctx.CreateTexture()
	ctx.BindTexture(gl.Texture2D, tex)
	ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, targetSize, targetSize, gl.RGBA, gl.UnsignedByte, nil)
	fb := ctx.CreateFramebuffer()
	ctx.BindFramebuffer(gl.FramebufferTarget, fb)
	ctx.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, tex, 0)
	c.Cleanup(func() {
		ctx.BindFramebuffer(gl.FramebufferTarget, 0)
		ctx.BindTexture(gl.Texture2D, 0)
		ctx.DeleteFramebuffer(fb)
		ctx.DeleteTexture(tex)
	})
	if status := ctx.CheckFramebufferStatus(gl.FramebufferTarget); status != gl.FramebufferComplete {
		c.Fatalf("render target incomplete: %v", status)
	}
	if e := ctx.GetError(); e != gl.NoError {
		c.Fatalf("render target setup failed: %v", e)
	}
}

// readTarget reads the bound framebuffer back as a surface.
func readTarget(c *glcts.C, ctx gl.Context) *surface.Surface {
	buf := make([]byte, targetSize*targetSize*4)
	ctx.ReadPixels(0, 0, targetSize, targetSize, gl.RGBA, gl.UnsignedByte, buf)
	if e := ctx.GetError(); e != gl.NoError {
		c.Fatalf("readback failed: %v", e)
	}
	s, err := surface.FromBytes(targetSize, targetSize, buf)
	if err != nil {
		c.Fatalf("readback: %v", err)
	}
	return s
}

// checkPixels compares a readback against its reference and records a
// failure with the violation count when they differ.
func checkPixels(c *glcts.C, mode compare.Mode, reference, got *surface.Surface, tol compare.Tolerance) {
	res, err := compare.Compare(mode, reference, got, tol)
	if err != nil {
		c.Fatalf("compare: %v", err)
	}
	if !res.OK() {
		c.Errorf("%s", res)
	}
}
