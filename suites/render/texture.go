package render

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/compare"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/pattern"
	"github.com/gogpu/glcts/surface"
)

// attachForReadback attaches the texture bound to TEXTURE_2D as the
// color plane of a fresh framebuffer so ReadPixels can see it.
func attachForReadback(c *glcts.C, ctx gl.Context, tex gl.Texture) {
	fb := ctx.CreateFramebuffer()
	ctx.BindFramebuffer(gl.FramebufferTarget, fb)
	ctx.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, tex, 0)
	c.Cleanup(func() {
		ctx.BindFramebuffer(gl.FramebufferTarget, 0)
		ctx.DeleteFramebuffer(fb)
	})
	if status := ctx.CheckFramebufferStatus(gl.FramebufferTarget); status != gl.FramebufferComplete {
		c.Fatalf("readback framebuffer incomplete: %v", status)
	}
}

func newTextureCases() *glcts.Group {
	g := glcts.NewGroup("texture", "texture upload and readback cases")

	gridA := surface.RGBA{R: 51, G: 179, B: 26, A: 255}
	gridB := surface.RGBA{R: 179, G: 26, B: 128, A: 204}

	g.Add(glcts.NewCase("upload_readback",
		"uploaded RGBA8 texels must read back bit-exactly",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			want := pattern.Grid(targetSize, targetSize, 8, gridA, gridB)

			tex := ctx.CreateTexture()
			ctx.BindTexture(gl.Texture2D, tex)
			c.Cleanup(func() {
				ctx.BindTexture(gl.Texture2D, 0)
				ctx.DeleteTexture(tex)
			})
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, targetSize, targetSize,
				gl.RGBA, gl.UnsignedByte, want.Data())
			c.ExpectError()

			attachForReadback(c, ctx, tex)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("sub_image",
		"TexSubImage2D must overwrite exactly the addressed sub-rectangle",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			base := pattern.GradientH(targetSize, targetSize,
				surface.RGBA{R: 0, G: 0, B: 0, A: 255},
				surface.RGBA{R: 255, G: 255, B: 255, A: 255})
			patch := pattern.Grid(16, 16, 4, gridA, gridB)

			tex := ctx.CreateTexture()
			ctx.BindTexture(gl.Texture2D, tex)
			c.Cleanup(func() {
				ctx.BindTexture(gl.Texture2D, 0)
				ctx.DeleteTexture(tex)
			})
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, targetSize, targetSize,
				gl.RGBA, gl.UnsignedByte, base.Data())
			ctx.TexSubImage2D(gl.Texture2D, 0, 24, 40, 16, 16,
				gl.RGBA, gl.UnsignedByte, patch.Data())
			c.ExpectError()

			want := base.Clone()
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					want.SetPixel(24+x, 40+y, patch.PixelAt(x, y))
				}
			}
			attachForReadback(c, ctx, tex)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("rgb_expansion",
		"RGB texels must read back as RGBA with opaque alpha",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			rgba := pattern.Grid(targetSize, targetSize, 16,
				surface.RGBA{R: 40, G: 80, B: 120, A: 255},
				surface.RGBA{R: 200, G: 160, B: 60, A: 255})
			rgb := make([]byte, 0, targetSize*targetSize*3)
			for y := 0; y < targetSize; y++ {
				for x := 0; x < targetSize; x++ {
					px := rgba.PixelAt(x, y)
					rgb = append(rgb, px.R, px.G, px.B)
				}
			}

			tex := ctx.CreateTexture()
			ctx.BindTexture(gl.Texture2D, tex)
			c.Cleanup(func() {
				ctx.BindTexture(gl.Texture2D, 0)
				ctx.DeleteTexture(tex)
			})
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGB8, targetSize, targetSize,
				gl.RGB, gl.UnsignedByte, rgb)
			c.ExpectError()

			attachForReadback(c, ctx, tex)
			checkPixels(c, compare.ModeExact, rgba, readTarget(c, ctx), compare.Exact)
		}))

	return g
}
