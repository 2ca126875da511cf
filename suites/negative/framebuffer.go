package negative

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
)

func newFramebufferCases() *glcts.Group {
	g := glcts.NewGroup("framebuffer", "framebuffer object negative cases")

	g.Add(glcts.NewCase("bind_invalid_target",
		"BindFramebuffer with a bogus target must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			fb := ctx.CreateFramebuffer()
			c.Cleanup(func() { ctx.DeleteFramebuffer(fb) })

			ctx.BindFramebuffer(gl.Enum(badEnum), fb)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("check_status_invalid_target",
		"CheckFramebufferStatus with a bogus target must raise INVALID_ENUM and return 0",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			status := ctx.CheckFramebufferStatus(gl.Enum(badEnum))
			c.ExpectError(gl.InvalidEnum)
			if status != 0 {
				c.Errorf("status = %v, want 0", status)
			}
		}))

	g.Add(glcts.NewCase("attach_invalid_attachment",
		"FramebufferTexture2D with a bogus attachment must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			fb := ctx.CreateFramebuffer()
			tex := ctx.CreateTexture()
			c.Cleanup(func() {
				ctx.BindFramebuffer(gl.FramebufferTarget, 0)
				ctx.DeleteFramebuffer(fb)
				ctx.DeleteTexture(tex)
			})

			ctx.BindFramebuffer(gl.FramebufferTarget, fb)
			ctx.FramebufferTexture2D(gl.FramebufferTarget, gl.Enum(badEnum), gl.Texture2D, tex, 0)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("attach_nonzero_level",
		"FramebufferTexture2D at a non-zero level must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			fb := ctx.CreateFramebuffer()
			tex := ctx.CreateTexture()
			c.Cleanup(func() {
				ctx.BindFramebuffer(gl.FramebufferTarget, 0)
				ctx.DeleteFramebuffer(fb)
				ctx.DeleteTexture(tex)
			})

			ctx.BindFramebuffer(gl.FramebufferTarget, fb)
			ctx.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, tex, 1)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("attach_default_framebuffer",
		"attaching to the default framebuffer must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindFramebuffer(gl.FramebufferTarget, 0)
			ctx.FramebufferTexture2D(gl.FramebufferTarget, gl.ColorAttachment0, gl.Texture2D, tex, 0)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("read_pixels_incomplete",
		"ReadPixels from an incomplete framebuffer must raise INVALID_FRAMEBUFFER_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			fb := ctx.CreateFramebuffer()
			c.Cleanup(func() {
				ctx.BindFramebuffer(gl.FramebufferTarget, 0)
				ctx.DeleteFramebuffer(fb)
			})

			ctx.BindFramebuffer(gl.FramebufferTarget, fb)
			if status := ctx.CheckFramebufferStatus(gl.FramebufferTarget); status != gl.FramebufferIncompleteMissingAttachment {
				c.Errorf("status = %v, want %v", status, gl.FramebufferIncompleteMissingAttachment)
			}
			ctx.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UnsignedByte, make([]byte, 4))
			c.ExpectError(gl.InvalidFramebufferOperation)
		}))

	g.Add(glcts.NewCase("renderbuffer_storage_negative_size",
		"RenderbufferStorage with negative dimensions must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			rb := ctx.CreateRenderbuffer()
			c.Cleanup(func() {
				ctx.BindRenderbuffer(gl.RenderbufferTarget, 0)
				ctx.DeleteRenderbuffer(rb)
			})

			ctx.BindRenderbuffer(gl.RenderbufferTarget, rb)
			ctx.RenderbufferStorage(gl.RenderbufferTarget, gl.RGBA8, -1, 1)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("renderbuffer_storage_over_max",
		"RenderbufferStorage beyond MAX_RENDERBUFFER_SIZE may raise INVALID_VALUE or INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			rb := ctx.CreateRenderbuffer()
			c.Cleanup(func() {
				ctx.BindRenderbuffer(gl.RenderbufferTarget, 0)
				ctx.DeleteRenderbuffer(rb)
			})

			maxSize := ctx.GetInteger(gl.MaxRenderbufferSize)
			ctx.BindRenderbuffer(gl.RenderbufferTarget, rb)
			ctx.RenderbufferStorage(gl.RenderbufferTarget, gl.RGBA8, maxSize+1, 1)
			c.ExpectError(gl.InvalidValue, gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("renderbuffer_storage_no_binding",
		"RenderbufferStorage with no renderbuffer bound must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.BindRenderbuffer(gl.RenderbufferTarget, 0)
			ctx.RenderbufferStorage(gl.RenderbufferTarget, gl.RGBA8, 4, 4)
			c.ExpectError(gl.InvalidOperation)
		}))

	return g
}
