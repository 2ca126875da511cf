package negative

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
)

func newTextureCases() *glcts.Group {
	g := glcts.NewGroup("texture", "texture object negative cases")

	g.Add(glcts.NewCase("bind_invalid_target",
		"BindTexture with a bogus target must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Enum(badEnum), tex)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("image_negative_level",
		"TexImage2D with level -1 must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, -1, gl.RGBA8, 4, 4, gl.RGBA, gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("image_over_max_level",
		"TexImage2D beyond the maximum level may raise INVALID_VALUE or INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			// The GLES specification is ambiguous about which of the
			// two codes over-limit levels raise; both are conforming.
			level := 1
			for s := ctx.GetInteger(gl.MaxTextureSize); s > 1; s /= 2 {
				level++
			}
			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, level, gl.RGBA8, 1, 1, gl.RGBA, gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidValue, gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("image_invalid_format",
		"TexImage2D with a bogus pixel format must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, 4, 4, gl.Enum(badEnum), gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("image_negative_size",
		"TexImage2D with negative dimensions must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, -4, 4, gl.RGBA, gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("image_over_max_size",
		"TexImage2D beyond MAX_TEXTURE_SIZE must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			maxSize := ctx.GetInteger(gl.MaxTextureSize)
			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, maxSize+1, 1, gl.RGBA, gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("image_no_binding",
		"TexImage2D with no texture bound must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.BindTexture(gl.Texture2D, 0)
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, 4, 4, gl.RGBA, gl.UnsignedByte, nil)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("sub_image_out_of_range",
		"TexSubImage2D outside the allocated level must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexImage2D(gl.Texture2D, 0, gl.RGBA8, 4, 4, gl.RGBA, gl.UnsignedByte, make([]byte, 4*4*4))
			c.ExpectError(gl.NoError)

			ctx.TexSubImage2D(gl.Texture2D, 0, 2, 2, 4, 4, gl.RGBA, gl.UnsignedByte, make([]byte, 4*4*4))
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("sub_image_unallocated",
		"TexSubImage2D on an unallocated level must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			tex := ctx.CreateTexture()
			c.Cleanup(func() { ctx.DeleteTexture(tex) })

			ctx.BindTexture(gl.Texture2D, tex)
			ctx.TexSubImage2D(gl.Texture2D, 0, 0, 0, 2, 2, gl.RGBA, gl.UnsignedByte, make([]byte, 2*2*4))
			c.ExpectError(gl.InvalidOperation)
		}))

	return g
}
