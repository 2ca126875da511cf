package negative

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/pattern"
)

func newBufferCases() *glcts.Group {
	g := glcts.NewGroup("buffer", "buffer object negative cases")

	g.Add(glcts.NewCase("bind_invalid_target",
		"BindBuffer with a bogus target must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			buf := ctx.CreateBuffer()
			c.Cleanup(func() { ctx.DeleteBuffer(buf) })

			ctx.BindBuffer(gl.Enum(badEnum), buf)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("data_no_binding",
		"BufferData with no buffer bound must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.BindBuffer(gl.ArrayBuffer, 0)
			ctx.BufferData(gl.ArrayBuffer, make([]byte, 16), gl.StaticDraw)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("data_invalid_usage",
		"BufferData with a bogus usage hint must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			buf := ctx.CreateBuffer()
			c.Cleanup(func() { ctx.DeleteBuffer(buf) })

			ctx.BindBuffer(gl.ArrayBuffer, buf)
			ctx.BufferData(gl.ArrayBuffer, make([]byte, 16), gl.Enum(badEnum))
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("sub_data_out_of_range",
		"BufferSubData past the end of the store must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			buf := ctx.CreateBuffer()
			c.Cleanup(func() { ctx.DeleteBuffer(buf) })

			data, err := pattern.Vertices(pattern.BufferSpec{
				Count: 4, Components: 4, Type: pattern.Uint8, Min: 0, Max: 255,
			}, pattern.Seed(c.Path()))
			if err != nil {
				c.Fatalf("generate buffer: %v", err)
			}
			ctx.BindBuffer(gl.ArrayBuffer, buf)
			ctx.BufferData(gl.ArrayBuffer, data, gl.StaticDraw)
			c.ExpectError(gl.NoError)

			ctx.BufferSubData(gl.ArrayBuffer, len(data)-1, []byte{1, 2})
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("sub_data_negative_offset",
		"BufferSubData with a negative offset must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			buf := ctx.CreateBuffer()
			c.Cleanup(func() { ctx.DeleteBuffer(buf) })

			ctx.BindBuffer(gl.ArrayBuffer, buf)
			ctx.BufferData(gl.ArrayBuffer, make([]byte, 16), gl.StaticDraw)
			ctx.BufferSubData(gl.ArrayBuffer, -1, []byte{0})
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("sub_data_no_binding",
		"BufferSubData with no buffer bound must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.BindBuffer(gl.ArrayBuffer, 0)
			ctx.BufferSubData(gl.ArrayBuffer, 0, []byte{0})
			c.ExpectError(gl.InvalidOperation)
		}))

	return g
}
