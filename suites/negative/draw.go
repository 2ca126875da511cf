package negative

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/gl"
)

func newDrawCases() *glcts.Group {
	g := glcts.NewGroup("draw", "vertex array and draw call negative cases")

	g.Add(glcts.NewCase("draw_invalid_mode",
		"DrawArrays with a bogus primitive mode must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.DrawArrays(gl.Enum(badEnum), 0, 3)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("draw_negative_count",
		"DrawArrays with a negative count must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			p := ctx.CreateProgram()
			c.Cleanup(func() {
				ctx.UseProgram(0)
				ctx.DeleteProgram(p)
			})
			ctx.UseProgram(p)
			ctx.DrawArrays(gl.Triangles, 0, -1)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("draw_negative_first",
		"DrawArrays with a negative first index must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			p := ctx.CreateProgram()
			c.Cleanup(func() {
				ctx.UseProgram(0)
				ctx.DeleteProgram(p)
			})
			ctx.UseProgram(p)
			ctx.DrawArrays(gl.Triangles, -1, 3)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("draw_no_program",
		"DrawArrays without a current program must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.UseProgram(0)
			ctx.DrawArrays(gl.Triangles, 0, 3)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("use_program_unknown",
		"UseProgram with an unknown name must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.UseProgram(gl.Program(0xDEAD))
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("uniform_no_program",
		"Uniform4f without a current program must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.UseProgram(0)
			ctx.Uniform4f(0, 1, 0, 0, 1)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("uniform_location_minus_one",
		"Uniform4f at location -1 must be silently ignored",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			p := ctx.CreateProgram()
			c.Cleanup(func() {
				ctx.UseProgram(0)
				ctx.DeleteProgram(p)
			})
			ctx.UseProgram(p)
			ctx.Uniform4f(-1, 1, 0, 0, 1)
			c.ExpectError()
		}))

	g.Add(glcts.NewCase("attrib_pointer_invalid_index",
		"VertexAttribPointer beyond MAX_VERTEX_ATTRIBS must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			maxAttribs := ctx.GetInteger(gl.MaxVertexAttribs)
			ctx.VertexAttribPointer(maxAttribs, 2, gl.Float, false, 0, 0)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("attrib_pointer_invalid_size",
		"VertexAttribPointer with a component count outside 1..4 must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.VertexAttribPointer(0, 5, gl.Float, false, 0, 0)
			c.ExpectError(gl.InvalidValue)
		}))

	g.Add(glcts.NewCase("attrib_pointer_invalid_type",
		"VertexAttribPointer with a bogus component type must raise INVALID_ENUM",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.VertexAttribPointer(0, 2, gl.Enum(badEnum), false, 0, 0)
			c.ExpectError(gl.InvalidEnum)
		}))

	g.Add(glcts.NewCase("attrib_pointer_offset_no_buffer",
		"a non-zero offset without an ARRAY_BUFFER binding must raise INVALID_OPERATION",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			ctx.BindBuffer(gl.ArrayBuffer, 0)
			ctx.VertexAttribPointer(0, 2, gl.Float, false, 0, 16)
			c.ExpectError(gl.InvalidOperation)
		}))

	g.Add(glcts.NewCase("enable_attrib_invalid_index",
		"EnableVertexAttribArray beyond MAX_VERTEX_ATTRIBS must raise INVALID_VALUE",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			maxAttribs := ctx.GetInteger(gl.MaxVertexAttribs)
			ctx.EnableVertexAttribArray(maxAttribs)
			c.ExpectError(gl.InvalidValue)
		}))

	return g
}
