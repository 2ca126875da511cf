package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/compare"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/surface"
)

// uploadPositions uploads NDC x,y pairs into a fresh array buffer and
// wires it as attribute 0. Everything is torn down when the case ends.
func uploadPositions(c *glcts.C, ctx gl.Context, verts []float32) {
	data := make([]byte, len(verts)*4)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	buf := ctx.CreateBuffer()
	ctx.BindBuffer(gl.ArrayBuffer, buf)
	ctx.BufferData(gl.ArrayBuffer, data, gl.StaticDraw)
	ctx.VertexAttribPointer(0, 2, gl.Float, false, 0, 0)
	ctx.EnableVertexAttribArray(0)
	c.Cleanup(func() {
		ctx.DisableVertexAttribArray(0)
		ctx.BindBuffer(gl.ArrayBuffer, 0)
		ctx.DeleteBuffer(buf)
	})
	if e := ctx.GetError(); e != gl.NoError {
		c.Fatalf("vertex upload failed: %v", e)
	}
}

// useFlatProgram makes a flat-color program current with the given
// output color at uniform location 0.
func useFlatProgram(c *glcts.C, ctx gl.Context, col surface.RGBA) {
	p := ctx.CreateProgram()
	ctx.UseProgram(p)
	ctx.Uniform4f(0,
		float32(col.R)/255,
		float32(col.G)/255,
		float32(col.B)/255,
		float32(col.A)/255,
	)
	c.Cleanup(func() {
		ctx.UseProgram(0)
		ctx.DeleteProgram(p)
	})
	if e := ctx.GetError(); e != gl.NoError {
		c.Fatalf("program setup failed: %v", e)
	}
}

func newDrawCases() *glcts.Group {
	g := glcts.NewGroup("draw", "flat-shaded draw call cases")

	clear := surface.RGBA{R: 20, G: 20, B: 20, A: 255}
	ink := surface.RGBA{R: 230, G: 90, B: 15, A: 255}

	g.Add(glcts.NewCase("quad_left_half",
		"a triangle strip covering the left half must fill exactly those columns",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)
			ctx.Viewport(0, 0, targetSize, targetSize)
			ctx.Disable(gl.ScissorTest)

			setClearColor(ctx, clear)
			ctx.Clear(gl.ColorBufferBit)

			uploadPositions(c, ctx, []float32{
				-1, -1,
				0, -1,
				-1, 1,
				0, 1,
			})
			useFlatProgram(c, ctx, ink)
			ctx.DrawArrays(gl.TriangleStrip, 0, 4)
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(clear)
			want.FillRect(0, 0, targetSize/2, targetSize, ink)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("triangles_top_strip",
		"two triangles sharing an edge must tile the top quarter without gaps or overdraw effects",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)
			ctx.Viewport(0, 0, targetSize, targetSize)
			ctx.Disable(gl.ScissorTest)

			setClearColor(ctx, clear)
			ctx.Clear(gl.ColorBufferBit)

			uploadPositions(c, ctx, []float32{
				-1, 1,
				1, 1,
				-1, 0.5,
				1, 1,
				1, 0.5,
				-1, 0.5,
			})
			useFlatProgram(c, ctx, ink)
			ctx.DrawArrays(gl.Triangles, 0, 6)
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(clear)
			want.FillRect(0, 0, targetSize, targetSize/4, ink)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("scissored_quad",
		"a full-screen quad under an enabled scissor must only touch the scissor rectangle",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)
			ctx.Viewport(0, 0, targetSize, targetSize)

			ctx.Disable(gl.ScissorTest)
			setClearColor(ctx, clear)
			ctx.Clear(gl.ColorBufferBit)

			ctx.Enable(gl.ScissorTest)
			c.Cleanup(func() { ctx.Disable(gl.ScissorTest) })
			ctx.Scissor(16, 8, 24, 40)

			uploadPositions(c, ctx, []float32{
				-1, -1,
				1, -1,
				-1, 1,
				1, 1,
			})
			useFlatProgram(c, ctx, ink)
			ctx.DrawArrays(gl.TriangleStrip, 0, 4)
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(clear)
			want.FillRect(16, 8, 24, 40, ink)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("points",
		"single-pixel points must land on the addressed pixel centers",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)
			ctx.Viewport(0, 0, targetSize, targetSize)
			ctx.Disable(gl.ScissorTest)

			setClearColor(ctx, clear)
			ctx.Clear(gl.ColorBufferBit)

			pixels := [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}, {31, 17}, {5, 40}}
			verts := make([]float32, 0, len(pixels)*2)
			for _, p := range pixels {
				verts = append(verts,
					float32(2*(float64(p[0])+0.5)/targetSize-1),
					float32(1-2*(float64(p[1])+0.5)/targetSize),
				)
			}
			uploadPositions(c, ctx, verts)
			useFlatProgram(c, ctx, ink)
			ctx.DrawArrays(gl.Points, 0, len(pixels))
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(clear)
			for _, p := range pixels {
				want.SetPixel(p[0], p[1], ink)
			}
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("horizontal_line",
		"a full-width horizontal line must cover one row, within half a pixel of placement",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)
			ctx.Viewport(0, 0, targetSize, targetSize)
			ctx.Disable(gl.ScissorTest)

			setClearColor(ctx, clear)
			ctx.Clear(gl.ColorBufferBit)

			uploadPositions(c, ctx, []float32{-1, 0, 1, 0})
			useFlatProgram(c, ctx, ink)
			ctx.DrawArrays(gl.Lines, 0, 2)
			c.ExpectError()

			// Line rasterization is the least specified part of the
			// pipeline, so the comparison admits half-pixel drift.
			want := surface.New(targetSize, targetSize)
			want.Clear(clear)
			want.FillRect(0, targetSize/2, targetSize, 1, ink)
			checkPixels(c, compare.ModeFuzzy, want, readTarget(c, ctx), compare.Uniform(1))
		}))

	return g
}
