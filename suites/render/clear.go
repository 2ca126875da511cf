package render

import (
	"github.com/gogpu/glcts"
	"github.com/gogpu/glcts/compare"
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/pattern"
	"github.com/gogpu/glcts/surface"
)

// Checkerboard colors shared by the scissor cases. References are
// generated from the same bytes the clear color is derived from, so
// exact comparison is well defined.
var (
	cellA = surface.RGBA{R: 51, G: 179, B: 26, A: 255}
	cellB = surface.RGBA{R: 179, G: 26, B: 128, A: 204}
)

// setClearColor programs the clear color from 8-bit components. A
// value of the form k/255 survives the float32 round trip without
// crossing a rounding boundary, which literals like 0.7 do not.
func setClearColor(ctx gl.Context, c surface.RGBA) {
	ctx.ClearColor(
		float32(c.R)/255,
		float32(c.G)/255,
		float32(c.B)/255,
		float32(c.A)/255,
	)
}

func newClearCases() *glcts.Group {
	g := glcts.NewGroup("clear", "framebuffer clear cases")

	g.Add(glcts.NewCase("solid",
		"a full clear must fill every pixel with the clear color",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)

			ctx.Disable(gl.ScissorTest)
			setClearColor(ctx, cellA)
			ctx.Clear(gl.ColorBufferBit)
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(cellA)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("scissor_grid",
		"scissored clears must compose an exact checkerboard",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)

			const cell = 8
			ctx.Disable(gl.ScissorTest)
			setClearColor(ctx, cellB)
			ctx.Clear(gl.ColorBufferBit)

			ctx.Enable(gl.ScissorTest)
			c.Cleanup(func() { ctx.Disable(gl.ScissorTest) })
			setClearColor(ctx, cellA)
			for y := 0; y < targetSize/cell; y++ {
				for x := 0; x < targetSize/cell; x++ {
					if (x+y)%2 != 0 {
						continue
					}
					ctx.Scissor(x*cell, y*cell, cell, cell)
					ctx.Clear(gl.ColorBufferBit)
				}
			}
			c.ExpectError()

			want := pattern.Grid(targetSize, targetSize, cell, cellA, cellB)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("scissor_disabled",
		"the scissor rectangle must not restrict clears while the test is disabled",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)

			ctx.Scissor(4, 4, 8, 8)
			ctx.Disable(gl.ScissorTest)
			setClearColor(ctx, cellB)
			ctx.Clear(gl.ColorBufferBit)
			c.ExpectError()

			want := surface.New(targetSize, targetSize)
			want.Clear(cellB)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	g.Add(glcts.NewCase("gradient_columns",
		"column-wise scissored clears must reproduce a horizontal gradient",
		func(c *glcts.C) {
			ctx := c.RequireGL()
			bindTarget(c, ctx)

			from := surface.RGBA{R: 10, G: 40, B: 90, A: 255}
			to := surface.RGBA{R: 245, G: 200, B: 33, A: 255}

			ctx.Enable(gl.ScissorTest)
			c.Cleanup(func() { ctx.Disable(gl.ScissorTest) })
			for x := 0; x < targetSize; x++ {
				f := float64(x) / float64(targetSize-1)
				ctx.ClearColor(
					float32(lerp(float64(from.R)/255, float64(to.R)/255, f)),
					float32(lerp(float64(from.G)/255, float64(to.G)/255, f)),
					float32(lerp(float64(from.B)/255, float64(to.B)/255, f)),
					float32(lerp(float64(from.A)/255, float64(to.A)/255, f)),
				)
				ctx.Scissor(x, 0, 1, targetSize)
				ctx.Clear(gl.ColorBufferBit)
			}
			c.ExpectError()

			want := pattern.GradientH(targetSize, targetSize, from, to)
			checkPixels(c, compare.ModeExact, want, readTarget(c, ctx), compare.Exact)
		}))

	return g
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
