// Package pattern generates deterministic pixel patterns and vertex
// buffers used as independently verifiable render inputs. All
// generators are pure functions: the same arguments (including seed)
// always produce the same bytes.
package pattern

import "github.com/gogpu/glcts/surface"

// Grid fills a w by h surface with a checkerboard of two colors at the
// given cell size, starting with color a at (0, 0). Cell sizes below 1
// are pinned to 1.
func Grid(w, h, cell int, a, b surface.RGBA) *surface.Surface {
	if cell < 1 {
		cell = 1
	}
	s := surface.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				s.SetPixel(x, y, a)
			} else {
				s.SetPixel(x, y, b)
			}
		}
	}
	return s
}

// Gradient fills a w by h surface by bilinearly interpolating between
// four corner colors (top-left, top-right, bottom-left, bottom-right).
func Gradient(w, h int, tl, tr, bl, br surface.RGBA) *surface.Surface {
	s := surface.New(w, h)
	for y := 0; y < h; y++ {
		fy := axisFraction(y, h)
		for x := 0; x < w; x++ {
			fx := axisFraction(x, w)
			top := lerpRGBA(tl, tr, fx)
			bottom := lerpRGBA(bl, br, fx)
			s.SetPixel(x, y, lerpRGBA(top, bottom, fy))
		}
	}
	return s
}

// GradientH fills a surface with a horizontal gradient from one color
// to another.
func GradientH(w, h int, from, to surface.RGBA) *surface.Surface {
	return Gradient(w, h, from, to, from, to)
}

// axisFraction maps coordinate i on an axis of length n to [0, 1],
// with the first and last pixels landing exactly on the endpoints.
func axisFraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// lerpRGBA interpolates per channel through float space, rounding the
// way surface.FromFloats does so generated references match rendered
// clears bit-exactly.
func lerpRGBA(a, b surface.RGBA, f float64) surface.RGBA {
	return surface.FromFloats(
		lerp(float64(a.R)/255, float64(b.R)/255, f),
		lerp(float64(a.G)/255, float64(b.G)/255, f),
		lerp(float64(a.B)/255, float64(b.B)/255, f),
		lerp(float64(a.A)/255, float64(b.A)/255, f),
	)
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
