package glsoft

import (
	"math"

	"github.com/gogpu/glcts/surface"
)

// point is a vertex in window coordinates.
type point struct {
	x, y float64
}

// rasterizer fills flat-shaded primitives into a color plane,
// clipped to a pixel rectangle. Coverage is point-sampled at pixel
// centers: a pixel is covered when its center (x+0.5, y+0.5) lies
// inside the primitive, with edges treated inclusively. Primitives
// whose edges land exactly on pixel centers are the case author's
// problem; conformance render cases place geometry on integer window
// coordinates so coverage is unambiguous.
type rasterizer struct {
	target *surface.Surface
	clip   rect
	color  surface.RGBA
}

func (r *rasterizer) write(x, y int) {
	if x < r.clip.x || x >= r.clip.x+r.clip.w || y < r.clip.y || y >= r.clip.y+r.clip.h {
		return
	}
	r.target.SetPixel(x, y, r.color)
}

// point rasterizes a single-pixel point.
func (r *rasterizer) point(p point) {
	r.write(int(math.Floor(p.x)), int(math.Floor(p.y)))
}

// line rasterizes a one-pixel-wide line by uniform stepping.
func (r *rasterizer) line(a, b point) {
	dx := b.x - a.x
	dy := b.y - a.y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		r.point(a)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.write(int(math.Floor(a.x+dx*t)), int(math.Floor(a.y+dy*t)))
	}
}

// triangle fills a triangle using edge functions. Both windings fill;
// the reference pipeline does not cull.
func (r *rasterizer) triangle(a, b, c point) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}
	// Flip once so the edge tests below can assume counter-clockwise.
	if area < 0 {
		b, c = c, b
	}

	minX := int(math.Floor(min3(a.x, b.x, c.x)))
	maxX := int(math.Ceil(max3(a.x, b.x, c.x)))
	minY := int(math.Floor(min3(a.y, b.y, c.y)))
	maxY := int(math.Ceil(max3(a.y, b.y, c.y)))

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := point{float64(x) + 0.5, float64(y) + 0.5}
			if edge(a, b, p) >= 0 && edge(b, c, p) >= 0 && edge(c, a, p) >= 0 {
				r.write(x, y)
			}
		}
	}
}

// edge is the signed area of the parallelogram spanned by (a,b) and
// (a,p); its sign says which side of the a-b line p lies on.
func edge(a, b, p point) float64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
