package glsoft

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/surface"
)

// positionAttrib is the attribute slot draws fetch positions from.
const positionAttrib = 0

func validDrawMode(mode gl.Enum) bool {
	switch mode {
	case gl.Points, gl.Lines, gl.LineLoop, gl.LineStrip,
		gl.Triangles, gl.TriangleStrip, gl.TriangleFan:
		return true
	}
	return false
}

// DrawArrays assembles primitives from attribute 0 of the bound
// vertex state and rasterizes them flat-shaded with the current
// program's color.
func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	if !validDrawMode(mode) {
		c.setError(gl.InvalidEnum)
		return
	}
	if first < 0 || count < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	if c.curProgram == 0 {
		c.setError(gl.InvalidOperation)
		return
	}
	target, ok := c.drawTarget()
	if !ok {
		c.setError(gl.InvalidFramebufferOperation)
		return
	}
	if count == 0 {
		return
	}

	verts, ok := c.fetchPositions(first, count)
	if !ok {
		// fetchPositions records the error.
		return
	}

	prog := c.programs[c.curProgram]
	col := surface.FromFloats(
		float64(prog.color[0]),
		float64(prog.color[1]),
		float64(prog.color[2]),
		float64(prog.color[3]),
	)

	clip := rect{0, 0, target.Width(), target.Height()}
	if c.scissorEnabled {
		clip = intersect(clip, c.scissor)
	}
	r := rasterizer{target: target, clip: clip, color: col}

	switch mode {
	case gl.Points:
		for _, v := range verts {
			r.point(v)
		}
	case gl.Lines:
		for i := 0; i+1 < len(verts); i += 2 {
			r.line(verts[i], verts[i+1])
		}
	case gl.LineStrip:
		for i := 0; i+1 < len(verts); i++ {
			r.line(verts[i], verts[i+1])
		}
	case gl.LineLoop:
		for i := 0; i+1 < len(verts); i++ {
			r.line(verts[i], verts[i+1])
		}
		if len(verts) > 2 {
			r.line(verts[len(verts)-1], verts[0])
		}
	case gl.Triangles:
		for i := 0; i+2 < len(verts); i += 3 {
			r.triangle(verts[i], verts[i+1], verts[i+2])
		}
	case gl.TriangleStrip:
		for i := 0; i+2 < len(verts); i++ {
			r.triangle(verts[i], verts[i+1], verts[i+2])
		}
	case gl.TriangleFan:
		for i := 1; i+1 < len(verts); i++ {
			r.triangle(verts[0], verts[i], verts[i+1])
		}
	}
}

// fetchPositions reads count NDC positions starting at first from the
// position attribute and maps them through the viewport transform.
func (c *Context) fetchPositions(first, count int) ([]point, bool) {
	a := c.attribs[positionAttrib]
	if !a.enabled {
		c.setError(gl.InvalidOperation)
		return nil, false
	}
	if a.typ != gl.Float || a.size < 2 {
		// The reference pipeline consumes float32 x,y positions.
		c.setError(gl.InvalidOperation)
		return nil, false
	}
	buf, ok := c.buffers[a.buffer]
	if !ok {
		c.setError(gl.InvalidOperation)
		return nil, false
	}
	stride := a.stride
	if stride == 0 {
		stride = a.size * 4
	}
	need := a.offset + (first+count-1)*stride + a.size*4
	if need > len(buf.data) {
		c.setError(gl.InvalidOperation)
		return nil, false
	}

	verts := make([]point, 0, count)
	for i := 0; i < count; i++ {
		base := a.offset + (first+i)*stride
		x := math.Float32frombits(binary.LittleEndian.Uint32(buf.data[base:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(buf.data[base+4:]))
		verts = append(verts, c.viewportTransform(float64(x), float64(y)))
	}
	return verts, true
}

// viewportTransform maps NDC to window coordinates. NDC y=+1 is the
// top of the frame, consistent with the package's top-row-first
// readback convention.
func (c *Context) viewportTransform(ndcX, ndcY float64) point {
	vp := c.viewport
	return point{
		x: float64(vp.x) + (ndcX+1)/2*float64(vp.w),
		y: float64(vp.y) + (1-ndcY)/2*float64(vp.h),
	}
}
