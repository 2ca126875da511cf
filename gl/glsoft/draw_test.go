package glsoft

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/glcts/gl"
)

// setupDraw uploads NDC positions into attribute 0 and makes a
// flat-color program current.
func setupDraw(t *testing.T, c *Context, verts []float32) {
	t.Helper()
	data := make([]byte, len(verts)*4)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	buf := c.CreateBuffer()
	c.BindBuffer(gl.ArrayBuffer, buf)
	c.BufferData(gl.ArrayBuffer, data, gl.StaticDraw)
	c.VertexAttribPointer(0, 2, gl.Float, false, 0, 0)
	c.EnableVertexAttribArray(0)

	p := c.CreateProgram()
	c.UseProgram(p)
	c.Uniform4f(0, 1, 1, 1, 1)
	if got := c.GetError(); got != gl.NoError {
		t.Fatalf("draw setup recorded %v", got)
	}
}

func readFrame(t *testing.T, c *Context, w, h int) []byte {
	t.Helper()
	dst := make([]byte, w*h*4)
	c.ReadPixels(0, 0, w, h, gl.RGBA, gl.UnsignedByte, dst)
	if got := c.GetError(); got != gl.NoError {
		t.Fatalf("readback recorded %v", got)
	}
	return dst
}

func TestDrawArraysFillsLeftHalf(t *testing.T) {
	c := New(8, 8)
	setupDraw(t, c, []float32{
		-1, -1,
		0, -1,
		-1, 1,
		0, 1,
	})
	c.DrawArrays(gl.TriangleStrip, 0, 4)
	if got := c.GetError(); got != gl.NoError {
		t.Fatalf("draw recorded %v", got)
	}

	frame := readFrame(t, c, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			covered := frame[i] == 255
			if covered != (x < 4) {
				t.Errorf("pixel (%d,%d) covered=%v, want %v", x, y, covered, x < 4)
			}
		}
	}
}

func TestDrawArraysPointAddressing(t *testing.T) {
	c := New(8, 8)
	// NDC for the center of pixel (2, 5): y flipped, +1 is the top.
	ndcX := float32(2*(2.0+0.5)/8 - 1)
	ndcY := float32(1 - 2*(5.0+0.5)/8)
	setupDraw(t, c, []float32{ndcX, ndcY})
	c.DrawArrays(gl.Points, 0, 1)

	frame := readFrame(t, c, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			covered := frame[i] == 255
			if covered != (x == 2 && y == 5) {
				t.Errorf("pixel (%d,%d) covered=%v", x, y, covered)
			}
		}
	}
}

func TestDrawArraysZeroCountIsNoOp(t *testing.T) {
	c := New(4, 4)
	setupDraw(t, c, []float32{-1, -1, 1, -1, 0, 1})
	c.DrawArrays(gl.Triangles, 0, 0)
	if got := c.GetError(); got != gl.NoError {
		t.Fatalf("zero-count draw recorded %v", got)
	}
	frame := readFrame(t, c, 4, 4)
	for i := 0; i < len(frame); i += 4 {
		if frame[i] != 0 {
			t.Fatal("zero-count draw touched the framebuffer")
		}
	}
}

func TestDrawArraysWithoutAttributeFails(t *testing.T) {
	c := New(4, 4)
	p := c.CreateProgram()
	c.UseProgram(p)
	c.DrawArrays(gl.Triangles, 0, 3)
	if got := c.GetError(); got != gl.InvalidOperation {
		t.Errorf("draw without an enabled position attribute recorded %v, want GL_INVALID_OPERATION", got)
	}
}

func TestDrawArraysRangeBeyondBufferFails(t *testing.T) {
	c := New(4, 4)
	setupDraw(t, c, []float32{-1, -1, 1, -1, 0, 1})
	c.DrawArrays(gl.Triangles, 0, 4)
	if got := c.GetError(); got != gl.InvalidOperation {
		t.Errorf("draw past the end of the vertex buffer recorded %v, want GL_INVALID_OPERATION", got)
	}
}

func TestDrawArraysScissored(t *testing.T) {
	c := New(8, 8)
	setupDraw(t, c, []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	})
	c.Enable(gl.ScissorTest)
	c.Scissor(2, 2, 3, 3)
	c.DrawArrays(gl.TriangleStrip, 0, 4)

	frame := readFrame(t, c, 8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := (y*8 + x) * 4
			covered := frame[i] == 255
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			if covered != inside {
				t.Errorf("pixel (%d,%d) covered=%v, want %v", x, y, covered, inside)
			}
		}
	}
}

func TestDrawArraysUsesProgramColor(t *testing.T) {
	c := New(2, 2)
	setupDraw(t, c, []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	})
	c.Uniform4f(0, 0, 1, 0, 1)
	c.DrawArrays(gl.TriangleStrip, 0, 4)

	frame := readFrame(t, c, 2, 2)
	if frame[0] != 0 || frame[1] != 255 || frame[2] != 0 || frame[3] != 255 {
		t.Errorf("pixel = %v, want opaque green", frame[:4])
	}
}
