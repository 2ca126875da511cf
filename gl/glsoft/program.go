package glsoft

import "github.com/gogpu/glcts/gl"

// programObject is a trivially "linked" flat-color program: the
// uniform at location 0 is the output color of every fragment. This
// keeps the reference pipeline deterministic without a shader
// compiler, which is outside the harness's scope.
type programObject struct {
	color [4]float32
}

// colorUniformLocation is the only uniform location programs expose.
const colorUniformLocation = 0

// CreateProgram creates a usable flat-color program.
func (c *Context) CreateProgram() gl.Program {
	p := gl.Program(c.newName())
	c.programs[p] = &programObject{color: [4]float32{0, 0, 0, 1}}
	return p
}

// DeleteProgram deletes a program, unbinding it if current.
func (c *Context) DeleteProgram(p gl.Program) {
	if p == 0 {
		return
	}
	if _, ok := c.programs[p]; !ok {
		return
	}
	delete(c.programs, p)
	if c.curProgram == p {
		c.curProgram = 0
	}
}

// UseProgram makes a program current. 0 unbinds.
func (c *Context) UseProgram(p gl.Program) {
	if p == 0 {
		c.curProgram = 0
		return
	}
	if _, ok := c.programs[p]; !ok {
		c.setError(gl.InvalidValue)
		return
	}
	c.curProgram = p
}

// Uniform4f sets a vec4 uniform on the current program. Location -1
// is silently ignored, matching GLES.
func (c *Context) Uniform4f(location int, r, g, b, a float32) {
	if location == -1 {
		return
	}
	if c.curProgram == 0 {
		c.setError(gl.InvalidOperation)
		return
	}
	if location != colorUniformLocation {
		c.setError(gl.InvalidOperation)
		return
	}
	c.programs[c.curProgram].color = [4]float32{r, g, b, a}
}

func validAttribType(typ gl.Enum) bool {
	switch typ {
	case gl.Byte, gl.UnsignedByte, gl.Short, gl.Int, gl.UnsignedInt, gl.Float:
		return true
	}
	return false
}

// VertexAttribPointer captures the layout of an attribute array and
// the buffer currently bound to ArrayBuffer.
func (c *Context) VertexAttribPointer(index, size int, typ gl.Enum, normalized bool, stride, offset int) {
	if index < 0 || index >= maxVertexAttribs {
		c.setError(gl.InvalidValue)
		return
	}
	if size < 1 || size > 4 {
		c.setError(gl.InvalidValue)
		return
	}
	if !validAttribType(typ) {
		c.setError(gl.InvalidEnum)
		return
	}
	if stride < 0 || offset < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	buf, bound := c.bufferBinds[gl.ArrayBuffer]
	if !bound && offset != 0 {
		// Client-side vertex arrays do not exist in GLES3.
		c.setError(gl.InvalidOperation)
		return
	}
	c.attribs[index] = attrib{
		enabled:    c.attribs[index].enabled,
		size:       size,
		typ:        typ,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
		buffer:     buf,
	}
}

// EnableVertexAttribArray enables an attribute array slot.
func (c *Context) EnableVertexAttribArray(index int) {
	if index < 0 || index >= maxVertexAttribs {
		c.setError(gl.InvalidValue)
		return
	}
	c.attribs[index].enabled = true
}

// DisableVertexAttribArray disables an attribute array slot.
func (c *Context) DisableVertexAttribArray(index int) {
	if index < 0 || index >= maxVertexAttribs {
		c.setError(gl.InvalidValue)
		return
	}
	c.attribs[index].enabled = false
}
