package glsoft

import "github.com/gogpu/glcts/gl"

// bufferObject is the data store of one buffer object.
type bufferObject struct {
	data  []byte
	usage gl.Enum
}

func validBufferTarget(target gl.Enum) bool {
	switch target {
	case gl.ArrayBuffer, gl.ElementArrayBuffer, gl.PixelPackBuffer,
		gl.PixelUnpackBuffer, gl.UniformBuffer, gl.TransformFeedbackBuffer,
		gl.CopyReadBuffer, gl.CopyWriteBuffer:
		return true
	}
	return false
}

func validBufferUsage(usage gl.Enum) bool {
	switch usage {
	case gl.StreamDraw, gl.StaticDraw, gl.DynamicDraw:
		return true
	}
	return false
}

// CreateBuffer creates a new buffer object with no data store.
func (c *Context) CreateBuffer() gl.Buffer {
	b := gl.Buffer(c.newName())
	c.buffers[b] = &bufferObject{}
	return b
}

// DeleteBuffer deletes a buffer, unbinding it from every target it is
// bound to. Deleting buffer 0 or an unknown name is silently ignored.
func (c *Context) DeleteBuffer(b gl.Buffer) {
	if b == 0 {
		return
	}
	if _, ok := c.buffers[b]; !ok {
		return
	}
	delete(c.buffers, b)
	for target, bound := range c.bufferBinds {
		if bound == b {
			delete(c.bufferBinds, target)
		}
	}
	for i := range c.attribs {
		if c.attribs[i].buffer == b {
			c.attribs[i].buffer = 0
		}
	}
}

// BindBuffer binds a buffer to a target. Binding 0 unbinds.
func (c *Context) BindBuffer(target gl.Enum, b gl.Buffer) {
	if !validBufferTarget(target) {
		c.setError(gl.InvalidEnum)
		return
	}
	if b != 0 {
		if _, ok := c.buffers[b]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	if b == 0 {
		delete(c.bufferBinds, target)
		return
	}
	c.bufferBinds[target] = b
}

// BufferData creates and fills the data store of the buffer bound to
// target.
func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	if !validBufferTarget(target) {
		c.setError(gl.InvalidEnum)
		return
	}
	if !validBufferUsage(usage) {
		c.setError(gl.InvalidEnum)
		return
	}
	buf := c.boundBuffer(target)
	if buf == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	buf.data = make([]byte, len(data))
	copy(buf.data, data)
	buf.usage = usage
}

// BufferSubData overwrites part of the data store of the buffer bound
// to target.
func (c *Context) BufferSubData(target gl.Enum, offset int, data []byte) {
	if !validBufferTarget(target) {
		c.setError(gl.InvalidEnum)
		return
	}
	buf := c.boundBuffer(target)
	if buf == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	if offset < 0 || offset+len(data) > len(buf.data) {
		c.setError(gl.InvalidValue)
		return
	}
	copy(buf.data[offset:], data)
}

// boundBuffer resolves the buffer object bound to target, or nil.
func (c *Context) boundBuffer(target gl.Enum) *bufferObject {
	name, ok := c.bufferBinds[target]
	if !ok {
		return nil
	}
	return c.buffers[name]
}
