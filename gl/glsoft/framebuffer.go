package glsoft

import (
	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/surface"
)

type attachKind int

const (
	attachNone attachKind = iota
	attachTexture
	attachRenderbuffer
)

// renderbufferObject is a renderbuffer with allocated storage. Only
// RGBA8 color storage is renderable in this implementation.
type renderbufferObject struct {
	width  int
	height int
	format gl.Enum
	pix    *surface.Surface
}

// framebufferObject tracks the color attachment of one framebuffer.
// Depth and stencil attachments are accepted but carry no storage.
type framebufferObject struct {
	colorKind attachKind
	colorTex  gl.Texture
	colorRB   gl.Renderbuffer
	hasDepth  bool
}

func validFramebufferTarget(target gl.Enum) bool {
	switch target {
	case gl.FramebufferTarget, gl.ReadFramebuffer, gl.DrawFramebuffer:
		return true
	}
	return false
}

func validAttachment(attachment gl.Enum) bool {
	switch attachment {
	case gl.ColorAttachment0, gl.DepthAttachment, gl.StencilAttachment:
		return true
	}
	return false
}

// CreateRenderbuffer creates a renderbuffer with no storage.
func (c *Context) CreateRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer(c.newName())
	c.renderbuffers[rb] = &renderbufferObject{}
	return rb
}

// DeleteRenderbuffer deletes a renderbuffer and detaches it.
func (c *Context) DeleteRenderbuffer(rb gl.Renderbuffer) {
	if rb == 0 {
		return
	}
	if _, ok := c.renderbuffers[rb]; !ok {
		return
	}
	delete(c.renderbuffers, rb)
	if c.rbBind == rb {
		c.rbBind = 0
	}
	for _, fb := range c.framebuffers {
		if fb.colorKind == attachRenderbuffer && fb.colorRB == rb {
			fb.colorKind = attachNone
			fb.colorRB = 0
		}
	}
}

// BindRenderbuffer binds a renderbuffer. Binding 0 unbinds.
func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	if target != gl.RenderbufferTarget {
		c.setError(gl.InvalidEnum)
		return
	}
	if rb != 0 {
		if _, ok := c.renderbuffers[rb]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	c.rbBind = rb
}

// RenderbufferStorage allocates storage for the bound renderbuffer.
func (c *Context) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	if target != gl.RenderbufferTarget {
		c.setError(gl.InvalidEnum)
		return
	}
	switch internalFormat {
	case gl.RGBA8, gl.RGB8, gl.DepthComponent16:
	default:
		c.setError(gl.InvalidEnum)
		return
	}
	if width < 0 || height < 0 || width > maxRenderbufferSize || height > maxRenderbufferSize {
		c.setError(gl.InvalidValue)
		return
	}
	if c.rbBind == 0 {
		c.setError(gl.InvalidOperation)
		return
	}
	rb := c.renderbuffers[c.rbBind]
	rb.width = width
	rb.height = height
	rb.format = internalFormat
	if internalFormat == gl.RGBA8 || internalFormat == gl.RGB8 {
		rb.pix = surface.New(width, height)
	} else {
		rb.pix = nil
	}
}

// CreateFramebuffer creates a framebuffer with no attachments.
func (c *Context) CreateFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer(c.newName())
	c.framebuffers[fb] = &framebufferObject{}
	return fb
}

// DeleteFramebuffer deletes a framebuffer. If it is bound, the
// default framebuffer becomes bound in its place.
func (c *Context) DeleteFramebuffer(fb gl.Framebuffer) {
	if fb == 0 {
		return
	}
	if _, ok := c.framebuffers[fb]; !ok {
		return
	}
	delete(c.framebuffers, fb)
	if c.drawFB == fb {
		c.drawFB = 0
	}
	if c.readFB == fb {
		c.readFB = 0
	}
}

// BindFramebuffer binds a framebuffer to the draw and/or read
// binding point. Binding 0 restores the default framebuffer.
func (c *Context) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if !validFramebufferTarget(target) {
		c.setError(gl.InvalidEnum)
		return
	}
	if fb != 0 {
		if _, ok := c.framebuffers[fb]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	switch target {
	case gl.FramebufferTarget:
		c.drawFB = fb
		c.readFB = fb
	case gl.DrawFramebuffer:
		c.drawFB = fb
	case gl.ReadFramebuffer:
		c.readFB = fb
	}
}

// FramebufferTexture2D attaches level of a texture as the color (or
// depth/stencil) attachment of the bound framebuffer.
func (c *Context) FramebufferTexture2D(target, attachment, textarget gl.Enum, t gl.Texture, level int) {
	if !validFramebufferTarget(target) || textarget != gl.Texture2D {
		c.setError(gl.InvalidEnum)
		return
	}
	if !validAttachment(attachment) {
		c.setError(gl.InvalidEnum)
		return
	}
	// GLES3 allows non-zero levels; this implementation renders to
	// level 0 only and rejects the rest.
	if level != 0 {
		c.setError(gl.InvalidValue)
		return
	}
	fb := c.boundFramebufferObject(target)
	if fb == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	if t != 0 {
		if _, ok := c.textures[t]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	if attachment != gl.ColorAttachment0 {
		fb.hasDepth = t != 0
		return
	}
	if t == 0 {
		fb.colorKind = attachNone
		fb.colorTex = 0
		return
	}
	fb.colorKind = attachTexture
	fb.colorTex = t
	fb.colorRB = 0
}

// FramebufferRenderbuffer attaches a renderbuffer to the bound
// framebuffer.
func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	if !validFramebufferTarget(target) || rbTarget != gl.RenderbufferTarget {
		c.setError(gl.InvalidEnum)
		return
	}
	if !validAttachment(attachment) {
		c.setError(gl.InvalidEnum)
		return
	}
	fb := c.boundFramebufferObject(target)
	if fb == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	if rb != 0 {
		if _, ok := c.renderbuffers[rb]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	if attachment != gl.ColorAttachment0 {
		fb.hasDepth = rb != 0
		return
	}
	if rb == 0 {
		fb.colorKind = attachNone
		fb.colorRB = 0
		return
	}
	fb.colorKind = attachRenderbuffer
	fb.colorRB = rb
	fb.colorTex = 0
}

// CheckFramebufferStatus reports the completeness of the bound
// framebuffer. The default framebuffer is always complete.
func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if !validFramebufferTarget(target) {
		c.setError(gl.InvalidEnum)
		return 0
	}
	name := c.boundFramebufferName(target)
	if name == 0 {
		return gl.FramebufferComplete
	}
	fb := c.framebuffers[name]
	return c.framebufferStatus(fb)
}

func (c *Context) framebufferStatus(fb *framebufferObject) gl.Enum {
	switch fb.colorKind {
	case attachNone:
		return gl.FramebufferIncompleteMissingAttachment
	case attachTexture:
		tex, ok := c.textures[fb.colorTex]
		if !ok {
			return gl.FramebufferIncompleteAttachment
		}
		img, ok := tex.levels[0]
		if !ok || img.width == 0 || img.height == 0 {
			return gl.FramebufferIncompleteAttachment
		}
		return gl.FramebufferComplete
	case attachRenderbuffer:
		rb, ok := c.renderbuffers[fb.colorRB]
		if !ok || rb.pix == nil {
			return gl.FramebufferIncompleteAttachment
		}
		return gl.FramebufferComplete
	}
	return gl.FramebufferUnsupported
}

// boundFramebufferName resolves a framebuffer target to the bound
// name; the draw binding answers for gl.FramebufferTarget.
func (c *Context) boundFramebufferName(target gl.Enum) gl.Framebuffer {
	if target == gl.ReadFramebuffer {
		return c.readFB
	}
	return c.drawFB
}

// boundFramebufferObject resolves the bound framebuffer object for a
// target; nil when the default framebuffer is bound (the default
// framebuffer has no user-modifiable attachments).
func (c *Context) boundFramebufferObject(target gl.Enum) *framebufferObject {
	name := c.boundFramebufferName(target)
	if name == 0 {
		return nil
	}
	return c.framebuffers[name]
}

// drawTarget resolves the color plane draws and clears write to.
func (c *Context) drawTarget() (*surface.Surface, bool) {
	return c.resolveTarget(c.drawFB)
}

// readTarget resolves the color plane ReadPixels reads from.
func (c *Context) readTarget() (*surface.Surface, bool) {
	return c.resolveTarget(c.readFB)
}

func (c *Context) resolveTarget(name gl.Framebuffer) (*surface.Surface, bool) {
	if name == 0 {
		return c.defaultFB, true
	}
	fb, ok := c.framebuffers[name]
	if !ok {
		return nil, false
	}
	if c.framebufferStatus(fb) != gl.FramebufferComplete {
		return nil, false
	}
	switch fb.colorKind {
	case attachTexture:
		return c.textures[fb.colorTex].levels[0].pix, true
	case attachRenderbuffer:
		return c.renderbuffers[fb.colorRB].pix, true
	}
	return nil, false
}

// ReadPixels reads a rectangle of the read framebuffer into dst as
// RGBA8, row 0 first (top row). Pixels outside the framebuffer read
// as zero.
func (c *Context) ReadPixels(x, y, width, height int, format, typ gl.Enum, dst []byte) {
	if format != gl.RGBA || typ != gl.UnsignedByte {
		c.setError(gl.InvalidEnum)
		return
	}
	if width < 0 || height < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	if len(dst) < width*height*4 {
		c.setError(gl.InvalidOperation)
		return
	}
	src, ok := c.readTarget()
	if !ok {
		c.setError(gl.InvalidFramebufferOperation)
		return
	}
	for yy := 0; yy < height; yy++ {
		for xx := 0; xx < width; xx++ {
			px := src.PixelAt(x+xx, y+yy)
			i := (yy*width + xx) * 4
			dst[i+0] = px.R
			dst[i+1] = px.G
			dst[i+2] = px.B
			dst[i+3] = px.A
		}
	}
}
