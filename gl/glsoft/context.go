// Package glsoft is a pure-Go software reference implementation of
// the gl.Context capability surface. It implements the GLES3 error
// semantics the negative suites exercise, plus enough rendering for
// the sample render suites: scissored clears, texture storage and
// readback, framebuffer objects, and flat-shaded primitive
// rasterization.
//
// Coordinate convention: readback row 0 is the top row of the frame,
// and NDC y=+1 maps to the top. This matches the harness's surface
// package, so references generated by package pattern compare directly
// against ReadPixels results.
package glsoft

import (
	"fmt"

	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/surface"
)

// Name is the provider identifier in the gl registry.
const Name = "soft"

// Implementation limits reported by GetInteger. Values meet the GLES3
// minimums.
const (
	maxTextureSize      = 2048
	maxRenderbufferSize = 2048
	max3DTextureSize    = 256
	maxVertexAttribs    = 16
	maxColorAttachments = 4
	maxDrawBuffers      = 4
)

type rect struct {
	x, y, w, h int
}

// attrib is the captured state of one vertex attribute slot.
type attrib struct {
	enabled    bool
	size       int
	typ        gl.Enum
	normalized bool
	stride     int
	offset     int
	buffer     gl.Buffer
}

// Context is a software gl.Context. Not safe for concurrent use,
// matching the contract of the interface.
type Context struct {
	width  int
	height int

	// err is the sticky error register: the first error since the
	// last GetError wins, later ones are dropped.
	err gl.Enum

	nextName uint32

	buffers       map[gl.Buffer]*bufferObject
	textures      map[gl.Texture]*textureObject
	renderbuffers map[gl.Renderbuffer]*renderbufferObject
	framebuffers  map[gl.Framebuffer]*framebufferObject
	programs      map[gl.Program]*programObject

	bufferBinds    map[gl.Enum]gl.Buffer
	textureBinds   map[gl.Enum]gl.Texture
	rbBind         gl.Renderbuffer
	drawFB, readFB gl.Framebuffer
	curProgram     gl.Program
	attribs        [maxVertexAttribs]attrib

	viewport       rect
	scissor        rect
	scissorEnabled bool
	depthEnabled   bool
	clearColor     [4]float32

	// defaultFB is the color plane of the default framebuffer.
	defaultFB *surface.Surface
}

var _ gl.Context = (*Context)(nil)

// New creates a software context whose default framebuffer is width
// by height, cleared to transparent black.
func New(width, height int) *Context {
	return &Context{
		width:         width,
		height:        height,
		nextName:      1,
		buffers:       make(map[gl.Buffer]*bufferObject),
		textures:      make(map[gl.Texture]*textureObject),
		renderbuffers: make(map[gl.Renderbuffer]*renderbufferObject),
		framebuffers:  make(map[gl.Framebuffer]*framebufferObject),
		programs:      make(map[gl.Program]*programObject),
		bufferBinds:   make(map[gl.Enum]gl.Buffer),
		textureBinds:  make(map[gl.Enum]gl.Texture),
		viewport:      rect{0, 0, width, height},
		scissor:       rect{0, 0, width, height},
		defaultFB:     surface.New(width, height),
	}
}

// setError records the first error since the last GetError.
func (c *Context) setError(e gl.Enum) {
	if c.err == gl.NoError {
		c.err = e
	}
}

// GetError returns the recorded error and clears the register.
func (c *Context) GetError() gl.Enum {
	e := c.err
	c.err = gl.NoError
	return e
}

func (c *Context) newName() uint32 {
	n := c.nextName
	c.nextName++
	return n
}

// Viewport sets the NDC-to-window mapping used by draws.
func (c *Context) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	c.viewport = rect{x, y, width, height}
}

// Scissor sets the scissor rectangle applied to clears and draws when
// ScissorTest is enabled.
func (c *Context) Scissor(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	c.scissor = rect{x, y, width, height}
}

func validCapability(cap gl.Enum) bool {
	return cap == gl.ScissorTest || cap == gl.DepthTest
}

// Enable turns on a server-side capability.
func (c *Context) Enable(capability gl.Enum) {
	if !validCapability(capability) {
		c.setError(gl.InvalidEnum)
		return
	}
	c.setCapability(capability, true)
}

// Disable turns off a server-side capability.
func (c *Context) Disable(capability gl.Enum) {
	if !validCapability(capability) {
		c.setError(gl.InvalidEnum)
		return
	}
	c.setCapability(capability, false)
}

func (c *Context) setCapability(capability gl.Enum, on bool) {
	switch capability {
	case gl.ScissorTest:
		c.scissorEnabled = on
	case gl.DepthTest:
		c.depthEnabled = on
	}
}

// ClearColor sets the color used by Clear. Values are clamped to
// [0, 1] at clear time.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{r, g, b, a}
}

// Clear clears the buffers named in mask on the draw framebuffer,
// restricted to the scissor rectangle when ScissorTest is enabled.
func (c *Context) Clear(mask gl.Bitfield) {
	const validBits = gl.ColorBufferBit | gl.DepthBufferBit | gl.StencilBufferBit
	if mask&^validBits != 0 {
		c.setError(gl.InvalidValue)
		return
	}
	if mask&gl.ColorBufferBit == 0 {
		return
	}
	target, ok := c.drawTarget()
	if !ok {
		c.setError(gl.InvalidFramebufferOperation)
		return
	}
	col := surface.FromFloats(
		float64(c.clearColor[0]),
		float64(c.clearColor[1]),
		float64(c.clearColor[2]),
		float64(c.clearColor[3]),
	)
	clip := rect{0, 0, target.Width(), target.Height()}
	if c.scissorEnabled {
		clip = intersect(clip, c.scissor)
	}
	target.FillRect(clip.x, clip.y, clip.w, clip.h, col)
}

func intersect(a, b rect) rect {
	x0 := max(a.x, b.x)
	y0 := max(a.y, b.y)
	x1 := min(a.x+a.w, b.x+b.w)
	y1 := min(a.y+a.h, b.y+b.h)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return rect{x0, y0, x1 - x0, y1 - y0}
}

// GetInteger returns integer state. Unknown parameters record
// InvalidEnum and return 0.
func (c *Context) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.MaxTextureSize:
		return maxTextureSize
	case gl.MaxRenderbufferSize:
		return maxRenderbufferSize
	case gl.Max3DTextureSize:
		return max3DTextureSize
	case gl.MaxVertexAttribs:
		return maxVertexAttribs
	case gl.MaxColorAttachments:
		return maxColorAttachments
	case gl.MaxDrawBuffers:
		return maxDrawBuffers
	default:
		c.setError(gl.InvalidEnum)
		return 0
	}
}

// provider registers the software context in the gl registry.
type provider struct{}

func (provider) Name() string { return Name }

func (provider) NewContext(width, height int) (gl.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glsoft: invalid framebuffer size %dx%d", width, height)
	}
	return New(width, height), nil
}

func init() {
	gl.Register(Name, func() gl.Provider { return provider{} })
}
