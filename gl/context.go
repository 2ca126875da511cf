package gl

// Object handles. The zero value of each handle type means "no
// object", matching the GLES convention that object name 0 is never a
// valid user object.
type (
	// Buffer names a buffer object.
	Buffer uint32

	// Texture names a texture object.
	Texture uint32

	// Renderbuffer names a renderbuffer object.
	Renderbuffer uint32

	// Framebuffer names a framebuffer object. 0 is the default
	// framebuffer owned by the context.
	Framebuffer uint32

	// Program names a program object.
	Program uint32
)

// Context is the graphics context under test: an opaque capability
// object exposing resource management, state, draw, and readback
// operations, plus the sticky error register.
//
// Implementations follow GLES3 error semantics: an entry point that
// detects an invalid argument records an error in the register (first
// error wins), has no other effect, and returns. The register is read
// and cleared by GetError.
//
// Context is not safe for concurrent use; the single-threaded runner
// is the only caller during a suite run.
type Context interface {
	// GetError returns the first error recorded since the previous
	// call and clears the register.
	GetError() Enum

	// Buffer objects.
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// Texture objects. Only two-dimensional, level-indexed images are
	// in the harness's scope.
	CreateTexture() Texture
	DeleteTexture(t Texture)
	BindTexture(target Enum, t Texture)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte)
	TexSubImage2D(target Enum, level, xoffset, yoffset, width, height int, format, typ Enum, pixels []byte)

	// Renderbuffer objects.
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(rb Renderbuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)

	// Framebuffer objects.
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(fb Framebuffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	FramebufferTexture2D(target, attachment, textarget Enum, t Texture, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb Renderbuffer)
	CheckFramebufferStatus(target Enum) Enum

	// Programs. Programs in this surface are opaque: how an
	// implementation obtains an executable program (shader
	// compilation, fixed pipeline) is outside the harness's scope,
	// but Uniform4f location 0 is the flat output color.
	CreateProgram() Program
	DeleteProgram(p Program)
	UseProgram(p Program)
	Uniform4f(location int, r, g, b, a float32)

	// Vertex input.
	VertexAttribPointer(index, size int, typ Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index int)
	DisableVertexAttribArray(index int)

	// Rasterization state, clears, draws, readback.
	Viewport(x, y, width, height int)
	Scissor(x, y, width, height int)
	Enable(capability Enum)
	Disable(capability Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Bitfield)
	DrawArrays(mode Enum, first, count int)
	ReadPixels(x, y, width, height int, format, typ Enum, dst []byte)

	// GetInteger queries integer state such as implementation limits.
	GetInteger(pname Enum) int
}

// maxDrain bounds the drain loop: a context that keeps producing
// errors forever is broken, and the harness must not hang on it.
const maxDrain = 64

// DrainErrors reads the context's error register until it reports
// NoError, returning the drained codes in order. Checkers call it
// after every expectation so stale errors never pollute a later check.
func DrainErrors(c Context) []Enum {
	var drained []Enum
	for i := 0; i < maxDrain; i++ {
		e := c.GetError()
		if e == NoError {
			return drained
		}
		drained = append(drained, e)
	}
	return drained
}
