// Package gl defines the capability surface of the graphics context
// under test: the GLES3 enums the suites exercise, the Context
// interface, and a registry of context providers.
//
// The harness core never talks to a concrete driver; it is handed a
// Context by the host at suite start. The one piece of contract the
// whole harness leans on is the error register: a sticky single-slot
// record of the first error raised since it was last read, cleared by
// reading. See [Context.GetError] and [DrainErrors].
package gl

import "fmt"

// Enum is a GLES enumerant. Values match the GLES3 numeric constants.
type Enum uint32

// Bitfield is a GLES bitmask argument, e.g. for Clear.
type Bitfield uint32

// Error codes returned by Context.GetError.
const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
	ContextLost                 Enum = 0x0507
)

// Buffer targets.
const (
	ArrayBuffer             Enum = 0x8892
	ElementArrayBuffer      Enum = 0x8893
	PixelPackBuffer         Enum = 0x88EB
	PixelUnpackBuffer       Enum = 0x88EC
	UniformBuffer           Enum = 0x8A11
	TransformFeedbackBuffer Enum = 0x8C8E
	CopyReadBuffer          Enum = 0x8F36
	CopyWriteBuffer         Enum = 0x8F37
)

// Buffer usage hints.
const (
	StreamDraw  Enum = 0x88E0
	StaticDraw  Enum = 0x88E4
	DynamicDraw Enum = 0x88E8
)

// Texture targets.
const (
	Texture2D      Enum = 0x0DE1
	Texture3D      Enum = 0x806F
	TextureCubeMap Enum = 0x8513
	Texture2DArray Enum = 0x8C1A
)

// Pixel formats and types.
const (
	RGB          Enum = 0x1907
	RGBA         Enum = 0x1908
	UnsignedByte Enum = 0x1401
	Byte         Enum = 0x1400
	Short        Enum = 0x1402
	Int          Enum = 0x1404
	UnsignedInt  Enum = 0x1405
	Float        Enum = 0x1406

	RGB8  Enum = 0x8051
	RGBA8 Enum = 0x8058
)

// Framebuffer and renderbuffer targets, attachments, and statuses.
// The target names carry a Target suffix to keep them apart from the
// Framebuffer and Renderbuffer handle types.
const (
	FramebufferTarget  Enum = 0x8D40
	ReadFramebuffer    Enum = 0x8CA8
	DrawFramebuffer    Enum = 0x8CA9
	RenderbufferTarget Enum = 0x8D41

	ColorAttachment0  Enum = 0x8CE0
	DepthAttachment   Enum = 0x8D00
	StencilAttachment Enum = 0x8D20

	FramebufferComplete                    Enum = 0x8CD5
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferUnsupported                 Enum = 0x8CDD

	DepthComponent16 Enum = 0x81A5
)

// Capabilities for Enable/Disable.
const (
	ScissorTest Enum = 0x0C11
	DepthTest   Enum = 0x0B71
)

// Clear mask bits.
const (
	DepthBufferBit   Bitfield = 0x0100
	StencilBufferBit Bitfield = 0x0400
	ColorBufferBit   Bitfield = 0x4000
)

// Primitive modes for DrawArrays.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
)

// Integer state parameters for GetInteger.
const (
	MaxTextureSize      Enum = 0x0D33
	MaxRenderbufferSize Enum = 0x84E8
	Max3DTextureSize    Enum = 0x8073
	MaxVertexAttribs    Enum = 0x8869
	MaxColorAttachments Enum = 0x8CDF
	MaxDrawBuffers      Enum = 0x8824
)

// String returns the GLES spelling of error codes and framebuffer
// statuses; other enums render as hex.
func (e Enum) String() string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "GL_CONTEXT_LOST"
	case FramebufferComplete:
		return "GL_FRAMEBUFFER_COMPLETE"
	case FramebufferIncompleteAttachment:
		return "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case FramebufferIncompleteMissingAttachment:
		return "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case FramebufferUnsupported:
		return "GL_FRAMEBUFFER_UNSUPPORTED"
	default:
		return fmt.Sprintf("0x%04X", uint32(e))
	}
}
