package glwgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glcts/gl"
)

// TextureFormat maps a GLES sized internal format to the WebGPU
// texture format a device-backed implementation would allocate for
// it. The second result is false for formats outside the harness's
// renderable set.
func TextureFormat(internalFormat gl.Enum) (gputypes.TextureFormat, bool) {
	switch internalFormat {
	case gl.RGBA8, gl.RGBA:
		return gputypes.TextureFormatRGBA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// Renderable reports whether the probe considers a GLES internal
// format renderable on the device.
func Renderable(internalFormat gl.Enum) bool {
	_, ok := TextureFormat(internalFormat)
	return ok
}
