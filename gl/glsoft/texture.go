package glsoft

import (
	"math/bits"

	"github.com/gogpu/glcts/gl"
	"github.com/gogpu/glcts/surface"
)

// texImage is one allocated texture level.
type texImage struct {
	width  int
	height int
	pix    *surface.Surface
}

// textureObject holds the allocated levels of a texture. Only
// two-dimensional textures carry image data in this implementation.
type textureObject struct {
	levels map[int]*texImage
}

func validTextureBindTarget(target gl.Enum) bool {
	switch target {
	case gl.Texture2D, gl.Texture3D, gl.TextureCubeMap, gl.Texture2DArray:
		return true
	}
	return false
}

// maxTextureLevel is the largest legal mip level for the supported
// texture size.
var maxTextureLevel = bits.Len(uint(maxTextureSize)) - 1

// CreateTexture creates a new texture object.
func (c *Context) CreateTexture() gl.Texture {
	t := gl.Texture(c.newName())
	c.textures[t] = &textureObject{levels: make(map[int]*texImage)}
	return t
}

// DeleteTexture deletes a texture, unbinding it and detaching it from
// any framebuffer it is attached to.
func (c *Context) DeleteTexture(t gl.Texture) {
	if t == 0 {
		return
	}
	if _, ok := c.textures[t]; !ok {
		return
	}
	delete(c.textures, t)
	for target, bound := range c.textureBinds {
		if bound == t {
			delete(c.textureBinds, target)
		}
	}
	for _, fb := range c.framebuffers {
		if fb.colorKind == attachTexture && fb.colorTex == t {
			fb.colorKind = attachNone
			fb.colorTex = 0
		}
	}
}

// BindTexture binds a texture to a target. Binding 0 unbinds.
func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	if !validTextureBindTarget(target) {
		c.setError(gl.InvalidEnum)
		return
	}
	if t != 0 {
		if _, ok := c.textures[t]; !ok {
			c.setError(gl.InvalidOperation)
			return
		}
	}
	if t == 0 {
		delete(c.textureBinds, target)
		return
	}
	c.textureBinds[target] = t
}

// validatePixelTransfer checks a format/type pair for TexImage2D,
// TexSubImage2D, and ReadPixels. Only the RGBA8-class transfers the
// suites use are supported.
func (c *Context) validatePixelTransfer(format, typ gl.Enum) bool {
	switch format {
	case gl.RGBA, gl.RGB:
	default:
		c.setError(gl.InvalidEnum)
		return false
	}
	if typ != gl.UnsignedByte {
		c.setError(gl.InvalidEnum)
		return false
	}
	return true
}

func pixelSize(format gl.Enum) int {
	if format == gl.RGB {
		return 3
	}
	return 4
}

// TexImage2D allocates and optionally fills level of the texture
// bound to target. Level data is retained for level 0 only; higher
// levels are validated and allocated but not addressable by draws.
func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, typ gl.Enum, pixels []byte) {
	if target != gl.Texture2D {
		c.setError(gl.InvalidEnum)
		return
	}
	if !c.validatePixelTransfer(format, typ) {
		return
	}
	if level < 0 || width < 0 || height < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	if level > maxTextureLevel {
		c.setError(gl.InvalidValue)
		return
	}
	if width > maxTextureSize || height > maxTextureSize {
		c.setError(gl.InvalidValue)
		return
	}
	if !compatibleFormats(internalFormat, format) {
		c.setError(gl.InvalidOperation)
		return
	}
	tex := c.boundTexture(gl.Texture2D)
	if tex == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	if pixels != nil && len(pixels) < width*height*pixelSize(format) {
		c.setError(gl.InvalidOperation)
		return
	}

	img := &texImage{width: width, height: height, pix: surface.New(width, height)}
	if pixels != nil {
		storePixels(img.pix, 0, 0, width, height, format, pixels)
	}
	tex.levels[level] = img
}

// TexSubImage2D overwrites a sub-rectangle of an allocated level.
func (c *Context) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int, format, typ gl.Enum, pixels []byte) {
	if target != gl.Texture2D {
		c.setError(gl.InvalidEnum)
		return
	}
	if !c.validatePixelTransfer(format, typ) {
		return
	}
	if level < 0 || level > maxTextureLevel || width < 0 || height < 0 || xoffset < 0 || yoffset < 0 {
		c.setError(gl.InvalidValue)
		return
	}
	tex := c.boundTexture(gl.Texture2D)
	if tex == nil {
		c.setError(gl.InvalidOperation)
		return
	}
	img, ok := tex.levels[level]
	if !ok {
		c.setError(gl.InvalidOperation)
		return
	}
	if xoffset+width > img.width || yoffset+height > img.height {
		c.setError(gl.InvalidValue)
		return
	}
	if len(pixels) < width*height*pixelSize(format) {
		c.setError(gl.InvalidOperation)
		return
	}
	storePixels(img.pix, xoffset, yoffset, width, height, format, pixels)
}

// compatibleFormats checks the internalFormat/format pairs the
// implementation accepts.
func compatibleFormats(internalFormat, format gl.Enum) bool {
	switch internalFormat {
	case gl.RGBA, gl.RGBA8:
		return format == gl.RGBA
	case gl.RGB, gl.RGB8:
		return format == gl.RGB
	}
	return false
}

// storePixels copies client pixel rows into a level's surface. RGB
// data is expanded with opaque alpha.
func storePixels(dst *surface.Surface, x0, y0, w, h int, format gl.Enum, pixels []byte) {
	ps := pixelSize(format)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * ps
			px := surface.RGBA{R: pixels[i], G: pixels[i+1], B: pixels[i+2], A: 255}
			if format == gl.RGBA {
				px.A = pixels[i+3]
			}
			dst.SetPixel(x0+x, y0+y, px)
		}
	}
}

// boundTexture resolves the texture object bound to target, or nil.
func (c *Context) boundTexture(target gl.Enum) *textureObject {
	name, ok := c.textureBinds[target]
	if !ok {
		return nil
	}
	return c.textures[name]
}
