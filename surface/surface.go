// Package surface provides the in-memory pixel buffers the harness
// reads rendered frames into and compares against references.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// RGBA is one pixel value, 8 bits per channel, non-premultiplied.
type RGBA struct {
	R, G, B, A uint8
}

// FromFloats converts unit-range channel values to an 8-bit pixel,
// rounding to nearest and clamping to [0, 1] first. All conversions in
// the harness (clear colors, references) go through this one function
// so generated references match rendered output bit-exactly.
func FromFloats(r, g, b, a float64) RGBA {
	return RGBA{
		R: floatToByte(r),
		G: floatToByte(g),
		B: floatToByte(b),
		A: floatToByte(a),
	}
}

func floatToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Color returns the pixel as a color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Surface is a rectangular RGBA8 pixel buffer with row 0 at the top.
// It is the unit of readback, reference, and error-mask data.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// New creates a surface with all pixels transparent black.
func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromBytes wraps raw RGBA8 data (for example a ReadPixels result) in
// a surface without copying. The data length must be exactly
// width*height*4.
func FromBytes(width, height int, data []uint8) (*Surface, error) {
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("surface: %d bytes for %dx%d RGBA8, want %d",
			len(data), width, height, width*height*4)
	}
	return &Surface{width: width, height: height, data: data}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int { return s.width }

// Height returns the height of the surface.
func (s *Surface) Height() int { return s.height }

// Data returns the raw pixel data (RGBA format).
func (s *Surface) Data() []uint8 { return s.data }

// SetPixel sets the color of a single pixel. Out-of-range coordinates
// are ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel. Out-of-range
// coordinates read as transparent black.
func (s *Surface) PixelAt(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return RGBA{}
	}
	i := (y*s.width + x) * 4
	return RGBA{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// FillRect fills the given rectangle, clipped to the surface bounds.
func (s *Surface) FillRect(x, y, w, h int, c RGBA) {
	for yy := max(y, 0); yy < min(y+h, s.height); yy++ {
		for xx := max(x, 0); xx < min(x+w, s.width); xx++ {
			i := (yy*s.width + xx) * 4
			s.data[i+0] = c.R
			s.data[i+1] = c.G
			s.data[i+2] = c.B
			s.data[i+3] = c.A
		}
	}
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	c := New(s.width, s.height)
	copy(c.data, s.data)
	return c
}

// ToImage converts the surface to an image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// FromImage creates a surface from an image.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	s := New(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			s.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return s
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
