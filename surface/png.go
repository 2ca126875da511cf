package surface

import (
	"image"
	"image/png"
	"os"
)

// Ensure Surface implements image.Image.
var _ image.Image = (*Surface)(nil)

// SavePNG writes the surface to a PNG file. Used to dump error masks
// and rendered frames for diagnostics.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// LoadPNG reads a PNG file into a surface.
func LoadPNG(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}
