package compare

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/glcts/surface"
)

// fuzzyOffsets are the sub-pixel displacements, in pixels, at which
// the reference is resampled. A result pixel passes when it is within
// tolerance of the reference at any of these positions.
var fuzzyOffsets = [][2]float64{
	{0, 0},
	{-0.5, 0}, {0.5, 0}, {0, -0.5}, {0, 0.5},
	{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5},
}

// fuzzyCompare accepts results whose geometry landed up to half a
// pixel away from the reference, by comparing each pixel against
// bilinearly shifted copies of the reference image.
func fuzzyCompare(reference, result *surface.Surface, tol Tolerance) *Result {
	w, h := reference.Width(), reference.Height()

	shifted := make([]*surface.Surface, 0, len(fuzzyOffsets))
	shifted = append(shifted, reference)
	for _, off := range fuzzyOffsets[1:] {
		shifted = append(shifted, shiftBilinear(reference, off[0], off[1]))
	}

	res := &Result{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := result.PixelAt(x, y)
			ok := false
			for _, ref := range shifted {
				if withinTolerance(ref.PixelAt(x, y), got, tol) {
					ok = true
					break
				}
			}
			if ok {
				continue
			}
			res.BadPixels++
			if res.Mask == nil {
				res.Mask = surface.New(w, h)
			}
			res.Mask.SetPixel(x, y, maskColor)
		}
	}
	return res
}

// shiftBilinear resamples src displaced by (dx, dy) pixels. The
// destination starts as a copy of src, so border pixels the displaced
// image does not cover keep their original value and never spuriously
// reject. Channel bytes are interpolated as-is, without alpha
// conversions, to keep the comparison byte-exact where the image is
// not shifted.
func shiftBilinear(src *surface.Surface, dx, dy float64) *surface.Surface {
	w, h := src.Width(), src.Height()

	srcImg := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(srcImg.Pix, src.Data())
	dstImg := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(dstImg.Pix, src.Data())

	m := f64.Aff3{
		1, 0, dx,
		0, 1, dy,
	}
	draw.BiLinear.Transform(dstImg, m, srcImg, srcImg.Bounds(), draw.Src, nil)

	out := surface.New(w, h)
	copy(out.Data(), dstImg.Pix)
	return out
}
