// Package compare checks rendered pixel buffers against references
// under a per-channel tolerance, producing an error mask for
// diagnostics on failure.
package compare

import (
	"errors"
	"fmt"

	"github.com/gogpu/glcts/surface"
)

// ErrSizeMismatch is returned when reference and result dimensions
// differ. A size mismatch is a hard failure: no per-pixel comparison
// is attempted.
var ErrSizeMismatch = errors.New("compare: size mismatch")

// Tolerance is the per-channel maximum allowed absolute difference.
type Tolerance [4]uint8

// Exact is the zero tolerance: every channel must match bit-exactly.
var Exact = Tolerance{}

// Uniform returns a tolerance with the same threshold on all four
// channels.
func Uniform(t uint8) Tolerance {
	return Tolerance{t, t, t, t}
}

// Mode selects the comparison semantics.
type Mode int

const (
	// ModeExact compares each result pixel against the reference pixel
	// at the same position. Use it when geometry is required to land
	// on exact pixels.
	ModeExact Mode = iota

	// ModeFuzzy additionally accepts a result pixel that matches a
	// bilinear resampling of the reference within half a pixel of its
	// position. Use it when filtering or antialiasing may shift
	// results slightly.
	ModeFuzzy
)

// maskColor marks violating pixels in the error mask. Passing pixels
// stay zero, so an all-clean comparison yields an all-zero mask.
var maskColor = surface.RGBA{R: 255, A: 255}

// Result is the outcome of one comparison.
type Result struct {
	// BadPixels is the number of pixels outside tolerance.
	BadPixels int

	// Mask marks each violating pixel. Nil when the comparison passed.
	Mask *surface.Surface
}

// OK reports whether the comparison passed.
func (r *Result) OK() bool { return r.BadPixels == 0 }

func (r *Result) String() string {
	if r.OK() {
		return "pixels match"
	}
	return fmt.Sprintf("%d pixels outside tolerance", r.BadPixels)
}

// Compare checks result against reference in the given mode. It
// returns ErrSizeMismatch without touching any pixel when the
// dimensions differ.
func Compare(mode Mode, reference, result *surface.Surface, tol Tolerance) (*Result, error) {
	if reference.Width() != result.Width() || reference.Height() != result.Height() {
		return nil, fmt.Errorf("%w: reference %dx%d, result %dx%d", ErrSizeMismatch,
			reference.Width(), reference.Height(), result.Width(), result.Height())
	}
	switch mode {
	case ModeFuzzy:
		return fuzzyCompare(reference, result, tol), nil
	default:
		return exactCompare(reference, result, tol), nil
	}
}

// Pixels is shorthand for Compare in ModeExact.
func Pixels(reference, result *surface.Surface, tol Tolerance) (*Result, error) {
	return Compare(ModeExact, reference, result, tol)
}

// Fuzzy is shorthand for Compare in ModeFuzzy.
func Fuzzy(reference, result *surface.Surface, tol Tolerance) (*Result, error) {
	return Compare(ModeFuzzy, reference, result, tol)
}

func exactCompare(reference, result *surface.Surface, tol Tolerance) *Result {
	res := &Result{}
	w, h := reference.Width(), reference.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if withinTolerance(reference.PixelAt(x, y), result.PixelAt(x, y), tol) {
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

// withinTolerance reports whether every channel of got differs from
// want by at most the corresponding tolerance component.
func withinTolerance(want, got surface.RGBA, tol Tolerance) bool {
	return chanDiff(want.R, got.R) <= int(tol[0]) &&
		chanDiff(want.G, got.G) <= int(tol[1]) &&
		chanDiff(want.B, got.B) <= int(tol[2]) &&
		chanDiff(want.A, got.A) <= int(tol[3])
}

func chanDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
