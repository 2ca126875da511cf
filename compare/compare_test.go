package compare

import (
	"errors"
	"testing"

	"github.com/gogpu/glcts/surface"
)

func solid(w, h int, c surface.RGBA) *surface.Surface {
	s := surface.New(w, h)
	s.Clear(c)
	return s
}

func TestPixelsIdenticalSurfaces(t *testing.T) {
	ref := solid(8, 8, surface.RGBA{R: 51, G: 179, B: 26, A: 255})
	res, err := Pixels(ref, ref.Clone(), Exact)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if !res.OK() {
		t.Errorf("identical surfaces: %v", res)
	}
	if res.Mask != nil {
		t.Error("passing comparison produced a mask")
	}
}

func TestPixelsSizeMismatch(t *testing.T) {
	a := surface.New(8, 8)
	b := surface.New(8, 9)
	_, err := Pixels(a, b, Uniform(255))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Pixels() error = %v, want ErrSizeMismatch", err)
	}
}

func TestPixelsToleranceBoundary(t *testing.T) {
	base := surface.RGBA{R: 100, G: 100, B: 100, A: 255}
	ref := solid(4, 4, base)

	// One pixel differs by exactly 7 in one channel.
	within := ref.Clone()
	within.SetPixel(2, 1, surface.RGBA{R: 107, G: 100, B: 100, A: 255})
	res, err := Pixels(ref, within, Uniform(7))
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if !res.OK() {
		t.Errorf("difference of exactly the tolerance failed: %v", res)
	}

	// The same pixel pushed one past the tolerance.
	outside := ref.Clone()
	outside.SetPixel(2, 1, surface.RGBA{R: 108, G: 100, B: 100, A: 255})
	res, err = Pixels(ref, outside, Uniform(7))
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if res.BadPixels != 1 {
		t.Fatalf("BadPixels = %d, want 1", res.BadPixels)
	}
	if res.Mask == nil {
		t.Fatal("failing comparison produced no mask")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			marked := res.Mask.PixelAt(x, y) != (surface.RGBA{})
			if marked != (x == 2 && y == 1) {
				t.Errorf("mask at (%d,%d): marked=%v", x, y, marked)
			}
		}
	}
}

func TestPixelsPerChannelTolerance(t *testing.T) {
	ref := solid(2, 2, surface.RGBA{R: 50, G: 50, B: 50, A: 255})
	got := solid(2, 2, surface.RGBA{R: 55, G: 50, B: 50, A: 255})

	// Tolerance is per channel: slack on green does not excuse red.
	res, err := Pixels(ref, got, Tolerance{0, 10, 10, 10})
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if res.OK() {
		t.Error("red difference passed under a zero red tolerance")
	}

	res, err = Pixels(ref, got, Tolerance{5, 0, 0, 0})
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if !res.OK() {
		t.Errorf("difference within the red tolerance failed: %v", res)
	}
}

func TestFuzzyAcceptsAntialiasedEdge(t *testing.T) {
	// The result renders a block edge half a pixel off, which shows up
	// as a 50/50 blended column. Exact comparison rejects the column;
	// fuzzy accepts it because the half-pixel-shifted reference
	// resamples to the same blend.
	dark := surface.RGBA{R: 0, G: 0, B: 0, A: 255}
	light := surface.RGBA{R: 200, G: 200, B: 200, A: 255}
	blend := surface.RGBA{R: 100, G: 100, B: 100, A: 255}

	ref := solid(16, 16, dark)
	ref.FillRect(0, 0, 8, 16, light)
	got := ref.Clone()
	got.FillRect(8, 0, 1, 16, blend)

	exact, err := Pixels(ref, got, Uniform(0))
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if exact.OK() {
		t.Fatal("blended edge passed the exact comparison; the fixture is wrong")
	}

	fuzzy, err := Fuzzy(ref, got, Uniform(1))
	if err != nil {
		t.Fatalf("Fuzzy() error = %v", err)
	}
	if !fuzzy.OK() {
		t.Errorf("half-pixel edge blend rejected by fuzzy mode: %v", fuzzy)
	}
}

func TestFuzzyStillRejectsWrongColors(t *testing.T) {
	ref := solid(8, 8, surface.RGBA{R: 10, G: 10, B: 10, A: 255})
	got := solid(8, 8, surface.RGBA{R: 240, G: 10, B: 10, A: 255})

	res, err := Fuzzy(ref, got, Uniform(4))
	if err != nil {
		t.Fatalf("Fuzzy() error = %v", err)
	}
	if res.OK() {
		t.Error("fuzzy mode accepted a uniformly wrong color")
	}
	if res.BadPixels != 8*8 {
		t.Errorf("BadPixels = %d, want every pixel", res.BadPixels)
	}
}

func TestCompareModeDispatch(t *testing.T) {
	ref := solid(4, 4, surface.RGBA{A: 255})
	res, err := Compare(ModeExact, ref, ref.Clone(), Exact)
	if err != nil || !res.OK() {
		t.Errorf("ModeExact on identical surfaces: res=%v err=%v", res, err)
	}
	res, err = Compare(ModeFuzzy, ref, ref.Clone(), Exact)
	if err != nil || !res.OK() {
		t.Errorf("ModeFuzzy on identical surfaces: res=%v err=%v", res, err)
	}
}
