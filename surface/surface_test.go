package surface

import (
	"path/filepath"
	"testing"
)

func TestFromFloats(t *testing.T) {
	tests := []struct {
		r, g, b, a float64
		want       RGBA
	}{
		{0, 0, 0, 0, RGBA{}},
		{1, 1, 1, 1, RGBA{255, 255, 255, 255}},
		{0.2, 0.7, 0.1, 0.8, RGBA{51, 179, 26, 204}},
		{-0.5, 1.5, 0.5, 1, RGBA{0, 255, 128, 255}},
	}
	for _, tt := range tests {
		if got := FromFloats(tt.r, tt.g, tt.b, tt.a); got != tt.want {
			t.Errorf("FromFloats(%v, %v, %v, %v) = %v, want %v",
				tt.r, tt.g, tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNewIsTransparentBlack(t *testing.T) {
	s := New(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := s.PixelAt(x, y); got != (RGBA{}) {
				t.Fatalf("pixel (%d,%d) = %v, want transparent black", x, y, got)
			}
		}
	}
}

func TestFromBytesLengthCheck(t *testing.T) {
	if _, err := FromBytes(4, 4, make([]uint8, 4*4*4)); err != nil {
		t.Errorf("exact-length data rejected: %v", err)
	}
	if _, err := FromBytes(4, 4, make([]uint8, 10)); err == nil {
		t.Error("short data accepted")
	}
	if _, err := FromBytes(4, 4, make([]uint8, 4*4*4+1)); err == nil {
		t.Error("oversized data accepted")
	}
}

func TestSetPixelPixelAtRoundTrip(t *testing.T) {
	s := New(8, 8)
	want := RGBA{R: 12, G: 34, B: 56, A: 78}
	s.SetPixel(3, 5, want)
	if got := s.PixelAt(3, 5); got != want {
		t.Errorf("PixelAt(3,5) = %v, want %v", got, want)
	}
}

func TestSetPixelOutOfRangeIgnored(t *testing.T) {
	s := New(2, 2)
	s.SetPixel(-1, 0, RGBA{R: 255})
	s.SetPixel(2, 0, RGBA{R: 255})
	s.SetPixel(0, 2, RGBA{R: 255})
	for _, b := range s.Data() {
		if b != 0 {
			t.Fatal("out-of-range SetPixel modified the surface")
		}
	}
	if got := s.PixelAt(5, 5); got != (RGBA{}) {
		t.Errorf("out-of-range PixelAt = %v, want transparent black", got)
	}
}

func TestFillRectClips(t *testing.T) {
	s := New(4, 4)
	c := RGBA{R: 9, G: 8, B: 7, A: 255}
	s.FillRect(2, 2, 10, 10, c)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 2 && y >= 2
			got := s.PixelAt(x, y)
			if inside && got != c {
				t.Errorf("pixel (%d,%d) = %v, want fill color", x, y, got)
			}
			if !inside && got != (RGBA{}) {
				t.Errorf("pixel (%d,%d) = %v, want untouched", x, y, got)
			}
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := New(2, 2)
	s.SetPixel(0, 0, RGBA{R: 100, A: 255})
	c := s.Clone()
	c.SetPixel(0, 0, RGBA{G: 200, A: 255})
	if got := s.PixelAt(0, 0); got != (RGBA{R: 100, A: 255}) {
		t.Errorf("mutating the clone changed the original: %v", got)
	}
}

func TestImageRoundTrip(t *testing.T) {
	s := New(3, 2)
	s.SetPixel(0, 0, RGBA{R: 10, G: 20, B: 30, A: 255})
	s.SetPixel(2, 1, RGBA{R: 200, G: 100, B: 50, A: 255})

	back := FromImage(s.ToImage())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.PixelAt(x, y) != s.PixelAt(x, y) {
				t.Errorf("pixel (%d,%d) changed through image round trip", x, y)
			}
		}
	}
}

func TestPNGRoundTrip(t *testing.T) {
	s := New(5, 4)
	s.SetPixel(1, 1, RGBA{R: 255, G: 0, B: 0, A: 255})
	s.SetPixel(3, 2, RGBA{R: 0, G: 128, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	got, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG() error = %v", err)
	}
	if got.Width() != 5 || got.Height() != 4 {
		t.Fatalf("loaded size = %dx%d, want 5x4", got.Width(), got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if got.PixelAt(x, y) != s.PixelAt(x, y) {
				t.Errorf("pixel (%d,%d) changed through PNG round trip", x, y)
			}
		}
	}
}
