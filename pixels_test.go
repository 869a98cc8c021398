package fontsdf

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// At 256px the period of Go Regular is the square (25, 0)-(57.125, 32.125).
// A spread of 4 pads it by 2 pixels, so pixel (x, y) samples the point
// (x+23.5, y-1.5).
const (
	squareSize   = 256
	squareSpread = 4
	squareExtent = 37
)

func TestPixelsImageSquare(t *testing.T) {
	r := loadFallback(t, squareSize)

	field, ok, err := r.PixelsImage('.', squareSpread)
	if err != nil || !ok {
		t.Fatalf("PixelsImage('.') = %v, %v", ok, err)
	}
	if field.Width != squareExtent || field.Height != squareExtent {
		t.Fatalf("field size = %dx%d, want %dx%d", field.Width, field.Height, squareExtent, squareExtent)
	}
	if field.Range != squareSpread {
		t.Errorf("field.Range = %v, want %v", field.Range, float64(squareSpread))
	}

	tests := []struct {
		name string
		x, y int
		want float64
	}{
		// 14.5 from the left and bottom edges.
		{"center", 16, 16, 0.5 + 14.5/4},
		{"below ink", 16, 0, 0.5 - 1.5/4},
		{"half below", 16, 1, 0.5 - 0.5/4},
		{"first ink row", 16, 2, 0.5 + 0.5/4},
		{"left padding", 0, 16, 0.5 - 1.5/4},
		{"right padding", 35, 16, 0.5 - (58.5-57.125)/4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, a := field.At(tt.x, tt.y)
			if !approxEqual(float64(a), tt.want, 1e-4) {
				t.Errorf("alpha at (%d, %d) = %v, want %v", tt.x, tt.y, a, tt.want)
			}
			inside := tt.want > 0.5
			if m := field.Median(tt.x, tt.y); (m > 0.5) != inside {
				t.Errorf("median at (%d, %d) = %v, want inside=%v", tt.x, tt.y, m, inside)
			}
		})
	}
}

func TestPixelsImageInkPlacement(t *testing.T) {
	r := loadFallback(t, squareSize)

	field, _, err := r.PixelsImage('.', squareSpread)
	if err != nil {
		t.Fatal(err)
	}
	// Padding rows and columns are outside, the row above them is inside.
	for x := 3; x < 33; x++ {
		for _, y := range []int{0, 1} {
			if _, _, _, a := field.At(x, y); a >= 0.5 {
				t.Fatalf("alpha at (%d, %d) = %v, want outside", x, y, a)
			}
		}
		if _, _, _, a := field.At(x, 2); a <= 0.5 {
			t.Fatalf("alpha at (%d, 2) = %v, want inside", x, a)
		}
	}
	for y := 3; y < 33; y++ {
		if _, _, _, a := field.At(1, y); a >= 0.5 {
			t.Fatalf("alpha at (1, %d) = %v, want outside", y, a)
		}
		if _, _, _, a := field.At(2, y); a <= 0.5 {
			t.Fatalf("alpha at (2, %d) = %v, want inside", y, a)
		}
	}
}

func TestPixelsMatchesPixelsImage(t *testing.T) {
	r := loadFallback(t, 48)

	for _, cp := range "Ag&" {
		field, ok, err := r.PixelsImage(cp, 6)
		if err != nil || !ok {
			t.Fatalf("PixelsImage(%q) = %v, %v", cp, ok, err)
		}

		dst := make([]float32, field.Width*field.Height*4)
		ok, err = r.Pixels(cp, dst, field.Width, field.Height, 6)
		if err != nil || !ok {
			t.Fatalf("Pixels(%q) = %v, %v", cp, ok, err)
		}
		if !slices.Equal(dst, field.Pixels) {
			t.Errorf("Pixels(%q) differs from PixelsImage", cp)
		}

		again, _, _ := r.PixelsImage(cp, 6)
		if !slices.Equal(again.Pixels, field.Pixels) {
			t.Errorf("PixelsImage(%q) is not deterministic", cp)
		}
	}
}

func TestPixelsImageOddSpread(t *testing.T) {
	r := loadFallback(t, squareSize)

	// ceil(3/2) pads by 2, the same as a spread of 4.
	field, _, err := r.PixelsImage('.', 3)
	if err != nil {
		t.Fatal(err)
	}
	if field.Width != squareExtent || field.Height != squareExtent {
		t.Errorf("field size = %dx%d, want %dx%d", field.Width, field.Height, squareExtent, squareExtent)
	}
	_, _, _, a := field.At(16, 16)
	if want := 0.5 + 14.5/3; !approxEqual(float64(a), want, 1e-4) {
		t.Errorf("center alpha = %v, want %v", a, want)
	}
}

func TestPixelsEmptyAndMissing(t *testing.T) {
	r := loadFallback(t, 32)

	dst := make([]float32, 8*8*4)
	for i := range dst {
		dst[i] = 7
	}
	for _, cp := range []rune{' ', 'Ȁ'} {
		ok, err := r.Pixels(cp, dst, 8, 8, 4)
		if ok || err != nil {
			t.Errorf("Pixels(%U) = %v, %v; want false, nil", cp, ok, err)
		}
		field, ok, err := r.PixelsImage(cp, 4)
		if ok || err != nil || field != nil {
			t.Errorf("PixelsImage(%U) = %v, %v, %v; want nil, false, nil", cp, field, ok, err)
		}
	}
	if slices.ContainsFunc(dst, func(v float32) bool { return v != 7 }) {
		t.Error("Pixels wrote to dst for a glyph without ink")
	}
}

func TestPixelsErrors(t *testing.T) {
	r := loadFallback(t, 32)

	if _, err := r.Pixels('A', make([]float32, 10), 8, 8, 4); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Pixels() with short buffer error = %v, want ErrBufferTooSmall", err)
	}

	for _, spread := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if _, err := r.Pixels('A', make([]float32, 8*8*4), 8, 8, spread); !errors.Is(err, ErrInvalidSpread) {
			t.Errorf("Pixels() spread %v error = %v, want ErrInvalidSpread", spread, err)
		}
		if _, _, err := r.PixelsImage('A', spread); !errors.Is(err, ErrInvalidSpread) {
			t.Errorf("PixelsImage() spread %v error = %v, want ErrInvalidSpread", spread, err)
		}
	}
}

func TestPixelsImageEncode(t *testing.T) {
	r := loadFallback(t, squareSize)

	field, _, err := r.PixelsImage('.', squareSpread)
	if err != nil {
		t.Fatal(err)
	}
	img := field.Encode()
	if diff := cmp.Diff([2]int{squareExtent, squareExtent}, [2]int{img.Rect.Dx(), img.Rect.Dy()}); diff != "" {
		t.Errorf("encoded size mismatch (-want +got):\n%s", diff)
	}
	// Row 0 of the image is the top of the field, which is padding.
	if a := img.NRGBAAt(16, 0).A; a >= 128 {
		t.Errorf("encoded top padding alpha = %d, want outside", a)
	}
	if a := img.NRGBAAt(16, 18).A; a != 255 {
		t.Errorf("encoded center alpha = %d, want 255", a)
	}
}
