package msdf

import (
	"errors"
	"testing"

	"github.com/gogpu/fontsdf/text"
	"github.com/google/go-cmp/cmp"
)

// squareOutline returns a closed counter-clockwise square of side n.
func squareOutline(n float32) *text.GlyphOutline {
	return &text.GlyphOutline{
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: n, Y: 0}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: n, Y: n}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 0, Y: n}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
		},
	}
}

func TestGenerateEmpty(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	for _, outline := range []*text.GlyphOutline{nil, {}} {
		msdf, err := gen.Generate(outline)
		if err != nil {
			t.Fatalf("Generate(%v) error: %v", outline, err)
		}
		if msdf.Width != 32 || msdf.Height != 32 {
			t.Errorf("Generate(%v) size = %dx%d, want 32x32", outline, msdf.Width, msdf.Height)
		}
		for i, v := range msdf.Data {
			if v != 0 {
				t.Fatalf("byte %d = %d, want 0 for an empty glyph", i, v)
			}
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	gen := NewGenerator(Config{Size: 4})

	var cfgErr *ConfigError
	if _, err := gen.Generate(squareOutline(10)); !errors.As(err, &cfgErr) {
		t.Errorf("Generate() error = %v, want *ConfigError", err)
	}
}

func TestGenerateSquareInsideOutside(t *testing.T) {
	msdf, err := NewGenerator(DefaultConfig()).Generate(squareOutline(100))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if med := median3Byte(msdf.GetPixel(16, 16)); med <= 128 {
		t.Errorf("center median = %d, want inside (> 128)", med)
	}
	if med := median3Byte(msdf.GetPixel(0, 0)); med >= 128 {
		t.Errorf("corner median = %d, want outside (< 128)", med)
	}
}

func TestGenerateClockwiseOutline(t *testing.T) {
	// The same square wound clockwise must produce the same field.
	ccw := squareOutline(50)
	cw := &text.GlyphOutline{
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 0, Y: 50}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 50, Y: 50}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 50, Y: 0}}},
		},
	}

	gen := NewGenerator(DefaultConfig())
	a, err := gen.Generate(ccw)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Generate(cw)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			ma := median3Byte(a.GetPixel(x, y))
			mb := median3Byte(b.GetPixel(x, y))
			if (ma > 128) != (mb > 128) {
				t.Fatalf("pixel (%d, %d): inside differs by winding (%d vs %d)", x, y, ma, mb)
			}
		}
	}
}

func TestGenerateWithMetrics(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	msdf, metrics, err := gen.GenerateWithMetrics(squareOutline(50))
	if err != nil {
		t.Fatalf("GenerateWithMetrics error: %v", err)
	}
	want := &Metrics{
		Width:       32,
		Height:      32,
		Scale:       msdf.Scale,
		Bounds:      Rect{MaxX: 50, MaxY: 50},
		NumContours: 1,
		NumEdges:    4,
	}
	if diff := cmp.Diff(want, metrics); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}

	// The field matches a plain Generate of the same outline.
	plain, err := gen.Generate(squareOutline(50))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plain.Data, msdf.Data); diff != "" {
		t.Errorf("field differs from Generate (-generate +metrics):\n%s", diff)
	}

	_, metrics, err = gen.GenerateWithMetrics(nil)
	if err != nil {
		t.Fatalf("GenerateWithMetrics(nil) error: %v", err)
	}
	if metrics.NumContours != 0 || metrics.NumEdges != 0 || metrics.Width != 32 {
		t.Errorf("empty outline metrics = %+v", metrics)
	}
}

func TestMedianFilter(t *testing.T) {
	msdf := &MSDF{
		Data:   make([]byte, 9*9*3),
		Width:  9,
		Height: 9,
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			msdf.SetPixel(x, y, byte(x*10), byte(y*10), byte((x+y)*5))
		}
	}
	msdf.SetPixel(4, 4, 255, 0, 0)

	filtered := MedianFilter(msdf)
	if r, _, _ := filtered.GetPixel(4, 4); r == 255 {
		t.Error("median filter kept the outlier")
	}
	if MedianFilter(nil) != nil {
		t.Error("MedianFilter(nil) should return nil")
	}
}

func TestErrorCorrection(t *testing.T) {
	msdf := &MSDF{
		Data:   make([]byte, 4*4*3),
		Width:  4,
		Height: 4,
	}
	msdf.SetPixel(1, 1, 255, 128, 128)
	msdf.SetPixel(2, 2, 140, 128, 120)

	ErrorCorrection(msdf, 0.3)

	// Only the channel further than 0.3*255 from the median moves, and it
	// stops at that distance.
	if r, g, b := msdf.GetPixel(1, 1); r != 204 || g != 128 || b != 128 {
		t.Errorf("outlier corrected to (%d, %d, %d), want (204, 128, 128)", r, g, b)
	}
	if r, g, b := msdf.GetPixel(2, 2); r != 140 || g != 128 || b != 120 {
		t.Errorf("in-range pixel changed to (%d, %d, %d)", r, g, b)
	}

	ErrorCorrection(nil, 0.3)
}

func TestDistanceToPixel(t *testing.T) {
	tests := []struct {
		normalized float32
		want       byte
	}{
		{0.5, 128},
		{0, 0},
		{1, 255},
		{-3, 0},
		{4, 255},
		{0.25, 64},
	}

	for _, tt := range tests {
		if got := distanceToPixel(tt.normalized); got != tt.want {
			t.Errorf("distanceToPixel(%v) = %d, want %d", tt.normalized, got, tt.want)
		}
	}
}

func TestCalculateScale(t *testing.T) {
	tests := []struct {
		bounds Rect
		want   float64
	}{
		{Rect{0, 0, 100, 100}, 0.24},
		{Rect{0, 0, 48, 12}, 0.5},
		{Rect{0, 0, 0, 24}, 1},
		{Rect{}, 1},
	}

	for _, tt := range tests {
		if got := calculateScale(tt.bounds, 32, 4); got != tt.want {
			t.Errorf("calculateScale(%v, 32, 4) = %v, want %v", tt.bounds, got, tt.want)
		}
	}
}

func TestMedians(t *testing.T) {
	nines := []struct {
		vals [9]byte
		want byte
	}{
		{[9]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, 5},
		{[9]byte{9, 8, 7, 6, 5, 4, 3, 2, 1}, 5},
		{[9]byte{0, 0, 0, 0, 255, 255, 255, 255, 255}, 255},
		{[9]byte{0, 0, 0, 0, 0, 255, 255, 255, 255}, 0},
	}
	for _, tt := range nines {
		if got := median9(tt.vals); got != tt.want {
			t.Errorf("median9(%v) = %d, want %d", tt.vals, got, tt.want)
		}
	}

	threes := [][4]byte{{1, 2, 3, 2}, {3, 2, 1, 2}, {2, 1, 3, 2}, {0, 128, 255, 128}}
	for _, tt := range threes {
		if got := median3Byte(tt[0], tt[1], tt[2]); got != tt[3] {
			t.Errorf("median3Byte(%d, %d, %d) = %d, want %d", tt[0], tt[1], tt[2], got, tt[3])
		}
	}
}

func BenchmarkGenerateSquare(b *testing.B) {
	gen := NewGenerator(DefaultConfig())
	outline := squareOutline(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gen.Generate(outline)
	}
}
