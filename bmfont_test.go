package fontsdf

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

const bmfontSample = `info face="Test" size=-32 bold=0 italic=0 charset="" unicode=1 padding=0,0,0,0 spacing=1,1
common lineHeight=40 base=32 scaleW=64 scaleH=64 pages=1 packed=0
page id=0 file="atlas.png"
chars count=3
char id=65 x=0 y=0 width=20 height=24 xoffset=1 yoffset=8 xadvance=22 page=0 chnl=15
char id=103 x=20 y=0 width=16 height=22 xoffset=0 yoffset=14 xadvance=18 page=0 chnl=15
char id=32 x=0 y=0 width=0 height=0 xoffset=0 yoffset=0 xadvance=10 page=0 chnl=15
kernings count=1
kerning first=65 second=86 amount=-2
`

func TestBMFontMetrics(t *testing.T) {
	r := loadBitmap(t, bmfontSample)

	if got := r.Kind(); got != KindBMFont {
		t.Errorf("Kind() = %v, want bmfont", got)
	}
	if got := r.Name(); got != "Test" {
		t.Errorf("Name() = %q, want %q", got, "Test")
	}

	metrics := []struct {
		name      string
		got, want float32
	}{
		{"FontSize", r.FontSize(), 32},
		{"Scale", r.Scale(), 1},
		{"Leading", r.Leading(), 40},
		{"Ascent", r.Ascent(), 32},
		{"Descent", r.Descent(), 8},
		{"Advance('A')", r.Advance('A'), 22},
		{"Bearing('A')", r.Bearing('A'), 1},
		{"Advance(' ')", r.Advance(' '), 10},
		{"Advance('B')", r.Advance('B'), 0},
		{"Kerning('A', 'V')", r.Kerning('A', 'V'), 0},
	}
	for _, m := range metrics {
		if m.got != m.want {
			t.Errorf("%s = %v, want %v", m.name, m.got, m.want)
		}
	}

	if got := r.GlyphCount(); got != 3 {
		t.Errorf("GlyphCount() = %d, want 3", got)
	}
	if !r.HasGlyphsString("gA ") {
		t.Error("HasGlyphsString(\"gA \") = false, want true")
	}
	if r.HasGlyph('B') {
		t.Error("HasGlyph('B') = true, want false")
	}
	if !r.IsGlyphEmpty(' ') || r.IsGlyphEmpty('A') {
		t.Error("IsGlyphEmpty: want space empty and 'A' inked")
	}
}

func TestBMFontGlyphBoxes(t *testing.T) {
	r := loadBitmap(t, bmfontSample)

	tests := []struct {
		cp   rune
		want Rect
	}{
		// Top of 'A' sits yoffset below the line top, 24 above the baseline.
		{'A', Rect{MinX: 1, MinY: 0, MaxX: 21, MaxY: 24}},
		// 'g' descends 4 below the baseline.
		{'g', Rect{MinX: 0, MinY: -4, MaxX: 16, MaxY: 18}},
		{'B', Rect{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, r.GlyphBoundingBox(tt.cp)); diff != "" {
			t.Errorf("GlyphBoundingBox(%q) mismatch (-want +got):\n%s", tt.cp, diff)
		}
	}

	// The union ignores the empty space cell.
	want := Rect{MinX: 0, MinY: -4, MaxX: 21, MaxY: 24}
	if diff := cmp.Diff(want, r.BoundingBox()); diff != "" {
		t.Errorf("BoundingBox() mismatch (-want +got):\n%s", diff)
	}
}

func TestBMFontAtlas(t *testing.T) {
	r := loadBitmap(t, bmfontSample)

	atlas := r.Atlas()
	if atlas == nil {
		t.Fatal("Atlas() = nil")
	}
	if atlas.Width() != 64 || atlas.Height() != 64 {
		t.Errorf("atlas size = %dx%d, want 64x64", atlas.Width(), atlas.Height())
	}
	if got, want := atlas.Image().RGBAAt(3, 5), (color.RGBA{R: 3, G: 5, B: 0x80, A: 0xff}); got != want {
		t.Errorf("atlas pixel (3, 5) = %v, want %v", got, want)
	}

	regions := []struct {
		cp   rune
		want image.Rectangle
		ok   bool
	}{
		{'A', image.Rect(0, 0, 20, 24), true},
		{'g', image.Rect(20, 0, 36, 22), true},
		{'B', image.Rectangle{}, false},
	}
	for _, tt := range regions {
		got, ok := r.AtlasRegion(tt.cp)
		if ok != tt.ok || got != tt.want {
			t.Errorf("AtlasRegion(%q) = %v, %v; want %v, %v", tt.cp, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBMFontHasNoOutlines(t *testing.T) {
	r := loadBitmap(t, bmfontSample)

	if _, _, err := r.Curves('A'); !errors.Is(err, ErrNoOutlines) {
		t.Errorf("Curves() error = %v, want ErrNoOutlines", err)
	}
	if _, err := r.VisitCurves('A', func(int, []float32) {}); !errors.Is(err, ErrNoOutlines) {
		t.Errorf("VisitCurves() error = %v, want ErrNoOutlines", err)
	}
	dst := make([]float32, 8*8*4)
	if _, err := r.Pixels('A', dst, 8, 8, 4); !errors.Is(err, ErrNoOutlines) {
		t.Errorf("Pixels() error = %v, want ErrNoOutlines", err)
	}
	if _, _, err := r.PixelsImage('A', 4); !errors.Is(err, ErrNoOutlines) {
		t.Errorf("PixelsImage() error = %v, want ErrNoOutlines", err)
	}
}

func TestBMFontAtlasPathIsRelativeToDescriptor(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/test.fnt":  {Data: []byte(bmfontSample)},
		"fonts/atlas.png": {Data: testAtlasPNG(t, 64, 64)},
	}
	data, err := fs.ReadFile(fsys, "fonts/test.fnt")
	if err != nil {
		t.Fatal(err)
	}

	r, err := New(&Blob{Name: "fonts/test.fnt", Data: data}, 0, FSReader(fsys))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer r.Close()

	if r.Atlas() == nil {
		t.Error("Atlas() = nil")
	}
}

func TestBMFontLegacyCharset(t *testing.T) {
	desc := "info face=\"Caf\xe9\" size=16 charset=\"ANSI\" unicode=0\n" +
		"common lineHeight=20 base=16 pages=1 packed=0\n" +
		"page id=0 file=\"atlas.png\"\n" +
		"char id=128 x=0 y=0 width=8 height=12 xoffset=0 yoffset=4 xadvance=9\n" +
		"char id=233 x=8 y=0 width=8 height=12 xoffset=0 yoffset=4 xadvance=8\n"
	r := loadBitmap(t, desc)

	if got := r.Name(); got != "Café" {
		t.Errorf("Name() = %q, want %q", got, "Café")
	}
	for _, cp := range []rune{'€', 'é'} {
		if !r.HasGlyph(cp) {
			t.Errorf("HasGlyph(%q) = false, want true", cp)
		}
	}
	if r.HasGlyph(0x80) {
		t.Error("id 128 should decode through Windows-1252, not as U+0080")
	}
}

func TestBMFontIDsAreUnicodeByDefault(t *testing.T) {
	desc := bmfontDescriptor + "char id=128 x=0 y=0 width=8 height=8 xadvance=8\n"
	r := loadBitmap(t, desc)

	if !r.HasGlyph(0x80) {
		t.Error("HasGlyph(U+0080) = false, want true")
	}
}

func TestBMFontErrors(t *testing.T) {
	atlas := testAtlasPNG(t, 4, 4)
	files := map[string][]byte{"atlas.png": atlas, "broken.png": []byte("not an image")}

	const (
		info   = "info size=32\n"
		common = "common lineHeight=40 base=32 pages=1 packed=0\n"
		page   = "page id=0 file=\"atlas.png\"\n"
	)

	tests := []struct {
		name    string
		data    string
		read    ReadFunc
		wantErr error
	}{
		{"binary", "BMF\x03\x01\x00\x00\x00", mapReader(files), ErrUnsupported},
		{"two pages", info + "common lineHeight=40 base=32 pages=2 packed=0\n" + page, mapReader(files), ErrUnsupported},
		{"packed", info + "common lineHeight=40 base=32 pages=1 packed=1\n" + page, mapReader(files), ErrUnsupported},
		{"second page line", info + common + page + "page id=1 file=\"atlas.png\"\n", mapReader(files), ErrUnsupported},
		{"page without file", info + common + "page id=0\n", mapReader(files), ErrMalformed},
		{"no page", info + common, mapReader(files), ErrMalformed},
		{"unterminated quote", info + common + "page id=0 file=\"atlas.png\n", mapReader(files), ErrMalformed},
		{"path too long", info + common + "page id=0 file=\"" + strings.Repeat("a", maxPathLen) + ".png\"\n", mapReader(files), ErrMalformed},
		{"no reader", info + common + page, nil, ErrNoReader},
		{"missing atlas", info + common + "page id=0 file=\"gone.png\"\n", mapReader(files), fs.ErrNotExist},
		{"undecodable atlas", info + common + "page id=0 file=\"broken.png\"\n", mapReader(files), image.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(&Blob{Name: "font.fnt", Data: []byte(tt.data)}, 0, tt.read)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if r != nil {
				t.Error("New() returned a Rasterizer alongside an error")
			}
		})
	}
}

func TestBMFontErrorTypes(t *testing.T) {
	_, err := New(&Blob{Name: "font.fnt", Data: []byte("BMF\x03")}, 0, nil)
	var unsupported *UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *UnsupportedFeatureError", err)
	}
	if unsupported.Feature != "binary BMFont" {
		t.Errorf("Feature = %q, want %q", unsupported.Feature, "binary BMFont")
	}

	_, err = New(&Blob{Name: "font.fnt", Data: []byte("info size=1\ncommon pages=1\n")}, 0, nil)
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedInputError", err)
	}
	if malformed.Reason != "no atlas page" {
		t.Errorf("Reason = %q, want %q", malformed.Reason, "no atlas page")
	}
}

func TestBMFontCloseReleasesAtlas(t *testing.T) {
	read := mapReader(map[string][]byte{"atlas.png": testAtlasPNG(t, 4, 4)})
	r, err := New(&Blob{Name: "font.fnt", Data: []byte(bmfontDescriptor)}, 0, read)
	if err != nil {
		t.Fatal(err)
	}
	f := r.face.(*bitmapFace)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if f.atlas != nil || f.chars != nil {
		t.Error("Close() kept the atlas or glyph table alive")
	}
}
