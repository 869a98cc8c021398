package fontsdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"testing"
)

// bmfontDescriptor is the smallest descriptor New accepts.
const bmfontDescriptor = "info size=32\n" +
	"common lineHeight=40 base=32 pages=1 packed=0\n" +
	"page id=0 file=\"atlas.png\"\n"

// testAtlasPNG returns a w x h PNG with a distinct color per pixel.
func testAtlasPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// mapReader serves files from memory.
func mapReader(files map[string][]byte) ReadFunc {
	return func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return data, nil
	}
}

// loadFallback loads the embedded font and closes it at test end.
func loadFallback(t *testing.T, size float32, opts ...Option) *Rasterizer {
	t.Helper()
	r, err := New(nil, size, nil, opts...)
	if err != nil {
		t.Fatalf("New(nil, %v): %v", size, err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// loadBitmap loads a BMFont descriptor backed by a 64x64 PNG atlas.
func loadBitmap(t *testing.T, descriptor string) *Rasterizer {
	t.Helper()
	read := mapReader(map[string][]byte{"atlas.png": testAtlasPNG(t, 64, 64)})
	r, err := New(&Blob{Name: "font.fnt", Data: []byte(descriptor)}, 0, read)
	if err != nil {
		t.Fatalf("New(bmfont): %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
