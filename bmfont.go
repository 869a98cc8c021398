package fontsdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/fontsdf/internal/bmfont"
	"github.com/gogpu/fontsdf/text"
)

var (
	bmfontTextMagic   = []byte("info")
	bmfontBinaryMagic = []byte{'B', 'M', 'F', 3}
)

// maxPathLen bounds the resolved atlas path, terminator included.
const maxPathLen = 1024

// bitmapChar is a glyph placed in the atlas image.
type bitmapChar struct {
	x, y, width, height int
	xoffset, yoffset    int
	xadvance            int
}

// bitmapFace serves a BMFont descriptor and its single atlas page.
type bitmapFace struct {
	atlas *Atlas
	chars map[rune]bitmapChar

	// base is the distance from the top of a line to the baseline.
	base   float32
	bounds Rect
}

// probeBMFont accepts AngelCode BMFont text descriptors. The binary variant
// is recognized and rejected.
func probeBMFont(blob *Blob, _ float32, read ReadFunc, o *options) (*Rasterizer, bool, error) {
	if blob == nil || len(blob.Data) < 4 {
		return nil, false, nil
	}
	switch {
	case bytes.HasPrefix(blob.Data, bmfontBinaryMagic):
		return nil, true, &UnsupportedFeatureError{Feature: "binary BMFont"}
	case !bytes.HasPrefix(blob.Data, bmfontTextMagic):
		return nil, false, nil
	}

	r, err := loadBMFont(blob, read, o.log())
	if err != nil {
		return nil, true, err
	}
	return r, true, nil
}

// loadBMFont parses a text descriptor and loads its atlas page.
func loadBMFont(blob *Blob, read ReadFunc, log *slog.Logger) (*Rasterizer, error) {
	r := &Rasterizer{scale: 1, blob: blob}
	f := &bitmapFace{chars: make(map[rune]bitmapChar)}

	var (
		cs      *charmap.Charmap
		kerning int
	)

	sc := bmfont.NewScanner(blob.Data)
	for sc.Scan() {
		switch sc.Tag() {
		case "info":
			// Negative sizes ask BMFont to match character height
			// rather than cell height.
			r.size = float32(abs(sc.Number("size")))
			if _, ok := sc.String("unicode"); ok && sc.Number("unicode") == 0 {
				name, _ := sc.String("charset")
				if cs = bmfont.Charset(name); cs == nil {
					log.Debug("unknown BMFont charset, reading ids as Unicode", "charset", name)
				}
			}
			name, _ := sc.String("face")
			r.name = bmfont.DecodeString(cs, name)

		case "common":
			if n := sc.Number("pages"); n != 1 {
				return nil, &UnsupportedFeatureError{Feature: fmt.Sprintf("%d atlas pages", n)}
			}
			if sc.Number("packed") != 0 {
				return nil, &UnsupportedFeatureError{Feature: "packed atlas"}
			}
			r.leading = float32(sc.Number("lineHeight"))
			r.ascent = float32(sc.Number("base"))
			// The format has no descent; whatever the line holds below
			// the baseline stands in for it.
			r.descent = r.leading - r.ascent

		case "page":
			if f.atlas != nil {
				return nil, &UnsupportedFeatureError{Feature: "multiple atlas pages"}
			}
			file, _ := sc.String("file")
			if file == "" {
				return nil, &MalformedInputError{Reason: "missing atlas image path"}
			}
			atlas, err := loadAtlas(blob.Name, bmfont.DecodeString(cs, file), read)
			if err != nil {
				return nil, err
			}
			f.atlas = atlas

		case "char":
			cp := bmfont.DecodeRune(cs, sc.Number("id"))
			f.chars[cp] = bitmapChar{
				x:        sc.Number("x"),
				y:        sc.Number("y"),
				width:    sc.Number("width"),
				height:   sc.Number("height"),
				xoffset:  sc.Number("xoffset"),
				yoffset:  sc.Number("yoffset"),
				xadvance: sc.Number("xadvance"),
			}

		case "kerning":
			kerning++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &MalformedInputError{Reason: err.Error()}
	}
	if f.atlas == nil {
		return nil, &MalformedInputError{Reason: "no atlas page"}
	}
	if kerning > 0 {
		log.Debug("BMFont kerning pairs ignored", "count", kerning)
	}

	f.base = r.ascent
	f.bounds = f.unionBounds()
	r.face = f
	return r, nil
}

// loadAtlas resolves file next to the descriptor called name, reads it
// and decodes it.
func loadAtlas(name, file string, read ReadFunc) (*Atlas, error) {
	path, err := atlasPath(name, file)
	if err != nil {
		return nil, err
	}
	if read == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoReader, path)
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("fontsdf: read atlas %q: %w", path, err)
	}
	atlas, err := decodeAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("fontsdf: decode atlas %q: %w", path, err)
	}
	return atlas, nil
}

// atlasPath replaces the last element of the descriptor name with file.
func atlasPath(name, file string) (string, error) {
	dir := name[:strings.LastIndexByte(name, '/')+1]
	if len(dir)+len(file) >= maxPathLen {
		return "", &MalformedInputError{Reason: "filename too long"}
	}
	return dir + file, nil
}

func (f *bitmapFace) kind() Kind { return KindBMFont }

func (f *bitmapFace) glyphCount() int {
	return len(f.chars)
}

func (f *bitmapFace) hasGlyph(cp rune) bool {
	_, ok := f.chars[cp]
	return ok
}

func (f *bitmapFace) isGlyphEmpty(cp rune) bool {
	c := f.chars[cp]
	return c.width == 0 || c.height == 0
}

func (f *bitmapFace) advance(cp rune) float32 {
	return float32(f.chars[cp].xadvance)
}

func (f *bitmapFace) bearing(cp rune) float32 {
	return float32(f.chars[cp].xoffset)
}

func (f *bitmapFace) kerning(rune, rune) float32 {
	return 0
}

func (f *bitmapFace) boundingBox() Rect {
	return f.bounds
}

// glyphBoundingBox converts the char cell, placed yoffset below the top
// of the line, to the Y-up baseline frame.
func (f *bitmapFace) glyphBoundingBox(cp rune) Rect {
	c, ok := f.chars[cp]
	if !ok {
		return Rect{}
	}
	top := f.base - float32(c.yoffset)
	return Rect{
		MinX: float32(c.xoffset),
		MinY: top - float32(c.height),
		MaxX: float32(c.xoffset + c.width),
		MaxY: top,
	}
}

func (f *bitmapFace) unionBounds() Rect {
	var (
		u     Rect
		first = true
	)
	for cp, c := range f.chars {
		if c.width == 0 || c.height == 0 {
			continue
		}
		b := f.glyphBoundingBox(cp)
		if first {
			u, first = b, false
			continue
		}
		u.MinX = min(u.MinX, b.MinX)
		u.MinY = min(u.MinY, b.MinY)
		u.MaxX = max(u.MaxX, b.MaxX)
		u.MaxY = max(u.MaxY, b.MaxY)
	}
	return u
}

func (f *bitmapFace) outline(rune) (*text.GlyphOutline, error) {
	return nil, ErrNoOutlines
}

func (f *bitmapFace) close() error {
	f.atlas = nil
	f.chars = nil
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
