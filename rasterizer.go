package fontsdf

import (
	"image"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gogpu/fontsdf/text"
)

// Kind identifies the font format backing a Rasterizer.
type Kind uint8

const (
	// KindTrueType is a scalable TrueType or OpenType font.
	KindTrueType Kind = iota + 1

	// KindBMFont is an AngelCode BMFont text descriptor with one atlas image.
	KindBMFont
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTrueType:
		return "truetype"
	case KindBMFont:
		return "bmfont"
	default:
		return "unknown"
	}
}

// Blob is raw font data together with the name it was loaded under.
// The name locates files the font refers to, such as a BMFont atlas page.
type Blob struct {
	Name string
	Data []byte
}

// Rect is an axis-aligned box in pixels. The Y axis points up from the
// baseline.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// scaleRect converts a font-unit box to pixels.
func scaleRect(r text.Rect, scale float32) Rect {
	return Rect{
		MinX: float32(r.MinX) * scale,
		MinY: float32(r.MinY) * scale,
		MaxX: float32(r.MaxX) * scale,
		MaxY: float32(r.MaxY) * scale,
	}
}

// face is a font format backend. Every measurement it returns is in pixels.
type face interface {
	kind() Kind
	glyphCount() int
	hasGlyph(cp rune) bool
	isGlyphEmpty(cp rune) bool
	advance(cp rune) float32
	bearing(cp rune) float32
	kerning(left, right rune) float32
	boundingBox() Rect
	glyphBoundingBox(cp rune) Rect

	// outline returns the glyph outline in font units.
	outline(cp rune) (*text.GlyphOutline, error)

	close() error
}

// Rasterizer answers glyph queries for one font at one pixel size and turns
// glyph outlines into curves or distance fields.
//
// A Rasterizer is created with a reference count of one. Queries are safe
// for concurrent use while the count is positive; using a Rasterizer after
// the last Close panics.
type Rasterizer struct {
	refs atomic.Int32

	name    string
	size    float32
	scale   float32
	ascent  float32
	descent float32
	leading float32

	blob *Blob
	face face
}

// New loads a font from blob at the given pixel size.
//
// A nil blob selects the embedded fallback font. The data is tried as a
// TrueType font first, then as a BMFont text descriptor, whose atlas image
// is fetched through read. size is ignored for bitmap fonts, which carry
// their own size. New returns ErrNotRecognized when no format accepts the
// data.
func New(blob *Blob, size float32, read ReadFunc, opts ...Option) (*Rasterizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return create(probes, blob, size, read, &o)
}

// Retain increments the reference count. Each Retain must be balanced by a
// Close.
func (r *Rasterizer) Retain() {
	r.check()
	r.refs.Add(1)
}

// Close decrements the reference count and releases the font data and atlas
// when it reaches zero.
func (r *Rasterizer) Close() error {
	n := r.refs.Add(-1)
	if n < 0 {
		panic("fontsdf: Rasterizer closed more times than retained")
	}
	if n > 0 {
		return nil
	}
	err := r.face.close()
	r.blob = nil
	return err
}

// check panics if the Rasterizer has been released.
func (r *Rasterizer) check() {
	if r.refs.Load() <= 0 {
		panic("fontsdf: use of closed Rasterizer")
	}
}

// Kind returns the font format backing the Rasterizer.
func (r *Rasterizer) Kind() Kind {
	r.check()
	return r.face.kind()
}

// Name returns the font family name, or the face name of a bitmap font.
func (r *Rasterizer) Name() string {
	r.check()
	return r.name
}

// Blob returns the font data the Rasterizer was created from. It is nil
// for the embedded fallback font.
func (r *Rasterizer) Blob() *Blob {
	r.check()
	return r.blob
}

// FontSize returns the font size in pixels.
func (r *Rasterizer) FontSize() float32 {
	r.check()
	return r.size
}

// Scale returns the factor from font units to pixels. It is 1 for bitmap
// fonts.
func (r *Rasterizer) Scale() float32 {
	r.check()
	return r.scale
}

// GlyphCount returns the number of glyphs in the font.
func (r *Rasterizer) GlyphCount() int {
	r.check()
	return r.face.glyphCount()
}

// HasGlyph reports whether the font maps cp to a glyph.
func (r *Rasterizer) HasGlyph(cp rune) bool {
	r.check()
	return r.face.hasGlyph(cp)
}

// HasGlyphs reports whether every codepoint of the UTF-8 text in span has a
// glyph. Exactly len(span) bytes are decoded; an invalid or truncated
// sequence makes the result false.
func (r *Rasterizer) HasGlyphs(span []byte) bool {
	r.check()
	for len(span) > 0 {
		cp, n := utf8.DecodeRune(span)
		if cp == utf8.RuneError && n <= 1 {
			return false
		}
		if !r.face.hasGlyph(cp) {
			return false
		}
		span = span[n:]
	}
	return true
}

// HasGlyphsString is HasGlyphs for a string.
func (r *Rasterizer) HasGlyphsString(s string) bool {
	r.check()
	for len(s) > 0 {
		cp, n := utf8.DecodeRuneInString(s)
		if cp == utf8.RuneError && n <= 1 {
			return false
		}
		if !r.face.hasGlyph(cp) {
			return false
		}
		s = s[n:]
	}
	return true
}

// IsGlyphEmpty reports whether the glyph for cp has no ink, like a space.
func (r *Rasterizer) IsGlyphEmpty(cp rune) bool {
	r.check()
	return r.face.isGlyphEmpty(cp)
}

// Ascent returns the distance from the baseline to the top of the font.
func (r *Rasterizer) Ascent() float32 {
	r.check()
	return r.ascent
}

// Descent returns the distance from the baseline to the bottom of the font.
// Scalable fonts report it as a negative offset along the Y-up axis; bitmap
// fonts report lineHeight minus base.
func (r *Rasterizer) Descent() float32 {
	r.check()
	return r.descent
}

// Leading returns the baseline-to-baseline distance. For scalable fonts it
// includes the line gap.
func (r *Rasterizer) Leading() float32 {
	r.check()
	return r.leading
}

// Advance returns the horizontal advance of the glyph for cp.
func (r *Rasterizer) Advance(cp rune) float32 {
	r.check()
	return r.face.advance(cp)
}

// Bearing returns the left side bearing of the glyph for cp.
func (r *Rasterizer) Bearing(cp rune) float32 {
	r.check()
	return r.face.bearing(cp)
}

// Kerning returns the horizontal adjustment between left and right.
// Bitmap fonts always report 0.
func (r *Rasterizer) Kerning(left, right rune) float32 {
	r.check()
	return r.face.kerning(left, right)
}

// BoundingBox returns the box enclosing every glyph of the font.
func (r *Rasterizer) BoundingBox() Rect {
	r.check()
	return r.face.boundingBox()
}

// GlyphBoundingBox returns the ink box of the glyph for cp.
func (r *Rasterizer) GlyphBoundingBox(cp rune) Rect {
	r.check()
	return r.face.glyphBoundingBox(cp)
}

// Atlas returns the atlas image of a bitmap font, or nil for scalable fonts.
func (r *Rasterizer) Atlas() *Atlas {
	r.check()
	if f, ok := r.face.(*bitmapFace); ok {
		return f.atlas
	}
	return nil
}

// AtlasRegion returns where the glyph for cp lies in the atlas image.
// ok is false for scalable fonts and for codepoints the bitmap font lacks.
func (r *Rasterizer) AtlasRegion(cp rune) (region image.Rectangle, ok bool) {
	r.check()
	f, isBitmap := r.face.(*bitmapFace)
	if !isBitmap {
		return image.Rectangle{}, false
	}
	c, ok := f.chars[cp]
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(c.x, c.y, c.x+c.width, c.y+c.height), true
}
