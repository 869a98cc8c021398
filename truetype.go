package fontsdf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/fontsdf/internal/cache"
	"github.com/gogpu/fontsdf/text"
)

// outlineFace serves a scalable font through text.FontSource.
type outlineFace struct {
	source    *text.FontSource
	font      text.ParsedFont
	extractor *text.OutlineExtractor
	scale     float32
	log       *slog.Logger

	// outlines holds font-unit outlines by glyph. Entries are shared and
	// must not be modified.
	outlines *cache.LRU[text.GlyphID, *text.GlyphOutline]
}

// probeTrueType accepts any data the configured text.FontParser can parse.
// A nil blob loads the embedded fallback font. Data that carries an sfnt
// signature but fails to parse is not recognized, like any other foreign data.
func probeTrueType(blob *Blob, size float32, _ ReadFunc, o *options) (*Rasterizer, bool, error) {
	var (
		source *text.FontSource
		err    error
	)
	if blob == nil {
		source, err = text.NewFallbackFontSource(o.sourceOptions()...)
	} else {
		source, err = text.NewFontSource(blob.Data, o.sourceOptions()...)
	}
	if err != nil {
		if !errors.Is(err, text.ErrNotSFNT) && !errors.Is(err, text.ErrEmptyFontData) {
			o.log().Debug("sfnt data failed to parse", "err", err)
		}
		return nil, false, nil
	}

	if !(size > 0) || math.IsInf(float64(size), 1) {
		_ = source.Close()
		return nil, true, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	font := source.Parsed()
	upem := font.UnitsPerEm()
	if upem <= 0 {
		_ = source.Close()
		return nil, true, &MalformedInputError{Reason: fmt.Sprintf("unitsPerEm is %d", upem)}
	}

	scale := size / float32(upem)
	m := font.VMetrics()
	r := &Rasterizer{
		name:    source.Name(),
		size:    size,
		scale:   scale,
		ascent:  float32(m.Ascent) * scale,
		descent: float32(m.Descent) * scale,
		// The line gap is folded into the leading; fonts almost always set
		// it to zero.
		leading: float32(m.Height()) * scale,
		blob:    blob,
		face: &outlineFace{
			source:    source,
			font:      font,
			extractor: text.NewOutlineExtractor(),
			scale:     scale,
			log:       o.log(),
			outlines:  cache.New[text.GlyphID, *text.GlyphOutline](o.outlineCache),
		},
	}
	return r, true, nil
}

func (f *outlineFace) kind() Kind { return KindTrueType }

func (f *outlineFace) glyphCount() int {
	return f.font.NumGlyphs()
}

func (f *outlineFace) hasGlyph(cp rune) bool {
	return f.font.GlyphIndex(cp) != 0
}

func (f *outlineFace) isGlyphEmpty(cp rune) bool {
	segments, err := f.font.Segments(f.font.GlyphIndex(cp))
	return err != nil || len(segments) == 0
}

// Unmapped codepoints measure as the .notdef glyph.
func (f *outlineFace) advance(cp rune) float32 {
	advance, _ := f.font.HMetrics(f.font.GlyphIndex(cp))
	return float32(advance) * f.scale
}

func (f *outlineFace) bearing(cp rune) float32 {
	_, lsb := f.font.HMetrics(f.font.GlyphIndex(cp))
	return float32(lsb) * f.scale
}

func (f *outlineFace) kerning(left, right rune) float32 {
	return float32(f.source.Kerning(left, right)) * f.scale
}

func (f *outlineFace) boundingBox() Rect {
	return scaleRect(f.font.Bounds(), f.scale)
}

func (f *outlineFace) glyphBoundingBox(cp rune) Rect {
	return scaleRect(f.font.GlyphBounds(f.font.GlyphIndex(cp)), f.scale)
}

func (f *outlineFace) outline(cp rune) (*text.GlyphOutline, error) {
	gid := f.font.GlyphIndex(cp)
	if gid == 0 {
		return nil, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, cp)
	}
	if outline, ok := f.outlines.Get(gid); ok {
		return outline, nil
	}
	outline, err := f.extractor.ExtractOutline(f.font, gid)
	if err != nil {
		return nil, err
	}
	f.outlines.Add(gid, outline)
	return outline, nil
}

func (f *outlineFace) close() error {
	st := f.outlines.Stats()
	f.log.Debug("outline cache released",
		"entries", st.Len,
		"hits", st.Hits,
		"misses", st.Misses,
		"evictions", st.Evictions,
		"hit_rate", st.HitRate())
	f.outlines.Clear()
	return f.source.Close()
}
