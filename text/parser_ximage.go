package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntTags lists the container signatures accepted as scalable fonts:
// TrueType (0x00010000 and "true"), PostScript outlines ("OTTO"), legacy
// Type 1 wrappers ("typ1") and font collections ("ttcf").
var sfntTags = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
	[]byte("OTTO"),
	[]byte("typ1"),
	[]byte("ttcf"),
}

// IsSFNT reports whether data starts with a known scalable font signature.
func IsSFNT(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, tag := range sfntTags {
		if bytes.Equal(data[:4], tag) {
			return true
		}
	}
	return false
}

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
// Font collections resolve to their first font.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	if !IsSFNT(data) {
		return nil, ErrNotSFNT
	}

	var (
		f   *sfnt.Font
		err error
	)
	if bytes.HasPrefix(data, []byte("ttcf")) {
		var c *sfnt.Collection
		c, err = sfnt.ParseCollection(data)
		if err == nil {
			f, err = c.Font(0)
		}
	} else {
		f, err = sfnt.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &ximageParsedFont{
		font: f,
		// A ppem equal to unitsPerEm, read as a 26.6 value, makes every
		// scaled quantity sfnt returns equal to the raw font-unit value.
		ppem: fixed.Int26_6(f.UnitsPerEm()),
		hmtx: loadHmtx(data),
	}, nil
}

// loadHmtx reads the horizontal metrics of the first font in data, which
// sfnt does not expose. It returns an empty table when any of hhea, hmtx
// or maxp is missing or malformed.
func loadHmtx(data []byte) tables.Hmtx {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil || len(loaders) == 0 {
		return tables.Hmtx{}
	}
	ld := loaders[0]

	raw, err := ld.RawTable(ot.MustNewTag("maxp"))
	if err != nil {
		return tables.Hmtx{}
	}
	maxp, _, err := tables.ParseMaxp(raw)
	if err != nil {
		return tables.Hmtx{}
	}
	if raw, err = ld.RawTable(ot.MustNewTag("hhea")); err != nil {
		return tables.Hmtx{}
	}
	hhea, _, err := tables.ParseHhea(raw)
	if err != nil {
		return tables.Hmtx{}
	}
	if raw, err = ld.RawTable(ot.MustNewTag("hmtx")); err != nil {
		return tables.Hmtx{}
	}

	long := int(hhea.NumOfLongMetrics)
	hmtx, _, err := tables.ParseHmtx(raw, long, max(int(maxp.NumGlyphs)-long, 0))
	if err != nil {
		return tables.Hmtx{}
	}
	return hmtx
}

// bufferPool holds sfnt scratch buffers. sfnt.Buffer is not safe for
// concurrent use, so each query borrows its own.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *sfnt.Font
	ppem fixed.Int26_6
	hmtx tables.Hmtx
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	return f.name(sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)
	if s, err := f.font.Name(buf, id); err == nil {
		return s
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// VMetrics implements ParsedFont.VMetrics.
func (f *ximageParsedFont) VMetrics() VMetrics {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	m, err := f.font.Metrics(buf, f.ppem, font.HintingNone)
	if err != nil {
		return VMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	return VMetrics{
		Ascent:  float64(m.Ascent),
		Descent: -float64(m.Descent),
		LineGap: float64(m.Height - m.Ascent - m.Descent),
	}
}

// HMetrics implements ParsedFont.HMetrics.
//
// The bearing comes from the hmtx table. Glyphs the table does not cover
// fall back to the outline's left edge.
func (f *ximageParsedFont) HMetrics(gid GlyphID) (advance, lsb float64) {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	bounds, adv, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	if int(gid) < len(f.hmtx.Metrics)+len(f.hmtx.LeftSideBearings) {
		return float64(adv), float64(f.hmtx.SideBearing(tables.GlyphID(gid)))
	}
	return float64(adv), float64(bounds.Min.X)
}

// Bounds implements ParsedFont.Bounds.
func (f *ximageParsedFont) Bounds() Rect {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	r, err := f.font.Bounds(buf, f.ppem, font.HintingNone)
	if err != nil {
		return Rect{}
	}
	return flipRect(r)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(gid GlyphID) Rect {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	r, _, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return Rect{}
	}
	return flipRect(r)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right GlyphID) float64 {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	k, err := f.font.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), f.ppem, font.HintingNone)
	if err != nil {
		// ErrNotFound just means the pair is not kerned.
		return 0
	}
	return float64(k)
}

// Segments implements ParsedFont.Segments.
func (f *ximageParsedFont) Segments(gid GlyphID) ([]OutlineSegment, error) {
	buf := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buf)

	segments, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, ErrGlyphNotFound
		}
		return nil, fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
	}

	// The segments alias buf, so they are copied out before it is pooled again.
	out := make([]OutlineSegment, len(segments))
	for i, seg := range segments {
		out[i] = convertSegment(seg)
	}
	return out, nil
}

// convertSegment converts an sfnt segment to an OutlineSegment,
// flipping sfnt's Y-down coordinates back to the font's Y-up space.
func convertSegment(seg sfnt.Segment) OutlineSegment {
	var out OutlineSegment
	n := 1
	switch seg.Op {
	case sfnt.SegmentOpMoveTo:
		out.Op = OutlineOpMoveTo
	case sfnt.SegmentOpLineTo:
		out.Op = OutlineOpLineTo
	case sfnt.SegmentOpQuadTo:
		out.Op = OutlineOpQuadTo
		n = 2
	case sfnt.SegmentOpCubeTo:
		out.Op = OutlineOpCubicTo
		n = 3
	}
	for i := 0; i < n; i++ {
		out.Points[i] = OutlinePoint{
			X: float32(seg.Args[i].X),
			Y: -float32(seg.Args[i].Y),
		}
	}
	return out
}

// flipRect converts a Y-down sfnt rectangle to a Y-up Rect.
func flipRect(r fixed.Rectangle26_6) Rect {
	return Rect{
		MinX: float64(r.Min.X),
		MinY: -float64(r.Max.Y),
		MaxX: float64(r.Max.X),
		MaxY: -float64(r.Min.Y),
	}
}
