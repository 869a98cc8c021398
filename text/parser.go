package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	// Data that is not a scalable font at all must produce an error
	// wrapping ErrNotSFNT so callers can try other formats.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed scalable font.
//
// Every measurement is reported in font units with the Y axis pointing up,
// the way the font program stores it. Callers scale by size/UnitsPerEm.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// VMetrics returns the font-wide vertical metrics.
	// Descent is negative for glyphs extending below the baseline.
	VMetrics() VMetrics

	// HMetrics returns the advance width and left side bearing of a glyph.
	HMetrics(gid GlyphID) (advance, lsb float64)

	// Bounds returns the font-wide bounding box.
	Bounds() Rect

	// GlyphBounds returns the ink bounding box of a glyph.
	// Empty glyphs report a zero Rect.
	GlyphBounds(gid GlyphID) Rect

	// Kern returns the horizontal kerning adjustment between two glyphs.
	Kern(left, right GlyphID) float64

	// Segments returns the outline of a glyph in font-program order.
	// Empty glyphs (such as space) return no segments and no error.
	Segments(gid GlyphID) ([]OutlineSegment, error)
}

// VMetrics holds font-wide vertical metrics in font units.
type VMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended extra space between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m VMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
