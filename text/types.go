package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
// Glyph 0 is the .notdef glyph that unmapped runes resolve to.
type GlyphID uint16

// Rect represents a rectangle for glyph bounds.
// The Y axis points up, as in the font program.
type Rect struct {
	// Min is the bottom-left corner
	MinX, MinY float64
	// Max is the top-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Scale returns the rectangle with every coordinate multiplied by s.
func (r Rect) Scale(s float64) Rect {
	return Rect{MinX: r.MinX * s, MinY: r.MinY * s, MaxX: r.MaxX * s, MaxY: r.MaxY * s}
}
