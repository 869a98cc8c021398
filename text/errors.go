package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNotSFNT is returned when data does not carry a scalable font signature.
	ErrNotSFNT = errors.New("text: not a TrueType or OpenType font")

	// ErrGlyphNotFound is returned when a glyph index is out of range.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)

// ErrUnsupportedFontType is returned when the font type is not supported.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
