package fontsdf

import (
	"errors"

	"github.com/gogpu/fontsdf/text"
	"github.com/gogpu/fontsdf/text/msdf"
)

// Sentinel errors for the fontsdf package.
var (
	// ErrNotRecognized is returned by New when no format probe accepts the data.
	ErrNotRecognized = errors.New("fontsdf: not recognized as TTF or BMFont")

	// ErrUnsupported is wrapped by every UnsupportedFeatureError.
	ErrUnsupported = errors.New("fontsdf: unsupported feature")

	// ErrMalformed is wrapped by every MalformedInputError.
	ErrMalformed = errors.New("fontsdf: malformed font data")

	// ErrInvalidSize is returned when a scalable font is requested at a
	// size that is not a positive number of pixels.
	ErrInvalidSize = errors.New("fontsdf: font size must be positive")

	// ErrGlyphNotFound is returned for codepoints the font does not map.
	ErrGlyphNotFound = text.ErrGlyphNotFound

	// ErrNoOutlines is returned when outlines are requested from a bitmap font.
	ErrNoOutlines = errors.New("fontsdf: font has no outlines")

	// ErrBufferTooSmall is returned when a pixel buffer cannot hold the
	// requested bitmap.
	ErrBufferTooSmall = msdf.ErrBufferTooSmall

	// ErrNoReader is returned when a descriptor references an atlas image
	// but New was given no ReadFunc.
	ErrNoReader = errors.New("fontsdf: no ReadFunc to resolve atlas image")
)

// UnsupportedFeatureError reports font data that is well formed but uses a
// feature this package does not implement.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return "fontsdf: unsupported feature: " + e.Feature
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedFeatureError) Unwrap() error {
	return ErrUnsupported
}

// MalformedInputError reports font data that violates its format.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "fontsdf: malformed font data: " + e.Reason
}

// Unwrap returns ErrMalformed.
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformed
}
