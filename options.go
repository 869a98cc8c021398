package fontsdf

import (
	"log/slog"

	"github.com/gogpu/fontsdf/text"
)

// Option configures Rasterizer creation.
//
// Example:
//
//	// Default parser, package logger
//	r, err := fontsdf.New(blob, 32, nil)
//
//	// Custom parser registered with text.RegisterParser
//	r, err := fontsdf.New(blob, 32, nil, fontsdf.WithParser("myparser"))
type Option func(*options)

// options holds optional configuration for New.
type options struct {
	parser        string
	language      string
	shapedKerning bool
	outlineCache  int
	logger        *slog.Logger
}

// DefaultOutlineCache is the number of glyph outlines a scalable font
// keeps by default.
const DefaultOutlineCache = 256

// defaultOptions returns the default creation options.
func defaultOptions() options {
	return options{
		parser:        "ximage",
		language:      "en",
		shapedKerning: true,
		outlineCache:  DefaultOutlineCache,
	}
}

// log returns the logger for this load.
func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// sourceOptions translates the options that apply to scalable fonts.
func (o *options) sourceOptions() []text.SourceOption {
	return []text.SourceOption{
		text.WithParser(o.parser),
		text.WithLanguage(o.language),
		text.WithShapedKerning(o.shapedKerning),
	}
}

// WithParser selects the font parser used for scalable fonts by the name
// it was registered under with text.RegisterParser. The default is
// "ximage" (golang.org/x/image/font/sfnt).
func WithParser(name string) Option {
	return func(o *options) {
		o.parser = name
	}
}

// WithLanguage sets the language tag used when shaping kerning pairs.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithShapedKerning toggles GPOS kerning through HarfBuzz shaping. When
// disabled only the legacy kern table is consulted.
func WithShapedKerning(enabled bool) Option {
	return func(o *options) {
		o.shapedKerning = enabled
	}
}

// WithOutlineCache sets how many decoded glyph outlines a scalable font
// keeps for repeated Curves and Pixels calls. Zero disables the cache.
func WithOutlineCache(n int) Option {
	return func(o *options) {
		o.outlineCache = n
	}
}

// WithLogger overrides the package logger for a single New call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
