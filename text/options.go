package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName    string
	shapedKerning bool
	language      string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName:    defaultParserName, // Default parser (ximage)
		shapedKerning: true,
		language:      "en",
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/sfnt.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithShapedKerning toggles kerning through HarfBuzz shaping, which reads
// GPOS pair adjustments as well as the legacy kern table. When disabled,
// only the parser's own Kern lookup is used.
func WithShapedKerning(enabled bool) SourceOption {
	return func(c *sourceConfig) {
		c.shapedKerning = enabled
	}
}

// WithLanguage sets the language tag used when shaping kerning pairs
// (e.g., "en", "tr", "nl").
func WithLanguage(lang string) SourceOption {
	return func(c *sourceConfig) {
		c.language = lang
	}
}
