package text

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// FontSource represents a loaded scalable font.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use until Close is called.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	parsed ParsedFont // Abstracted font interface (pluggable backend)
	kerner *PairKerner

	// Metadata
	name string

	// mu guards Close against concurrent queries.
	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF, OTF or TTC).
// The data slice is retained, not copied; callers must not modify it.
//
// Options can be used to configure the parser backend and kerning.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	if config.shapedKerning {
		// A font go-text cannot read still kerns through the parser.
		if k, err := NewPairKerner(data, config.language); err == nil {
			s.kerner = k
		}
	}

	s.name = extractFontName(parsed)

	return s, nil
}

// NewFallbackFontSource creates a FontSource from the embedded Go Regular
// font. It is used when no font data is supplied.
func NewFallbackFontSource(opts ...SourceOption) (*FontSource, error) {
	return NewFontSource(FallbackFont(), opts...)
}

// FallbackFont returns the bytes of the embedded fallback font.
func FallbackFont() []byte {
	return goregular.TTF
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// It returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Kerning returns the kerning between two runes in font units.
func (s *FontSource) Kerning(left, right rune) float64 {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.parsed == nil {
		return 0
	}
	if s.kerner != nil {
		if k, ok := s.kerner.Kern(left, right); ok {
			return k
		}
	}
	return s.parsed.Kern(s.parsed.GlyphIndex(left), s.parsed.GlyphIndex(right))
}

// Close releases resources associated with the FontSource.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parsed = nil
	s.kerner = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}
