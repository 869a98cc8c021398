// Package text reads scalable fonts for glyph rasterization.
//
// The package separates font parsing from its consumers:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC data)
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//   - OutlineExtractor: glyph outlines in font units, Y axis up
//   - PairKerner: HarfBuzz pair kerning via go-text/typesetting
//
// All measurements leave this package in font units. Callers scale them by
// size/UnitsPerEm.
//
// # Example usage
//
//	source, err := text.NewFontSource(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	font := source.Parsed()
//	gid := font.GlyphIndex('A')
//	outline, err := text.NewOutlineExtractor().ExtractOutline(font, gid)
//
// # Pluggable Parser Backend
//
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
