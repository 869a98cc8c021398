package bmfont

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// charsets maps the Windows charset names BMFont writes for non-Unicode
// fonts to their code pages.
var charsets = map[string]*charmap.Charmap{
	"":           charmap.Windows1252,
	"ANSI":       charmap.Windows1252,
	"DEFAULT":    charmap.Windows1252,
	"EASTEUROPE": charmap.Windows1250,
	"RUSSIAN":    charmap.Windows1251,
	"GREEK":      charmap.Windows1253,
	"TURKISH":    charmap.Windows1254,
	"HEBREW":     charmap.Windows1255,
	"ARABIC":     charmap.Windows1256,
	"BALTIC":     charmap.Windows1257,
	"VIETNAMESE": charmap.Windows1258,
	"THAI":       charmap.Windows874,
	"OEM":        charmap.CodePage437,
}

// Charset returns the code page for a BMFont charset name, or nil when the
// name is unknown. Names are matched case-insensitively.
func Charset(name string) *charmap.Charmap {
	return charsets[strings.ToUpper(name)]
}

// DecodeRune maps a character id from a non-Unicode descriptor to a rune.
// Ids outside the single-byte range pass through unchanged.
func DecodeRune(cs *charmap.Charmap, id int) rune {
	if cs == nil || id < 0 || id > 0xff {
		return rune(id)
	}
	return cs.DecodeByte(byte(id))
}

// DecodeString converts s from the code page cs to UTF-8. Strings that are
// already valid UTF-8 are returned as is.
func DecodeString(cs *charmap.Charmap, s string) string {
	if cs == nil || utf8.ValidString(s) {
		return s
	}
	out, err := cs.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
