package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// PairKerner measures kerning between two runes with HarfBuzz shaping from
// go-text/typesetting. Unlike a plain kern table lookup it also applies
// GPOS pair positioning, which most modern fonts use exclusively.
//
// PairKerner is safe for concurrent use. The parsed font.Font is read-only;
// a lightweight font.Face is created per call and HarfbuzzShaper instances
// are pooled since neither is safe for concurrent use.
type PairKerner struct {
	font       *font.Font
	upem       fixed.Int26_6
	lang       language.Language
	shaperPool sync.Pool
}

// NewPairKerner parses data with go-text/typesetting.
func NewPairKerner(data []byte, lang string) (*PairKerner, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &PairKerner{
		font: face.Font,
		upem: fixed.I(int(face.Font.Upem())),
		lang: language.NewLanguage(lang),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Kern returns the kerning between left and right in font units.
// ok is false when the pair shapes into something other than two glyphs
// (a ligature, for instance), in which case no pair adjustment exists.
func (k *PairKerner) Kern(left, right rune) (kern float64, ok bool) {
	face := font.NewFace(k.font)

	runes := []rune{left, right}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		// Shaping at a size of one pixel per font unit keeps the output
		// advances in font units.
		Size:     k.upem,
		Script:   language.LookupScript(left),
		Language: k.lang,
	}

	hb := k.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	k.shaperPool.Put(hb)

	if len(output.Glyphs) != 2 {
		return 0, false
	}

	var shaped, nominal float64
	for _, g := range output.Glyphs {
		shaped += fixedToFloat(g.Advance)
		nominal += float64(face.HorizontalAdvance(g.GlyphID))
	}
	return shaped - nominal, true
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
