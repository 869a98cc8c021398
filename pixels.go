package fontsdf

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/fontsdf/text/msdf"
)

// ErrInvalidSpread is returned when a distance field is requested with a
// spread that is not a positive number of pixels.
var ErrInvalidSpread = errors.New("fontsdf: spread must be positive")

// glyphShape is a glyph outline in pixels, prepared for generation.
type glyphShape struct {
	shape *msdf.Shape

	// offsetX and offsetY move the ink box to (pad, pad).
	offsetX, offsetY float64

	// ink is the scaled ink box size.
	inkWidth, inkHeight float64
}

// prepareShape builds the colored distance field shape for cp. It returns
// nil without error when the glyph is missing or has no ink.
func (r *Rasterizer) prepareShape(cp rune, spread float64) (*glyphShape, error) {
	if !(spread > 0) || math.IsInf(spread, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpread, spread)
	}

	scaled, ok, err := r.Outline(cp)
	if errors.Is(err, ErrGlyphNotFound) {
		return nil, nil
	}
	if !ok || err != nil {
		return nil, err
	}

	shape := msdf.FromOutline(scaled)
	shape.Normalize()
	shape.OrientContours()
	msdf.ColorEdgesSimple(shape, msdf.DefaultAngleThreshold, 0)

	pad := math.Ceil(spread / 2)
	return &glyphShape{
		shape:     shape,
		offsetX:   -scaled.Bounds.MinX + pad,
		offsetY:   -scaled.Bounds.MinY + pad,
		inkWidth:  scaled.Bounds.Width(),
		inkHeight: scaled.Bounds.Height(),
	}, nil
}

// Pixels renders the glyph for cp as a multi-channel true signed distance
// field into dst, which holds width*height pixels of 4 float32 each, bottom
// row first. RGB carry the per-channel distance, A the true distance, each
// mapped to distance/spread + 0.5 without clamping.
//
// The glyph's ink box is placed ceil(spread/2) pixels from the bottom-left
// corner. Pixels returns false without touching dst when the glyph is
// missing or has no ink, and ErrNoOutlines for bitmap fonts.
func (r *Rasterizer) Pixels(cp rune, dst []float32, width, height int, spread float64) (bool, error) {
	r.check()

	g, err := r.prepareShape(cp, spread)
	if g == nil || err != nil {
		return false, err
	}
	field, err := msdf.WrapField(dst, width, height, spread)
	if err != nil {
		return false, err
	}
	field.Generate(g.shape, 1, 1, g.offsetX, g.offsetY)
	return true, nil
}

// PixelsImage is Pixels with the bitmap sized to the glyph's ink box plus
// ceil(spread/2) pixels of padding on every side.
func (r *Rasterizer) PixelsImage(cp rune, spread float64) (*msdf.Field, bool, error) {
	r.check()

	g, err := r.prepareShape(cp, spread)
	if g == nil || err != nil {
		return nil, false, err
	}
	pad := math.Ceil(spread / 2)
	width := int(math.Ceil(g.inkWidth + 2*pad))
	height := int(math.Ceil(g.inkHeight + 2*pad))

	field := msdf.NewField(width, height, spread)
	field.Generate(g.shape, 1, 1, g.offsetX, g.offsetY)
	return field, true, nil
}
