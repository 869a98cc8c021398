package fontsdf

import (
	"iter"

	"github.com/gogpu/fontsdf/text"
)

// Curve is one outline segment in pixels. Points holds Degree+1 points as
// x, y pairs, starting at the pen position: a line has 2 points, a
// quadratic curve 3 and a cubic curve 4.
type Curve struct {
	Degree int
	Points [8]float32
}

// Flat returns the used prefix of Points.
func (c Curve) Flat() []float32 {
	return c.Points[:(c.Degree+1)*2]
}

// Curves returns the outline of the glyph for cp as a sequence of curves in
// the order the font stores them. ok is false for glyphs without ink.
// Unmapped codepoints yield ErrGlyphNotFound and bitmap fonts yield
// ErrNoOutlines.
//
// The sequence may be ranged over more than once and yields the same
// curves each time.
func (r *Rasterizer) Curves(cp rune) (curves iter.Seq[Curve], ok bool, err error) {
	outline, ok, err := r.Outline(cp)
	if !ok || err != nil {
		return nil, ok, err
	}
	segments := outline.Segments

	return func(yield func(Curve) bool) {
		var pen text.OutlinePoint
		for _, s := range segments {
			if s.Op == text.OutlineOpMoveTo {
				pen = s.Points[0]
				continue
			}
			c := Curve{Degree: s.Op.Degree()}
			c.Points[0], c.Points[1] = pen.X, pen.Y
			for i := 0; i < c.Degree; i++ {
				c.Points[2+2*i] = s.Points[i].X
				c.Points[3+2*i] = s.Points[i].Y
			}
			pen = s.End()
			if !yield(c) {
				return
			}
		}
	}, true, nil
}

// Outline returns the outline of the glyph for cp scaled to pixels, with
// its bounds, advance and bearing. Results are as for Curves.
func (r *Rasterizer) Outline(cp rune) (*text.GlyphOutline, bool, error) {
	r.check()

	outline, err := r.face.outline(cp)
	if err != nil {
		return nil, false, err
	}
	if outline.IsEmpty() {
		return nil, false, nil
	}
	return outline.Scale(r.scale), true, nil
}

// VisitCurves calls fn once per curve of the glyph for cp with the curve's
// degree and its flat point list of length (degree+1)*2. The slice is only
// valid during the call. Results are as for Curves.
func (r *Rasterizer) VisitCurves(cp rune, fn func(degree int, points []float32)) (bool, error) {
	curves, ok, err := r.Curves(cp)
	if !ok || err != nil {
		return ok, err
	}
	for c := range curves {
		fn(c.Degree, c.Flat())
	}
	return true, nil
}
