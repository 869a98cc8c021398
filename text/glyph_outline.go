package text

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in font units until the outline is scaled.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// End returns the point the pen rests on after the segment.
func (s OutlineSegment) End() OutlinePoint {
	switch s.Op {
	case OutlineOpQuadTo:
		return s.Points[1]
	case OutlineOpCubicTo:
		return s.Points[2]
	default:
		return s.Points[0]
	}
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// Degree returns the Bezier degree drawn by the operation: 1 for lines,
// 2 for quadratic curves, 3 for cubic curves and 0 for moves.
func (op OutlineOp) Degree() int {
	switch op {
	case OutlineOpLineTo:
		return 1
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 0
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of one or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline,
	// in the order the font program stores them.
	Segments []OutlineSegment

	// Bounds is the ink bounding box of the glyph.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// LSB is the left side bearing.
	LSB float32

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Scale returns a new outline with all coordinates scaled by the given factor.
func (o *GlyphOutline) Scale(factor float32) *GlyphOutline {
	if o == nil {
		return nil
	}

	f := float64(factor)
	scaled := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds: Rect{
			MinX: o.Bounds.MinX * f,
			MinY: o.Bounds.MinY * f,
			MaxX: o.Bounds.MaxX * f,
			MaxY: o.Bounds.MaxY * f,
		},
		Advance: o.Advance * factor,
		LSB:     o.LSB * factor,
		GID:     o.GID,
	}

	for i, seg := range o.Segments {
		scaled.Segments[i] = OutlineSegment{
			Op: seg.Op,
			Points: [3]OutlinePoint{
				{X: seg.Points[0].X * factor, Y: seg.Points[0].Y * factor},
				{X: seg.Points[1].X * factor, Y: seg.Points[1].Y * factor},
				{X: seg.Points[2].X * factor, Y: seg.Points[2].Y * factor},
			},
		}
	}

	return scaled
}

// OutlineExtractor extracts glyph outlines from parsed fonts.
type OutlineExtractor struct{}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph in font units.
// Glyphs without ink (e.g., space) return an outline with no segments
// but with advance information.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID) (*GlyphOutline, error) {
	if font == nil {
		return nil, ErrUnsupportedFontType
	}
	if int(gid) >= font.NumGlyphs() {
		return nil, ErrGlyphNotFound
	}

	segments, err := font.Segments(gid)
	if err != nil {
		return nil, err
	}

	advance, lsb := font.HMetrics(gid)
	outline := &GlyphOutline{
		Segments: segments,
		GID:      gid,
		Advance:  float32(advance),
		LSB:      float32(lsb),
	}
	if len(segments) > 0 {
		outline.Bounds = font.GlyphBounds(gid)
	}
	return outline, nil
}
