package msdf

import (
	"math"

	"github.com/gogpu/fontsdf/text"
)

// closeEpsilon is the distance under which two points count as coincident
// when closing contours.
const closeEpsilon = 1e-6

// Contour represents a closed contour of edges.
// A glyph typically consists of one or more contours.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge

	// Winding is the signed area of the contour.
	// Positive = counter-clockwise (filled), Negative = clockwise (hole).
	Winding float64
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{
		Edges: make([]Edge, 0),
	}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// AddLinear appends a line from p0 to p1.
func (c *Contour) AddLinear(p0, p1 Point) {
	c.AddEdge(NewLinearEdge(p0, p1))
}

// AddQuadratic appends a quadratic curve from p0 to p2 with control p1.
func (c *Contour) AddQuadratic(p0, p1, p2 Point) {
	c.AddEdge(NewQuadraticEdge(p0, p1, p2))
}

// AddCubic appends a cubic curve from p0 to p3 with controls p1 and p2.
func (c *Contour) AddCubic(p0, p1, p2, p3 Point) {
	c.AddEdge(NewCubicEdge(p0, p1, p2, p3))
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// polygonSamples is the number of points each curved edge contributes to
// the polygon approximation used for area and containment tests.
const polygonSamples = 8

// polygon approximates the contour with straight segments.
func (c *Contour) polygon() []Point {
	pts := make([]Point, 0, len(c.Edges)*polygonSamples)
	for i := range c.Edges {
		e := &c.Edges[i]
		if e.Type == EdgeLinear {
			pts = append(pts, e.StartPoint())
			continue
		}
		for s := 0; s < polygonSamples; s++ {
			pts = append(pts, e.PointAt(float64(s)/polygonSamples))
		}
	}
	return pts
}

// CalculateWinding calculates and stores the signed area.
// Positive = CCW (outer contour), Negative = CW (inner/hole).
func (c *Contour) CalculateWinding() {
	// Shoelace formula over the polygon approximation.
	pts := c.polygon()
	var area float64
	for i := range pts {
		area += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	c.Winding = area / 2
}

// IsClockwise returns true if the contour winds clockwise.
func (c *Contour) IsClockwise() bool {
	return c.Winding < 0
}

// Reverse flips the direction of the contour.
func (c *Contour) Reverse() {
	n := len(c.Edges)
	for i := 0; i < n/2; i++ {
		c.Edges[i], c.Edges[n-1-i] = c.Edges[n-1-i], c.Edges[i]
	}
	for i := range c.Edges {
		c.Edges[i].Reverse()
	}
	c.Winding = -c.Winding
}

// contains reports whether p lies inside the contour (even-odd rule).
func (c *Contour) contains(p Point) bool {
	pts := c.polygon()
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Shape represents a complete glyph shape consisting of contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour

	// Bounds is the overall bounding box.
	Bounds Rect
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{
		Contours: make([]*Contour, 0),
	}
}

// AddContour starts a new, empty contour and returns it.
func (s *Shape) AddContour() *Contour {
	c := NewContour()
	s.Contours = append(s.Contours, c)
	return c
}

// CalculateBounds computes and stores the overall bounding box.
func (s *Shape) CalculateBounds() {
	if len(s.Contours) == 0 {
		s.Bounds = Rect{}
		return
	}

	s.Bounds = s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
	}
}

// Validate checks that the shape is properly closed.
func (s *Shape) Validate() bool {
	for _, contour := range s.Contours {
		if len(contour.Edges) == 0 {
			continue
		}

		first := contour.Edges[0].StartPoint()
		last := contour.Edges[len(contour.Edges)-1].EndPoint()

		dx := math.Abs(first.X - last.X)
		dy := math.Abs(first.Y - last.Y)
		if dx > closeEpsilon || dy > closeEpsilon {
			return false
		}
	}
	return true
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Normalize prepares the shape for distance generation. It drops
// degenerate edges and empty contours, closes open contours with a
// straight edge, and splits single-edge contours into thirds so that
// edge coloring has at least three edges to work with.
func (s *Shape) Normalize() {
	contours := s.Contours[:0]
	for _, c := range s.Contours {
		edges := c.Edges[:0]
		for _, e := range c.Edges {
			if !e.isDegenerate() {
				edges = append(edges, e)
			}
		}
		c.Edges = edges
		if len(c.Edges) == 0 {
			continue
		}

		first := c.Edges[0].StartPoint()
		last := c.Edges[len(c.Edges)-1].EndPoint()
		if last.Sub(first).Length() > closeEpsilon {
			c.AddLinear(last, first)
		}

		if len(c.Edges) == 1 {
			parts := c.Edges[0].SplitInThirds()
			c.Edges = parts[:]
		}
		contours = append(contours, c)
	}
	s.Contours = contours
	s.CalculateBounds()
}

// OrientContours makes outer contours wind counter-clockwise and holes
// clockwise, judged by how many other contours enclose each one. After
// orientation, points inside the shape have a positive signed distance.
func (s *Shape) OrientContours() {
	for i, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		c.CalculateWinding()

		probe := c.Edges[0].PointAt(0.5)
		depth := 0
		for j, other := range s.Contours {
			if i != j && len(other.Edges) > 0 && other.contains(probe) {
				depth++
			}
		}

		wantOuter := depth%2 == 0
		if wantOuter == c.IsClockwise() {
			c.Reverse()
		}
	}
}

// FromOutline converts a GlyphOutline to a Shape.
// Each MoveTo starts a new contour. Edges are left white; callers color
// them before generation.
func FromOutline(outline *text.GlyphOutline) *Shape {
	shape := NewShape()
	if outline == nil || len(outline.Segments) == 0 {
		return shape
	}

	var contour *Contour
	var pen Point

	for _, seg := range outline.Segments {
		if seg.Op == text.OutlineOpMoveTo {
			contour = shape.AddContour()
			pen = toPoint(seg.Points[0])
			continue
		}
		if contour == nil {
			contour = shape.AddContour()
		}

		switch seg.Op {
		case text.OutlineOpLineTo:
			end := toPoint(seg.Points[0])
			contour.AddLinear(pen, end)
			pen = end
		case text.OutlineOpQuadTo:
			end := toPoint(seg.Points[1])
			contour.AddQuadratic(pen, toPoint(seg.Points[0]), end)
			pen = end
		case text.OutlineOpCubicTo:
			end := toPoint(seg.Points[2])
			contour.AddCubic(pen, toPoint(seg.Points[0]), toPoint(seg.Points[1]), end)
			pen = end
		}
	}

	shape.CalculateBounds()
	return shape
}

func toPoint(p text.OutlinePoint) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}
