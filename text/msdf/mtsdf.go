package msdf

import "math"

// GenerateMTSDF fills dst with a multi-channel and true signed distance
// field of shape. dst holds width*height pixels of four float32 values
// each: R, G and B are the per-channel distances used for median
// reconstruction, A is the true distance. Row 0 is the bottom row.
//
// Pixel (x, y) samples the shape at ((x+0.5)/scaleX - tx, (y+0.5)/scaleY - ty).
// Distances are expressed in shape units and mapped to d/pxRange + 0.5,
// so 0.5 lies on the outline, values above it are inside and values below
// it are outside. Values are not clamped.
//
// The shape must be normalized, oriented and colored beforehand. dst must
// hold at least width*height*4 values.
func GenerateMTSDF(dst []float32, width, height int, shape *Shape, pxRange, scaleX, scaleY, tx, ty float64) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{
				X: (float64(x)+0.5)/scaleX - tx,
				Y: (float64(y)+0.5)/scaleY - ty,
			}
			px := multiDistance(shape, p)

			i := (y*width + x) * 4
			dst[i] = float32(px.r/pxRange + 0.5)
			dst[i+1] = float32(px.g/pxRange + 0.5)
			dst[i+2] = float32(px.b/pxRange + 0.5)
			dst[i+3] = float32(px.a/pxRange + 0.5)
		}
	}
}

// channelDistances holds the four signed distances of one sample.
type channelDistances struct {
	r, g, b, a float64
}

// channelCandidate tracks the closest edge seen so far for one channel.
type channelCandidate struct {
	dist SignedDistance
	edge *Edge
}

func (c *channelCandidate) offer(e *Edge, d SignedDistance) {
	if c.edge == nil || d.IsCloserThan(c.dist) {
		c.dist = d
		c.edge = e
	}
}

// resolve returns the candidate's distance, extended past the edge's
// endpoints as a perpendicular distance so corners stay sharp.
func (c *channelCandidate) resolve(p Point, fallback float64) float64 {
	if c.edge == nil {
		return fallback
	}
	return pseudoDistance(c.edge, p, c.dist.Distance)
}

func multiDistance(shape *Shape, p Point) channelDistances {
	var red, green, blue, all channelCandidate

	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			e := &contour.Edges[i]
			d := e.SignedDistance(p)
			all.offer(e, d)
			if e.Color.HasRed() {
				red.offer(e, d)
			}
			if e.Color.HasGreen() {
				green.offer(e, d)
			}
			if e.Color.HasBlue() {
				blue.offer(e, d)
			}
		}
	}

	if all.edge == nil {
		// No edges: everything is outside, infinitely far away.
		inf := -math.MaxFloat32
		return channelDistances{r: inf, g: inf, b: inf, a: inf}
	}

	trueDist := all.dist.Distance
	return channelDistances{
		r: red.resolve(p, trueDist),
		g: green.resolve(p, trueDist),
		b: blue.resolve(p, trueDist),
		a: trueDist,
	}
}

// pseudoDistance replaces dist with the distance to the tangent line
// through the nearest endpoint when p lies beyond that endpoint.
func pseudoDistance(e *Edge, p Point, dist float64) float64 {
	const eps = 1e-9

	start := e.StartPoint()
	dir := e.DirectionAt(0).Normalized()
	aq := p.Sub(start)
	if aq.Dot(dir) < 0 && math.Abs(aq.Length()-math.Abs(dist)) <= eps*(1+math.Abs(dist)) {
		if pd := dir.Cross(aq); math.Abs(pd) <= math.Abs(dist) {
			return pd
		}
		return dist
	}

	end := e.EndPoint()
	dir = e.DirectionAt(1).Normalized()
	bq := p.Sub(end)
	if bq.Dot(dir) > 0 && math.Abs(bq.Length()-math.Abs(dist)) <= eps*(1+math.Abs(dist)) {
		if pd := dir.Cross(bq); math.Abs(pd) <= math.Abs(dist) {
			return pd
		}
	}
	return dist
}
