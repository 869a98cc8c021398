package msdf

import (
	"math"

	"github.com/gogpu/fontsdf/text"
)

// Generator creates MSDF textures from glyph outlines.
type Generator struct {
	config Config
}

// NewGenerator creates a new MSDF generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// Generate creates an MSDF texture from a glyph outline.
// Empty outlines yield a texture that is entirely outside.
func (g *Generator) Generate(outline *text.GlyphOutline) (*MSDF, error) {
	msdf, _, err := g.generate(outline)
	return msdf, err
}

// generate renders outline and returns the prepared shape it was rendered
// from, or nil when the outline has no ink.
func (g *Generator) generate(outline *text.GlyphOutline) (*MSDF, *Shape, error) {
	if err := g.config.Validate(); err != nil {
		return nil, nil, err
	}

	if outline == nil || outline.IsEmpty() {
		return g.generateEmpty(), nil, nil
	}

	shape := FromOutline(outline)
	shape.Normalize()
	if shape.EdgeCount() == 0 || shape.Bounds.IsEmpty() {
		return g.generateEmpty(), nil, nil
	}
	shape.OrientContours()
	ColorEdgesSimple(shape, g.config.AngleThreshold, 0)

	// Add padding for the distance range
	padding := g.config.Range
	bounds := shape.Bounds.Expand(padding)

	scale := calculateScale(bounds, g.config.Size, padding)

	// Center the expanded bounds within the cell. With uniform scaling the
	// non-limiting axis does not fill the available space.
	occupiedW := bounds.Width() * scale
	occupiedH := bounds.Height() * scale
	translateX := (float64(g.config.Size) - occupiedW) / 2
	translateY := (float64(g.config.Size) - occupiedH) / 2

	msdf := &MSDF{
		Data:       make([]byte, g.config.Size*g.config.Size*3),
		Width:      g.config.Size,
		Height:     g.config.Size,
		Bounds:     bounds,
		Scale:      scale,
		TranslateX: translateX,
		TranslateY: translateY,
	}

	g.generateDistanceField(msdf, shape)

	return msdf, shape, nil
}

// generateEmpty creates an MSDF for an empty glyph (e.g., space).
// All channels are 0, far outside.
func (g *Generator) generateEmpty() *MSDF {
	size := g.config.Size
	return &MSDF{
		Data:   make([]byte, size*size*3),
		Width:  size,
		Height: size,
		Bounds: Rect{},
		Scale:  1.0,
	}
}

// generateDistanceField renders the float field and quantizes RGB to bytes.
func (g *Generator) generateDistanceField(msdf *MSDF, shape *Shape) {
	size := msdf.Width
	field := make([]float32, size*size*4)

	// Range covers pixelRange pixels on either side of the outline.
	shapeRange := 2 * g.config.Range / msdf.Scale
	tx := msdf.TranslateX/msdf.Scale - msdf.Bounds.MinX
	ty := msdf.TranslateY/msdf.Scale - msdf.Bounds.MinY

	GenerateMTSDF(field, size, size, shape, shapeRange, msdf.Scale, msdf.Scale, tx, ty)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			msdf.SetPixel(x, y,
				distanceToPixel(field[i]),
				distanceToPixel(field[i+1]),
				distanceToPixel(field[i+2]))
		}
	}
}

// distanceToPixel converts a normalized distance to a pixel value [0, 255].
// 0.5 (128) represents the edge, < 0.5 is outside, > 0.5 is inside.
func distanceToPixel(normalized float32) byte {
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return byte(math.Round(float64(normalized) * 255))
}

// calculateScale determines the scale factor to fit the shape in the texture.
func calculateScale(bounds Rect, size int, padding float64) float64 {
	available := float64(size) - 2*padding
	if available <= 0 {
		available = float64(size)
	}

	w := bounds.Width()
	h := bounds.Height()

	if w <= 0 && h <= 0 {
		return 1.0
	}

	scaleX := available / w
	scaleY := available / h

	// Use the smaller scale to ensure the shape fits
	if w > 0 && h > 0 {
		return min(scaleX, scaleY)
	}
	if w > 0 {
		return scaleX
	}
	return scaleY
}

// Metrics returns statistics about the generated MSDF.
type Metrics struct {
	// Width and Height of the texture.
	Width, Height int

	// Scale factor used.
	Scale float64

	// Bounds in outline space.
	Bounds Rect

	// NumContours is the number of contours in the source shape.
	NumContours int

	// NumEdges is the total number of edges.
	NumEdges int
}

// GenerateWithMetrics generates an MSDF and reports the size of the
// shape it was rendered from. Bounds are the shape's, before padding.
func (g *Generator) GenerateWithMetrics(outline *text.GlyphOutline) (*MSDF, *Metrics, error) {
	msdf, shape, err := g.generate(outline)
	if err != nil {
		return nil, nil, err
	}

	metrics := &Metrics{
		Width:  msdf.Width,
		Height: msdf.Height,
		Scale:  msdf.Scale,
	}
	if shape != nil {
		metrics.Bounds = shape.Bounds
		metrics.NumContours = len(shape.Contours)
		metrics.NumEdges = shape.EdgeCount()
	}
	return msdf, metrics, nil
}

// MedianFilter applies a median filter to clean up noise.
// This is a post-processing step that can improve quality.
func MedianFilter(msdf *MSDF) *MSDF {
	if msdf == nil {
		return nil
	}

	result := &MSDF{
		Data:       make([]byte, len(msdf.Data)),
		Width:      msdf.Width,
		Height:     msdf.Height,
		Bounds:     msdf.Bounds,
		Scale:      msdf.Scale,
		TranslateX: msdf.TranslateX,
		TranslateY: msdf.TranslateY,
	}

	w, h := msdf.Width, msdf.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rVals, gVals, bVals := collectNeighborhood(msdf, x, y, w, h)
			rMed := median9(rVals)
			gMed := median9(gVals)
			bMed := median9(bVals)

			result.SetPixel(x, y, rMed, gMed, bMed)
		}
	}

	return result
}

// collectNeighborhood collects 3x3 neighborhood pixel values with clamping.
func collectNeighborhood(msdf *MSDF, x, y, w, h int) (rVals, gVals, bVals [9]byte) {
	idx := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx := clampInt(x+dx, 0, w-1)
			ny := clampInt(y+dy, 0, h-1)

			r, g, b := msdf.GetPixel(nx, ny)
			rVals[idx] = r
			gVals[idx] = g
			bVals[idx] = b
			idx++
		}
	}
	return
}

// clampInt clamps value to [lo, hi].
func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// median9 finds the median of 9 byte values.
// Uses a sorting network for efficiency.
func median9(vals [9]byte) byte {
	// Sorting network for 9 elements (only need to find median)
	// This is faster than sorting the entire array
	swap := func(i, j int) {
		if vals[i] > vals[j] {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}

	// Batcher's odd-even merge sort network (partial)
	swap(0, 1)
	swap(3, 4)
	swap(6, 7)
	swap(1, 2)
	swap(4, 5)
	swap(7, 8)
	swap(0, 1)
	swap(3, 4)
	swap(6, 7)
	swap(0, 3)
	swap(3, 6)
	swap(0, 3)
	swap(1, 4)
	swap(4, 7)
	swap(1, 4)
	swap(2, 5)
	swap(5, 8)
	swap(2, 5)
	swap(1, 3)
	swap(5, 7)
	swap(2, 6)
	swap(4, 6)
	swap(2, 4)
	swap(2, 3)
	swap(5, 6)

	return vals[4] // Middle element after partial sort
}

// ErrorCorrection applies error correction to fix artifacts.
// This handles cases where the median produces incorrect results.
func ErrorCorrection(msdf *MSDF, threshold float64) {
	if msdf == nil {
		return
	}

	w, h := msdf.Width, msdf.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := msdf.GetPixel(x, y)

			// Get the median
			med := median3Byte(r, g, b)

			// Calculate error for each channel
			rErr := math.Abs(float64(r) - float64(med))
			gErr := math.Abs(float64(g) - float64(med))
			bErr := math.Abs(float64(b) - float64(med))

			maxErr := max(rErr, gErr, bErr)
			thresholdVal := threshold * 255

			// If error is too high, correct by moving toward median
			if maxErr > thresholdVal {
				if rErr > thresholdVal {
					r = correctChannel(r, med, thresholdVal)
				}
				if gErr > thresholdVal {
					g = correctChannel(g, med, thresholdVal)
				}
				if bErr > thresholdVal {
					b = correctChannel(b, med, thresholdVal)
				}
				msdf.SetPixel(x, y, r, g, b)
			}
		}
	}
}

// median3Byte returns the median of three byte values.
func median3Byte(a, b, c byte) byte {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// correctChannel moves a channel value toward the median.
func correctChannel(val, med byte, threshold float64) byte {
	diff := float64(val) - float64(med)
	if diff > 0 {
		return byte(float64(med) + threshold)
	}
	return byte(float64(med) - threshold)
}
