package msdf

import (
	"image"
	"image/color"
	"math"
)

// DefaultAngleThreshold is the corner detection threshold used by
// ColorEdgesSimple: a turn sharper than this many radians away from a
// straight continuation marks a corner.
const DefaultAngleThreshold = 3.0

// Config holds parameters for the fixed-size Generator.
type Config struct {
	// Size is the output texture size (width = height).
	// Typical values: 32, 48, 64.
	// Default: 32
	Size int

	// Range is the distance range in pixels.
	// This controls how far from the edge the distance field extends.
	// Larger values = softer edges, smaller = sharper but less scalable.
	// Default: 4.0
	Range float64

	// AngleThreshold is the corner detection threshold in radians
	// passed to ColorEdgesSimple.
	// Default: 3.0
	AngleThreshold float64

	// EdgeThreshold is the channel deviation, as a fraction of the full
	// range, above which ErrorCorrection pulls a channel back to the median.
	// Default: 1.001
	EdgeThreshold float64
}

// DefaultConfig returns the default MSDF configuration.
// These values work well for most text rendering scenarios.
func DefaultConfig() Config {
	return Config{
		Size:           32,
		Range:          4.0,
		AngleThreshold: DefaultAngleThreshold,
		EdgeThreshold:  1.001,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Size < 8 {
		return &ConfigError{Field: "Size", Reason: "must be at least 8"}
	}
	if c.Size > 4096 {
		return &ConfigError{Field: "Size", Reason: "must be at most 4096"}
	}
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.EdgeThreshold < 1 {
		return &ConfigError{Field: "EdgeThreshold", Reason: "must be at least 1.0"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}

// MSDF holds a byte-encoded multi-channel signed distance field.
type MSDF struct {
	// Data is the RGB pixel data (3 bytes per pixel, row-major order).
	// Red, Green, Blue channels encode directional distance.
	// The median of RGB gives the actual signed distance.
	Data []byte

	// Width of the texture in pixels.
	Width int

	// Height of the texture in pixels.
	Height int

	// Bounds is the expanded bounding box (shape bounds + pxRange padding)
	// in the original outline coordinate space.
	Bounds Rect

	// Scale is the scaling factor from outline coordinates to pixel coordinates.
	Scale float64

	// Translation offset from outline to texture coordinates.
	TranslateX, TranslateY float64
}

// PixelOffset returns the byte offset for pixel (x, y).
func (m *MSDF) PixelOffset(x, y int) int {
	return (y*m.Width + x) * 3
}

// SetPixel sets the RGB values at (x, y).
func (m *MSDF) SetPixel(x, y int, r, g, b byte) {
	offset := m.PixelOffset(x, y)
	m.Data[offset] = r
	m.Data[offset+1] = g
	m.Data[offset+2] = b
}

// GetPixel returns the RGB values at (x, y).
func (m *MSDF) GetPixel(x, y int) (r, g, b byte) {
	offset := m.PixelOffset(x, y)
	return m.Data[offset], m.Data[offset+1], m.Data[offset+2]
}

// Image returns the field as an opaque RGBA image with its first row at
// the top, suitable for PNG export.
func (m *MSDF) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.GetPixel(x, y)
			img.SetRGBA(x, m.Height-1-y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// Point represents a 2D point with float64 precision.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p * scalar.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length (avoids sqrt).
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalized returns a unit vector in the same direction.
// Returns zero vector if length is zero.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.X / length, p.Y / length}
}

// Lerp returns linear interpolation between p and q: p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X + t*(q.X-p.X),
		p.Y + t*(q.Y-p.Y),
	}
}

// Rect represents a 2D rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Expand returns a rectangle expanded by the given margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// SignedDistance represents a signed distance with additional metadata.
type SignedDistance struct {
	// Distance is the signed Euclidean distance.
	// Positive = inside, Negative = outside, once contours are oriented.
	Distance float64

	// Dot is the dot product used for resolving ambiguities
	// when two edges are equally close (shared endpoints).
	Dot float64
}

// NewSignedDistance creates a new signed distance.
func NewSignedDistance(distance, dot float64) SignedDistance {
	return SignedDistance{Distance: distance, Dot: dot}
}

// Infinite returns a signed distance representing infinity.
func Infinite() SignedDistance {
	return SignedDistance{Distance: -math.MaxFloat64, Dot: 1}
}

// IsCloserThan returns true if d is closer to the edge than other.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD < absO {
		return true
	}
	if absD > absO {
		return false
	}
	// Equal absolute distance - use dot product to break ties
	return d.Dot < other.Dot
}
