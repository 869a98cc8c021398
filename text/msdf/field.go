package msdf

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Field is a float MTSDF bitmap as produced by GenerateMTSDF.
//
// Pixels holds Width*Height RGBA samples, bottom row first, ready for
// upload as a TextureFormatRGBA32Float texture.
type Field struct {
	Pixels []float32
	Width  int
	Height int

	// Range is the distance spread the field was generated with.
	Range float64
}

// NewField allocates a zeroed field.
func NewField(width, height int, pxRange float64) *Field {
	return &Field{
		Pixels: make([]float32, width*height*4),
		Width:  width,
		Height: height,
		Range:  pxRange,
	}
}

// WrapField wraps a caller-owned slice as a field without copying. It
// returns ErrBufferTooSmall when pixels cannot hold width*height samples.
func WrapField(pixels []float32, width, height int, pxRange float64) (*Field, error) {
	if width < 0 || height < 0 || len(pixels) < width*height*4 {
		return nil, ErrBufferTooSmall
	}
	return &Field{
		Pixels: pixels[:width*height*4],
		Width:  width,
		Height: height,
		Range:  pxRange,
	}, nil
}

// Generate renders shape into the field. See GenerateMTSDF.
func (f *Field) Generate(shape *Shape, scaleX, scaleY, tx, ty float64) {
	GenerateMTSDF(f.Pixels, f.Width, f.Height, shape, f.Range, scaleX, scaleY, tx, ty)
}

// Format returns the GPU texture format matching the field's layout.
func (f *Field) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA32Float
}

// Extent returns the texture size of the field.
func (f *Field) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(f.Width), uint32(f.Height))
}

// At returns the four channels at (x, y), with y counted from the bottom.
func (f *Field) At(x, y int) (r, g, b, a float32) {
	i := (y*f.Width + x) * 4
	return f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2], f.Pixels[i+3]
}

// Median returns the median of the RGB channels at (x, y). Values above
// 0.5 are inside the shape.
func (f *Field) Median(x, y int) float32 {
	r, g, b, _ := f.At(x, y)
	return max(min(r, g), min(max(r, g), b))
}

// Encode quantizes the field into an 8-bit image, clamping each channel
// to [0, 1]. The image is flipped so that its first row is the top.
func (f *Field) Encode() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b, a := f.At(x, y)
			img.SetNRGBA(x, f.Height-1-y, color.NRGBA{
				R: quantize(r),
				G: quantize(g),
				B: quantize(b),
				A: quantize(a),
			})
		}
	}
	return img
}

func quantize(v float32) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}
