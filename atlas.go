package fontsdf

import (
	"bytes"
	"image"
	_ "image/jpeg" // atlas decoders
	_ "image/png"

	"github.com/gogpu/gputypes"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Atlas is the glyph image of a bitmap font, held as premultiplied RGBA
// ready for upload as a TextureFormatRGBA8Unorm texture.
type Atlas struct {
	img *image.RGBA

	// format is the name of the decoder that read the image, such as "png".
	format string
}

// decodeAtlas decodes PNG, JPEG, BMP, TIFF or WebP data and converts it to
// RGBA with its origin at (0, 0).
func decodeAtlas(data []byte) (*Atlas, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	img, ok := src.(*image.RGBA)
	if !ok || img.Rect.Min != (image.Point{}) {
		b := src.Bounds()
		img = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(img, img.Bounds(), src, b.Min, xdraw.Src)
	}
	return &Atlas{img: img, format: format}, nil
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int {
	return a.img.Rect.Dx()
}

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int {
	return a.img.Rect.Dy()
}

// Image returns the atlas as an image. The image is shared, not copied.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// SourceFormat returns the name of the image format the atlas was stored in.
func (a *Atlas) SourceFormat() string {
	return a.format
}

// Format returns the GPU texture format matching Pixels.
func (a *Atlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Extent returns the texture size of the atlas.
func (a *Atlas) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(a.Width()), uint32(a.Height()))
}

// Pixels returns the RGBA bytes of the atlas, 4 bytes per pixel.
func (a *Atlas) Pixels() []byte {
	return a.img.Pix
}

// Stride returns the number of bytes per row.
func (a *Atlas) Stride() int {
	return a.img.Stride
}
