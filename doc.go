// Package fontsdf loads fonts for GPU text rendering.
//
// # Overview
//
// A Rasterizer wraps one font at one pixel size. It reads two formats:
//
//   - TrueType and OpenType fonts, through a pluggable text.FontParser
//   - AngelCode BMFont text descriptors with a single atlas image
//
// New tries the formats in that order and picks the first that recognizes
// the data. A nil Blob loads the embedded Go Regular font.
//
// # Quick Start
//
//	r, err := fontsdf.New(nil, 32, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Println(r.Ascent(), r.Descent(), r.Leading())
//
//	// Outline of 'A' as line and Bezier segments in pixels
//	curves, ok, err := r.Curves('A')
//	for c := range curves {
//	    fmt.Println(c.Degree, c.Flat())
//	}
//
//	// Multi-channel true signed distance field of 'A'
//	field, ok, err := r.PixelsImage('A', 4)
//	png.Encode(w, field.Encode())
//
// # Coordinate System
//
// Metrics and outlines use the font's own frame:
//   - Origin at the pen position on the baseline
//   - X increases right
//   - Y increases up
//
// Distance fields store their bottom row first.
//
// # Lifetime
//
// A Rasterizer is reference counted. New returns it with a count of one;
// Retain adds a reference and Close drops one. The font data and atlas are
// released when the count reaches zero.
//
// # Logging
//
// The package is silent by default. SetLogger enables structured logging of
// format probes through log/slog.
package fontsdf
