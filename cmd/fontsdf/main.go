// Command fontsdf inspects fonts and renders glyph distance fields.
//
// Usage:
//
//	fontsdf [flags] metrics
//	fontsdf [flags] curves
//	fontsdf [flags] mtsdf
//	fontsdf [flags] sheet
//	fontsdf [flags] msdf
//
// Without -font the embedded Go Regular font is used.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/fontsdf"
	"github.com/gogpu/fontsdf/text/msdf"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType or BMFont descriptor file (default: Go Regular)")
		size     = flag.Float64("size", 48, "font size in pixels")
		glyphs   = flag.String("glyphs", "A", "glyphs to process")
		spread   = flag.Float64("spread", 4, "distance field spread in pixels")
		sheet    = flag.Int("sheet", 512, "sheet texture size")
		cell     = flag.Int("cell", 32, "msdf texture size")
		output   = flag.String("output", "glyph.png", "output file")
		verbose  = flag.Bool("v", false, "log font loading")
	)
	flag.Parse()

	if *verbose {
		fontsdf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := load(*fontPath, float32(*size))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer r.Close()

	runes := []rune(*glyphs)
	if len(runes) == 0 {
		log.Fatal("No glyphs given")
	}

	switch cmd := flag.Arg(0); cmd {
	case "", "metrics":
		printMetrics(os.Stdout, r, runes)
	case "curves":
		err = printCurves(os.Stdout, r, runes)
	case "mtsdf":
		err = writeMTSDF(*output, r, runes[0], *spread)
	case "sheet":
		err = writeSheet(*output, r, runes, *spread, *sheet)
	case "msdf":
		err = writeMSDF(*output, r, runes[0], *cell, *spread)
	default:
		log.Fatalf("Unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func load(path string, size float32) (*fontsdf.Rasterizer, error) {
	if path == "" {
		return fontsdf.New(nil, size, nil)
	}
	return fontsdf.LoadFile(path, size)
}

func printMetrics(w io.Writer, r *fontsdf.Rasterizer, runes []rune) {
	fmt.Fprintf(w, "name:    %s (%s)\n", r.Name(), r.Kind())
	fmt.Fprintf(w, "size:    %g px, scale %g\n", r.FontSize(), r.Scale())
	fmt.Fprintf(w, "glyphs:  %d\n", r.GlyphCount())
	fmt.Fprintf(w, "ascent:  %g\n", r.Ascent())
	fmt.Fprintf(w, "descent: %g\n", r.Descent())
	fmt.Fprintf(w, "leading: %g\n", r.Leading())
	b := r.BoundingBox()
	fmt.Fprintf(w, "bbox:    (%g, %g)-(%g, %g)\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	if a := r.Atlas(); a != nil {
		e := a.Extent()
		fmt.Fprintf(w, "atlas:   %dx%d %s as %s\n", e.Width, e.Height, a.SourceFormat(), a.Format())
	}

	for i, cp := range runes {
		if !r.HasGlyph(cp) {
			fmt.Fprintf(w, "%q: missing\n", cp)
			continue
		}
		g := r.GlyphBoundingBox(cp)
		fmt.Fprintf(w, "%q: advance %g bearing %g box (%g, %g)-(%g, %g) empty=%v",
			cp, r.Advance(cp), r.Bearing(cp), g.MinX, g.MinY, g.MaxX, g.MaxY, r.IsGlyphEmpty(cp))
		if i+1 < len(runes) {
			fmt.Fprintf(w, " kern %g", r.Kerning(cp, runes[i+1]))
		}
		fmt.Fprintln(w)
	}
}

func printCurves(w io.Writer, r *fontsdf.Rasterizer, runes []rune) error {
	for _, cp := range runes {
		fmt.Fprintf(w, "%q:\n", cp)
		ok, err := r.VisitCurves(cp, func(degree int, points []float32) {
			fmt.Fprintf(w, "  %d %v\n", degree, points)
		})
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "  (empty)")
		}
	}
	return nil
}

func writeMTSDF(path string, r *fontsdf.Rasterizer, cp rune, spread float64) error {
	field, ok, err := r.PixelsImage(cp, spread)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("glyph %q has no ink", cp)
	}
	if err := savePNG(path, field.Encode()); err != nil {
		return err
	}
	log.Printf("MTSDF of %q saved to %s (%dx%d %s, %.0f%% inside)\n",
		cp, path, field.Width, field.Height, field.Format(), coverage(field)*100)
	return nil
}

// coverage returns the fraction of texels whose median lies inside the glyph.
func coverage(f *msdf.Field) float64 {
	if f.Width == 0 || f.Height == 0 {
		return 0
	}
	inside := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Median(x, y) > 0.5 {
				inside++
			}
		}
	}
	return float64(inside) / float64(f.Width*f.Height)
}

func writeSheet(path string, r *fontsdf.Rasterizer, runes []rune, spread float64, size int) error {
	s := msdf.NewSheet(size, size, int(math.Ceil(spread)), spread)
	for _, cp := range runes {
		field, ok, err := r.PixelsImage(cp, spread)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if _, err := s.Add(cp, field); err != nil {
			return fmt.Errorf("glyph %q: %w", cp, err)
		}
	}
	if err := savePNG(path, s.Field().Encode()); err != nil {
		return err
	}
	for _, cp := range runes {
		if region, ok := s.Region(cp); ok {
			log.Printf("%q at (%d, %d) %dx%d\n", cp, region.X, region.Y, region.Width, region.Height)
		}
	}
	log.Printf("Sheet of %d glyphs saved to %s (%.0f%% used)\n", s.Len(), path, s.Utilization()*100)
	return nil
}

func writeMSDF(path string, r *fontsdf.Rasterizer, cp rune, size int, spread float64) error {
	outline, ok, err := r.Outline(cp)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("glyph %q has no ink", cp)
	}

	cfg := msdf.DefaultConfig()
	cfg.Size = size
	cfg.Range = spread
	field, m, err := msdf.NewGenerator(cfg).GenerateWithMetrics(outline)
	if err != nil {
		return err
	}
	field = msdf.MedianFilter(field)
	msdf.ErrorCorrection(field, cfg.EdgeThreshold)

	if err := savePNG(path, field.Image()); err != nil {
		return err
	}
	log.Printf("MSDF of %q saved to %s (%dx%d, %d contours, %d edges, scale %.3g)\n",
		cp, path, m.Width, m.Height, m.NumContours, m.NumEdges, m.Scale)
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
