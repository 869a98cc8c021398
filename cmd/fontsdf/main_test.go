package main

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/fontsdf/text/msdf"
)

func TestPrintMetrics(t *testing.T) {
	r, err := load("", 32)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var sb strings.Builder
	printMetrics(&sb, r, []rune("AȀ"))
	out := sb.String()
	for _, want := range []string{"name:    Go (truetype)", "'A': advance", "'Ȁ': missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMetricsBitmap(t *testing.T) {
	dir := t.TempDir()
	descriptor := "info size=32\n" +
		"common lineHeight=40 base=32 pages=1 packed=0\n" +
		"page id=0 file=\"atlas.png\"\n"
	if err := os.WriteFile(filepath.Join(dir, "font.fnt"), []byte(descriptor), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := savePNG(filepath.Join(dir, "atlas.png"), image.NewNRGBA(image.Rect(0, 0, 16, 8))); err != nil {
		t.Fatal(err)
	}

	r, err := load(filepath.ToSlash(filepath.Join(dir, "font.fnt")), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var sb strings.Builder
	printMetrics(&sb, r, []rune("A"))
	if out := sb.String(); !strings.Contains(out, "atlas:   16x8 png as RGBA8Unorm") {
		t.Errorf("metrics missing the atlas texture line:\n%s", out)
	}
}

func TestPrintCurves(t *testing.T) {
	r, err := load("", 2048)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var sb strings.Builder
	if err := printCurves(&sb, r, []rune(". ")); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "  1 [200 0 200 257]") {
		t.Errorf("curves output missing the first edge of '.':\n%s", out)
	}
	if !strings.Contains(out, "' ':\n  (empty)") {
		t.Errorf("curves output missing the empty space:\n%s", out)
	}
}

func TestWriteImages(t *testing.T) {
	r, err := load("", 32)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	dir := t.TempDir()
	tests := []struct {
		name  string
		write func(path string) error
	}{
		{"mtsdf.png", func(p string) error { return writeMTSDF(p, r, 'A', 4) }},
		{"sheet.png", func(p string) error { return writeSheet(p, r, []rune("AB C"), 4, 128) }},
		{"msdf.png", func(p string) error { return writeMSDF(p, r, 'A', 32, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := tt.write(path); err != nil {
				t.Fatalf("write: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			if _, err := png.Decode(f); err != nil {
				t.Errorf("output is not a PNG: %v", err)
			}
		})
	}

	if err := writeMTSDF(filepath.Join(dir, "space.png"), r, ' ', 4); err == nil {
		t.Error("writeMTSDF(' ') succeeded for a glyph without ink")
	}

	// 'A' has an outer contour and a counter.
	for _, want := range []string{"RGBA32Float", "'B' at (", "2 contours"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, logs.String())
		}
	}
}

func TestCoverage(t *testing.T) {
	f := msdf.NewField(4, 2, 4)
	for x := 0; x < 4; x++ {
		i := x * 4
		copy(f.Pixels[i:i+4], []float32{0.9, 0.6, 0.8, 1})
	}
	// A single channel above the threshold does not move the median.
	copy(f.Pixels[16:20], []float32{0.9, 0.1, 0.2, 0})

	if got := coverage(f); got != 0.5 {
		t.Errorf("coverage() = %v, want 0.5", got)
	}
	if got := coverage(msdf.NewField(0, 0, 4)); got != 0 {
		t.Errorf("coverage() of an empty field = %v, want 0", got)
	}
}
