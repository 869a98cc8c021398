package bmfont

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type record struct {
	Tag    string
	Fields map[string]string
}

func scanAll(t *testing.T, src string) ([]record, error) {
	t.Helper()
	s := NewScanner([]byte(src))
	var out []record
	for s.Scan() {
		r := record{Tag: s.Tag(), Fields: map[string]string{}}
		for k, v := range s.fields {
			r.Fields[k] = v
		}
		out = append(out, r)
	}
	return out, s.Err()
}

func TestScannerRecords(t *testing.T) {
	src := "info face=\"Arial Black\" size=32 bold=0\r\n" +
		"\n" +
		"common lineHeight=40 base=32 pages=1 packed=0\n" +
		"page id=0 file=\"atlas.png\"\n" +
		"chars count=1\n" +
		"char id=65   x=1 y=2\tpadding=1,2,3,4"

	got, err := scanAll(t, src)
	if err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := []record{
		{"info", map[string]string{"face": "Arial Black", "size": "32", "bold": "0"}},
		{"common", map[string]string{"lineHeight": "40", "base": "32", "pages": "1", "packed": "0"}},
		{"page", map[string]string{"id": "0", "file": "atlas.png"}},
		{"chars", map[string]string{"count": "1"}},
		{"char", map[string]string{"id": "65", "x": "1", "y": "2", "padding": "1,2,3,4"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerClearsFieldsPerRecord(t *testing.T) {
	s := NewScanner([]byte("info size=32\ncommon base=20\n"))
	if !s.Scan() {
		t.Fatal("first Scan() = false")
	}
	if !s.Scan() {
		t.Fatal("second Scan() = false")
	}
	if _, ok := s.String("size"); ok {
		t.Error("field from the previous record leaked into the next")
	}
	if got := s.Number("base"); got != 20 {
		t.Errorf("Number(base) = %d, want 20", got)
	}
	if s.Scan() {
		t.Error("Scan() = true past the end")
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
}

func TestScannerUnterminatedQuote(t *testing.T) {
	s := NewScanner([]byte("info size=32\npage id=0 file=\"atlas.png\nchar id=1\n"))
	n := 0
	for s.Scan() {
		n++
	}
	if n != 1 {
		t.Errorf("scanned %d records before the error, want 1", n)
	}

	var se *SyntaxError
	if !errors.As(s.Err(), &se) {
		t.Fatalf("Err() = %v, want *SyntaxError", s.Err())
	}
	if se.Line != 2 {
		t.Errorf("error line = %d, want 2", se.Line)
	}
}

func TestScannerBareWordsAndEmptyValues(t *testing.T) {
	got, err := scanAll(t, "kerning stray first=65 second= amount=-2")
	if err != nil {
		t.Fatal(err)
	}
	want := []record{
		{"kerning", map[string]string{"first": "65", "second": "", "amount": "-2"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerNumber(t *testing.T) {
	s := NewScanner([]byte("info size=-32 spacing=1,1 face=\"x\" bad=abc plus=+7 big=99999999999"))
	if !s.Scan() {
		t.Fatal("Scan() = false")
	}

	tests := []struct {
		key  string
		want int
	}{
		{"size", -32},
		{"spacing", 1},
		{"face", 0},
		{"bad", 0},
		{"plus", 7},
		{"missing", 0},
		{"big", math.MaxInt32},
	}
	for _, tt := range tests {
		if got := s.Number(tt.key); got != tt.want {
			t.Errorf("Number(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestScannerTagOnly(t *testing.T) {
	got, err := scanAll(t, "  chars\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Tag != "chars" || len(got[0].Fields) != 0 {
		t.Errorf("got %+v, want a bare chars record", got)
	}
}
