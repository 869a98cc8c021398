package msdf

// Region locates a packed field inside a Sheet. Y counts from the bottom.
type Region struct {
	X, Y          int
	Width, Height int
}

// Sheet packs the fields of several glyphs into one texture.
type Sheet struct {
	field   *Field
	alloc   *ShelfAllocator
	regions map[rune]Region
}

// NewSheet creates an empty width x height sheet. Unused texels are left
// at zero, which reads as outside.
func NewSheet(width, height, padding int, pxRange float64) *Sheet {
	return &Sheet{
		field:   NewField(width, height, pxRange),
		alloc:   NewShelfAllocator(width, height, padding),
		regions: make(map[rune]Region),
	}
}

// Add copies f into the sheet under key and returns where it landed.
// Adding a key twice returns the existing region. ErrSheetFull is returned
// when no space is left.
func (s *Sheet) Add(key rune, f *Field) (Region, error) {
	if r, ok := s.regions[key]; ok {
		return r, nil
	}
	x, y, ok := s.alloc.Allocate(f.Width, f.Height)
	if !ok {
		return Region{}, ErrSheetFull
	}

	for row := 0; row < f.Height; row++ {
		src := f.Pixels[row*f.Width*4 : (row+1)*f.Width*4]
		off := ((y+row)*s.field.Width + x) * 4
		copy(s.field.Pixels[off:off+len(src)], src)
	}

	r := Region{X: x, Y: y, Width: f.Width, Height: f.Height}
	s.regions[key] = r
	return r, nil
}

// Region returns the placement of key.
func (s *Sheet) Region(key rune) (Region, bool) {
	r, ok := s.regions[key]
	return r, ok
}

// Len returns the number of packed fields.
func (s *Sheet) Len() int {
	return len(s.regions)
}

// Field returns the backing texture.
func (s *Sheet) Field() *Field {
	return s.field
}

// Utilization returns the fraction of the sheet covered by fields.
func (s *Sheet) Utilization() float64 {
	return s.alloc.Utilization()
}
