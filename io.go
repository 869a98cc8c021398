package fontsdf

import (
	"io/fs"
	"os"
)

// ReadFunc loads a file that a font refers to, such as the atlas image of
// a BMFont descriptor. path is the descriptor's Blob.Name with its last
// element replaced by the referenced file name.
type ReadFunc func(path string) ([]byte, error)

// FSReader returns a ReadFunc that reads from fsys.
func FSReader(fsys fs.FS) ReadFunc {
	return func(path string) ([]byte, error) {
		return fs.ReadFile(fsys, path)
	}
}

// OSReader returns a ReadFunc that reads from the operating system's file
// system.
func OSReader() ReadFunc {
	return os.ReadFile
}

// LoadFile reads a font file and creates a Rasterizer for it. Referenced
// files are resolved relative to path through the operating system.
func LoadFile(path string, size float32, opts ...Option) (*Rasterizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(&Blob{Name: path, Data: data}, size, OSReader(), opts...)
}
