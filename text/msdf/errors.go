package msdf

import "errors"

// ErrBufferTooSmall is returned when a destination slice cannot hold the
// requested field.
var ErrBufferTooSmall = errors.New("msdf: destination buffer too small")

// ErrSheetFull is returned when a Sheet has no room for another field.
var ErrSheetFull = errors.New("msdf: sheet is full")
