package wire

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is returned when a buffer ends before the last field.
var ErrBufferTooSmall = errors.New("buffer too small")

// DecodeError reports the first field whose bytes were not available.
// It unwraps to ErrBufferTooSmall.
type DecodeError struct {
	Field  string // name of the field that could not be read
	Offset int    // offset of that field
	Width  int    // bytes the field needs
	Length int    // bytes the caller supplied
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: field %s needs bytes [%d,%d) but buffer has %d",
		ErrBufferTooSmall, e.Field, e.Offset, e.Offset+e.Width, e.Length)
}

// Unwrap returns ErrBufferTooSmall.
func (e *DecodeError) Unwrap() error {
	return ErrBufferTooSmall
}
