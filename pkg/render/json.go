// Package render formats decoded wire records as single-line JSON.
//
// Output keys follow the field order of the wire layout. Integers are exact
// decimal numbers. Fixed byte fields are trimmed at the first zero byte and
// escaped byte by byte: printable ASCII passes through, the usual short
// escapes are used where JSON has them, and everything else becomes \u00XX.
package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

const hexDigits = "0123456789ABCDEF"

// AppendJSON appends the JSON object for rec to dst, without a newline.
func AppendJSON(dst []byte, rec *wire.TradeUpdate) []byte {
	return AppendLayout(dst, wire.TradeUpdateLayout, rec.Value)
}

// AppendLayout appends a JSON object with one member per layout field.
// value returns the value of field i.
func AppendLayout(dst []byte, layout wire.Layout, value func(i int) wire.Value) []byte {
	dst = append(dst, '{')
	for i, f := range layout {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = AppendString(dst, []byte(f.Name))
		dst = append(dst, '"', ':')
		dst = AppendValue(dst, value(i))
	}
	return append(dst, '}')
}

// AppendValue appends a single field value as a JSON number or string.
func AppendValue(dst []byte, v wire.Value) []byte {
	switch v.Kind {
	case wire.KindUint32, wire.KindUint64:
		return strconv.AppendUint(dst, v.Uint, 10)
	case wire.KindInt64:
		return strconv.AppendInt(dst, v.Int, 10)
	default:
		dst = append(dst, '"')
		dst = AppendString(dst, FixedText(v.Bytes))
		return append(dst, '"')
	}
}

// WriteJSON writes the JSON line for rec, terminated by a newline.
func WriteJSON(w io.Writer, rec *wire.TradeUpdate) error {
	line := AppendJSON(make([]byte, 0, 128), rec)
	line = append(line, '\n')
	_, err := w.Write(line)
	return err
}

// Writer writes one JSON line per record through a buffered writer.
type Writer struct {
	bw  *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write writes rec as a JSON line.
func (w *Writer) Write(rec *wire.TradeUpdate) error {
	w.buf = AppendJSON(w.buf[:0], rec)
	w.buf = append(w.buf, '\n')
	_, err := w.bw.Write(w.buf)
	return err
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// FixedText returns b up to, not including, its first zero byte.
// Without a zero byte the whole of b is returned.
func FixedText(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// AppendString appends the JSON string body for b, without quotes.
// Bytes are escaped individually; no UTF-8 decoding takes place.
func AppendString(dst, b []byte) []byte {
	for _, c := range b {
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c >= 0x20 && c <= 0x7E {
				dst = append(dst, c)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			}
		}
	}
	return dst
}
