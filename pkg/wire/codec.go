package wire

import (
	"encoding/binary"
)

// DecodeTradeUpdate decodes a TradeUpdate from buf.
//
// len(buf) is the number of valid bytes; nothing past it is read. Fields are
// read in layout order and the first field that does not fit fails the whole
// decode with a *DecodeError wrapping ErrBufferTooSmall, in which case the
// zero TradeUpdate is returned. Bytes past TradeUpdateSize are ignored.
func DecodeTradeUpdate(buf []byte) (TradeUpdate, error) {
	var rec TradeUpdate
	cursor := 0
	for i, f := range TradeUpdateLayout {
		if cursor+f.Width > len(buf) {
			return TradeUpdate{}, &DecodeError{
				Field:  f.Name,
				Offset: cursor,
				Width:  f.Width,
				Length: len(buf),
			}
		}
		rec.SetValue(i, ReadField(f, buf[cursor:cursor+f.Width]))
		cursor += f.Width
	}
	return rec, nil
}

// EncodeTradeUpdate encodes rec into a new TradeUpdateSize-byte buffer.
func EncodeTradeUpdate(rec *TradeUpdate) []byte {
	b, _ := rec.AppendBinary(make([]byte, 0, TradeUpdateSize))
	return b
}

// AppendBinary appends the wire encoding of r to b.
func (r *TradeUpdate) AppendBinary(b []byte) ([]byte, error) {
	for i, f := range TradeUpdateLayout {
		b = AppendField(b, f, r.Value(i))
	}
	return b, nil
}

// MarshalBinary returns the TradeUpdateSize-byte wire encoding of r.
func (r *TradeUpdate) MarshalBinary() ([]byte, error) {
	return EncodeTradeUpdate(r), nil
}

// UnmarshalBinary decodes data into r. On error r is left unchanged.
func (r *TradeUpdate) UnmarshalBinary(data []byte) error {
	rec, err := DecodeTradeUpdate(data)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// ReadField interprets b, which must hold at least f.Width bytes, as a value
// of f's kind. Byte values alias b.
func ReadField(f Field, b []byte) Value {
	b = b[:f.Width]
	switch f.Kind {
	case KindUint32:
		return Value{Kind: f.Kind, Uint: uint64(binary.LittleEndian.Uint32(b))}
	case KindUint64:
		return Value{Kind: f.Kind, Uint: binary.LittleEndian.Uint64(b)}
	case KindInt64:
		return Value{Kind: f.Kind, Int: int64(binary.LittleEndian.Uint64(b))}
	default:
		return Value{Kind: KindBytes, Bytes: b}
	}
}

// AppendField appends exactly f.Width bytes encoding v to dst.
// Integers are little-endian; a KindUint32 value is truncated to 32 bits.
// Byte values are truncated to f.Width and zero-padded.
func AppendField(dst []byte, f Field, v Value) []byte {
	switch f.Kind {
	case KindUint32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.Uint))
	case KindUint64:
		return binary.LittleEndian.AppendUint64(dst, v.Uint)
	case KindInt64:
		return binary.LittleEndian.AppendUint64(dst, uint64(v.Int))
	default:
		n := min(len(v.Bytes), f.Width)
		dst = append(dst, v.Bytes[:n]...)
		for ; n < f.Width; n++ {
			dst = append(dst, 0)
		}
		return dst
	}
}
