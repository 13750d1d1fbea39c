package wire

// Kind is the semantic type of a wire field.
type Kind uint8

const (
	// KindUint32 is an unsigned 32-bit little-endian integer.
	KindUint32 Kind = 1

	// KindUint64 is an unsigned 64-bit little-endian integer.
	KindUint64 Kind = 2

	// KindInt64 is a signed 64-bit little-endian integer.
	// The raw bit pattern is reinterpreted as two's complement.
	KindInt64 Kind = 3

	// KindBytes is a fixed-capacity raw byte sequence.
	KindBytes Kind = 4
)

// String returns the kind name as used in schema files.
func (k Kind) String() string {
	switch k {
	case KindUint32:
		return "u32"
	case KindUint64:
		return "u64"
	case KindInt64:
		return "i64"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// IsInteger returns true for the integer kinds.
func (k Kind) IsInteger() bool {
	return k == KindUint32 || k == KindUint64 || k == KindInt64
}

// IsSigned returns true if values of this kind are two's complement.
func (k Kind) IsSigned() bool {
	return k == KindInt64
}

// Width returns the fixed width of an integer kind, or 0 for KindBytes
// whose width is set per field.
func (k Kind) Width() int {
	switch k {
	case KindUint32:
		return 4
	case KindUint64, KindInt64:
		return 8
	default:
		return 0
	}
}
