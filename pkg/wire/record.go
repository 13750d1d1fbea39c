package wire

// TradeUpdate is a decoded trade update record.
//
// A TradeUpdate holds no references into the buffer it was decoded from.
// Symbol and Venue are raw bytes and may lack a zero terminator.
type TradeUpdate struct {
	TS     uint64          // timestamp, unit defined by the producer
	Symbol [SymbolLen]byte // instrument symbol, usually zero-padded ASCII
	Price  int64           // fixed-point price, no scaling applied
	Qty    uint64          // quantity
	Venue  [VenueLen]byte  // venue code, usually ASCII
}

// Value is a single field value, used by code that walks a Layout.
// Only the member matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Uint  uint64 // KindUint32, KindUint64
	Int   int64  // KindInt64
	Bytes []byte // KindBytes
}

// Value returns field i of TradeUpdateLayout.
// For byte fields the returned slice aliases the record.
func (r *TradeUpdate) Value(i int) Value {
	switch i {
	case FieldTS:
		return Value{Kind: KindUint64, Uint: r.TS}
	case FieldSymbol:
		return Value{Kind: KindBytes, Bytes: r.Symbol[:]}
	case FieldPrice:
		return Value{Kind: KindInt64, Int: r.Price}
	case FieldQty:
		return Value{Kind: KindUint64, Uint: r.Qty}
	case FieldVenue:
		return Value{Kind: KindBytes, Bytes: r.Venue[:]}
	default:
		return Value{}
	}
}

// SetValue assigns field i of TradeUpdateLayout. Byte values are copied;
// a short value leaves the remaining bytes zero.
func (r *TradeUpdate) SetValue(i int, v Value) {
	switch i {
	case FieldTS:
		r.TS = v.Uint
	case FieldSymbol:
		r.Symbol = [SymbolLen]byte{}
		copy(r.Symbol[:], v.Bytes)
	case FieldPrice:
		r.Price = v.Int
	case FieldQty:
		r.Qty = v.Uint
	case FieldVenue:
		r.Venue = [VenueLen]byte{}
		copy(r.Venue[:], v.Bytes)
	}
}

// NewSymbol returns s as a zero-padded symbol, truncated to SymbolLen bytes.
func NewSymbol(s string) [SymbolLen]byte {
	var b [SymbolLen]byte
	copy(b[:], s)
	return b
}

// NewVenue returns s as a zero-padded venue code, truncated to VenueLen bytes.
func NewVenue(s string) [VenueLen]byte {
	var b [VenueLen]byte
	copy(b[:], s)
	return b
}
