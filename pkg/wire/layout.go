package wire

// TradeUpdateSize is the wire width of a TradeUpdate in bytes.
const TradeUpdateSize = 40

// Field describes one entry of a fixed record layout.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   Kind
}

// End returns the offset one past the last byte of the field.
func (f Field) End() int {
	return f.Offset + f.Width
}

// Layout is an ordered list of fields. Offsets are contiguous and start at 0.
type Layout []Field

// Size returns the total wire width of the layout.
func (l Layout) Size() int {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End()
}

// Lookup returns the index of the named field, or -1.
func (l Layout) Lookup(name string) int {
	for i, f := range l {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the field names in layout order.
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

// Indexes into TradeUpdateLayout.
const (
	FieldTS = iota
	FieldSymbol
	FieldPrice
	FieldQty
	FieldVenue
)

// Capacities of the fixed byte fields.
const (
	SymbolLen = 12
	VenueLen  = 4
)

// TradeUpdateLayout is the wire layout of a TradeUpdate, in decode order.
var TradeUpdateLayout = Layout{
	FieldTS:     {Name: "ts", Offset: 0, Width: 8, Kind: KindUint64},
	FieldSymbol: {Name: "symbol", Offset: 8, Width: SymbolLen, Kind: KindBytes},
	FieldPrice:  {Name: "price", Offset: 20, Width: 8, Kind: KindInt64},
	FieldQty:    {Name: "qty", Offset: 28, Width: 8, Kind: KindUint64},
	FieldVenue:  {Name: "venue", Offset: 36, Width: VenueLen, Kind: KindBytes},
}
