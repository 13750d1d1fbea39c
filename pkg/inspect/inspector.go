// Package inspect breaks a record buffer down field by field for display.
// Unlike the decoder it never fails: a short buffer yields a report whose
// trailing rows are marked missing.
package inspect

import (
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Row describes one field of an inspected buffer.
type Row struct {
	Field wire.Field

	// Raw holds the bytes the buffer has for the field. It is shorter than
	// Field.Width when the buffer ends inside the field, and empty when the
	// buffer ends before it.
	Raw []byte

	// Value is the interpreted field. Only meaningful when Present.
	Value wire.Value
}

// Present reports whether the buffer holds every byte of the field.
func (r *Row) Present() bool {
	return len(r.Raw) == r.Field.Width
}

// Report is the result of inspecting a buffer against a layout.
type Report struct {
	// Size is the buffer length.
	Size int

	// Rows has one entry per layout field, in layout order.
	Rows []Row

	// Trailing is the number of bytes past the end of the layout.
	Trailing int
}

// Complete reports whether every field is present, i.e. whether the decoder
// would accept the buffer.
func (r *Report) Complete() bool {
	_, missing := r.FirstMissing()
	return !missing
}

// FirstMissing returns the first field the buffer does not fully cover.
func (r *Report) FirstMissing() (wire.Field, bool) {
	for i := range r.Rows {
		if !r.Rows[i].Present() {
			return r.Rows[i].Field, true
		}
	}
	return wire.Field{}, false
}

// Inspector walks buffers against a fixed layout.
type Inspector struct {
	layout wire.Layout
}

// NewInspector creates an Inspector for layout.
func NewInspector(layout wire.Layout) *Inspector {
	return &Inspector{layout: layout}
}

// Layout returns the inspector's layout.
func (i *Inspector) Layout() wire.Layout {
	return i.layout
}

// Inspect reports on buf. Row values alias buf.
func (i *Inspector) Inspect(buf []byte) *Report {
	report := &Report{
		Size:     len(buf),
		Rows:     make([]Row, len(i.layout)),
		Trailing: max(len(buf)-i.layout.Size(), 0),
	}
	for n, f := range i.layout {
		row := Row{Field: f}
		start := min(f.Offset, len(buf))
		end := min(f.End(), len(buf))
		row.Raw = buf[start:end]
		if row.Present() {
			row.Value = wire.ReadField(f, row.Raw)
		}
		report.Rows[n] = row
	}
	return report
}

// InspectTradeUpdate inspects buf against wire.TradeUpdateLayout.
func InspectTradeUpdate(buf []byte) *Report {
	return NewInspector(wire.TradeUpdateLayout).Inspect(buf)
}
