package inspect

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tradewire/tradewire-go/pkg/render"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Formatter formats inspection reports as aligned text tables.
type Formatter struct {
	// ShowHex adds a column with the raw field bytes.
	ShowHex bool

	// Padding is the number of spaces between columns.
	Padding int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowHex: true,
		Padding: 2,
	}
}

// FormatValue formats a field value for display. Byte fields are shown as
// quoted text up to the first zero byte, escaped as in JSON output.
func (f *Formatter) FormatValue(v wire.Value) string {
	switch v.Kind {
	case wire.KindUint32, wire.KindUint64:
		return strconv.FormatUint(v.Uint, 10)
	case wire.KindInt64:
		return strconv.FormatInt(v.Int, 10)
	case wire.KindBytes:
		b := render.AppendString([]byte{'"'}, render.FixedText(v.Bytes))
		return string(append(b, '"'))
	default:
		return "?"
	}
}

// FormatRow formats the value column of a row, describing missing bytes for
// fields the buffer does not cover.
func (f *Formatter) FormatRow(r *Row) string {
	if r.Present() {
		return f.FormatValue(r.Value)
	}
	if len(r.Raw) == 0 {
		return "<missing>"
	}
	return fmt.Sprintf("<short: %d of %d bytes>", len(r.Raw), r.Field.Width)
}

// Write writes report as a table followed by a summary line.
func (f *Formatter) Write(w io.Writer, report *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, max(f.Padding, 1), ' ', 0)

	header := []string{"FIELD", "OFFSET", "WIDTH", "KIND"}
	if f.ShowHex {
		header = append(header, "HEX")
	}
	header = append(header, "VALUE")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := range report.Rows {
		r := &report.Rows[i]
		cols := []string{
			r.Field.Name,
			strconv.Itoa(r.Field.Offset),
			strconv.Itoa(r.Field.Width),
			r.Field.Kind.String(),
		}
		if f.ShowHex {
			cols = append(cols, hex.EncodeToString(r.Raw))
		}
		cols = append(cols, f.FormatRow(r))
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, f.Summary(report))
	return err
}

// Format returns the table for report as a string.
func (f *Formatter) Format(report *Report) string {
	var sb strings.Builder
	_ = f.Write(&sb, report)
	return sb.String()
}

// Summary returns a one-line description of the report.
func (f *Formatter) Summary(report *Report) string {
	if field, missing := report.FirstMissing(); missing {
		return fmt.Sprintf("incomplete: %d bytes, field %s needs bytes [%d,%d)",
			report.Size, field.Name, field.Offset, field.End())
	}
	if report.Trailing > 0 {
		return fmt.Sprintf("complete: %d bytes (%d trailing ignored)", report.Size, report.Trailing)
	}
	return fmt.Sprintf("complete: %d bytes", report.Size)
}
