package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tradewire/tradewire-go/pkg/log"
	"github.com/tradewire/tradewire-go/pkg/render"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] STAGE CATEGORY source
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [run:%s] %-6s %s", ts, shortenRunID(event.RunID), event.Stage, event.Category)
	if event.Source != "" {
		fmt.Fprintf(w, " %s", event.Source)
	}
	fmt.Fprintln(w)

	switch {
	case event.Input != nil:
		formatInputDetails(w, event.Input)
	case event.Record != nil:
		formatRecordDetails(w, event.Record)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatInputDetails(w io.Writer, in *log.InputEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", in.Size)
	fmt.Fprintf(w, "  Digest: %s\n", hex.EncodeToString(in.Digest))
	if len(in.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(in.Data))
		if in.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatRecordDetails(w io.Writer, rec *log.RecordEvent) {
	tu := rec.TradeUpdate()
	fmt.Fprintf(w, "  Record: %s\n", render.AppendJSON(nil, &tu))
	if rec.Trailing > 0 {
		fmt.Fprintf(w, "  Trailing: %d bytes ignored\n", rec.Trailing)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Field != "" {
		fmt.Fprintf(w, "  Field: %s [%d,%d) of %d bytes\n", e.Field, e.Offset, e.Offset+e.Width, e.Length)
	}
}

// ParseStageFlag parses a stage name from a command-line flag (case-insensitive).
func ParseStageFlag(s string) (log.Stage, error) {
	switch strings.ToLower(s) {
	case "read":
		return log.StageRead, nil
	case "decode":
		return log.StageDecode, nil
	case "render":
		return log.StageRender, nil
	default:
		return 0, fmt.Errorf("invalid stage: %s (must be read, decode, or render)", s)
	}
}

// ParseCategoryFlag parses a category name from a command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "input":
		return log.CategoryInput, nil
	case "record":
		return log.CategoryRecord, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be input, record, or error)", s)
	}
}

// FilterOptions holds the string forms of the capture filter flags.
type FilterOptions struct {
	RunID     string
	Source    string
	Stage     string
	Category  string
	TimeStart string // RFC3339
	TimeEnd   string // RFC3339
}

// BuildFilter converts filter flags to a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		RunID:  opts.RunID,
		Source: opts.Source,
	}

	if opts.Stage != "" {
		s, err := ParseStageFlag(opts.Stage)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Stage = &s
	}
	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// RunView executes the log view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
