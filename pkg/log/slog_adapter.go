package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger.
// Useful during development to see decode activity on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn for errors.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("stage", event.Stage.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}

	level := slog.LevelDebug
	switch {
	case event.Input != nil:
		attrs = append(attrs,
			slog.Int("size", event.Input.Size),
			slog.String("digest", hex.EncodeToString(event.Input.Digest)),
		)
	case event.Record != nil:
		attrs = append(attrs,
			slog.Uint64("ts", event.Record.TS),
			slog.Int64("price", event.Record.Price),
			slog.Uint64("qty", event.Record.Qty),
		)
		if event.Record.Trailing > 0 {
			attrs = append(attrs, slog.Int("trailing", event.Record.Trailing))
		}
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Field != "" {
			attrs = append(attrs,
				slog.String("field", event.Error.Field),
				slog.Int("length", event.Error.Length),
			)
		}
	}

	a.logger.LogAttrs(context.Background(), level, "capture", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
