package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.UTC)
	rec := wire.TradeUpdate{TS: 1, Symbol: wire.NewSymbol("IBM"), Price: -2, Qty: 3, Venue: wire.NewVenue("XNYS")}

	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "input",
			event: Event{
				Timestamp: ts,
				RunID:     "run-1",
				Stage:     StageRead,
				Category:  CategoryInput,
				Source:    "a.bin",
				Input:     NewInputEvent([]byte{1, 2, 3}),
			},
		},
		{
			name: "record",
			event: Event{
				Timestamp: ts,
				RunID:     "run-1",
				Stage:     StageDecode,
				Category:  CategoryRecord,
				Record:    NewRecordEvent(&rec, 41),
			},
		},
		{
			name: "error",
			event: Event{
				Timestamp: ts,
				RunID:     "run-1",
				Stage:     StageDecode,
				Category:  CategoryError,
				Error:     &ErrorEventData{Stage: StageDecode, Message: "buffer too small", Field: "qty", Offset: 28, Width: 8, Length: 30},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encodeEvent(tt.event)
			if err != nil {
				t.Fatalf("encodeEvent failed: %v", err)
			}

			decoded := decodeSingleEvent(t, data)

			if !decoded.Timestamp.Equal(ts) {
				t.Errorf("Timestamp = %v, want %v (nanosecond precision)", decoded.Timestamp, ts)
			}
			if decoded.RunID != tt.event.RunID || decoded.Stage != tt.event.Stage || decoded.Category != tt.event.Category {
				t.Errorf("header mismatch: got %+v", decoded)
			}

			switch {
			case tt.event.Input != nil:
				if decoded.Input == nil || !bytes.Equal(decoded.Input.Digest, tt.event.Input.Digest) {
					t.Errorf("Input = %+v, want %+v", decoded.Input, tt.event.Input)
				}
			case tt.event.Record != nil:
				if decoded.Record == nil || decoded.Record.TradeUpdate() != rec || decoded.Record.Trailing != 1 {
					t.Errorf("Record = %+v, want %+v", decoded.Record, tt.event.Record)
				}
			case tt.event.Error != nil:
				if decoded.Error == nil || *decoded.Error != *tt.event.Error {
					t.Errorf("Error = %+v, want %+v", decoded.Error, tt.event.Error)
				}
			}
		})
	}
}

func TestEncodeEventIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RunID:     "run",
		Record:    &RecordEvent{TS: 5, Symbol: []byte("X"), Venue: []byte("Y")},
	}

	a, err := encodeEvent(event)
	if err != nil {
		t.Fatalf("encodeEvent failed: %v", err)
	}
	b, err := encodeEvent(event)
	if err != nil {
		t.Fatalf("encodeEvent failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestEventDecoderRejectsGarbage(t *testing.T) {
	var event Event
	if err := newEventDecoder(bytes.NewReader([]byte{0xFF, 0x00})).Decode(&event); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}

func TestEventDecoderReadsConcatenatedEvents(t *testing.T) {
	var stream []byte
	for _, id := range []string{"a", "b"} {
		data, err := encodeEvent(Event{RunID: id})
		if err != nil {
			t.Fatalf("encodeEvent failed: %v", err)
		}
		stream = append(stream, data...)
	}

	dec := newEventDecoder(bytes.NewReader(stream))
	for _, want := range []string{"a", "b"} {
		var event Event
		if err := dec.Decode(&event); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if event.RunID != want {
			t.Errorf("RunID = %q, want %q", event.RunID, want)
		}
	}
}

// decodeSingleEvent decodes data, which must hold exactly one event.
func decodeSingleEvent(t *testing.T, data []byte) Event {
	t.Helper()
	dec := newEventDecoder(bytes.NewReader(data))
	var event Event
	if err := dec.Decode(&event); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if dec.NumBytesRead() != len(data) {
		t.Fatalf("decoded %d of %d bytes", dec.NumBytesRead(), len(data))
	}
	return event
}
