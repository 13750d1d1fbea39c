package log

import (
	"errors"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

// MaxInputData is the number of leading input bytes kept in an InputEvent.
const MaxInputData = 64

// Event is a capture event. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the tool invocation (UUID).
	RunID string `cbor:"2,keyasint"`

	// Stage where the event was captured.
	Stage Stage `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Source names the input, usually a file path.
	Source string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Input  *InputEvent     `cbor:"6,keyasint,omitempty"` // Read stage
	Record *RecordEvent    `cbor:"7,keyasint,omitempty"` // Decode stage
	Error  *ErrorEventData `cbor:"8,keyasint,omitempty"` // Any stage
}

// Stage is the processing step an event belongs to.
type Stage uint8

const (
	// StageRead is loading the input buffer.
	StageRead Stage = 0
	// StageDecode is decoding the buffer into a record.
	StageDecode Stage = 1
	// StageRender is writing the record out.
	StageRender Stage = 2
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageRead:
		return "READ"
	case StageDecode:
		return "DECODE"
	case StageRender:
		return "RENDER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryInput indicates an input buffer was loaded.
	CategoryInput Category = 0
	// CategoryRecord indicates a record was decoded.
	CategoryRecord Category = 1
	// CategoryError indicates a failure.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "INPUT"
	case CategoryRecord:
		return "RECORD"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// InputEvent describes an input buffer.
type InputEvent struct {
	// Size is the buffer length in bytes.
	Size int `cbor:"1,keyasint"`

	// Digest is the BLAKE2b-256 digest of the whole buffer.
	Digest []byte `cbor:"2,keyasint"`

	// Data holds the leading bytes of the buffer, at most MaxInputData.
	Data []byte `cbor:"3,keyasint,omitempty"`

	// Truncated indicates Data is shorter than the buffer.
	Truncated bool `cbor:"4,keyasint,omitempty"`
}

// NewInputEvent describes buf. Data is copied.
func NewInputEvent(buf []byte) *InputEvent {
	sum := blake2b.Sum256(buf)
	n := min(len(buf), MaxInputData)
	return &InputEvent{
		Size:      len(buf),
		Digest:    sum[:],
		Data:      append([]byte(nil), buf[:n]...),
		Truncated: n < len(buf),
	}
}

// RecordEvent holds the fields of a decoded TradeUpdate.
type RecordEvent struct {
	TS     uint64 `cbor:"1,keyasint"`
	Symbol []byte `cbor:"2,keyasint"`
	Price  int64  `cbor:"3,keyasint"`
	Qty    uint64 `cbor:"4,keyasint"`
	Venue  []byte `cbor:"5,keyasint"`

	// Trailing is the number of input bytes past the record that were ignored.
	Trailing int `cbor:"6,keyasint,omitempty"`
}

// NewRecordEvent captures rec, decoded from an input of size bytes.
func NewRecordEvent(rec *wire.TradeUpdate, size int) *RecordEvent {
	return &RecordEvent{
		TS:       rec.TS,
		Symbol:   append([]byte(nil), rec.Symbol[:]...),
		Price:    rec.Price,
		Qty:      rec.Qty,
		Venue:    append([]byte(nil), rec.Venue[:]...),
		Trailing: max(size-wire.TradeUpdateSize, 0),
	}
}

// TradeUpdate rebuilds the captured record.
func (r *RecordEvent) TradeUpdate() wire.TradeUpdate {
	rec := wire.TradeUpdate{TS: r.TS, Price: r.Price, Qty: r.Qty}
	copy(rec.Symbol[:], r.Symbol)
	copy(rec.Venue[:], r.Venue)
	return rec
}

// ErrorEventData captures a failure at any stage.
type ErrorEventData struct {
	// Stage where the error occurred.
	Stage Stage `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Field is the field that did not fit, for decode failures.
	Field string `cbor:"3,keyasint,omitempty"`

	// Offset and Width locate Field in the record.
	Offset int `cbor:"4,keyasint,omitempty"`
	Width  int `cbor:"5,keyasint,omitempty"`

	// Length is the number of bytes that were available.
	Length int `cbor:"6,keyasint,omitempty"`
}

// NewErrorEvent describes err. Decode errors carry the failing field.
func NewErrorEvent(stage Stage, err error) *ErrorEventData {
	data := &ErrorEventData{Stage: stage, Message: err.Error()}
	var decErr *wire.DecodeError
	if errors.As(err, &decErr) {
		data.Field = decErr.Field
		data.Offset = decErr.Offset
		data.Width = decErr.Width
		data.Length = decErr.Length
	}
	return data
}
