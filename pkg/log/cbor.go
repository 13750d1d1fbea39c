package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A capture file is a plain concatenation of CBOR-encoded events with no
// header or framing. Encoding is canonical so identical events produce
// identical bytes.
var (
	captureEncMode cbor.EncMode
	captureDecMode cbor.DecMode
)

func init() {
	var err error

	captureEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR encoder mode: %v", err))
	}

	// Unknown keys are ignored so captures from newer builds stay readable.
	captureDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR decoder mode: %v", err))
	}
}

// encodeEvent returns the capture encoding of a single event.
func encodeEvent(event Event) ([]byte, error) {
	return captureEncMode.Marshal(event)
}

// newEventDecoder returns a decoder for the successive events of a capture
// stream.
func newEventDecoder(r io.Reader) *cbor.Decoder {
	return captureDecMode.NewDecoder(r)
}
