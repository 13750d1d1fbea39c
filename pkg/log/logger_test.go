package log

import (
	"errors"
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		RunID:     "run-1",
		Stage:     StageRead,
		Category:  CategoryInput,
	}
	logger.Log(event)

	event.Input = NewInputEvent([]byte{1, 2, 3})
	logger.Log(event)

	event.Input = nil
	event.Record = &RecordEvent{TS: 1}
	logger.Log(event)

	event.Record = nil
	event.Error = NewErrorEvent(StageDecode, errors.New("boom"))
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}
