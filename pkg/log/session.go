package log

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Session stamps events with a run ID and timestamp before passing them to
// a Logger. One tool invocation uses one Session.
type Session struct {
	logger Logger
	runID  string
	now    func() time.Time
}

// NewSession creates a Session with a fresh run ID. A nil logger discards
// events.
func NewSession(logger Logger) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		logger: logger,
		runID:  uuid.NewString(),
		now:    time.Now,
	}
}

// RunID returns the session's run ID.
func (s *Session) RunID() string {
	return s.runID
}

// Input records that buf was loaded from source.
func (s *Session) Input(source string, buf []byte) {
	s.log(Event{
		Stage:    StageRead,
		Category: CategoryInput,
		Source:   source,
		Input:    NewInputEvent(buf),
	})
}

// Decoded records a successful decode of an input of size bytes.
func (s *Session) Decoded(source string, rec *wire.TradeUpdate, size int) {
	s.log(Event{
		Stage:    StageDecode,
		Category: CategoryRecord,
		Source:   source,
		Record:   NewRecordEvent(rec, size),
	})
}

// Failed records err at stage.
func (s *Session) Failed(source string, stage Stage, err error) {
	s.log(Event{
		Stage:    stage,
		Category: CategoryError,
		Source:   source,
		Error:    NewErrorEvent(stage, err),
	})
}

func (s *Session) log(event Event) {
	event.Timestamp = s.now()
	event.RunID = s.runID
	s.logger.Log(event)
}
