package log

// MultiLogger fans events out to several loggers, for example a SlogAdapter
// for the console and a FileLogger for the capture file.
type MultiLogger []Logger

// NewMultiLogger returns a MultiLogger over the non-nil loggers.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	m := make(MultiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

// Log sends the event to every logger in order.
func (m MultiLogger) Log(event Event) {
	for _, l := range m {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = MultiLogger(nil)
