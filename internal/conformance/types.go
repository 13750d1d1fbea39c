// Package conformance loads and runs YAML decode conformance cases.
//
// A case describes an input buffer and the outcome parse-demo must
// produce for it:
//
//	id: TU-DEC-001
//	name: AAPL sample record
//	input:
//	  values: {ts: 1700000000, symbol: AAPL, price: 15075, qty: 100, venue: NYSE}
//	expect:
//	  exit: 0
//	  json: '{"ts":1700000000,"symbol":"AAPL","price":15075,"qty":100,"venue":"NYSE"}'
package conformance

import (
	"fmt"
	"time"

	"github.com/tradewire/tradewire-go/pkg/fixture"
)

// Exit codes a case may expect.
const (
	ExitSuccess      = 0
	ExitDecodeFailed = 4
)

// Case is a single conformance case loaded from YAML.
type Case struct {
	// ID is the unique case identifier (e.g., "TU-DEC-001").
	ID string `yaml:"id"`

	// Name is a human-readable name for the case.
	Name string `yaml:"name"`

	// Description explains what the case checks.
	Description string `yaml:"description,omitempty"`

	// Input describes the buffer to decode.
	Input Input `yaml:"input"`

	// Expect is the required outcome.
	Expect Expect `yaml:"expect"`

	// Tags for categorizing cases.
	Tags []string `yaml:"tags,omitempty"`

	// File is the path the case was loaded from, if any.
	File string `yaml:"-"`
}

// Input describes a buffer either as hex or as TradeUpdate field values.
type Input struct {
	// Hex is the buffer as hex digits. Whitespace is ignored.
	Hex string `yaml:"hex,omitempty"`

	// Values are encoded with the compiled TradeUpdate layout.
	Values fixture.Values `yaml:"values,omitempty"`

	// Truncate cuts the buffer to this many bytes.
	Truncate *int `yaml:"truncate,omitempty"`

	// Append is hex appended after truncation.
	Append string `yaml:"append,omitempty"`
}

// Expect defines the expected outcome of decoding a case's input.
type Expect struct {
	// Exit is the parse-demo exit code: ExitSuccess or ExitDecodeFailed.
	Exit int `yaml:"exit"`

	// JSON is the exact JSON line printed on success, without the newline.
	JSON string `yaml:"json,omitempty"`

	// ErrorField is the field a decode failure must name.
	ErrorField string `yaml:"error_field,omitempty"`
}

// CaseResult is the outcome of running one case.
type CaseResult struct {
	Case *Case

	// Passed is true when every expectation held.
	Passed bool

	// Exit is the exit code parse-demo would have returned.
	Exit int

	// Output is the JSON produced on success.
	Output string

	// Failures lists the expectations that did not hold.
	Failures []string

	// Error is set when the case could not be run at all.
	Error error

	Duration time.Duration
}

// SuiteResult is the outcome of running a set of cases.
type SuiteResult struct {
	SuiteName string
	Results   []*CaseResult
	PassCount int
	FailCount int
	Duration  time.Duration
}

// LoadError provides details about a case loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
