package conformance

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tradewire/tradewire-go/pkg/fixture"
	"github.com/tradewire/tradewire-go/pkg/render"
	"github.com/tradewire/tradewire-go/pkg/schema"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Bytes builds the input buffer.
func (in *Input) Bytes() ([]byte, error) {
	var buf []byte
	var err error
	if in.Values != nil {
		buf, err = fixture.Encode(schema.TradeUpdate(), in.Values)
	} else {
		buf, err = decodeHex(in.Hex)
	}
	if err != nil {
		return nil, err
	}

	if in.Truncate != nil {
		n := *in.Truncate
		if n > len(buf) {
			return nil, fmt.Errorf("truncate %d exceeds buffer length %d", n, len(buf))
		}
		buf = buf[:n]
	}

	if in.Append != "" {
		extra, err := decodeHex(in.Append)
		if err != nil {
			return nil, err
		}
		buf = append(buf, extra...)
	}
	return buf, nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// RunCase decodes the case's input and checks it against the expectations.
func RunCase(c *Case) *CaseResult {
	start := time.Now()
	result := &CaseResult{Case: c}
	defer func() { result.Duration = time.Since(start) }()

	buf, err := c.Input.Bytes()
	if err != nil {
		result.Error = fmt.Errorf("building input: %w", err)
		return result
	}

	rec, err := wire.DecodeTradeUpdate(buf)
	if err != nil {
		result.Exit = ExitDecodeFailed
	} else {
		result.Exit = ExitSuccess
		result.Output = string(render.AppendJSON(nil, &rec))
	}

	if result.Exit != c.Expect.Exit {
		result.fail("exit: expected %d, got %d", c.Expect.Exit, result.Exit)
	}
	if c.Expect.JSON != "" && result.Exit == ExitSuccess && result.Output != c.Expect.JSON {
		result.fail("json: expected %s, got %s", c.Expect.JSON, result.Output)
	}
	if c.Expect.ErrorField != "" && err != nil {
		var decErr *wire.DecodeError
		switch {
		case !errors.As(err, &decErr):
			result.fail("error_field: expected %s, got untyped error %v", c.Expect.ErrorField, err)
		case decErr.Field != c.Expect.ErrorField:
			result.fail("error_field: expected %s, got %s", c.Expect.ErrorField, decErr.Field)
		}
	}

	result.Passed = len(result.Failures) == 0
	return result
}

func (r *CaseResult) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// RunSuite runs every case in order.
func RunSuite(name string, cases []*Case) *SuiteResult {
	start := time.Now()
	suite := &SuiteResult{SuiteName: name}
	for _, c := range cases {
		r := RunCase(c)
		suite.Results = append(suite.Results, r)
		if r.Passed {
			suite.PassCount++
		} else {
			suite.FailCount++
		}
	}
	suite.Duration = time.Since(start)
	return suite
}
