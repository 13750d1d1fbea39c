package conformance

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Reporter formats and outputs results.
type Reporter interface {
	// ReportSuite reports results for a suite.
	ReportSuite(result *SuiteResult)

	// ReportCase reports results for a single case.
	ReportCase(result *CaseResult)
}

// TextReporter outputs human-readable text reports.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{writer: w, verbose: verbose}
}

// ReportSuite reports suite results in text format.
func (r *TextReporter) ReportSuite(result *SuiteResult) {
	fmt.Fprintf(r.writer, "=== Suite: %s ===\n\n", result.SuiteName)

	for _, cr := range result.Results {
		r.ReportCase(cr)
	}

	fmt.Fprintf(r.writer, "\n--- Summary ---\n")
	fmt.Fprintf(r.writer, "Total:   %d\n", len(result.Results))
	fmt.Fprintf(r.writer, "Passed:  %d\n", result.PassCount)
	fmt.Fprintf(r.writer, "Failed:  %d\n", result.FailCount)
}

// ReportCase reports a single case in text format.
func (r *TextReporter) ReportCase(result *CaseResult) {
	status := "PASS"
	if !result.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(r.writer, "[%s] %s - %s\n", status, result.Case.ID, result.Case.Name)

	if result.Error != nil {
		fmt.Fprintf(r.writer, "       Error: %v\n", result.Error)
	}
	for _, f := range result.Failures {
		fmt.Fprintf(r.writer, "       %s\n", f)
	}
	if r.verbose && result.Output != "" {
		fmt.Fprintf(r.writer, "       Output: %s\n", result.Output)
	}
}

// JSONReporter outputs JSON-formatted reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{writer: w, pretty: pretty}
}

// JSONSuiteResult is the JSON representation of suite results.
type JSONSuiteResult struct {
	SuiteName string           `json:"suite_name"`
	Duration  string           `json:"duration"`
	Total     int              `json:"total"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Cases     []JSONCaseResult `json:"cases"`
}

// JSONCaseResult is the JSON representation of a case result.
type JSONCaseResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Exit     int      `json:"exit"`
	Output   string   `json:"output,omitempty"`
	Error    string   `json:"error,omitempty"`
	Failures []string `json:"failures,omitempty"`
}

// ReportSuite reports suite results in JSON format.
func (r *JSONReporter) ReportSuite(result *SuiteResult) {
	jr := JSONSuiteResult{
		SuiteName: result.SuiteName,
		Duration:  result.Duration.Round(time.Microsecond).String(),
		Total:     len(result.Results),
		Passed:    result.PassCount,
		Failed:    result.FailCount,
		Cases:     make([]JSONCaseResult, 0, len(result.Results)),
	}
	for _, cr := range result.Results {
		jr.Cases = append(jr.Cases, caseToJSON(cr))
	}
	r.writeJSON(jr)
}

// ReportCase reports a single case in JSON format.
func (r *JSONReporter) ReportCase(result *CaseResult) {
	r.writeJSON(caseToJSON(result))
}

func caseToJSON(result *CaseResult) JSONCaseResult {
	jr := JSONCaseResult{
		ID:       result.Case.ID,
		Name:     result.Case.Name,
		Status:   "failed",
		Exit:     result.Exit,
		Output:   result.Output,
		Failures: result.Failures,
	}
	if result.Passed {
		jr.Status = "passed"
	}
	if result.Error != nil {
		jr.Error = result.Error.Error()
	}
	return jr
}

func (r *JSONReporter) writeJSON(v any) {
	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		fmt.Fprintf(r.writer, `{"error": %q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(r.writer, string(data))
}

var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)
