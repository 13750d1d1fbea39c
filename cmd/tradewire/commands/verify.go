package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/tradewire/tradewire-go/internal/conformance"
)

const verifyUsage = `tradewire verify - Run decode conformance cases

Usage:
  tradewire verify [flags] <dir>

Loads every .yaml case under dir and checks the decoder and renderer
against it. Exit code 1 if any case fails.
`

// RunVerify runs the verify command.
func RunVerify(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, verifyUsage, fs.PrintDefaults) }
	jsonOut := fs.Bool("json", false, "Output results as JSON")
	verbose := fs.Bool("verbose", false, "Show decoded output for each case")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: case directory required")
		fs.Usage()
		return ExitCommandError
	}

	dir := fs.Arg(0)
	cases, err := conformance.LoadDirectory(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	var reporter conformance.Reporter = conformance.NewTextReporter(stdout, *verbose)
	if *jsonOut {
		reporter = conformance.NewJSONReporter(stdout, *verbose)
	}

	result := conformance.RunSuite(dir, cases)
	reporter.ReportSuite(result)
	if result.FailCount > 0 {
		return ExitCommandError
	}
	return ExitSuccess
}
