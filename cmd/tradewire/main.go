// Command tradewire is a developer tool for TradeUpdate records: decoding,
// inspection, fixture generation, schema drift checks and capture logs.
//
// Usage:
//
//	tradewire <command> [flags] [args...]
//
// Commands:
//
//	decode   Decode record files and print them as JSON lines
//	inspect  Show a record buffer field by field
//	fixture  Write a binary fixture from a value file
//	diff     Report layout changes between two schemas
//	check    Compare a schema with the compiled layout
//	verify   Run decode conformance cases
//	log      View, export, filter or summarize a capture file
//	shell    Interactive decoder
//
// Examples:
//
//	# Decode fixtures, appending capture events
//	tradewire decode -capture run.tlog fixtures/*.bin
//
//	# Show where a short buffer runs out
//	tradewire inspect short.bin
//
//	# Build a fixture from YAML values
//	tradewire fixture -values fixtures/aapl.yaml -o aapl.bin
//
//	# Check a schema against the compiled layout
//	tradewire check schemas/trade_v2.yaml
//
//	# Run the conformance cases
//	tradewire verify testdata/conformance
//
//	# Show decode failures from a capture file
//	tradewire log view -category error run.tlog
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tradewire/tradewire-go/cmd/tradewire/commands"
)

const version = "0.1.0"

const usage = `tradewire - TradeUpdate record tool

Usage:
  tradewire <command> [flags] [args...]

Commands:
  decode   Decode record files and print them as JSON lines
  inspect  Show a record buffer field by field
  fixture  Write a binary fixture from a value file
  diff     Report layout changes between two schemas
  check    Compare a schema with the compiled layout
  verify   Run decode conformance cases
  log      View, export, filter or summarize a capture file
  shell    Interactive decoder
  version  Show version information

Use "tradewire <command> -help" for more information about a command.
`

const logUsage = `tradewire log - Capture file tools

Usage:
  tradewire log <view|export|filter|stats> [flags] <file.tlog>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return commands.ExitCommandError
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "decode":
		return commands.RunDecode(rest, stdout, stderr)
	case "inspect":
		return commands.RunInspect(rest, stdout, stderr)
	case "fixture":
		return commands.RunFixture(rest, stdout, stderr)
	case "diff":
		return commands.RunDiff(rest, stdout, stderr)
	case "check":
		return commands.RunCheck(rest, stdout, stderr)
	case "verify":
		return commands.RunVerify(rest, stdout, stderr)
	case "log":
		return runLog(rest, stdout, stderr)
	case "shell":
		return commands.RunShell(rest, stdout, stderr)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "tradewire version %s\n", version)
		return commands.ExitSuccess
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return commands.ExitSuccess
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return commands.ExitCommandError
	}
}

func runLog(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, logUsage)
		return commands.ExitCommandError
	}

	var err error
	switch args[0] {
	case "view":
		err = runLogView(args[1:], stdout, stderr)
	case "export":
		err = runLogExport(args[1:], stdout, stderr)
	case "filter":
		err = runLogFilter(args[1:], stdout, stderr)
	case "stats":
		err = runLogStats(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown log command: %s\n", args[0])
		fmt.Fprint(stderr, logUsage)
		return commands.ExitCommandError
	}

	if err == flag.ErrHelp {
		return commands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return commands.ExitCommandError
	}
	return commands.ExitSuccess
}

// filterFlags registers the capture filter flags on fs.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.RunID, "run-id", "", "Filter by run ID")
	fs.StringVar(&opts.Source, "source", "", "Filter by source file")
	fs.StringVar(&opts.Stage, "stage", "", "Filter by stage (read, decode, render)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (input, record, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return opts
}

func newLogFlagSet(name, help string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, help)
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	return fs
}

func capturePath(fs *flag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("capture file path required")
	}
	return fs.Arg(0), nil
}

func runLogView(args []string, stdout, stderr io.Writer) error {
	fs := newLogFlagSet("view", `tradewire log view - View a capture file in human-readable form

Usage:
  tradewire log view [flags] <file.tlog>
`, stderr)
	opts := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := capturePath(fs)
	if err != nil {
		return err
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, stdout)
}

func runLogExport(args []string, stdout, stderr io.Writer) error {
	fs := newLogFlagSet("export", `tradewire log export - Export a capture file to JSON lines or CSV

Usage:
  tradewire log export [flags] <file.tlog>
`, stderr)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := capturePath(fs)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output, stdout)
}

func runLogFilter(args []string, stdout, stderr io.Writer) error {
	fs := newLogFlagSet("filter", `tradewire log filter - Copy matching events to a new capture file

Usage:
  tradewire log filter -o out.tlog [flags] <file.tlog>
`, stderr)
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := capturePath(fs)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}
	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		return err
	}

	n, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Filtered %d events to %s\n", n, *output)
	return nil
}

func runLogStats(args []string, stdout, stderr io.Writer) error {
	fs := newLogFlagSet("stats", `tradewire log stats - Show statistics about a capture file

Usage:
  tradewire log stats <file.tlog>
`, stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := capturePath(fs)
	if err != nil {
		return err
	}
	return commands.RunStats(path, stdout)
}
