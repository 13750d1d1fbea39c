package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tradewire/tradewire-go/pkg/inspect"
)

const inspectUsage = `tradewire inspect - Show a record buffer field by field

Usage:
  tradewire inspect [flags] <file>

Short buffers are shown up to the field that ran out.
Exit code 4 if the buffer is too short to decode.
`

// RunInspect runs the inspect command.
func RunInspect(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, inspectUsage, fs.PrintDefaults) }
	noHex := fs.Bool("no-hex", false, "Omit the raw bytes column")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one file required")
		fmt.Fprint(stderr, inspectUsage)
		return ExitCommandError
	}

	path := fs.Arg(0)
	buf, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read file: %s\n", path)
		return ExitReadFailed
	}

	formatter := inspect.NewFormatter()
	formatter.ShowHex = !*noHex

	report := inspect.InspectTradeUpdate(buf)
	if err := formatter.Write(stdout, report); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write output: %v\n", err)
		return ExitCommandError
	}
	if !report.Complete() {
		return ExitDecodeFailed
	}
	return ExitSuccess
}
