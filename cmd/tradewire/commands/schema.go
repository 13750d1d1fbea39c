package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/tradewire/tradewire-go/pkg/schema"
)

const diffUsage = `tradewire diff - Report layout changes between two schemas

Usage:
  tradewire diff <old-schema> <new-schema>
`

const checkUsage = `tradewire check - Compare a schema with the compiled TradeUpdate layout

Usage:
  tradewire check <schema>

Exit code 1 if the schema and the compiled layout differ, including a
different message name.
`

// RunDiff runs the diff command.
func RunDiff(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, diffUsage, nil) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Error: two schema files required")
		fs.Usage()
		return ExitCommandError
	}

	from, err := schema.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	to, err := schema.Load(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	fmt.Fprintln(stdout, schema.Compare(from, to).Pretty())
	return ExitSuccess
}

// RunCheck runs the check command.
func RunCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, checkUsage, nil) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: schema file required")
		fs.Usage()
		return ExitCommandError
	}

	s, err := schema.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}

	diff := schema.Compare(schema.TradeUpdate(), s)
	if diff.Empty() && !diff.Renamed() {
		fmt.Fprintf(stdout, "OK: %s matches the compiled layout\n", fs.Arg(0))
		return ExitSuccess
	}
	fmt.Fprintln(stdout, diff.Pretty())
	return ExitDrift
}
