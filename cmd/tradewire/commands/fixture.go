package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/tradewire/tradewire-go/pkg/fixture"
	"github.com/tradewire/tradewire-go/pkg/schema"
)

// FixtureOptions configures the fixture command.
type FixtureOptions struct {
	Schema string // schema file; empty uses the compiled TradeUpdate layout
	Values string
	Output string
}

const fixtureUsage = `tradewire fixture - Write a binary fixture from a value file

Usage:
  tradewire fixture [-schema s.yaml] -values v.yaml -o out.bin
`

// RunFixture runs the fixture command.
func RunFixture(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fixture", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fixtureUsage, fs.PrintDefaults) }

	var opts FixtureOptions
	fs.StringVar(&opts.Schema, "schema", "", "Schema file (default: compiled TradeUpdate layout)")
	fs.StringVar(&opts.Values, "values", "", "YAML file with one value per field (required)")
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}
	if opts.Values == "" || opts.Output == "" {
		fmt.Fprintln(stderr, "Error: -values and -o are required")
		fs.Usage()
		return ExitCommandError
	}

	n, err := writeFixture(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	fmt.Fprintf(stdout, "Wrote %d bytes to %s\n", n, opts.Output)
	return ExitSuccess
}

func writeFixture(opts FixtureOptions) (int, error) {
	s := schema.TradeUpdate()
	if opts.Schema != "" {
		var err error
		if s, err = schema.Load(opts.Schema); err != nil {
			return 0, err
		}
	}
	values, err := fixture.LoadValues(opts.Values)
	if err != nil {
		return 0, err
	}
	if err := fixture.WriteFile(s, values, opts.Output); err != nil {
		return 0, err
	}
	return s.WireSize()
}
