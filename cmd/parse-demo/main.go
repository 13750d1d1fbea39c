// Command parse-demo reads a binary TradeUpdate fixture, decodes it and
// prints the record as a single line of JSON.
//
// Usage:
//
//	parse-demo <fixture.bin>
//
// Exit codes:
//
//	0  record printed
//	2  wrong number of arguments
//	3  the file could not be read
//	4  the buffer could not be decoded
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tradewire/tradewire-go/pkg/render"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

const (
	exitSuccess     = 0
	exitWriteFailed = 1
	exitUsage       = 2
	exitReadFailed  = 3
	exitParseFailed = 4
)

const usage = `parse-demo <fixture.bin>
Reads a binary fixture, parses TradeUpdate, prints JSON.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 && args[0] == "--help" {
		fmt.Fprint(stdout, usage)
		return exitSuccess
	}
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: parse-demo <fixture.bin>")
		return exitUsage
	}

	path := args[0]
	buf, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read file: %s\n", path)
		return exitReadFailed
	}

	rec, err := wire.DecodeTradeUpdate(buf)
	if err != nil {
		fmt.Fprintln(stderr, "Parse failed (buffer too small or invalid)")
		return exitParseFailed
	}

	if err := render.WriteJSON(stdout, &rec); err != nil {
		fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
		return exitWriteFailed
	}
	return exitSuccess
}
