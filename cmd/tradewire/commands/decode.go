package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tradewire/tradewire-go/pkg/log"
	"github.com/tradewire/tradewire-go/pkg/render"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// DecodeOptions configures the decode command.
type DecodeOptions struct {
	Capture string // capture file to append events to
	Verbose bool   // log events to stderr
	Files   []string
}

const decodeUsage = `tradewire decode - Decode TradeUpdate records and print them as JSON

Usage:
  tradewire decode [flags] <file>...

Each file holds one record. One JSON line is printed per decoded file.
Every file is attempted. The highest exit code wins: 4 if any file could
not be decoded, then 3 if any file could not be read.
`

// RunDecode runs the decode command.
func RunDecode(args []string, stdout, stderr io.Writer) int {
	opts, err := parseDecodeArgs(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		fmt.Fprint(stderr, decodeUsage)
		return ExitCommandError
	}

	var loggers []log.Logger
	if opts.Capture != "" {
		fl, err := log.NewFileLogger(opts.Capture)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to open capture file: %v\n", err)
			return ExitCommandError
		}
		defer func() {
			if err := fl.Close(); err != nil {
				fmt.Fprintf(stderr, "Error: failed to close capture file: %v\n", err)
			}
		}()
		loggers = append(loggers, fl)
	}
	if opts.Verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
	}

	session := log.NewSession(log.NewMultiLogger(loggers...))
	return decodeFiles(session, opts.Files, stdout, stderr)
}

func decodeFiles(session *log.Session, files []string, stdout, stderr io.Writer) int {
	out := render.NewWriter(stdout)

	code := ExitSuccess
	for _, path := range files {
		buf, err := os.ReadFile(path)
		if err != nil {
			session.Failed(path, log.StageRead, err)
			fmt.Fprintf(stderr, "Failed to read file: %s\n", path)
			code = max(code, ExitReadFailed)
			continue
		}
		session.Input(path, buf)

		rec, err := wire.DecodeTradeUpdate(buf)
		if err != nil {
			session.Failed(path, log.StageDecode, err)
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			code = max(code, ExitDecodeFailed)
			continue
		}
		session.Decoded(path, &rec, len(buf))

		if err := out.Write(&rec); err != nil {
			session.Failed(path, log.StageRender, err)
			fmt.Fprintf(stderr, "Error: failed to write output: %v\n", err)
			return ExitCommandError
		}
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write output: %v\n", err)
		return ExitCommandError
	}
	return code
}

func parseDecodeArgs(args []string, stderr io.Writer) (*DecodeOptions, error) {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, decodeUsage, fs.PrintDefaults) }

	opts := &DecodeOptions{}
	fs.StringVar(&opts.Capture, "capture", "", "Append capture events to this CBOR file")
	fs.BoolVar(&opts.Verbose, "v", false, "Log capture events to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.Files = fs.Args()
	return opts, nil
}
