package commands

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tradewire/tradewire-go/pkg/inspect"
	"github.com/tradewire/tradewire-go/pkg/log"
	"github.com/tradewire/tradewire-go/pkg/render"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Shell is an interactive prompt for decoding and encoding records.
type Shell struct {
	rl        *readline.Instance
	out       io.Writer
	session   *log.Session
	formatter *inspect.Formatter

	// last is the most recently loaded buffer.
	last []byte
}

// NewShell creates a Shell reading from the terminal.
func NewShell(session *log.Session) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tradewire> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := newShell(rl.Stdout(), session)
	s.rl = rl
	return s, nil
}

func newShell(out io.Writer, session *log.Session) *Shell {
	if session == nil {
		session = log.NewSession(nil)
	}
	return &Shell{
		out:       out,
		session:   session,
		formatter: inspect.NewFormatter(),
	}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		if !s.Exec(line) {
			return
		}
	}
}

// Exec runs one command line. It returns false when the shell should exit.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "hex", "x":
		s.cmdHex(args)
	case "load", "l":
		s.cmdLoad(args)
	case "inspect", "i":
		s.cmdInspect()
	case "encode", "e":
		s.cmdEncode(args)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
TradeUpdate Shell Commands:
  hex <bytes>                          - Decode hex bytes (spaces allowed)
  load <path>                          - Decode a binary file
  inspect                              - Show the last buffer field by field
  encode <ts> <symbol> <price> <qty> <venue>
                                       - Print the hex encoding of a record
  help                                 - Show this help
  quit                                 - Exit the shell`)
}

func (s *Shell) cmdHex(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: hex <bytes>")
		return
	}
	buf, err := hex.DecodeString(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid hex: %v\n", err)
		return
	}
	s.decode("hex", buf)
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: load <path>")
		return
	}
	buf, err := os.ReadFile(args[0])
	if err != nil {
		s.session.Failed(args[0], log.StageRead, err)
		fmt.Fprintf(s.out, "Failed to read file: %s\n", args[0])
		return
	}
	s.decode(args[0], buf)
}

func (s *Shell) decode(source string, buf []byte) {
	s.last = buf
	s.session.Input(source, buf)

	rec, err := wire.DecodeTradeUpdate(buf)
	if err != nil {
		s.session.Failed(source, log.StageDecode, err)
		fmt.Fprintf(s.out, "Decode failed: %v\n", err)
		return
	}
	s.session.Decoded(source, &rec, len(buf))
	if err := render.WriteJSON(s.out, &rec); err != nil {
		s.session.Failed(source, log.StageRender, err)
	}
}

func (s *Shell) cmdInspect() {
	if s.last == nil {
		fmt.Fprintln(s.out, "No buffer loaded (use hex or load)")
		return
	}
	_ = s.formatter.Write(s.out, inspect.InspectTradeUpdate(s.last))
}

func (s *Shell) cmdEncode(args []string) {
	if len(args) != 5 {
		fmt.Fprintln(s.out, "Usage: encode <ts> <symbol> <price> <qty> <venue>")
		return
	}
	ts, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid ts: %s\n", args[0])
		return
	}
	price, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid price: %s\n", args[2])
		return
	}
	qty, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid qty: %s\n", args[3])
		return
	}

	rec := wire.TradeUpdate{
		TS:     ts,
		Symbol: wire.NewSymbol(args[1]),
		Price:  price,
		Qty:    qty,
		Venue:  wire.NewVenue(args[4]),
	}
	buf := wire.EncodeTradeUpdate(&rec)
	s.last = buf
	fmt.Fprintln(s.out, hex.EncodeToString(buf))
}

const shellUsage = `tradewire shell - Interactive TradeUpdate decoder

Usage:
  tradewire shell [flags]
`

// RunShell runs the interactive shell.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, shellUsage, fs.PrintDefaults) }
	capture := fs.String("capture", "", "Append capture events to this CBOR file")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitCommandError
	}

	var logger log.Logger = log.NoopLogger{}
	if *capture != "" {
		fl, err := log.NewFileLogger(*capture)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to open capture file: %v\n", err)
			return ExitCommandError
		}
		defer fl.Close()
		logger = fl
	}

	shell, err := NewShell(log.NewSession(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	shell.Run()
	fmt.Fprintln(stdout)
	return ExitSuccess
}
