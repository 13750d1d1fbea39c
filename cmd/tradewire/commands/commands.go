// Package commands implements the tradewire CLI commands.
//
// Commands that map to exit codes take their arguments and output streams
// and return the code; the capture log commands return errors like the
// other file-based tools.
package commands

import (
	"fmt"
	"io"
)

// Exit codes shared by the commands. Read and decode failures use the same
// codes as parse-demo.
const (
	ExitSuccess      = 0
	ExitCommandError = 1
	ExitDrift        = 1
	ExitReadFailed   = 3
	ExitDecodeFailed = 4
)

func printUsage(w io.Writer, text string, defaults func()) {
	fmt.Fprint(w, text)
	if defaults != nil {
		fmt.Fprintln(w, "\nFlags:")
		defaults()
	}
}
