package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/tradewire-go/cmd/tradewire/commands"
)

const fixturesDir = "../../fixtures"

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, commands.ExitCommandError, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Commands:")

	stdout.Reset()
	assert.Equal(t, commands.ExitSuccess, run([]string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "tradewire <command>")
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, commands.ExitCommandError, run([]string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Unknown command: frobnicate")
}

func TestRunDecodeDispatch(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"decode", filepath.Join(fixturesDir, "aapl.bin")}, &stdout, &stderr)

	assert.Equal(t, commands.ExitSuccess, code, stderr.String())
	assert.Equal(t, `{"ts":1700000000,"symbol":"AAPL","price":15075,"qty":100,"venue":"NYSE"}`+"\n", stdout.String())
}

func TestRunDecodeShortFixture(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"decode", filepath.Join(fixturesDir, "short.bin")}, &stdout, &stderr)

	assert.Equal(t, commands.ExitDecodeFailed, code)
	assert.Empty(t, stdout.String())
}

func TestRunLogRoundTrip(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "run.tlog")

	var stdout, stderr bytes.Buffer
	run([]string{"decode", "-capture", capture,
		filepath.Join(fixturesDir, "aapl.bin"),
		filepath.Join(fixturesDir, "short.bin"),
	}, &stdout, &stderr)

	stdout.Reset()
	require.Equal(t, commands.ExitSuccess, run([]string{"log", "view", "-category", "error", capture}, &stdout, &stderr), stderr.String())
	assert.Equal(t, 1, strings.Count(stdout.String(), "[run:"))
	assert.Contains(t, stdout.String(), "Field: venue [36,40) of 39 bytes")

	stdout.Reset()
	require.Equal(t, commands.ExitSuccess, run([]string{"log", "stats", capture}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Total Events: 4")

	stdout.Reset()
	require.Equal(t, commands.ExitSuccess, run([]string{"log", "export", "-format", "csv", capture}, &stdout, &stderr))
	assert.Equal(t, 5, strings.Count(stdout.String(), "\n"))

	filtered := filepath.Join(t.TempDir(), "records.tlog")
	stdout.Reset()
	require.Equal(t, commands.ExitSuccess, run([]string{"log", "filter", "-o", filtered, "-category", "record", capture}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Filtered 1 events")

	_, err := os.Stat(filtered)
	assert.NoError(t, err)
}

func TestRunLogErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", []string{"log"}},
		{"unknown subcommand", []string{"log", "tail"}},
		{"missing path", []string{"log", "view"}},
		{"bad stage", []string{"log", "view", "-stage", "parse", "x.tlog"}},
		{"filter without output", []string{"log", "filter", "x.tlog"}},
		{"missing file", []string{"log", "stats", "/nonexistent/x.tlog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, commands.ExitCommandError, run(tt.args, &stdout, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}
