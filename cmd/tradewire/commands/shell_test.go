package commands

import (
	"bytes"
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/tradewire-go/pkg/log"
	"github.com/tradewire/tradewire-go/pkg/log/mocks"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

func aaplHex() string {
	rec := aaplRecord()
	return hex.EncodeToString(wire.EncodeTradeUpdate(&rec))
}

func TestShellHex(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	assert.True(t, s.Exec("hex "+aaplHex()))
	assert.Equal(t, aaplJSON+"\n", out.String())
}

func TestShellHexWithSpaces(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	h := aaplHex()
	assert.True(t, s.Exec("x "+h[:20]+" "+h[20:]))
	assert.Equal(t, aaplJSON+"\n", out.String())
}

func TestShellHexErrors(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	s.Exec("hex zz")
	assert.Contains(t, out.String(), "Invalid hex")

	out.Reset()
	s.Exec("hex 0102")
	assert.Contains(t, out.String(), "Decode failed: buffer too small: field ts")

	out.Reset()
	s.Exec("hex")
	assert.Contains(t, out.String(), "Usage: hex")
}

func TestShellLoad(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	s.Exec("load " + filepath.Join(fixturesDir, "aapl.bin"))
	assert.Equal(t, aaplJSON+"\n", out.String())

	out.Reset()
	s.Exec("load " + filepath.Join(t.TempDir(), "missing.bin"))
	assert.Contains(t, out.String(), "Failed to read file")
}

func TestShellInspect(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	s.Exec("inspect")
	assert.Contains(t, out.String(), "No buffer loaded")

	s.Exec("hex " + aaplHex()[:60])
	out.Reset()
	s.Exec("i")
	assert.Contains(t, out.String(), "incomplete: 30 bytes, field qty needs bytes [28,36)")
}

func TestShellEncode(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	s.Exec("encode 1700000000 AAPL 15075 100 NYSE")
	assert.Equal(t, aaplHex()+"\n", out.String())

	out.Reset()
	s.Exec("encode 1 AAPL notaprice 1 X")
	assert.Contains(t, out.String(), "Invalid price")

	out.Reset()
	s.Exec("encode 1 2")
	assert.Contains(t, out.String(), "Usage: encode")
}

func TestShellQuitAndUnknown(t *testing.T) {
	var out bytes.Buffer
	s := newShell(&out, nil)

	assert.True(t, s.Exec(""))
	assert.True(t, s.Exec("frobnicate"))
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	assert.True(t, s.Exec("help"))
	assert.Contains(t, out.String(), "TradeUpdate Shell Commands")

	for _, cmd := range []string{"quit", "exit", "q", "QUIT"} {
		assert.False(t, s.Exec(cmd), cmd)
	}
}

func TestShellRecordsSession(t *testing.T) {
	logger := mocks.NewMockLogger(t)

	var categories []log.Category
	logger.EXPECT().Log(mock.Anything).Run(func(e log.Event) {
		categories = append(categories, e.Category)
	}).Times(4)

	s := newShell(&bytes.Buffer{}, log.NewSession(logger))
	s.Exec("hex " + aaplHex())
	s.Exec("hex 00")

	require.Len(t, categories, 4)
	assert.Equal(t, []log.Category{
		log.CategoryInput, log.CategoryRecord,
		log.CategoryInput, log.CategoryError,
	}, categories)
}
