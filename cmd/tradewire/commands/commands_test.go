package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

const (
	schemasDir  = "../../../schemas"
	fixturesDir = "../../../fixtures"
)

const aaplJSON = `{"ts":1700000000,"symbol":"AAPL","price":15075,"qty":100,"venue":"NYSE"}`

func aaplRecord() wire.TradeUpdate {
	return wire.TradeUpdate{
		TS:     1700000000,
		Symbol: wire.NewSymbol("AAPL"),
		Price:  15075,
		Qty:    100,
		Venue:  wire.NewVenue("NYSE"),
	}
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeRecordFile(t *testing.T, name string, size int) string {
	t.Helper()
	rec := aaplRecord()
	buf := wire.EncodeTradeUpdate(&rec)
	if size > len(buf) {
		buf = append(buf, make([]byte, size-len(buf))...)
	}
	return writeTempFile(t, name, buf[:size])
}
