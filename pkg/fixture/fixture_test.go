package fixture

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/tradewire-go/pkg/schema"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

func loadSchema(t *testing.T, name string) *schema.Schema {
	t.Helper()
	s, err := schema.Load(filepath.Join("..", "..", "schemas", name))
	require.NoError(t, err)
	return s
}

func TestEncodeMatchesWireEncoder(t *testing.T) {
	values, err := LoadValues(filepath.Join("..", "..", "fixtures", "aapl.yaml"))
	require.NoError(t, err)

	data, err := Encode(loadSchema(t, "trade_v2.yaml"), values)
	require.NoError(t, err)

	want := wire.TradeUpdate{
		TS:     1700000000,
		Symbol: wire.NewSymbol("AAPL"),
		Price:  15075,
		Qty:    100,
		Venue:  wire.NewVenue("NYSE"),
	}
	assert.Equal(t, wire.EncodeTradeUpdate(&want), data)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Values from the generated-parser round trip: symbol is zero-padded.
	values, err := ParseValues([]byte(`
ts: 1700000000123
symbol: NVDA
price: 123456789
qty: 42
venue: XNAS
`))
	require.NoError(t, err)

	data, err := Encode(schema.TradeUpdate(), values)
	require.NoError(t, err)
	require.Len(t, data, wire.TradeUpdateSize)

	rec, err := wire.DecodeTradeUpdate(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000123), rec.TS)
	assert.Equal(t, wire.NewSymbol("NVDA"), rec.Symbol)
	assert.Equal(t, int64(123456789), rec.Price)
	assert.Equal(t, uint64(42), rec.Qty)
	assert.Equal(t, wire.NewVenue("XNAS"), rec.Venue)
}

func TestFromTradeUpdate(t *testing.T) {
	rec := wire.TradeUpdate{
		TS:     math.MaxUint64,
		Symbol: [wire.SymbolLen]byte{0xFF, 0x01},
		Price:  math.MinInt64,
		Qty:    1,
		Venue:  wire.NewVenue("BATS"),
	}

	data, err := Encode(schema.TradeUpdate(), FromTradeUpdate(&rec))
	require.NoError(t, err)
	assert.Equal(t, wire.EncodeTradeUpdate(&rec), data)
}

func TestEncodeTruncatesAndPadsText(t *testing.T) {
	s, err := schema.Parse([]byte("message: M\nfields:\n  - {name: code, type: \"char[4]\"}\n"))
	require.NoError(t, err)

	data, err := Encode(s, Values{"code": "AB"})
	require.NoError(t, err)
	assert.Equal(t, []byte{'A', 'B', 0, 0}, data)

	data, err = Encode(s, Values{"code": "ABCDEFG"})
	require.NoError(t, err)
	assert.Equal(t, []byte("ABCD"), data)
}

func TestEncodeByteList(t *testing.T) {
	s, err := schema.Parse([]byte("message: M\nfields:\n  - {name: code, type: \"char[3]\"}\n"))
	require.NoError(t, err)

	values, err := ParseValues([]byte("code: [1, 0, 255]\n"))
	require.NoError(t, err)

	data, err := Encode(s, values)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 255}, data)
}

func TestEncodeUint32(t *testing.T) {
	v1 := loadSchema(t, "trade_v1.yaml")

	values := Values{"ts": 1, "price": -2, "symbol": "MSFT", "qty": 7}
	data, err := Encode(v1, values)
	require.NoError(t, err)

	size, err := v1.WireSize()
	require.NoError(t, err)
	require.Len(t, data, size)
	assert.Equal(t, []byte{7, 0, 0, 0}, data[size-4:])
}

func TestEncodeErrors(t *testing.T) {
	v1 := loadSchema(t, "trade_v1.yaml")
	base := func() Values {
		return Values{"ts": 1, "price": 2, "symbol": "MSFT", "qty": 3}
	}

	tests := []struct {
		name    string
		mutate  func(Values)
		wantErr string
	}{
		{"missing field", func(v Values) { delete(v, "qty") }, "missing value for qty"},
		{"null field", func(v Values) { v["ts"] = nil }, "missing value for ts"},
		{"u32 overflow", func(v Values) { v["qty"] = 1 << 32 }, "does not fit in u32"},
		{"negative unsigned", func(v Values) { v["ts"] = -1 }, "negative"},
		{"i64 overflow", func(v Values) { v["price"] = uint64(math.MaxInt64) + 1 }, "does not fit in i64"},
		{"float", func(v Values) { v["price"] = 1.5 }, "expected an integer"},
		{"non-ascii text", func(v Values) { v["symbol"] = "é" }, "non-ASCII"},
		{"bad byte", func(v Values) { v["symbol"] = []any{1, 300} }, "expected 0-255"},
		{"wrong type for text", func(v Values) { v["symbol"] = 12 }, "expected text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := base()
			tt.mutate(values)
			_, err := Encode(v1, values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "fixture.bin")
	values := Values{"ts": 1, "symbol": "A", "price": -1, "qty": 2, "venue": "B"}

	require.NoError(t, WriteFile(schema.TradeUpdate(), values, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rec, err := wire.DecodeTradeUpdate(data)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rec.Price)
}

func TestParseValuesEmpty(t *testing.T) {
	values, err := ParseValues(nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}
