package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

const schemasDir = "../../schemas"

func TestParseMinimalSchema(t *testing.T) {
	s, err := Parse([]byte(`
message: Tick
fields:
  - name: ts
    type: u64
  - name: code
    type: char[3]
    scale: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "Tick", s.Message)
	assert.Equal(t, EndiannessLittle, s.Endianness, "endianness defaults to little")
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "code", s.Fields[1].Name)
	require.NotNil(t, s.Fields[1].Scale)
	assert.Equal(t, 2, *s.Fields[1].Scale)
	assert.Nil(t, s.Fields[0].Scale)

	size, err := s.WireSize()
	require.NoError(t, err)
	assert.Equal(t, 11, size)
}

func TestParseRejectsInvalidSchemas(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing message",
			yaml:    "fields:\n  - {name: a, type: u64}\n",
			wantErr: "message",
		},
		{
			name:    "blank message",
			yaml:    "message: \"   \"\nfields:\n  - {name: a, type: u64}\n",
			wantErr: "message",
		},
		{
			name:    "blank field name",
			yaml:    "message: M\nfields:\n  - {name: \" \", type: u64}\n",
			wantErr: "index 0",
		},
		{
			name:    "blank field type",
			yaml:    "message: M\nfields:\n  - {name: a, type: \"  \"}\n",
			wantErr: "no type",
		},
		{
			name:    "big endian",
			yaml:    "message: M\nendianness: big\nfields:\n  - {name: a, type: u64}\n",
			wantErr: "endianness",
		},
		{
			name:    "no fields",
			yaml:    "message: M\nfields: []\n",
			wantErr: "at least one field",
		},
		{
			name:    "unnamed field",
			yaml:    "message: M\nfields:\n  - {type: u64}\n",
			wantErr: "index 0",
		},
		{
			name:    "missing type",
			yaml:    "message: M\nfields:\n  - {name: a}\n",
			wantErr: "no type",
		},
		{
			name:    "duplicate field",
			yaml:    "message: M\nfields:\n  - {name: a, type: u64}\n  - {name: a, type: i64}\n",
			wantErr: "duplicate",
		},
		{
			name:    "unsupported type",
			yaml:    "message: M\nfields:\n  - {name: a, type: f64}\n",
			wantErr: "unsupported type",
		},
		{
			name:    "zero length char",
			yaml:    "message: M\nfields:\n  - {name: a, type: \"char[0]\"}\n",
			wantErr: "unsupported type",
		},
		{
			name:    "non-integer scale",
			yaml:    "message: M\nfields:\n  - {name: a, type: i64, scale: high}\n",
			wantErr: "parsing schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadYAMLAndJSONAgree(t *testing.T) {
	fromYAML, err := Load(filepath.Join(schemasDir, "trade_v2.yaml"))
	require.NoError(t, err)
	fromJSON, err := Load(filepath.Join(schemasDir, "trade_v2.json"))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayoutMatchesCompiledTradeUpdate(t *testing.T) {
	s, err := Load(filepath.Join(schemasDir, "trade_v2.yaml"))
	require.NoError(t, err)

	layout, err := s.Layout()
	require.NoError(t, err)
	assert.Equal(t, wire.TradeUpdateLayout, layout)

	size, err := s.WireSize()
	require.NoError(t, err)
	assert.Equal(t, wire.TradeUpdateSize, size)
}

func TestFromLayoutRoundTrip(t *testing.T) {
	s := TradeUpdate()
	require.NoError(t, s.Validate())

	assert.Equal(t, "char[12]", s.Fields[wire.FieldSymbol].Type)
	assert.Equal(t, "i64", s.Fields[wire.FieldPrice].Type)

	layout, err := s.Layout()
	require.NoError(t, err)
	assert.Equal(t, wire.TradeUpdateLayout, layout)
}

func TestFieldSpecKinds(t *testing.T) {
	tests := []struct {
		typ   string
		kind  wire.Kind
		width int
	}{
		{"u32", wire.KindUint32, 4},
		{"u64", wire.KindUint64, 8},
		{"i64", wire.KindInt64, 8},
		{"char[1]", wire.KindBytes, 1},
		{"char[12]", wire.KindBytes, 12},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			f := FieldSpec{Name: "f", Type: tt.typ}
			kind, err := f.Kind()
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)

			width, err := f.WireSize()
			require.NoError(t, err)
			assert.Equal(t, tt.width, width)
		})
	}
}
