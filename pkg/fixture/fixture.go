// Package fixture builds binary test fixtures from a schema and a value set.
//
// Values are given per field name, typically from a YAML file:
//
//	ts: 1700000000
//	symbol: AAPL
//	price: 15075
//	qty: 100
//	venue: NYSE
//
// Integers are written little-endian. Text values must be ASCII and are
// truncated to the field capacity, then zero-padded. A char[N] value may also
// be a list of byte values.
package fixture

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tradewire/tradewire-go/pkg/schema"
	"github.com/tradewire/tradewire-go/pkg/wire"
)

// Values maps field names to values.
type Values map[string]any

// ParseValues parses a value set from YAML bytes.
func ParseValues(data []byte) (Values, error) {
	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing values: %w", err)
	}
	if v == nil {
		v = Values{}
	}
	return v, nil
}

// LoadValues reads a value set from a YAML file.
func LoadValues(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values %s: %w", path, err)
	}
	return ParseValues(data)
}

// Encode builds the wire bytes for values in schema field order.
// Every schema field needs a value; extra values are ignored.
func Encode(s *schema.Schema, values Values) ([]byte, error) {
	layout, err := s.Layout()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, layout.Size())
	for _, f := range layout {
		raw, ok := values[f.Name]
		if !ok || raw == nil {
			return nil, fmt.Errorf("missing value for %s", f.Name)
		}
		v, err := toValue(f, raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf = wire.AppendField(buf, f, v)
	}
	return buf, nil
}

// WriteFile encodes values and writes them to path, creating parent
// directories as needed.
func WriteFile(s *schema.Schema, values Values, path string) error {
	data, err := Encode(s, values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating fixture dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	return nil
}

// FromTradeUpdate returns the value set describing rec, suitable for Encode
// with schema.TradeUpdate().
func FromTradeUpdate(rec *wire.TradeUpdate) Values {
	values := make(Values, len(wire.TradeUpdateLayout))
	for i, f := range wire.TradeUpdateLayout {
		v := rec.Value(i)
		switch f.Kind {
		case wire.KindInt64:
			values[f.Name] = v.Int
		case wire.KindBytes:
			values[f.Name] = append([]byte(nil), v.Bytes...)
		default:
			values[f.Name] = v.Uint
		}
	}
	return values
}

func toValue(f wire.Field, raw any) (wire.Value, error) {
	switch f.Kind {
	case wire.KindUint32:
		u, err := toUint(raw)
		if err != nil {
			return wire.Value{}, err
		}
		if u > math.MaxUint32 {
			return wire.Value{}, fmt.Errorf("%d does not fit in u32", u)
		}
		return wire.Value{Kind: f.Kind, Uint: u}, nil
	case wire.KindUint64:
		u, err := toUint(raw)
		if err != nil {
			return wire.Value{}, err
		}
		return wire.Value{Kind: f.Kind, Uint: u}, nil
	case wire.KindInt64:
		i, err := toInt(raw)
		if err != nil {
			return wire.Value{}, err
		}
		return wire.Value{Kind: f.Kind, Int: i}, nil
	default:
		b, err := toBytes(raw)
		if err != nil {
			return wire.Value{}, err
		}
		return wire.Value{Kind: wire.KindBytes, Bytes: b}, nil
	}
}

func toUint(raw any) (uint64, error) {
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", raw)
	}
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d does not fit in i64", v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", raw)
	}
}

func toBytes(raw any) ([]byte, error) {
	switch v := raw.(type) {
	case string:
		for i := 0; i < len(v); i++ {
			if v[i] >= 0x80 {
				return nil, fmt.Errorf("non-ASCII text %q", v)
			}
		}
		return []byte(v), nil
	case []byte:
		return v, nil
	case []any:
		b := make([]byte, len(v))
		for i, e := range v {
			n, err := toUint(e)
			if err != nil || n > math.MaxUint8 {
				return nil, fmt.Errorf("byte %d: expected 0-255, got %v", i, e)
			}
			b[i] = byte(n)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("expected text or a byte list, got %T", raw)
	}
}
