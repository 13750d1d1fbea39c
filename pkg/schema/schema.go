// Package schema loads declarative descriptions of fixed-layout messages.
//
// A schema names a message, its byte order and an ordered list of fields:
//
//	message: TradeUpdate
//	endianness: little
//	fields:
//	  - name: ts
//	    type: u64
//	  - name: symbol
//	    type: char[12]
//	  - name: price
//	    type: i64
//	    scale: 4
//
// Supported types are u32, u64, i64 and char[N]. Scale is accepted and kept
// but never applied. Schemas are YAML; JSON schema files load unchanged.
//
// Schemas are used for fixtures and drift reports. The decoder itself never
// reads a schema: the TradeUpdate layout is fixed in package wire.
package schema

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tradewire/tradewire-go/pkg/wire"
)

// EndiannessLittle is the only supported byte order.
const EndiannessLittle = "little"

var charTypeRE = regexp.MustCompile(`^char\[(\d+)\]$`)

// Schema describes a fixed-layout message.
type Schema struct {
	Message    string      `yaml:"message"`
	Endianness string      `yaml:"endianness"`
	Fields     []FieldSpec `yaml:"fields"`
}

// FieldSpec describes one field of a schema.
type FieldSpec struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`            // "u32", "u64", "i64", "char[N]"
	Scale *int   `yaml:"scale,omitempty"` // decimal places; informational only
}

// Parse parses and validates a schema from YAML or JSON bytes.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if s.Endianness == "" {
		s.Endianness = EndiannessLittle
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the schema for a message name, supported byte order and a
// non-empty list of uniquely named fields of supported types.
func (s *Schema) Validate() error {
	if strings.TrimSpace(s.Message) == "" {
		return errors.New("schema must have a non-empty message name")
	}
	if s.Endianness != EndiannessLittle {
		return fmt.Errorf("unsupported endianness %q (only %q)", s.Endianness, EndiannessLittle)
	}
	if len(s.Fields) == 0 {
		return errors.New("schema must have at least one field")
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("field at index %d has no name", i)
		}
		if strings.TrimSpace(f.Type) == "" {
			return fmt.Errorf("field %q has no type", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = true

		if _, err := f.WireSize(); err != nil {
			return err
		}
	}
	return nil
}

// Kind returns the wire kind for the field type.
func (f FieldSpec) Kind() (wire.Kind, error) {
	switch f.Type {
	case "u32":
		return wire.KindUint32, nil
	case "u64":
		return wire.KindUint64, nil
	case "i64":
		return wire.KindInt64, nil
	}
	if _, ok := f.CharLen(); ok {
		return wire.KindBytes, nil
	}
	return 0, fmt.Errorf("field %q: unsupported type %q", f.Name, f.Type)
}

// CharLen returns N for a char[N] field.
func (f FieldSpec) CharLen() (int, bool) {
	m := charTypeRE.FindStringSubmatch(f.Type)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// WireSize returns the number of bytes the field occupies on the wire.
func (f FieldSpec) WireSize() (int, error) {
	kind, err := f.Kind()
	if err != nil {
		return 0, err
	}
	if kind == wire.KindBytes {
		n, _ := f.CharLen()
		return n, nil
	}
	return kind.Width(), nil
}

// WireSize returns the total width of the message.
func (s *Schema) WireSize() (int, error) {
	layout, err := s.Layout()
	if err != nil {
		return 0, err
	}
	return layout.Size(), nil
}

// Layout converts the schema to a wire layout with contiguous offsets.
func (s *Schema) Layout() (wire.Layout, error) {
	layout := make(wire.Layout, 0, len(s.Fields))
	offset := 0
	for _, f := range s.Fields {
		kind, err := f.Kind()
		if err != nil {
			return nil, err
		}
		width, err := f.WireSize()
		if err != nil {
			return nil, err
		}
		layout = append(layout, wire.Field{Name: f.Name, Offset: offset, Width: width, Kind: kind})
		offset += width
	}
	return layout, nil
}

// FieldByName returns the named field.
func (s *Schema) FieldByName(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FromLayout describes a compiled wire layout as a schema.
func FromLayout(message string, layout wire.Layout) *Schema {
	s := &Schema{Message: message, Endianness: EndiannessLittle}
	for _, f := range layout {
		typ := f.Kind.String()
		if f.Kind == wire.KindBytes {
			typ = fmt.Sprintf("char[%d]", f.Width)
		}
		s.Fields = append(s.Fields, FieldSpec{Name: f.Name, Type: typ})
	}
	return s
}

// TradeUpdate returns the schema of the compiled wire.TradeUpdate layout.
func TradeUpdate() *Schema {
	return FromLayout("TradeUpdate", wire.TradeUpdateLayout)
}
