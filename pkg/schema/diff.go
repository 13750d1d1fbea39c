package schema

import (
	"fmt"
	"slices"
	"strings"
)

// ChangeKind classifies a schema difference.
type ChangeKind uint8

const (
	// ChangeAdded is a field present only in the new schema.
	ChangeAdded ChangeKind = 0

	// ChangeRemoved is a field present only in the old schema.
	ChangeRemoved ChangeKind = 1

	// ChangeType is a field whose type differs.
	ChangeType ChangeKind = 2

	// ChangeReorder is a common field whose position differs.
	ChangeReorder ChangeKind = 3
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "add"
	case ChangeRemoved:
		return "remove"
	case ChangeType:
		return "change"
	case ChangeReorder:
		return "reorder"
	default:
		return "unknown"
	}
}

// Change is one difference between two schemas.
type Change struct {
	Kind ChangeKind
	Text string
}

// Diff is the set of differences between two schemas.
type Diff struct {
	Message string
	Changes []Change
	renamed bool
}

// Empty returns true if the schemas describe the same layout.
// A message rename alone leaves the diff empty.
func (d *Diff) Empty() bool {
	return len(d.Changes) == 0
}

// Renamed returns true if the message name differs between the schemas.
func (d *Diff) Renamed() bool {
	return d.renamed
}

// Pretty formats the diff as a report, one change per line.
func (d *Diff) Pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Message: %s", d.Message)
	if d.Empty() {
		b.WriteString("\n(no changes)")
		return b.String()
	}
	for _, c := range d.Changes {
		b.WriteByte('\n')
		b.WriteString(c.Text)
	}
	return b.String()
}

// Compare reports the differences going from one schema to another: added
// and removed fields, type changes and reordered common fields. Positions are
// 1-indexed. Changes are grouped by kind and sorted by text within a kind.
func Compare(from, to *Schema) *Diff {
	msg := from.Message
	if from.Message != to.Message {
		msg = from.Message + " -> " + to.Message
	}

	var changes []Change

	for _, f := range to.Fields {
		if _, ok := from.FieldByName(f.Name); !ok {
			changes = append(changes, Change{ChangeAdded, fmt.Sprintf("+ added field: %s %s", f.Name, f.Type)})
		}
	}
	for _, f := range from.Fields {
		if _, ok := to.FieldByName(f.Name); !ok {
			changes = append(changes, Change{ChangeRemoved, fmt.Sprintf("- removed field: %s %s", f.Name, f.Type)})
		}
	}
	for _, n := range to.Fields {
		if o, ok := from.FieldByName(n.Name); ok && o.Type != n.Type {
			changes = append(changes, Change{ChangeType, fmt.Sprintf("~ changed field: %s %s -> %s", n.Name, o.Type, n.Type)})
		}
	}

	// Positions are compared over all fields, as in the schema files.
	fromPos := positions(from)
	for ni, n := range to.Fields {
		oi, ok := fromPos[n.Name]
		if ok && oi != ni {
			changes = append(changes, Change{ChangeReorder, fmt.Sprintf("↔ reordered field: %s (%d -> %d)", n.Name, oi+1, ni+1)})
		}
	}

	slices.SortStableFunc(changes, func(a, b Change) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return strings.Compare(a.Text, b.Text)
	})

	return &Diff{Message: msg, Changes: changes, renamed: from.Message != to.Message}
}

func positions(s *Schema) map[string]int {
	pos := make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		pos[f.Name] = i
	}
	return pos
}
