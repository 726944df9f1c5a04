package record

import (
	"github.com/brunoga/deep/v3"
)

// Attrs is a plain-data attribute payload: scalar values, nested maps and
// slices. Nested record and collection instances only ever appear as values
// inside a live record's attribute storage, never in an Attrs payload
// produced by serialization.
type Attrs map[string]any

// clone returns a deep copy of the payload.
func (a Attrs) clone() Attrs {
	if a == nil {
		return nil
	}
	return deep.MustCopy(a)
}

// toAttrs coerces a raw nested value into construction data. Non-mapping
// values are treated leniently as empty construction data.
func toAttrs(v any) Attrs {
	switch m := v.(type) {
	case Attrs:
		return m
	case map[string]any:
		return Attrs(m)
	}
	return nil
}

// toAttrsList coerces a raw collection value into per-member construction
// data. Unrecognized shapes yield an empty membership.
func toAttrsList(v any) []Attrs {
	switch s := v.(type) {
	case []Attrs:
		return s
	case []map[string]any:
		items := make([]Attrs, 0, len(s))
		for _, m := range s {
			items = append(items, Attrs(m))
		}
		return items
	case []any:
		items := make([]Attrs, 0, len(s))
		for _, e := range s {
			items = append(items, toAttrs(e))
		}
		return items
	}
	return nil
}
