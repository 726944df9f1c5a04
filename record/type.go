package record

// Kind identifies how a schema entry manages its attribute data.
type Kind int

const (
	// KindRecord marks an attribute managed by a single nested Record.
	KindRecord Kind = iota

	// KindCollection marks an attribute managed by an ordered Collection.
	KindCollection
)

// NestedField is one schema entry: an attribute key and the type responsible
// for managing its data.
type NestedField struct {
	// Key is the attribute key the entry manages.
	Key string

	// Kind selects record-valued or collection-valued management.
	Kind Kind

	// Type is the managed record type. For KindCollection it is the element
	// type of the collection.
	Type *Type
}

// Type describes a concrete record type.
type Type struct {
	// Name identifies the type (e.g. "customer"). Used by persistence
	// layers to route payloads and by the type registry.
	Name string

	// Defaults are applied at construction and by Reset when no confirmed
	// sync snapshot exists.
	Defaults Attrs

	// Nested declares which attribute keys are managed by nested record or
	// collection instances. May be empty. The schema is fixed at type
	// declaration; instances never re-derive it.
	Nested []NestedField

	// Parse normalizes a raw API-shaped payload before it is merged into a
	// record of this type. Nil means identity. Parse must not mutate its
	// argument.
	Parse func(Attrs) Attrs

	// Validate reports local validation failures as a map from attribute
	// key to error messages. A nil func or nil result means the record is
	// valid. The engine consumes only the outcome; the rules themselves
	// live with the caller.
	Validate func(*Record) map[string][]string
}

// parse applies the type's parse step when one is declared.
func (t *Type) parse(raw Attrs) Attrs {
	if t.Parse == nil || raw == nil {
		return raw
	}
	return t.Parse(raw)
}

// field returns the schema entry for key, if declared.
func (t *Type) field(key string) (NestedField, bool) {
	for _, f := range t.Nested {
		if f.Key == key {
			return f, true
		}
	}
	return NestedField{}, false
}
