package record

// Registry holds known record types for lookup by name. Stream and
// persistence layers use it to resolve the type behind an incoming payload.
type Registry struct {
	types  []*Type
	byName map[string]*Type
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Type),
	}
}

// Register adds a type to the registry. This should be called during init()
// for each record type an application exposes to remote change feeds.
// Registering a second type under an existing name replaces the first.
func (r *Registry) Register(t *Type) {
	if _, ok := r.byName[t.Name]; ok {
		for i, existing := range r.types {
			if existing.Name == t.Name {
				r.types[i] = t
				break
			}
		}
	} else {
		r.types = append(r.types, t)
	}
	r.byName[t.Name] = t
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns every registered type in registration order.
func (r *Registry) All() []*Type {
	return r.types
}

// Has returns true if a type is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}
