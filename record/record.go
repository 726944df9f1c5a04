package record

import (
	"reflect"

	"github.com/loomworks/weft/internal/clientid"
)

// ClientIDKey is the reserved serialization key carrying the client
// identifier. It is never stored as an attribute and never transmitted in
// create or update payloads.
const ClientIDKey = "cid"

// Record is a mapping from attribute keys to values. Keys declared in the
// type's nested schema hold live *Record or *Collection instances; all other
// keys hold plain data.
type Record struct {
	typ    *Type
	cid    string
	attrs  map[string]any
	errs   map[string][]string
	synced Attrs
	events emitter
}

// New constructs a record of typ. Defaults are applied first, then raw over
// them. Raw is assigned as supplied; callers holding API-shaped payloads
// normalize them through typ.Parse before construction.
func New(typ *Type, raw Attrs) *Record {
	r := &Record{
		typ:   typ,
		cid:   clientid.New(),
		attrs: make(map[string]any),
	}
	if len(typ.Defaults) > 0 {
		r.Set(typ.Defaults.clone())
	}
	if len(raw) > 0 {
		r.Set(raw)
	}
	return r
}

// Type returns the record's type descriptor.
func (r *Record) Type() *Type {
	return r.typ
}

// ClientID returns the record's client identifier. It never changes across
// the record's lifetime.
func (r *Record) ClientID() string {
	return r.cid
}

// Get returns the current value at key. Nested keys return the live nested
// instance by reference; mutating it directly is the supported way to fire
// nested-specific events, and the parent's serialized state reflects the
// mutation.
func (r *Record) Get(key string) any {
	return r.attrs[key]
}

// Has returns true if key currently holds a value.
func (r *Record) Has(key string) bool {
	_, ok := r.attrs[key]
	return ok
}

// On binds h to the named event and returns a function that unbinds it.
func (r *Record) On(event string, h Handler) func() {
	return r.events.on(event, h)
}

// SetOptions configures a Set call.
type SetOptions struct {
	// Unset removes the supplied keys instead of assigning them. Nested
	// reconciliation is skipped entirely on unset; removal defers to the
	// base assignment behavior, so nested state is not synchronized.
	Unset bool
}

// Set assigns the supplied attributes. Keys declared in the nested schema
// are reconciled against existing nested instances (see the merge rules on
// mergeNested); all other keys are stored as plain values, raising
// per-attribute change events. If the full nested-expanded representation
// differs afterwards, a single EventSomeChange is raised carrying a deep
// copy of the originally supplied payload.
func (r *Record) Set(attrs Attrs, opts ...SetOptions) {
	if len(attrs) == 0 {
		return
	}
	var opt SetOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	supplied := plainPayload(attrs)
	before := r.serialize()

	rest := attrs
	if !opt.Unset {
		rest = r.mergeNested(attrs)
	}
	r.baseSet(rest, opt)

	if !reflect.DeepEqual(before, r.serialize()) {
		r.events.emit(EventSomeChange, supplied)
	}
}

// baseSet is the plain assignment mechanism: store or remove values and
// raise per-attribute change events. The reserved client identifier key is
// never stored.
func (r *Record) baseSet(attrs Attrs, opt SetOptions) {
	changed := false
	for k, v := range attrs {
		if k == ClientIDKey {
			continue
		}
		if opt.Unset {
			if _, ok := r.attrs[k]; ok {
				delete(r.attrs, k)
				changed = true
				r.events.emit(EventChangeKey(k), nil)
			}
			continue
		}
		if prev, ok := r.attrs[k]; ok && reflect.DeepEqual(prev, v) {
			continue
		}
		r.attrs[k] = v
		changed = true
		r.events.emit(EventChangeKey(k), Attrs{k: v})
	}
	if changed {
		r.events.emit(EventChange, nil)
	}
}

// ToJSON returns the fully nested-expanded plain-data form of the record,
// including the client identifier under ClientIDKey. The output never
// contains nested instances; every schema key's value is the nested
// instance's own recursive expansion.
func (r *Record) ToJSON() Attrs {
	out := r.serialize()
	out[ClientIDKey] = r.cid
	return out
}

// serialize expands the attributes without the record's own client
// identifier. Nested expansions keep theirs so collection members stay
// addressable in the output.
func (r *Record) serialize() Attrs {
	out := make(Attrs, len(r.attrs))
	for k, v := range r.attrs {
		switch n := v.(type) {
		case *Record:
			out[k] = map[string]any(n.ToJSON())
		case *Collection:
			out[k] = n.toJSONSlice()
		default:
			out[k] = v
		}
	}
	return out
}

// plainPayload deep-copies a supplied payload for event metadata, expanding
// any instance values into plain data first.
func plainPayload(attrs Attrs) Attrs {
	out := make(Attrs, len(attrs))
	for k, v := range attrs {
		switch n := v.(type) {
		case *Record:
			out[k] = map[string]any(n.ToJSON())
		case *Collection:
			out[k] = n.toJSONSlice()
		default:
			out[k] = v
		}
	}
	return out.clone()
}
