package record

import "reflect"

// Collection is an ordered sequence of records of one element type. It holds
// no nested schema of its own; membership operations are forwarded to the
// element records.
type Collection struct {
	typ     *Type
	records []*Record
}

// NewCollection constructs a collection of elemType, optionally seeded with
// raw member payloads.
func NewCollection(elemType *Type, items ...Attrs) *Collection {
	c := &Collection{typ: elemType}
	if len(items) > 0 {
		c.Set(items)
	}
	return c
}

// Type returns the collection's element type.
func (c *Collection) Type() *Type {
	return c.typ
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return len(c.records)
}

// At returns the member at index i.
func (c *Collection) At(i int) *Record {
	return c.records[i]
}

// Records returns the members in order. The returned slice is a copy; the
// records themselves are the live members.
func (c *Collection) Records() []*Record {
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// ByClientID returns the member with the given client identifier.
func (c *Collection) ByClientID(cid string) (*Record, bool) {
	for _, m := range c.records {
		if m.cid == cid {
			return m, true
		}
	}
	return nil, false
}

// Add appends a member.
func (c *Collection) Add(rec *Record) {
	c.records = append(c.records, rec)
}

// Remove removes a member by identity. Returns false if rec is not a member.
func (c *Collection) Remove(rec *Record) bool {
	for i, m := range c.records {
		if m == rec {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

// Set replaces/merges the membership from raw member payloads. An incoming
// item whose "id" matches an existing member's merges into that member in
// place, preserving its identity; other items construct fresh members.
// Existing members absent from items are removed. The resulting order is
// the input order. Parsing is delegated per item to the element type.
func (c *Collection) Set(items []Attrs) {
	next := make([]*Record, 0, len(items))
	for _, raw := range items {
		parsed := c.typ.parse(raw)
		if m := c.byServerID(parsed["id"]); m != nil {
			m.Set(parsed)
			next = append(next, m)
			continue
		}
		next = append(next, New(c.typ, parsed))
	}
	c.records = next
}

// byServerID returns the member whose "id" attribute equals id, if any.
func (c *Collection) byServerID(id any) *Record {
	if id == nil {
		return nil
	}
	for _, m := range c.records {
		if v, ok := m.attrs["id"]; ok && reflect.DeepEqual(v, id) {
			return m
		}
	}
	return nil
}

// ToJSON returns the members' fully expanded plain-data forms in order.
func (c *Collection) ToJSON() []Attrs {
	out := make([]Attrs, len(c.records))
	for i, m := range c.records {
		out[i] = m.ToJSON()
	}
	return out
}

// toJSONSlice is the serialization shape embedded in a parent record's
// expansion.
func (c *Collection) toJSONSlice() []any {
	out := make([]any, len(c.records))
	for i, m := range c.records {
		out[i] = map[string]any(m.ToJSON())
	}
	return out
}
