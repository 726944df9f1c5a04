package record

// mergeNested reconciles schema-declared keys in attrs against existing
// nested instances and returns the remaining keys for plain assignment.
//
// Per schema key:
//   - an already-typed value (*Record / *Collection) is adopted as-is
//   - plain data for an existing record instance is routed through that
//     instance's parse step and merged in place, preserving its identity
//   - plain data for an existing collection instance replaces/merges its
//     membership
//   - otherwise a fresh instance of the declared type is constructed from
//     the parsed raw data
//
// Keys absent from the schema pass through untouched.
func (r *Record) mergeNested(attrs Attrs) Attrs {
	rest := make(Attrs, len(attrs))
	for k, v := range attrs {
		f, ok := r.typ.field(k)
		if !ok {
			rest[k] = v
			continue
		}
		switch f.Kind {
		case KindRecord:
			r.mergeRecordField(f, v)
		case KindCollection:
			r.mergeCollectionField(f, v)
		}
	}
	return rest
}

func (r *Record) mergeRecordField(f NestedField, v any) {
	if inst, ok := v.(*Record); ok {
		r.adopt(f.Key, inst)
		return
	}
	raw := toAttrs(v)
	if cur, ok := r.attrs[f.Key].(*Record); ok {
		cur.Set(cur.typ.parse(raw))
		return
	}
	r.adopt(f.Key, New(f.Type, f.Type.parse(raw)))
}

func (r *Record) mergeCollectionField(f NestedField, v any) {
	if inst, ok := v.(*Collection); ok {
		r.adopt(f.Key, inst)
		return
	}
	items := toAttrsList(v)
	if cur, ok := r.attrs[f.Key].(*Collection); ok {
		cur.Set(items)
		return
	}
	col := NewCollection(f.Type)
	col.Set(items)
	r.adopt(f.Key, col)
}

// adopt assigns a nested instance to key, raising the per-attribute change
// event when the instance actually changed.
func (r *Record) adopt(key string, inst any) {
	if cur, ok := r.attrs[key]; ok && cur == inst {
		return
	}
	r.attrs[key] = inst
	r.events.emit(EventChangeKey(key), nil)
}
