package record

// Validate runs the type's validation collaborator and returns its local
// error map. A nil result means the record is valid. Validate reads state
// only; the stored error state is untouched.
func (r *Record) Validate() map[string][]string {
	if r.typ.Validate == nil {
		return nil
	}
	return r.typ.Validate(r)
}

// Errors returns the record's local validation-error state. The map is the
// live state, not a copy.
func (r *Record) Errors() map[string][]string {
	return r.errs
}

// ClearErrors discards the local validation-error state.
func (r *Record) ClearErrors() {
	r.errs = nil
}

// MergeInNestedErrors combines errs with validation failures harvested from
// every nested record and collection attribute, distributes each entry onto
// the node its path addresses, and returns the combined map.
//
// Harvesting runs first: a nested record instance failing validation
// contributes its error map re-keyed under "key."; a failing collection
// member contributes under "key[clientID].". Distribution then walks each
// path, appending the remaining-path entry to every traversed node's error
// state; the final segment lands on the resolved node under its literal
// name. Distribution merges additively, so it must run after harvesting or
// harvesting's own merge would overwrite it.
//
// Must be invoked on the top-level root of a nested tree: interior
// invocation resolves paths against the wrong base. This is a caller
// contract, not enforced at runtime.
//
// A path whose member segment names a missing client identifier, or that
// cannot reach a target node, fails the call with a *PathError. Entries
// already distributed by the same call stand.
func (r *Record) MergeInNestedErrors(errs map[string][]string) (map[string][]string, error) {
	merged := make(map[string][]string, len(errs))
	mergeErrorMaps(merged, errs)
	r.harvestNested(merged)

	for key, msgs := range merged {
		p, err := ParsePath(key)
		if err != nil {
			return nil, err
		}
		if err := r.distribute(p, msgs); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// harvestNested collects validation failures from nested attributes into
// out, path-qualified relative to this record.
func (r *Record) harvestNested(out map[string][]string) {
	for _, f := range r.typ.Nested {
		switch f.Kind {
		case KindRecord:
			child, ok := r.attrs[f.Key].(*Record)
			if !ok {
				continue
			}
			for k, msgs := range child.collectErrors() {
				appendErrors(out, f.Key+"."+k, msgs)
			}
		case KindCollection:
			col, ok := r.attrs[f.Key].(*Collection)
			if !ok {
				continue
			}
			for _, m := range col.records {
				prefix := Segment{Kind: SegmentMember, Key: f.Key, MemberID: m.cid}.String()
				for k, msgs := range m.collectErrors() {
					appendErrors(out, prefix+"."+k, msgs)
				}
			}
		}
	}
}

// collectErrors returns this node's own validation failures plus,
// path-qualified, those of its nested attributes. No distribution happens
// here; that is reserved for the root.
func (r *Record) collectErrors() map[string][]string {
	out := make(map[string][]string)
	mergeErrorMaps(out, r.Validate())
	r.harvestNested(out)
	return out
}

// distribute walks p from this record, appending msgs to every traversed
// node's error state under the path remainder seen from that node. The
// final field segment lands under its literal name.
func (r *Record) distribute(p Path, msgs []string) error {
	node := r
	for rest := p; ; rest = rest[1:] {
		node.appendError(rest.String(), msgs)
		if len(rest) == 1 {
			if rest[0].Kind != SegmentField {
				return &PathError{Path: p, Segment: rest[0], Err: ErrBadPath}
			}
			return nil
		}
		next, err := node.descend(rest[0])
		if err != nil {
			return &PathError{Path: p, Segment: rest[0], Err: err}
		}
		node = next
	}
}

// descend resolves one non-final path segment. A field segment with no
// nested record instance at its key falls back to the current node, so a
// qualified key can still land locally (lenient by contract). Member
// segments fail hard when the collection or the member cannot be found.
func (r *Record) descend(seg Segment) (*Record, error) {
	switch seg.Kind {
	case SegmentField:
		if child, ok := r.attrs[seg.Key].(*Record); ok {
			return child, nil
		}
		return r, nil
	case SegmentMember:
		col, ok := r.attrs[seg.Key].(*Collection)
		if !ok {
			return nil, ErrNotCollection
		}
		m, ok := col.ByClientID(seg.MemberID)
		if !ok {
			return nil, ErrMemberNotFound
		}
		return m, nil
	}
	return nil, ErrBadPath
}

// appendError appends msgs to the local error state under key.
func (r *Record) appendError(key string, msgs []string) {
	if r.errs == nil {
		r.errs = make(map[string][]string)
	}
	r.errs[key] = append(r.errs[key], msgs...)
}

// mergeErrorMaps appends every entry of src into dst.
func mergeErrorMaps(dst, src map[string][]string) {
	for k, msgs := range src {
		appendErrors(dst, k, msgs)
	}
}

// appendErrors appends msgs to dst[key], keeping earlier entries.
func appendErrors(dst map[string][]string, key string, msgs []string) {
	dst[key] = append(dst[key], msgs...)
}
