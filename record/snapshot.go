package record

// LastSynced returns the last confirmed-persisted snapshot, or nil if the
// record has never completed a sync. The returned map is the stored
// snapshot; Reset consumes a copy.
func (r *Record) LastSynced() Attrs {
	return r.synced
}

// markSynced captures a deep plain-data copy of the current expansion as
// the last confirmed-persisted state. Called only on sync confirmation; a
// sync issued and answered around interleaved local mutations snapshots the
// state current at confirmation time.
func (r *Record) markSynced() {
	r.synced = r.serialize().clone()
}

// Reset restores the attribute state to the last confirmed-synced snapshot
// when one exists, otherwise to the type's defaults. Either way the local
// validation-error state is cleared.
func (r *Record) Reset() {
	r.attrs = make(map[string]any)
	r.errs = nil
	if len(r.synced) > 0 {
		r.Set(r.synced.clone())
		return
	}
	if len(r.typ.Defaults) > 0 {
		r.Set(r.typ.Defaults.clone())
	}
}

// Clone constructs a new record of the same type from the current
// plain-data expansion. The clone carries its own client identifier but
// inherits the existing last-synced snapshot rather than starting fresh, so
// its Reset returns to the same confirmed state as the original's.
func (r *Record) Clone() *Record {
	c := New(r.typ, r.serialize())
	if r.synced != nil {
		c.synced = r.synced.clone()
	}
	return c
}
