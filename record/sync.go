package record

import (
	"context"
	"fmt"
)

// Method identifies a remote persistence operation.
type Method string

const (
	MethodCreate Method = "create"
	MethodRead   Method = "read"
	MethodUpdate Method = "update"
	MethodDelete Method = "delete"
)

// Syncer is the remote persistence transport collaborator. Implementations
// receive the record's type name and serialized payload and return any
// remote attribute state (reads return the fetched attributes; writes may
// return nil).
type Syncer interface {
	Sync(ctx context.Context, method Method, typeName string, payload Attrs) (Attrs, error)
}

// SyncOptions configures a Sync call.
type SyncOptions struct {
	// Attrs overrides the attributes to send. When nil the record's full
	// expansion is transmitted.
	Attrs Attrs
}

// Sync persists the record through s. Create and update payloads have the
// client identifier stripped, so client-only bookkeeping never reaches the
// wire; read and delete payloads pass through unmodified. On success a read
// response is parsed and applied, and for create, read and update the
// current expansion is captured as the last-synced snapshot.
func (r *Record) Sync(ctx context.Context, method Method, s Syncer, opts ...SyncOptions) error {
	var opt SyncOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	payload := opt.Attrs.clone()
	if payload == nil {
		payload = r.ToJSON()
	}
	switch method {
	case MethodCreate, MethodUpdate:
		delete(payload, ClientIDKey)
	}

	resp, err := s.Sync(ctx, method, r.typ.Name, payload)
	if err != nil {
		return fmt.Errorf("weft: sync %s %q: %w", method, r.typ.Name, err)
	}

	if method == MethodRead && len(resp) > 0 {
		r.Set(r.typ.parse(resp))
	}
	if method != MethodDelete {
		r.markSynced()
	}
	return nil
}
