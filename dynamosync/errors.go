package dynamosync

import "errors"

var (
	// ErrNotFound is returned when a read or update addresses an item that
	// doesn't exist.
	ErrNotFound = errors.New("weft: record not found")

	// ErrAlreadyExists is returned when a create hits an existing id.
	ErrAlreadyExists = errors.New("weft: record already exists")

	// ErrMissingID is returned when a payload carries no id attribute.
	ErrMissingID = errors.New("weft: payload has no id attribute")

	// ErrUnknownMethod is returned for a sync method the store doesn't
	// support.
	ErrUnknownMethod = errors.New("weft: unknown sync method")
)
