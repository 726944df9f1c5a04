package record

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPath is returned when an error path cannot be parsed, or ends
	// on a member segment with no local attribute to assign.
	ErrBadPath = errors.New("weft: malformed error path")

	// ErrNotCollection is returned when a member segment names an attribute
	// that does not hold a collection instance.
	ErrNotCollection = errors.New("weft: attribute is not a collection")

	// ErrMemberNotFound is returned when no member of the addressed
	// collection carries the named client identifier.
	ErrMemberNotFound = errors.New("weft: collection member not found")
)

// PathError reports which resolution step of an error path failed during
// validation-error distribution.
type PathError struct {
	// Path is the full path being distributed.
	Path Path

	// Segment is the segment whose resolution failed.
	Segment Segment

	// Err is the underlying resolution error.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v (segment %q of path %q)", e.Err, e.Segment.String(), e.Path.String())
}

func (e *PathError) Unwrap() error {
	return e.Err
}
