// Package rerr holds the error taxonomy shared by the save codec packages.
//
// Call sites wrap one of the sentinels below with context, and callers test
// for the kind of failure with errors.Is.
package rerr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput means the buffer ended early or had a length the
	// format does not allow.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedType means a type/flag combination the codec does not
	// implement.
	ErrUnsupportedType = errors.New("unsupported type")
	ErrNotFound        = errors.New("not found")
	ErrAmbiguousPath   = errors.New("ambiguous path")
	ErrInvalidKey      = errors.New("invalid key")
	// ErrInvalidValue means user supplied text could not be read as a value
	// of the target field's type.
	ErrInvalidValue = errors.New("invalid value")
)

type (
	// PathError reports which segment of an element path failed to resolve.
	PathError struct {
		Path    string
		Segment string
		Matches int
		Err     error
	}
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r PathError) Error() string {
	return fmt.Sprintf(
		`path "%s": segment "%s" matched %d entries: %v`,
		r.Path, r.Segment, r.Matches, r.Err,
	)
}

func (r PathError) Unwrap() error {
	return r.Err
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
