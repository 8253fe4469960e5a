package rentry

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"re-savior/rsave/rerr"
)

// ErrAbsentClassArray is returned for a Class field whose count is the
// 0xFEFEFEFE sentinel. What the game stores after it is not known yet.
var ErrAbsentClassArray = errors.Wrap(rerr.ErrUnsupportedType, "absent class array (count 0xFEFEFEFE)")

type UnsupportedTypeError struct {
	Caller     string
	Name       string
	Type       ObjectType
	HasSubType bool
}

func (r UnsupportedTypeError) Error() string {
	return fmt.Sprintf(
		`%s: type %s (has sub type: %t) of entry "%s" is not supported`,
		r.Caller, r.Type, r.HasSubType, r.Name,
	)
}

func (r UnsupportedTypeError) Is(target error) bool {
	return target == rerr.ErrUnsupportedType
}

func itoa(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}
