package rvalue

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

// Parse reads text typed on a command line as a value of objectType.
// Integers accept a 0x prefix; Vector4 takes four comma separated floats.
func Parse(objectType rentry.ObjectType, text string) (any, error) {
	text = strings.TrimSpace(text)
	switch objectType {
	case rentry.Boolean:
		v, err := strconv.ParseBool(text)
		return v, wrapParse(err, objectType, text)
	case rentry.Enum, rentry.Int8, rentry.Int16, rentry.Int32, rentry.Int64:
		width, _ := Width(objectType)
		v, err := strconv.ParseInt(text, 0, width*8)
		return v, wrapParse(err, objectType, text)
	case rentry.Uint8, rentry.Uint16, rentry.Uint32, rentry.UInt64:
		width, _ := Width(objectType)
		v, err := strconv.ParseUint(text, 0, width*8)
		return v, wrapParse(err, objectType, text)
	case rentry.Single:
		v, err := strconv.ParseFloat(text, 32)
		return float32(v), wrapParse(err, objectType, text)
	case rentry.Double:
		v, err := strconv.ParseFloat(text, 64)
		return v, wrapParse(err, objectType, text)
	case rentry.CString, rentry.WCString, rentry.UnicodeString:
		return text, nil
	case rentry.Vector4:
		parts := strings.Split(text, ",")
		if len(parts) != 4 {
			return nil, errors.Wrapf(rerr.ErrInvalidValue, `rvalue.Parse: "%s" is not four comma separated floats`, text)
		}
		v := Vector4{}
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
			if err != nil {
				return nil, wrapParse(err, objectType, text)
			}
			v[i] = float32(f)
		}
		return v, nil
	}
	return nil, ErrNoEncodeFunc{ValueType: objectType, Value: text}
}

func wrapParse(err error, objectType rentry.ObjectType, text string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(rerr.ErrInvalidValue, `rvalue.Parse: "%s" as %s: %v`, text, objectType, err)
}
