package rvalue

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

type (
	EncodeFunc func(value any) ([]byte, error)

	ErrNoEncodeFunc struct {
		ValueType rentry.ObjectType
		Value     any
	}
	ErrValueKind struct {
		ValueType rentry.ObjectType
		Value     any
	}
)

func (r ErrNoEncodeFunc) Error() string {
	return fmt.Sprintf(`no bytes encode function for value type "%s" and value "%v"`, r.ValueType, r.Value)
}

func (r ErrNoEncodeFunc) Is(target error) bool {
	return target == rerr.ErrUnsupportedType
}

func (r ErrValueKind) Error() string {
	return fmt.Sprintf(`value "%v" (%T) cannot be stored as "%s"`, r.Value, r.Value, r.ValueType)
}

func (r ErrValueKind) Is(target error) bool {
	return target == rerr.ErrUnsupportedType
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		if float32(math.Trunc(float64(v))) == v {
			return int64(v), true
		}
	case float64:
		if math.Trunc(v) == v {
			return int64(v), true
		}
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	i, ok := toInt64(value)
	return float64(i), ok
}

func integerEncoder(objectType rentry.ObjectType, width int, put func(bs []byte, v int64)) EncodeFunc {
	return func(value any) ([]byte, error) {
		v, ok := toInt64(value)
		if !ok {
			return nil, ErrValueKind{ValueType: objectType, Value: value}
		}
		bs := make([]byte, width)
		put(bs, v)
		return bs, nil
	}
}

// enumEncoder writes enums of the given size. Values must fit in width
// bytes, read as either signed or unsigned.
func enumEncoder(width int) EncodeFunc {
	put := integerEncoder(rentry.Enum, width, func(bs []byte, v int64) {
		for i := range bs {
			bs[i] = byte(v >> (8 * i))
		}
	})
	return func(value any) ([]byte, error) {
		if v, ok := toInt64(value); ok && width < 8 {
			bits := uint(8 * width)
			if v < -(1<<(bits-1)) || v >= 1<<bits {
				return nil, errors.Wrapf(rerr.ErrInvalidValue, "rvalue: %d does not fit a %d byte enum", v, width)
			}
		}
		return put(value)
	}
}

func encodeBoolean(value any) ([]byte, error) {
	v, ok := value.(bool)
	if !ok {
		return nil, ErrValueKind{ValueType: rentry.Boolean, Value: value}
	}
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func encodeSingle(value any) ([]byte, error) {
	v, ok := toFloat64(value)
	if !ok {
		return nil, ErrValueKind{ValueType: rentry.Single, Value: value}
	}
	return binary.LittleEndian.AppendUint32(nil, math.Float32bits(float32(v))), nil
}

func encodeDouble(value any) ([]byte, error) {
	v, ok := toFloat64(value)
	if !ok {
		return nil, ErrValueKind{ValueType: rentry.Double, Value: value}
	}
	return binary.LittleEndian.AppendUint64(nil, math.Float64bits(v)), nil
}

func stringEncoder(objectType rentry.ObjectType) EncodeFunc {
	return func(value any) ([]byte, error) {
		v, ok := value.(string)
		if !ok {
			return nil, ErrValueKind{ValueType: objectType, Value: value}
		}
		return []byte(v), nil
	}
}

func encodeVector4(value any) ([]byte, error) {
	v, ok := value.(Vector4)
	if !ok {
		floats, isArray := value.([4]float32)
		if !isArray {
			return nil, ErrValueKind{ValueType: rentry.Vector4, Value: value}
		}
		v = floats
	}
	bs := make([]byte, 0, 16)
	for _, f := range v {
		bs = binary.LittleEndian.AppendUint32(bs, math.Float32bits(f))
	}
	return bs, nil
}

var encodeFuncs = map[rentry.ObjectType]EncodeFunc{
	rentry.Enum:          enumEncoder(4),
	rentry.Boolean:       encodeBoolean,
	rentry.Int8:          integerEncoder(rentry.Int8, 1, func(bs []byte, v int64) { bs[0] = byte(v) }),
	rentry.Uint8:         integerEncoder(rentry.Uint8, 1, func(bs []byte, v int64) { bs[0] = byte(v) }),
	rentry.Int16:         integerEncoder(rentry.Int16, 2, func(bs []byte, v int64) { binary.LittleEndian.PutUint16(bs, uint16(v)) }),
	rentry.Uint16:        integerEncoder(rentry.Uint16, 2, func(bs []byte, v int64) { binary.LittleEndian.PutUint16(bs, uint16(v)) }),
	rentry.Int32:         integerEncoder(rentry.Int32, 4, func(bs []byte, v int64) { binary.LittleEndian.PutUint32(bs, uint32(v)) }),
	rentry.Uint32:        integerEncoder(rentry.Uint32, 4, func(bs []byte, v int64) { binary.LittleEndian.PutUint32(bs, uint32(v)) }),
	rentry.Int64:         integerEncoder(rentry.Int64, 8, func(bs []byte, v int64) { binary.LittleEndian.PutUint64(bs, uint64(v)) }),
	rentry.UInt64:        integerEncoder(rentry.UInt64, 8, func(bs []byte, v int64) { binary.LittleEndian.PutUint64(bs, uint64(v)) }),
	rentry.Single:        encodeSingle,
	rentry.Double:        encodeDouble,
	rentry.CString:       stringEncoder(rentry.CString),
	rentry.WCString:      stringEncoder(rentry.WCString),
	rentry.UnicodeString: stringEncoder(rentry.UnicodeString),
	rentry.Vector4:       encodeVector4,
}

// Encode is the inverse of Decode. Integer types accept any Go integer and
// whole floats; values are truncated to the width of objectType.
func Encode(objectType rentry.ObjectType, value any) ([]byte, error) {
	encodeFunc, ok := encodeFuncs[objectType]
	if !ok {
		return nil, ErrNoEncodeFunc{ValueType: objectType, Value: value}
	}
	return encodeFunc(value)
}

// Set replaces the payload of a single value entry. Enums keep their size;
// payloads the decoder would refuse are rejected.
func Set(entry *rentry.ValueEntry, value any) error {
	if entry.ID.HasSubType {
		return errors.Wrapf(rerr.ErrUnsupportedType, "rvalue.Set: %s array is not a scalar", entry.ID.Type)
	}
	encodeFunc := func(value any) ([]byte, error) {
		return Encode(entry.ID.Type, value)
	}
	if entry.ID.Type == rentry.Enum {
		width, _ := PayloadWidth(entry)
		encodeFunc = enumEncoder(width)
	}
	bs, err := encodeFunc(value)
	if err != nil {
		return errors.Wrap(err, "rvalue.Set error")
	}
	if err := rentry.CheckPayload(entry.ID, len(bs)); err != nil {
		return errors.Wrap(err, "rvalue.Set error")
	}
	entry.Data = bs
	return nil
}
