// Package rvalue converts entry payloads to and from typed Go values.
package rvalue

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

type (
	DecodeFunc func(data []byte) (any, error)
	// Vector4 is the decoded form of a Vector4 payload.
	Vector4 [4]float32
)

// widths holds payload sizes of fixed-size types. Enums are stored with 1,
// 2, 4 or 8 bytes; 4 is the size given to new ones.
var widths = map[rentry.ObjectType]int{
	rentry.Enum:    4,
	rentry.Boolean: 1,
	rentry.Int8:    1,
	rentry.Uint8:   1,
	rentry.Int16:   2,
	rentry.Uint16:  2,
	rentry.Int32:   4,
	rentry.Uint32:  4,
	rentry.Int64:   8,
	rentry.UInt64:  8,
	rentry.Single:  4,
	rentry.Double:  8,
	rentry.Vector4: 16,
}

var decodeFuncs = map[rentry.ObjectType]DecodeFunc{
	rentry.Enum:          decodeEnum,
	rentry.Boolean:       func(bs []byte) (any, error) { return bs[0] == 1, nil },
	rentry.Int8:          func(bs []byte) (any, error) { return int8(bs[0]), nil },
	rentry.Uint8:         func(bs []byte) (any, error) { return bs[0], nil },
	rentry.Int16:         func(bs []byte) (any, error) { return int16(binary.LittleEndian.Uint16(bs)), nil },
	rentry.Uint16:        func(bs []byte) (any, error) { return binary.LittleEndian.Uint16(bs), nil },
	rentry.Int32:         func(bs []byte) (any, error) { return int32(binary.LittleEndian.Uint32(bs)), nil },
	rentry.Uint32:        func(bs []byte) (any, error) { return binary.LittleEndian.Uint32(bs), nil },
	rentry.Int64:         func(bs []byte) (any, error) { return int64(binary.LittleEndian.Uint64(bs)), nil },
	rentry.UInt64:        func(bs []byte) (any, error) { return binary.LittleEndian.Uint64(bs), nil },
	rentry.Single:        func(bs []byte) (any, error) { return math.Float32frombits(binary.LittleEndian.Uint32(bs)), nil },
	rentry.Double:        func(bs []byte) (any, error) { return math.Float64frombits(binary.LittleEndian.Uint64(bs)), nil },
	rentry.CString:       decodeString,
	rentry.WCString:      decodeString,
	rentry.UnicodeString: decodeString,
	rentry.Vector4:       decodeVector4,
}

func decodeEnum(bs []byte) (any, error) {
	switch len(bs) {
	case 1:
		return int8(bs[0]), nil
	case 2:
		return int16(binary.LittleEndian.Uint16(bs)), nil
	case 4:
		return int32(binary.LittleEndian.Uint32(bs)), nil
	case 8:
		return int64(binary.LittleEndian.Uint64(bs)), nil
	}
	return nil, errors.Wrapf(rerr.ErrMalformedInput, "rvalue.decodeEnum: enum payload of %d bytes", len(bs))
}

func decodeString(bs []byte) (any, error) {
	return string(bs), nil
}

func decodeVector4(bs []byte) (any, error) {
	v := Vector4{}
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(bs[i*4:]))
	}
	return v, nil
}

// Decode turns the payload of a value of type objectType into bool, a sized
// integer, float32/float64, string or Vector4.
func Decode(objectType rentry.ObjectType, data []byte) (any, error) {
	decodeFunc, ok := decodeFuncs[objectType]
	if !ok {
		return nil, errors.Wrapf(rerr.ErrUnsupportedType, "rvalue.Decode: no decoder for type %s", objectType)
	}
	if width, fixed := widths[objectType]; fixed && objectType != rentry.Enum && len(data) < width {
		return nil, errors.Wrapf(
			rerr.ErrMalformedInput,
			"rvalue.Decode: %s needs %d bytes, payload has %d",
			objectType, width, len(data),
		)
	}
	return decodeFunc(data)
}

// Get decodes a single value entry.
func Get(entry *rentry.ValueEntry) (any, error) {
	if entry.ID.HasSubType {
		return nil, errors.Wrapf(rerr.ErrUnsupportedType, "rvalue.Get: %s array is not a scalar", entry.ID.Type)
	}
	return Decode(entry.ID.Type, entry.Data)
}

// PayloadWidth is the size the payload of entry must keep. An enum keeps the
// size it was read with.
func PayloadWidth(entry *rentry.ValueEntry) (int, bool) {
	if entry.ID.Type == rentry.Enum && isEnumWidth(len(entry.Data)) {
		return len(entry.Data), true
	}
	return Width(entry.ID.Type)
}

func isEnumWidth(n int) bool {
	return n == 1 || n == 2 || n == 4 || n == 8
}

// Width is the payload size of fixed-size types.
func Width(objectType rentry.ObjectType) (int, bool) {
	width, ok := widths[objectType]
	return width, ok
}
