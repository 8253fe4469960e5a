package rentry

import (
	"fmt"

	"github.com/pkg/errors"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rerr"
)

func EncodeID(cursor *lbytes.Cursor, id EntryID) {
	cursor.AlignTo(EntryAlignment)
	cursor.WriteUint32(id.NameHash)
	if id.HasSubType {
		cursor.WriteInt32(SubTypeMarker)
	}
	cursor.WriteInt32(int32(id.Type))
}

func EncodeArrayHeader(cursor *lbytes.Cursor, header ArrayHeader) {
	cursor.WriteInt32(header.HeaderSize)
	cursor.WriteInt32(header.ActualCount)
	cursor.WriteUint32(header.HeaderCount)
}

// Encode writes node and everything nested in it. It mirrors Decode with one
// difference kept from the game's own writer: a single primitive is aligned
// to 8 only when its payload is at least 8 bytes long.
func Encode(cursor *lbytes.Cursor, node Node) error {
	switch n := node.(type) {
	case *ValueEntry:
		return encodeValue(cursor, n)
	case *StringListEntry:
		return encodeStringList(cursor, n)
	case *ArrayEntry:
		return encodeArray(cursor, n)
	case *StructEntry:
		return errors.Wrap(rerr.ErrUnsupportedType, "rentry.Encode: a struct entry can only be written inside its array")
	case nil:
		return errors.Wrap(rerr.ErrMalformedInput, "rentry.Encode: nil node")
	}
	return rerr.ErrUnreachableCode{Caller: "rentry.Encode"}
}

func encodeValue(cursor *lbytes.Cursor, n *ValueEntry) error {
	if n.ID.HasSubType {
		if n.Header == nil || !n.ID.Type.IsPrimitive() {
			return unsupported("rentry.encodeValue", n.ID)
		}
		EncodeID(cursor, n.ID)
		EncodeArrayHeader(cursor, *n.Header)
		cursor.WriteBytes(n.Data)
		return nil
	}

	switch {
	case n.ID.Type.IsPrimitive():
		if err := CheckPayload(n.ID, len(n.Data)); err != nil {
			return err
		}
		EncodeID(cursor, n.ID)
		cursor.WriteUint32(uint32(len(n.Data)))
		if len(n.Data) >= WideAlignment {
			cursor.AlignTo(WideAlignment)
		}
		cursor.WriteBytes(n.Data)
	case n.ID.Type == UnicodeString:
		encoded, err := lbytes.EncodeString(lbytes.UTF16LE, string(n.Data))
		if err != nil {
			return errors.Wrap(err, "rentry.encodeValue error")
		}
		EncodeID(cursor, n.ID)
		cursor.WriteUint32(uint32(len(encoded) / 2))
		cursor.WriteBytes(encoded)
	case n.ID.Type == Vector4:
		EncodeID(cursor, n.ID)
		cursor.WriteUint32(uint32(len(n.Data)))
		cursor.AlignTo(Vector4Alignment)
		cursor.WriteBytes(n.Data)
	default:
		return unsupported("rentry.encodeValue", n.ID)
	}
	return nil
}

// CheckPayload reports a payload Decode would refuse: a single primitive
// holds at most MaxPrimitiveSize bytes.
func CheckPayload(id EntryID, size int) error {
	if !id.HasSubType && id.Type.IsPrimitive() && size > MaxPrimitiveSize {
		return errors.Wrapf(unsupported("rentry.CheckPayload", id), "primitive payload of %d bytes", size)
	}
	return nil
}

func encodeStringList(cursor *lbytes.Cursor, n *StringListEntry) error {
	if !n.ID.HasSubType || n.ID.Type != UnicodeString {
		return unsupported("rentry.encodeStringList", n.ID)
	}
	if err := checkCount("rentry.encodeStringList", n.Header, len(n.Strings)); err != nil {
		return err
	}
	EncodeID(cursor, n.ID)
	EncodeArrayHeader(cursor, n.Header)
	for _, s := range n.Strings {
		encoded, err := lbytes.EncodeString(lbytes.UTF16LE, s)
		if err != nil {
			return errors.Wrap(err, "rentry.encodeStringList error")
		}
		cursor.AlignTo(EntryAlignment)
		cursor.WriteUint32(uint32(len(encoded) / 2))
		cursor.WriteBytes(encoded)
	}
	return nil
}

func encodeArray(cursor *lbytes.Cursor, n *ArrayEntry) error {
	if n.ID.Type != Class || n.ID.HasSubType != (n.Header != nil) {
		return unsupported("rentry.encodeArray", n.ID)
	}
	if !n.ID.HasSubType {
		EncodeID(cursor, n.ID)
		cursor.WriteUint32(uint32(len(n.Elements)))
		cursor.WriteUint32(n.ArrayType)
		for i, element := range n.Elements {
			if err := Encode(cursor, element); err != nil {
				return errors.Wrapf(err, "rentry.encodeArray error: element %d", i)
			}
		}
		return nil
	}

	if err := checkCount("rentry.encodeArray", *n.Header, len(n.Elements)); err != nil {
		return err
	}
	EncodeID(cursor, n.ID)
	EncodeArrayHeader(cursor, *n.Header)
	for i, element := range n.Elements {
		structEntry, ok := element.(*StructEntry)
		if !ok {
			return errors.Wrapf(rerr.ErrUnsupportedType, "rentry.encodeArray: element %d is %T, not a struct", i, element)
		}
		cursor.AlignTo(EntryAlignment)
		cursor.WriteInt32(int32(len(structEntry.Fields)))
		cursor.WriteUint32(structEntry.TypeHash)
		for x, field := range structEntry.Fields {
			if err := Encode(cursor, field); err != nil {
				return errors.Wrapf(err, "rentry.encodeArray error: struct %d field %d", i, x)
			}
		}
	}
	return nil
}

// checkCount keeps the written header consistent with the elements that
// follow it, otherwise the output could not be read back.
func checkCount(caller string, header ArrayHeader, n int) error {
	expected := int(header.ActualCount)
	if expected < 0 {
		expected = 0
	}
	if expected != n {
		return errors.Wrapf(
			rerr.ErrMalformedInput,
			"%s: header announces %d elements, node holds %d",
			caller, header.ActualCount, n,
		)
	}
	return nil
}

func unsupported(caller string, id EntryID) error {
	return UnsupportedTypeError{
		Caller:     caller,
		Name:       fmt.Sprintf("0x%08X", id.NameHash),
		Type:       id.Type,
		HasSubType: id.HasSubType,
	}
}
