package rentry

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
)

// Decoder reads entries from a cursor. Registry is only used to put names
// into errors and logs.
//
// With Lenient set, a primitive payload that runs past the end of the
// buffer is logged and decoded as empty instead of failing the whole load.
type Decoder struct {
	Registry *rhash.Registry
	Logger   *zap.Logger
	Lenient  bool
}

func NewDecoder(registry *rhash.Registry, logger *zap.Logger, lenient bool) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{
		Registry: registry,
		Logger:   logger,
		Lenient:  lenient,
	}
}

func (d *Decoder) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func DecodeID(cursor *lbytes.Cursor) (*EntryID, error) {
	if err := cursor.AlignReadTo(EntryAlignment); err != nil {
		return nil, errors.Wrap(err, "rentry.DecodeID error")
	}
	nameHash, err := cursor.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "rentry.DecodeID error: read name hash")
	}
	objectType, err := cursor.ReadInt32()
	if err != nil {
		return nil, errors.Wrap(err, "rentry.DecodeID error: read type")
	}
	id := EntryID{NameHash: nameHash, Type: ObjectType(objectType)}
	if objectType == SubTypeMarker {
		objectType, err = cursor.ReadInt32()
		if err != nil {
			return nil, errors.Wrap(err, "rentry.DecodeID error: read sub type")
		}
		id.Type = ObjectType(objectType)
		id.HasSubType = true
	}
	return &id, nil
}

func DecodeArrayHeader(cursor *lbytes.Cursor) (*ArrayHeader, error) {
	readInt := lbytes.CreateInt32ReadFunction(cursor)
	readUint := lbytes.CreateUint32ReadFunction(cursor)
	header, err := lbytes.ExecuteInstructions[ArrayHeader](
		[]lbytes.Instruction{
			{Key: "header_size", ReadFunction: readInt},
			{Key: "actual_count", ReadFunction: readInt},
			{Key: "header_count", ReadFunction: readUint},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "rentry.DecodeArrayHeader error")
	}
	return header, nil
}

// Decode reads one entry, and everything nested in it, tagged with tableID.
func (d *Decoder) Decode(cursor *lbytes.Cursor, tableID uint32) (Node, error) {
	id, err := DecodeID(cursor)
	if err != nil {
		return nil, err
	}
	entry := Entry{ID: *id, TableID: tableID}
	if ce := d.logger().Check(zap.DebugLevel, "decode entry"); ce != nil {
		ce.Write(
			zap.String("name", d.Registry.Label(id.NameHash)),
			zap.Stringer("type", id.Type),
			zap.Bool("has_sub_type", id.HasSubType),
			zap.Int("offset", cursor.Pos()),
		)
	}

	node := Node(nil)
	if id.HasSubType {
		node, err = d.decodeArray(cursor, entry)
	} else {
		node, err = d.decodeSingle(cursor, entry)
	}
	if err != nil {
		return nil, errors.Wrapf(err, `rentry.Decode error: entry "%s"`, d.Registry.Label(id.NameHash))
	}
	return node, nil
}

func (d *Decoder) decodeSingle(cursor *lbytes.Cursor, entry Entry) (Node, error) {
	switch {
	case entry.ID.Type.IsPrimitive():
		size, err := cursor.ReadUint32()
		if err != nil {
			return nil, err
		}
		if size >= 4 {
			if size > MaxPrimitiveSize {
				return nil, errors.Wrapf(
					d.unsupported("rentry.decodeSingle", entry.ID),
					"primitive payload of %d bytes", size,
				)
			}
			if err := cursor.AlignReadTo(int(size)); err != nil {
				return nil, err
			}
		}
		data, err := cursor.ReadBytes(int(size))
		if err != nil {
			if !d.Lenient {
				return nil, err
			}
			d.logger().Warn(
				"primitive payload runs past the buffer; keeping it empty",
				zap.String("name", d.Registry.Label(entry.ID.NameHash)),
				zap.Uint32("size", size),
				zap.Int("offset", cursor.Pos()),
				zap.Error(err),
			)
			// the payload claims the rest of the buffer, so nothing after it
			// can be read either
			_ = cursor.Seek(cursor.Len())
			data = nil
		}
		return &ValueEntry{Entry: entry, Data: data}, nil
	case entry.ID.Type == UnicodeString:
		count, err := cursor.ReadUint32()
		if err != nil {
			return nil, err
		}
		s, err := cursor.ReadString(lbytes.UTF16LE, int(count))
		if err != nil {
			return nil, err
		}
		return &ValueEntry{Entry: entry, Data: []byte(s)}, nil
	case entry.ID.Type == Vector4:
		size, err := cursor.ReadUint32()
		if err != nil {
			return nil, err
		}
		if err := cursor.AlignReadTo(Vector4Alignment); err != nil {
			return nil, err
		}
		data, err := cursor.ReadBytes(int(size))
		if err != nil {
			return nil, err
		}
		return &ValueEntry{Entry: entry, Data: data}, nil
	case entry.ID.Type == Class:
		count, err := cursor.ReadUint32()
		if err != nil {
			return nil, err
		}
		arrayType, err := cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		if count == AbsentClassArray {
			return nil, ErrAbsentClassArray
		}
		array := &ArrayEntry{
			Entry:     entry,
			ArrayType: uint32(arrayType),
			Elements:  make([]Node, 0, capacityFor(int64(count), cursor)),
		}
		for i := uint32(0); i < count; i++ {
			child, err := d.Decode(cursor, array.ArrayType)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d of %d", i, count)
			}
			array.Elements = append(array.Elements, child)
		}
		return array, nil
	}
	return nil, d.unsupported("rentry.decodeSingle", entry.ID)
}

func (d *Decoder) decodeArray(cursor *lbytes.Cursor, entry Entry) (Node, error) {
	if !entry.ID.Type.IsPrimitive() && entry.ID.Type != UnicodeString && entry.ID.Type != Class {
		return nil, d.unsupported("rentry.decodeArray", entry.ID)
	}
	header, err := DecodeArrayHeader(cursor)
	if err != nil {
		return nil, err
	}

	switch {
	case entry.ID.Type.IsPrimitive():
		size := int64(header.HeaderSize) * int64(header.ActualCount)
		if size < 0 || size > int64(cursor.Remaining()) {
			return nil, errors.Wrapf(
				rerr.ErrMalformedInput,
				"array payload of %d x %d bytes at offset %d",
				header.ActualCount, header.HeaderSize, cursor.Pos(),
			)
		}
		data, err := cursor.ReadBytes(int(size))
		if err != nil {
			return nil, err
		}
		return &ValueEntry{Entry: entry, Header: header, Data: data}, nil
	case entry.ID.Type == UnicodeString:
		list := &StringListEntry{
			Entry:   entry,
			Header:  *header,
			Strings: make([]string, 0, capacityFor(int64(header.ActualCount), cursor)),
		}
		for i := int32(0); i < header.ActualCount; i++ {
			if err := cursor.AlignReadTo(EntryAlignment); err != nil {
				return nil, errors.Wrapf(err, "string %d", i)
			}
			count, err := cursor.ReadUint32()
			if err != nil {
				return nil, errors.Wrapf(err, "string %d length", i)
			}
			s, err := cursor.ReadString(lbytes.UTF16LE, int(count))
			if err != nil {
				return nil, errors.Wrapf(err, "string %d", i)
			}
			list.Strings = append(list.Strings, s)
		}
		return list, nil
	default:
		array := &ArrayEntry{
			Entry:    entry,
			Header:   header,
			Elements: make([]Node, 0, capacityFor(int64(header.ActualCount), cursor)),
		}
		for i := int32(0); i < header.ActualCount; i++ {
			if err := cursor.AlignReadTo(EntryAlignment); err != nil {
				return nil, errors.Wrapf(err, "struct %d", i)
			}
			childCount, err := cursor.ReadInt32()
			if err != nil {
				return nil, errors.Wrapf(err, "struct %d field count", i)
			}
			if childCount < 0 {
				return nil, errors.Wrapf(rerr.ErrMalformedInput, "struct %d: negative field count %d", i, childCount)
			}
			typeHash, err := cursor.ReadUint32()
			if err != nil {
				return nil, errors.Wrapf(err, "struct %d type hash", i)
			}
			structEntry := &StructEntry{
				TypeHash: typeHash,
				Fields:   make([]Node, 0, capacityFor(int64(childCount), cursor)),
			}
			for x := int32(0); x < childCount; x++ {
				field, err := d.Decode(cursor, typeHash)
				if err != nil {
					return nil, errors.Wrapf(err, "struct %d field %d", i, x)
				}
				structEntry.Fields = append(structEntry.Fields, field)
			}
			array.Elements = append(array.Elements, structEntry)
		}
		return array, nil
	}
}

func (d *Decoder) unsupported(caller string, id EntryID) error {
	return UnsupportedTypeError{
		Caller:     caller,
		Name:       d.Registry.Label(id.NameHash),
		Type:       id.Type,
		HasSubType: id.HasSubType,
	}
}

// capacityFor bounds slice preallocation by what the buffer could hold, since
// counts come straight from the input.
func capacityFor(count int64, cursor *lbytes.Cursor) int {
	if count <= 0 {
		return 0
	}
	limit := int64(cursor.Remaining()/EntryAlignment) + 1
	if count > limit {
		return int(limit)
	}
	return int(count)
}
