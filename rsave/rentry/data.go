// Package rentry holds the node types of the save tree and the recursive
// codec that reads and writes them.
package rentry

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"re-savior/rsave/rerr"
)

type (
	ObjectType int32
	// EntryID is the wire identity of one field. HasSubType is written as
	// the type marker -1 followed by the real type.
	EntryID struct {
		NameHash   uint32     `json:"name_hash"`
		Type       ObjectType `json:"type"`
		HasSubType bool       `json:"has_sub_type"`
	}
	// ArrayHeader is carried by every entry with HasSubType set.
	ArrayHeader struct {
		HeaderSize  int32  `json:"header_size"`
		ActualCount int32  `json:"actual_count"`
		HeaderCount uint32 `json:"header_count"`
	}
	// Entry is the part shared by every node that has a name on the wire.
	// TableID is the schema tag of the list or struct the entry was read in.
	Entry struct {
		ID      EntryID `json:"id"`
		TableID uint32  `json:"table_id"`
	}

	// Node is one of *ValueEntry, *StringListEntry, *StructEntry or
	// *ArrayEntry.
	Node interface {
		isNode()
	}
	// ValueEntry holds raw payload bytes. For UnicodeString the payload is
	// the UTF-8 form of the decoded string. Header is set only for
	// HasSubType primitives, whose payload is the flat element block.
	ValueEntry struct {
		Entry
		Header *ArrayHeader `json:"header,omitempty"`
		Data   []byte       `json:"data"`
	}
	StringListEntry struct {
		Entry
		Header  ArrayHeader `json:"header"`
		Strings []string    `json:"strings"`
	}
	// StructEntry is one element of a HasSubType Class array. It has no
	// name of its own, only the hash of its schema.
	StructEntry struct {
		TypeHash uint32 `json:"type_hash"`
		Fields   []Node `json:"fields"`
	}
	// ArrayEntry is a Class field. Without a Header its elements are
	// entries tagged with ArrayType; with a Header (HasSubType) its elements
	// are *StructEntry.
	ArrayEntry struct {
		Entry
		ArrayType uint32       `json:"array_type"`
		Header    *ArrayHeader `json:"header,omitempty"`
		Elements  []Node       `json:"elements"`
	}
)

const (
	Unknown = ObjectType(iota)
	Enum
	Boolean
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	UInt64
	Single
	Double
	CString
	WCString
	UnicodeString
	Vector4
	Class
)

const (
	// SubTypeMarker replaces the type on the wire when an array header
	// follows.
	SubTypeMarker = int32(-1)
	// AbsentClassArray is the element count of a Class field that has no
	// array at all.
	AbsentClassArray = uint32(0xFEFEFEFE)
	MaxPrimitiveSize = 8
	Vector4Alignment = 16
	EntryAlignment   = 4
	WideAlignment    = 8
)

func (*ValueEntry) isNode()      {}
func (*StringListEntry) isNode() {}
func (*StructEntry) isNode()     {}
func (*ArrayEntry) isNode()      {}

var objectTypeNames = map[ObjectType]string{
	Unknown:       "Unknown",
	Enum:          "Enum",
	Boolean:       "Boolean",
	Int8:          "Int8",
	Uint8:         "Uint8",
	Int16:         "Int16",
	Uint16:        "Uint16",
	Int32:         "Int32",
	Uint32:        "Uint32",
	Int64:         "Int64",
	UInt64:        "UInt64",
	Single:        "Single",
	Double:        "Double",
	CString:       "CString",
	WCString:      "WCString",
	UnicodeString: "UnicodeString",
	Vector4:       "Vector4",
	Class:         "Class",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return "ObjectType(" + itoa(int32(t)) + ")"
}

// IsPrimitive reports whether t is decoded as a flat byte copy.
func (t ObjectType) IsPrimitive() bool {
	return t <= WCString
}

var objectTypesByName = lo.MapEntries(
	objectTypeNames,
	func(t ObjectType, name string) (string, ObjectType) {
		return strings.ToLower(name), t
	},
)

// ParseObjectType reads a type name as printed by String, ignoring case.
func ParseObjectType(name string) (ObjectType, error) {
	if t, ok := objectTypesByName[strings.ToLower(name)]; ok {
		return t, nil
	}
	return Unknown, errors.Wrapf(rerr.ErrUnsupportedType, `rentry.ParseObjectType: unknown type "%s"`, name)
}
