package rentry

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
)

// NameHash is the hash a node is addressed by. Struct entries have no field
// name, so their schema hash is used instead.
func NameHash(node Node) uint32 {
	switch n := node.(type) {
	case *ValueEntry:
		return n.ID.NameHash
	case *StringListEntry:
		return n.ID.NameHash
	case *ArrayEntry:
		return n.ID.NameHash
	case *StructEntry:
		return n.TypeHash
	}
	return 0
}

func IDOf(node Node) (EntryID, bool) {
	switch n := node.(type) {
	case *ValueEntry:
		return n.ID, true
	case *StringListEntry:
		return n.ID, true
	case *ArrayEntry:
		return n.ID, true
	}
	return EntryID{}, false
}

// Children lists the nodes directly below node. Values and string lists
// have none.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *ArrayEntry:
		return n.Elements
	case *StructEntry:
		return n.Fields
	}
	return nil
}

func FindChildren(node Node, hash uint32) []Node {
	return lo.Filter(
		Children(node),
		func(child Node, _ int) bool {
			return NameHash(child) == hash
		},
	)
}

func FindChildrenByName(node Node, name string) []Node {
	return FindChildren(node, rhash.HashString(name))
}

func Label(registry *rhash.Registry, node Node) string {
	return registry.Label(NameHash(node))
}

// Append adds child below node. A struct array only takes struct entries and
// keeps its header count in step.
func Append(node Node, child Node) error {
	switch n := node.(type) {
	case *ArrayEntry:
		_, isStruct := child.(*StructEntry)
		if n.Header != nil {
			if !isStruct {
				return errors.Wrapf(rerr.ErrUnsupportedType, "rentry.Append: struct array takes struct entries, got %T", child)
			}
			n.Elements = append(n.Elements, child)
			n.Header.ActualCount = int32(len(n.Elements))
			return nil
		}
		if isStruct {
			return errors.Wrap(rerr.ErrUnsupportedType, "rentry.Append: class array takes named entries")
		}
		n.Elements = append(n.Elements, child)
		return nil
	case *StructEntry:
		if _, isStruct := child.(*StructEntry); isStruct {
			return errors.Wrap(rerr.ErrUnsupportedType, "rentry.Append: struct fields must be named entries")
		}
		n.Fields = append(n.Fields, child)
		return nil
	}
	return errors.Wrapf(rerr.ErrUnsupportedType, "rentry.Append: %T has no children", node)
}

func NewValue(name string, objectType ObjectType, data []byte) *ValueEntry {
	return &ValueEntry{
		Entry: Entry{ID: EntryID{NameHash: rhash.HashString(name), Type: objectType}},
		Data:  data,
	}
}

// NewValueArray is a HasSubType primitive holding count elements of
// elementSize bytes each, laid out flat in data.
func NewValueArray(name string, objectType ObjectType, elementSize int32, data []byte) *ValueEntry {
	count := int32(0)
	if elementSize > 0 {
		count = int32(len(data)) / elementSize
	}
	return &ValueEntry{
		Entry: Entry{ID: EntryID{NameHash: rhash.HashString(name), Type: objectType, HasSubType: true}},
		Header: &ArrayHeader{
			HeaderSize:  elementSize,
			ActualCount: count,
			HeaderCount: uint32(count),
		},
		Data: data,
	}
}

func NewStringList(name string, strings ...string) *StringListEntry {
	return &StringListEntry{
		Entry: Entry{ID: EntryID{NameHash: rhash.HashString(name), Type: UnicodeString, HasSubType: true}},
		Header: ArrayHeader{
			ActualCount: int32(len(strings)),
			HeaderCount: uint32(len(strings)),
		},
		Strings: strings,
	}
}

func NewStruct(typeHash uint32, fields ...Node) *StructEntry {
	if fields == nil {
		fields = make([]Node, 0)
	}
	return &StructEntry{TypeHash: typeHash, Fields: fields}
}

func NewClassArray(name string, arrayType uint32, elements ...Node) *ArrayEntry {
	if elements == nil {
		elements = make([]Node, 0)
	}
	return &ArrayEntry{
		Entry:     Entry{ID: EntryID{NameHash: rhash.HashString(name), Type: Class}},
		ArrayType: arrayType,
		Elements:  elements,
	}
}

func NewStructArray(name string, header ArrayHeader, structs ...*StructEntry) *ArrayEntry {
	elements := lo.Map(structs, func(s *StructEntry, _ int) Node { return s })
	header.ActualCount = int32(len(elements))
	return &ArrayEntry{
		Entry:    Entry{ID: EntryID{NameHash: rhash.HashString(name), Type: Class, HasSubType: true}},
		Header:   &header,
		Elements: elements,
	}
}
