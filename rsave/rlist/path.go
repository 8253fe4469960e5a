package rlist

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
)

// FindElementByPath resolves a path such as
//
//	InventorySaveDataDicList:Table:app.SaveData.DicList`2<app.PlayerID,app.InventorySaveData>[0]:Value:Items
//
// The first segment names a root entry. Every later segment names a child by
// hash; a bracketed key picks, among several same-named children, the one
// whose own "Key" field holds that value. Each step must end on exactly one
// node.
func (l *ElementList) FindElementByPath(path string) (rentry.Node, error) {
	segments := strings.Split(path, PathSeparator)
	rootHash := rhash.HashString(segments[0])
	matches := lo.Filter(
		l.Entries,
		func(entry rentry.Node, _ int) bool {
			return rentry.NameHash(entry) == rootHash
		},
	)
	element, err := single(path, segments[0], matches)
	if err != nil {
		return nil, err
	}

	for _, segment := range segments[1:] {
		name, key, err := ParseSegment(segment)
		if err != nil {
			return nil, errors.Wrapf(err, `rlist.FindElementByPath error: path "%s"`, path)
		}
		matches := rentry.FindChildrenByName(element, name)
		if key != nil && len(matches) > 1 {
			matches = lo.Filter(
				matches,
				func(match rentry.Node, _ int) bool {
					return HasKey(match, *key)
				},
			)
		}
		element, err = single(path, segment, matches)
		if err != nil {
			return nil, err
		}
	}
	return element, nil
}

func single(path string, segment string, matches []rentry.Node) (rentry.Node, error) {
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, rerr.PathError{Path: path, Segment: segment, Err: rerr.ErrNotFound}
	}
	return nil, rerr.PathError{Path: path, Segment: segment, Matches: len(matches), Err: rerr.ErrAmbiguousPath}
}

// HasKey reports whether node has a "Key" field holding key as a
// little-endian int32.
func HasKey(node rentry.Node, key int32) bool {
	keyFields := rentry.FindChildrenByName(node, KeyFieldName)
	if len(keyFields) == 0 {
		return false
	}
	value, ok := keyFields[0].(*rentry.ValueEntry)
	if !ok || len(value.Data) < 4 {
		return false
	}
	return int32(binary.LittleEndian.Uint32(value.Data)) == key
}

// ParseSegment splits "Name[key]" into its name and key. The key is decimal,
// or hexadecimal with a 0x prefix, in which case all 32 bits are taken as
// is. Segments without brackets have a nil key.
func ParseSegment(segment string) (string, *int32, error) {
	if !strings.HasSuffix(segment, "]") {
		return segment, nil, nil
	}
	open := strings.LastIndex(segment, "[")
	if open < 0 {
		return "", nil, errors.Wrapf(rerr.ErrInvalidKey, `rlist.ParseSegment: "%s" has no opening bracket`, segment)
	}
	name := segment[:open]
	keyText := segment[open+1 : len(segment)-1]

	key := int32(0)
	if hex, ok := strings.CutPrefix(strings.ToLower(keyText), "0x"); ok {
		parsed, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return "", nil, errors.Wrapf(rerr.ErrInvalidKey, `rlist.ParseSegment: "%s": %v`, segment, err)
		}
		key = int32(uint32(parsed))
	} else {
		parsed, err := strconv.ParseInt(keyText, 10, 32)
		if err != nil {
			return "", nil, errors.Wrapf(rerr.ErrInvalidKey, `rlist.ParseSegment: "%s": %v`, segment, err)
		}
		key = int32(parsed)
	}
	return name, &key, nil
}
