package rlist

import (
	"github.com/pkg/errors"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

func EncodeHeader(cursor *lbytes.Cursor, header Header) {
	cursor.WriteInt32(header.Count)
	cursor.WriteUint32(header.ListID)
}

func Encode(cursor *lbytes.Cursor, list *ElementList) error {
	EncodeHeader(cursor, Header{Count: int32(len(list.Entries)), ListID: list.ListID})
	for i, entry := range list.Entries {
		if err := rentry.Encode(cursor, entry); err != nil {
			return errors.Wrapf(err, "rlist.Encode error: list 0x%08X entry %d", list.ListID, i)
		}
	}
	return nil
}

// Append adds a root entry. Struct entries have no name and cannot be roots.
func (l *ElementList) Append(node rentry.Node) error {
	if _, ok := rentry.IDOf(node); !ok {
		return errors.Wrapf(rerr.ErrUnsupportedType, "ElementList.Append: %T cannot be a root entry", node)
	}
	l.Entries = append(l.Entries, node)
	return nil
}
