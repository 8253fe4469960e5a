package rlist

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

func DecodeHeader(cursor *lbytes.Cursor) (*Header, error) {
	header, err := lbytes.ExecuteInstructions[Header](
		[]lbytes.Instruction{
			{Key: "count", ReadFunction: lbytes.CreateInt32ReadFunction(cursor)},
			{Key: "list_id", ReadFunction: lbytes.CreateUint32ReadFunction(cursor)},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "rlist.DecodeHeader error")
	}
	if header.Count < 0 {
		return nil, errors.Wrapf(rerr.ErrMalformedInput, "rlist.DecodeHeader: negative entry count %d", header.Count)
	}
	return header, nil
}

func Decode(cursor *lbytes.Cursor, decoder *rentry.Decoder) (*ElementList, error) {
	offset := cursor.Pos()
	header, err := DecodeHeader(cursor)
	if err != nil {
		return nil, err
	}
	list := ElementList{
		ListID:  header.ListID,
		Entries: make([]rentry.Node, 0, min(int(header.Count), cursor.Remaining()/8+1)),
	}
	for i := int32(0); i < header.Count; i++ {
		entry, err := decoder.Decode(cursor, header.ListID)
		if err != nil {
			return nil, errors.Wrapf(err, "rlist.Decode error: list 0x%08X entry %d of %d", header.ListID, i, header.Count)
		}
		list.Entries = append(list.Entries, entry)
	}
	if decoder.Logger != nil {
		decoder.Logger.Debug(
			"decoded element list",
			zap.Uint32("list_id", list.ListID),
			zap.Int("entries", len(list.Entries)),
			zap.Int("offset", offset),
			zap.Int("end", cursor.Pos()),
		)
	}
	return &list, nil
}
