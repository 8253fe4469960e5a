// Package rlist reads and writes element lists, the top level records of a
// save buffer, and resolves colon separated paths inside them.
package rlist

import (
	"re-savior/rsave/rentry"
)

type (
	// ElementList is `i32 count | u32 listId | count x entry`. ListID is also
	// the schema tag every root entry is read with.
	ElementList struct {
		ListID  uint32        `json:"list_id"`
		Entries []rentry.Node `json:"entries"`
	}
	Header struct {
		Count  int32  `json:"count"`
		ListID uint32 `json:"list_id"`
	}
)

const (
	PathSeparator = ":"
	// KeyFieldName is the struct field compared against a bracketed key.
	KeyFieldName = "Key"
)
