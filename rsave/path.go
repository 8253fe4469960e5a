package rsave

import (
	"github.com/pkg/errors"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
)

// FindElementByPath resolves path in every list. It must resolve in exactly
// one of them.
func (s *Savegame) FindElementByPath(path string) (rentry.Node, error) {
	var (
		found          = make([]rentry.Node, 0, 1)
		notFound error = rerr.PathError{Path: path, Segment: path, Err: rerr.ErrNotFound}
	)
	for i, list := range s.Lists {
		node, err := list.FindElementByPath(path)
		if errors.Is(err, rerr.ErrNotFound) {
			notFound = err
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "Savegame.FindElementByPath error: list %d", i)
		}
		found = append(found, node)
	}
	switch len(found) {
	case 0:
		return nil, notFound
	case 1:
		return found[0], nil
	}
	return nil, rerr.PathError{Path: path, Segment: path, Matches: len(found), Err: rerr.ErrAmbiguousPath}
}
