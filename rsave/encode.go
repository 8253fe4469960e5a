package rsave

import (
	"github.com/pkg/errors"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rlist"
)

// Serialize writes every list back to back into a buffer that grows as
// needed.
func (s *Savegame) Serialize() ([]byte, error) {
	cursor := lbytes.NewWriter()
	for i, list := range s.Lists {
		if err := rlist.Encode(cursor, list); err != nil {
			return nil, errors.Wrapf(err, "Savegame.Serialize error: list %d", i)
		}
	}
	return cursor.Bytes(), nil
}

func (s *Savegame) SaveEncrypted(opts ...Option) ([]byte, error) {
	plain, err := s.Serialize()
	if err != nil {
		return nil, err
	}
	encrypted, err := collectOptions(opts).encrypt(plain)
	if err != nil {
		return nil, errors.Wrap(err, "Savegame.SaveEncrypted error")
	}
	return encrypted, nil
}
