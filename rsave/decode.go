package rsave

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"re-savior/rsave/lbytes"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rlist"
)

// Load reads element lists until bs is used up. Any failure aborts the
// whole load.
func Load(bs []byte, opts ...Option) (*Savegame, error) {
	o := collectOptions(opts)
	decoder := rentry.NewDecoder(o.registry, o.logger, o.lenient)
	cursor := lbytes.NewCursor(bs)

	savegame := Savegame{Lists: make([]*rlist.ElementList, 0)}
	for cursor.Remaining() > 0 {
		list, err := rlist.Decode(cursor, decoder)
		if err != nil {
			return nil, errors.Wrapf(err, "rsave.Load error: list %d", len(savegame.Lists))
		}
		savegame.Lists = append(savegame.Lists, list)
	}
	o.logger.Debug(
		"loaded savegame",
		zap.Int("bytes", len(bs)),
		zap.Int("lists", len(savegame.Lists)),
	)
	return &savegame, nil
}

func LoadEncrypted(bs []byte, opts ...Option) (*Savegame, error) {
	plain, err := collectOptions(opts).decrypt(bs)
	if err != nil {
		return nil, errors.Wrap(err, "rsave.LoadEncrypted error")
	}
	return Load(plain, opts...)
}
