package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"re-savior/config"
	"re-savior/rsave"
	"re-savior/rsave/rcrypt"
	"re-savior/rsave/rhash"
)

type session struct {
	cfg      *config.Config
	registry *rhash.Registry
	framer   *rcrypt.Framer
	logger   *zap.Logger
	out      io.Writer
}

// newSession merges the config file with the flags. Flags win.
func newSession(args Args, out io.Writer) (*session, error) {
	cfg, err := config.LoadFile(args.Config)
	if err != nil {
		return nil, err
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if args.Lenient {
		cfg.Lenient = true
	}

	logger, err := NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	framer, err := cfg.Framer()
	if err != nil {
		return nil, err
	}
	logger.Debug(
		"configured",
		zap.String("config", args.Config),
		zap.Int("names", registry.Len()),
		zap.Bool("lenient", cfg.Lenient),
	)
	return &session{
		cfg:      cfg,
		registry: registry,
		framer:   framer,
		logger:   logger,
		out:      out,
	}, nil
}

func (r *session) options() []rsave.Option {
	return []rsave.Option{
		rsave.WithRegistry(r.registry),
		rsave.WithLogger(r.logger),
		rsave.WithLenient(r.cfg.Lenient),
		rsave.WithFramer(r.framer),
	}
}

func (r *session) read(from string) ([]byte, error) {
	if !CheckExistence(from) {
		return nil, errors.Wrapf(ErrSourceMissing, `"%s"`, from)
	}
	bs, err := os.ReadFile(from)
	if err != nil {
		return nil, errors.Wrapf(err, `error reading "%s"`, from)
	}
	return bs, nil
}

// write refuses to replace an existing file unless force is set, so the
// original save is not overwritten by accident.
func (r *session) write(to string, force bool, bs []byte) error {
	if CheckExistence(to) && !force {
		return errors.Wrapf(ErrDestinationExists, `"%s"`, to)
	}
	if err := os.WriteFile(to, bs, 0644); err != nil {
		return errors.Wrapf(err, `error writing "%s"`, to)
	}
	r.logger.Info("written", zap.String("path", to), zap.Int("bytes", len(bs)))
	return nil
}

func (r *session) load(source SourceArgs) (*rsave.Savegame, error) {
	bs, err := r.read(source.From)
	if err != nil {
		return nil, err
	}
	if source.Plain {
		return rsave.Load(bs, r.options()...)
	}
	return rsave.LoadEncrypted(bs, r.options()...)
}

// save writes savegame in the same form, plain or encrypted, it was read in.
func (r *session) save(savegame *rsave.Savegame, plain bool, destination DestinationArgs) error {
	var (
		bs  []byte
		err error
	)
	if plain {
		bs, err = savegame.Serialize()
	} else {
		bs, err = savegame.SaveEncrypted(r.options()...)
	}
	if err != nil {
		return err
	}
	return r.write(destination.To, destination.Force, bs)
}
