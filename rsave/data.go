// Package rsave loads and saves whole save buffers: a run of element lists,
// optionally inside the encryption framing.
package rsave

import (
	"go.uber.org/zap"

	"re-savior/rsave/rcrypt"
	"re-savior/rsave/rhash"
	"re-savior/rsave/rlist"
)

type (
	Savegame struct {
		Lists []*rlist.ElementList `json:"lists"`
	}
	Option  func(*options)
	options struct {
		registry *rhash.Registry
		logger   *zap.Logger
		lenient  bool
		framer   *rcrypt.Framer
	}
)

// WithRegistry sets the names used in logs and errors.
func WithRegistry(registry *rhash.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLenient keeps loading when a primitive payload runs past the end of
// the buffer. The payload is logged and left empty.
func WithLenient(lenient bool) Option {
	return func(o *options) {
		o.lenient = lenient
	}
}

// WithFramer replaces the default encryption key.
func WithFramer(framer *rcrypt.Framer) Option {
	return func(o *options) {
		o.framer = framer
	}
}

func collectOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

func (o options) encrypt(bs []byte) ([]byte, error) {
	if o.framer == nil {
		return rcrypt.Encrypt(bs)
	}
	return o.framer.Encrypt(bs)
}

func (o options) decrypt(bs []byte) ([]byte, error) {
	if o.framer == nil {
		return rcrypt.Decrypt(bs)
	}
	return o.framer.Decrypt(bs)
}
