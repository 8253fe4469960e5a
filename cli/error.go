package cli

import (
	"github.com/pkg/errors"
)

var (
	ErrNoCommand         = errors.New("no subcommand given")
	ErrSourceMissing     = errors.New("source file does not exist")
	ErrDestinationExists = errors.New("destination file exists, pass --force to overwrite it")
	ErrNotAValue         = errors.New("path does not lead to a single value")
)
