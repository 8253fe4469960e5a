package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Config   string `arg:"--config,env:RESAVIOR_CONFIG" help:"path to a YAML config file" placeholder:"FILE"`
		LogLevel string `arg:"--log-level,env:RESAVIOR_LOG_LEVEL" help:"debug, info, warn or error" placeholder:"LEVEL"`
		Lenient  bool   `help:"keep loading when a value runs past the end of the file"`

		Decrypt *DecryptCmd `arg:"subcommand:decrypt" help:"decrypt a save file into its plain buffer"`
		Encrypt *EncryptCmd `arg:"subcommand:encrypt" help:"encrypt a plain buffer into a save file"`
		Dump    *DumpCmd    `arg:"subcommand:dump" help:"print a save file as JSON"`
		Get     *GetCmd     `arg:"subcommand:get" help:"print the value at a path"`
		Set     *SetCmd     `arg:"subcommand:set" help:"change the value at a path"`
		Insert  *InsertCmd  `arg:"subcommand:insert" help:"append a struct to the list at a path"`
		Hash    *HashCmd    `arg:"subcommand:hash" help:"print the hash of field names"`
		Browse  *BrowseCmd  `arg:"subcommand:browse" help:"browse a save file in the terminal"`
	}
	// the placeholders stay short, long ones push the help text onto its own line
	SourceArgs struct {
		From  string `arg:"required" help:"path to source file" placeholder:"SAVE"`
		Plain bool   `help:"source is already decrypted"`
	}
	DestinationArgs struct {
		To    string `arg:"required" help:"path to destination file" placeholder:"FILE"`
		Force bool   `help:"overwrite the destination file"`
	}
	DecryptCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"SAVE"`
		DestinationArgs
	}
	EncryptCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"BIN"`
		DestinationArgs
	}
	DumpCmd struct {
		SourceArgs
		To    string `help:"path to destination file, stdout when empty" placeholder:"FILE"`
		Force bool   `help:"overwrite the destination file"`
	}
	GetCmd struct {
		SourceArgs
		Path string `arg:"required" help:"colon separated path, Name[key] picks by key" placeholder:"PATH"`
	}
	SetCmd struct {
		SourceArgs
		DestinationArgs
		Path  string `arg:"required" help:"colon separated path of a single value" placeholder:"PATH"`
		Value string `arg:"required" help:"new value, parsed as the field type" placeholder:"VALUE"`
	}
	InsertCmd struct {
		SourceArgs
		DestinationArgs
		Path   string   `arg:"required" help:"colon separated path of a struct array" placeholder:"PATH"`
		Schema string   `arg:"required" help:"schema name from the config file" placeholder:"NAME"`
		Values []string `arg:"--value,separate" help:"field value as NAME=VALUE, repeatable" placeholder:"NAME=VALUE"`
	}
	HashCmd struct {
		Names []string `arg:"positional,required" placeholder:"NAME"`
	}
	BrowseCmd struct {
		SourceArgs
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to decrypt, inspect and edit RE engine style save files.\n",
			"Files are treated as encrypted unless --plain is given.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// Run executes the subcommand chosen in args, writing results to out.
func Run(args Args, out io.Writer) error {
	r, err := newSession(args, out)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.logger.Sync()
	}()

	switch {
	case args.Decrypt != nil:
		return r.decrypt(*args.Decrypt)
	case args.Encrypt != nil:
		return r.encrypt(*args.Encrypt)
	case args.Dump != nil:
		return r.dump(*args.Dump)
	case args.Get != nil:
		return r.get(*args.Get)
	case args.Set != nil:
		return r.set(*args.Set)
	case args.Insert != nil:
		return r.insert(*args.Insert)
	case args.Hash != nil:
		return r.hash(*args.Hash)
	case args.Browse != nil:
		return r.browse(*args.Browse)
	}
	return ErrNoCommand
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	err := Run(args, os.Stdout)
	if errors.Is(err, ErrNoCommand) {
		parser.WriteHelp(os.Stdout)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
