package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"re-savior/ds"
	"re-savior/rsave/rcollection"
	"re-savior/rsave/rdump"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rhash"
	"re-savior/rsave/rvalue"
	"re-savior/ui"
)

func (r *session) decrypt(cmd DecryptCmd) error {
	bs, err := r.read(cmd.From)
	if err != nil {
		return err
	}
	plain, err := r.framer.Decrypt(bs)
	if err != nil {
		return err
	}
	return r.write(cmd.To, cmd.Force, plain)
}

func (r *session) encrypt(cmd EncryptCmd) error {
	bs, err := r.read(cmd.From)
	if err != nil {
		return err
	}
	encrypted, err := r.framer.Encrypt(bs)
	if err != nil {
		return err
	}
	return r.write(cmd.To, cmd.Force, encrypted)
}

func (r *session) dump(cmd DumpCmd) error {
	savegame, err := r.load(cmd.SourceArgs)
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(rdump.ToOrderedMaps(r.registry, savegame.Lists), "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshalling dump")
	}
	if cmd.To == "" {
		_, err := fmt.Fprintln(r.out, string(bs))
		return err
	}
	return r.write(cmd.To, cmd.Force, bs)
}

func (r *session) get(cmd GetCmd) error {
	savegame, err := r.load(cmd.SourceArgs)
	if err != nil {
		return err
	}
	node, err := savegame.FindElementByPath(cmd.Path)
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(rdump.Project(r.registry, node), "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshalling value")
	}
	_, err = fmt.Fprintln(r.out, string(bs))
	return err
}

func (r *session) set(cmd SetCmd) error {
	savegame, err := r.load(cmd.SourceArgs)
	if err != nil {
		return err
	}
	node, err := savegame.FindElementByPath(cmd.Path)
	if err != nil {
		return err
	}
	value, ok := node.(*rentry.ValueEntry)
	if !ok || value.Header != nil {
		return errors.Wrapf(ErrNotAValue, `"%s" is %s`, cmd.Path, describe(node))
	}
	before, _ := rvalue.Get(value)
	v, err := rvalue.Parse(value.ID.Type, cmd.Value)
	if err != nil {
		return err
	}
	if err := rvalue.Set(value, v); err != nil {
		return err
	}
	r.logger.Info(
		"value changed",
		zap.String("path", cmd.Path),
		zap.String("before", ds.DumpJSON(before)),
		zap.String("after", ds.DumpJSON(v)),
	)
	return r.save(savegame, cmd.Plain, cmd.DestinationArgs)
}

func (r *session) insert(cmd InsertCmd) error {
	schema, err := r.cfg.Schema(cmd.Schema)
	if err != nil {
		return err
	}
	values, err := parseFieldValues(*schema, cmd.Values)
	if err != nil {
		return err
	}
	savegame, err := r.load(cmd.SourceArgs)
	if err != nil {
		return err
	}
	node, err := savegame.FindElementByPath(cmd.Path)
	if err != nil {
		return err
	}
	collection, err := rcollection.New(node, r.registry)
	if err != nil {
		return err
	}
	if _, err := collection.Insert(*schema, values); err != nil {
		return err
	}
	r.logger.Info(
		"struct inserted",
		zap.String("path", cmd.Path),
		zap.String("schema", cmd.Schema),
		zap.Int("count", collection.Len()),
	)
	return r.save(savegame, cmd.Plain, cmd.DestinationArgs)
}

func (r *session) hash(cmd HashCmd) error {
	for _, name := range cmd.Names {
		if _, err := fmt.Fprintf(r.out, "0x%08X\t%s\n", rhash.HashString(name), name); err != nil {
			return err
		}
	}
	return nil
}

func (r *session) browse(cmd BrowseCmd) error {
	savegame, err := r.load(cmd.SourceArgs)
	if err != nil {
		return err
	}
	return ui.Start(savegame, r.registry)
}

// parseFieldValues reads NAME=VALUE pairs, each value parsed as the type the
// schema gives NAME.
func parseFieldValues(schema rcollection.Schema, pairs []string) (map[string]any, error) {
	types := map[string]rentry.ObjectType{}
	for _, field := range schema.Fields {
		types[field.Name] = field.Type
	}
	values := map[string]any{}
	for _, pair := range pairs {
		name, text, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf(`value "%s" is not NAME=VALUE`, pair)
		}
		objectType, ok := types[name]
		if !ok {
			return nil, errors.Errorf(`field "%s" is not in the schema`, name)
		}
		v, err := rvalue.Parse(objectType, text)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}
	return values, nil
}

func describe(node rentry.Node) string {
	if id, ok := rentry.IDOf(node); ok {
		if id.HasSubType {
			return "an array of " + id.Type.String()
		}
		return "a " + id.Type.String()
	}
	return "a struct"
}
