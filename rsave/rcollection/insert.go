package rcollection

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rvalue"
)

// Build creates a struct from schema. Fields come out in schema order;
// fields missing from values get a zero payload and Class fields become
// empty class arrays.
func Build(schema Schema, values map[string]any) (*rentry.StructEntry, error) {
	known := lo.SliceToMap(
		schema.Fields,
		func(field FieldSpec) (string, struct{}) {
			return field.Name, struct{}{}
		},
	)
	for name := range values {
		if _, ok := known[name]; !ok {
			return nil, errors.Wrapf(rerr.ErrInvalidValue, `rcollection.Build: "%s" is not in the schema`, name)
		}
	}

	s := rentry.NewStruct(schema.TypeHash)
	for _, field := range schema.Fields {
		node, err := buildField(field, values)
		if err != nil {
			return nil, err
		}
		if err := rentry.Append(s, node); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildField(field FieldSpec, values map[string]any) (rentry.Node, error) {
	if field.Type == rentry.Class {
		if _, ok := values[field.Name]; ok {
			return nil, errors.Wrapf(rerr.ErrInvalidValue, `rcollection.Build: class field "%s" takes no value`, field.Name)
		}
		return rentry.NewClassArray(field.Name, 0), nil
	}

	v, ok := values[field.Name]
	if !ok {
		data := make([]byte, 0)
		if width, fixed := rvalue.Width(field.Type); fixed {
			data = make([]byte, width)
		}
		return rentry.NewValue(field.Name, field.Type, data), nil
	}
	data, err := rvalue.Encode(field.Type, v)
	if err != nil {
		return nil, errors.Wrapf(err, `rcollection.Build error: field "%s"`, field.Name)
	}
	return rentry.NewValue(field.Name, field.Type, data), nil
}

// Insert builds a struct from schema and values and appends it. Only the
// actual count of the array header follows; the capacity word is kept.
func (c *Collection) Insert(schema Schema, values map[string]any) (*rentry.StructEntry, error) {
	s, err := Build(schema, values)
	if err != nil {
		return nil, err
	}
	if err := rentry.Append(c.array, s); err != nil {
		return nil, err
	}
	return s, nil
}
