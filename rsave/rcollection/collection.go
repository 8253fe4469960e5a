package rcollection

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"re-savior/ds"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
	"re-savior/rsave/rvalue"
)

// New wraps node, which must be a struct array. The registry only names the
// fields returned by Items and may be nil.
func New(node rentry.Node, registry *rhash.Registry) (*Collection, error) {
	array, ok := node.(*rentry.ArrayEntry)
	if !ok || array.Header == nil {
		return nil, errors.Wrapf(rerr.ErrUnsupportedType, "rcollection.New: %T is not a struct array", node)
	}
	return &Collection{
		array:    array,
		registry: registry,
	}, nil
}

func (c *Collection) Len() int {
	return len(c.array.Elements)
}

func (c *Collection) Array() *rentry.ArrayEntry {
	return c.array
}

func (c *Collection) Struct(index int) (*rentry.StructEntry, error) {
	if index < 0 || index >= len(c.array.Elements) {
		return nil, errors.Wrapf(rerr.ErrNotFound, "Collection.Struct: index %d out of %d", index, len(c.array.Elements))
	}
	s, ok := c.array.Elements[index].(*rentry.StructEntry)
	if !ok {
		return nil, errors.Wrapf(rerr.ErrUnsupportedType, "Collection.Struct: element %d is %T", index, c.array.Elements[index])
	}
	return s, nil
}

func (c *Collection) field(index int, name string) (*rentry.ValueEntry, error) {
	s, err := c.Struct(index)
	if err != nil {
		return nil, err
	}
	matches := rentry.FindChildrenByName(s, name)
	switch {
	case len(matches) == 0:
		return nil, errors.Wrapf(rerr.ErrNotFound, `Collection.field: element %d has no field "%s"`, index, name)
	case len(matches) > 1:
		return nil, errors.Wrapf(rerr.ErrAmbiguousPath, `Collection.field: element %d has %d fields "%s"`, index, len(matches), name)
	}
	value, ok := matches[0].(*rentry.ValueEntry)
	if !ok {
		return nil, errors.Wrapf(rerr.ErrUnsupportedType, `Collection.field: field "%s" is %T`, name, matches[0])
	}
	return value, nil
}

func (c *Collection) GetValue(index int, name string) (any, error) {
	value, err := c.field(index, name)
	if err != nil {
		return nil, err
	}
	return rvalue.Get(value)
}

func (c *Collection) SetValue(index int, name string, v any) error {
	value, err := c.field(index, name)
	if err != nil {
		return err
	}
	return rvalue.Set(value, v)
}

// GetBuffer returns a copy of the raw payload of a field.
func (c *Collection) GetBuffer(index int, name string) ([]byte, error) {
	value, err := c.field(index, name)
	if err != nil {
		return nil, err
	}
	return ds.ShallowCopy(value.Data), nil
}

// SetBuffer replaces the raw payload of a field. Fixed-size fields keep
// their size.
func (c *Collection) SetBuffer(index int, name string, data []byte) error {
	value, err := c.field(index, name)
	if err != nil {
		return err
	}
	if width, fixed := rvalue.PayloadWidth(value); fixed && !value.ID.HasSubType && len(data) != width {
		return errors.Wrapf(
			rerr.ErrInvalidValue,
			`Collection.SetBuffer: field "%s" is %s and takes %d bytes, got %d`,
			name, value.ID.Type, width, len(data),
		)
	}
	if err := rentry.CheckPayload(value.ID, len(data)); err != nil {
		return errors.Wrapf(err, `Collection.SetBuffer error: field "%s"`, name)
	}
	value.Data = ds.ShallowCopy(data)
	return nil
}

// Items projects every struct into its scalar fields, keyed by field label
// in wire order. Arrays and nested classes are left out.
func (c *Collection) Items() ([]*ds.LinkedHashMap[string, any], error) {
	items := make([]*ds.LinkedHashMap[string, any], 0, len(c.array.Elements))
	for i := range c.array.Elements {
		s, err := c.Struct(i)
		if err != nil {
			return nil, err
		}
		item := ds.NewLinkedHashMap[string, any]()
		scalars := lo.FilterMap(
			s.Fields,
			func(field rentry.Node, _ int) (*rentry.ValueEntry, bool) {
				value, ok := field.(*rentry.ValueEntry)
				return value, ok && !value.ID.HasSubType
			},
		)
		for _, scalar := range scalars {
			v, err := rvalue.Get(scalar)
			if err != nil {
				return nil, errors.Wrapf(err, "Collection.Items error: element %d", i)
			}
			item.Put(rentry.Label(c.registry, scalar), v)
		}
		items = append(items, item)
	}
	return items, nil
}
