// Package rcollection gives index and field-name access to the structs of a
// struct array, the shape dictionary tables and item lists are stored in.
package rcollection

import (
	"re-savior/rsave/rentry"
	"re-savior/rsave/rhash"
)

type (
	Collection struct {
		array    *rentry.ArrayEntry
		registry *rhash.Registry
	}
	// Schema describes the struct Insert builds: its type hash and the
	// fields in wire order.
	Schema struct {
		TypeHash uint32      `json:"type_hash" yaml:"type_hash"`
		Fields   []FieldSpec `json:"fields" yaml:"fields"`
	}
	FieldSpec struct {
		Name string            `json:"name" yaml:"name"`
		Type rentry.ObjectType `json:"type" yaml:"type"`
	}
)
