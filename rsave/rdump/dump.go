// Package rdump projects decoded element lists into ordered maps for JSON
// inspection. The projection is one way: it is not read back.
package rdump

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"re-savior/rsave/rentry"
	"re-savior/rsave/rhash"
	"re-savior/rsave/rlist"
	"re-savior/rsave/rvalue"
)

const (
	FieldNameListID = "$list"
	FieldNameType   = "$type"
)

func ToOrderedMap(registry *rhash.Registry, list *rlist.ElementList) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set(FieldNameListID, registry.Label(list.ListID))
	putNodes(registry, lhm, list.Entries)
	return lhm
}

func ToOrderedMaps(registry *rhash.Registry, lists []*rlist.ElementList) []*orderedmap.OrderedMap {
	return lo.Map(
		lists,
		func(list *rlist.ElementList, _ int) *orderedmap.OrderedMap {
			return ToOrderedMap(registry, list)
		},
	)
}

// putNodes sets every node under its label. Repeated labels get a "#n"
// suffix, counting from the second occurrence.
func putNodes(registry *rhash.Registry, lhm *orderedmap.OrderedMap, nodes []rentry.Node) {
	seen := map[string]int{}
	for _, node := range nodes {
		label := rentry.Label(registry, node)
		key := label
		if n := seen[label]; n > 0 {
			key = fmt.Sprintf("%s#%d", label, n)
		}
		seen[label]++
		lhm.Set(key, Project(registry, node))
	}
}

// Project turns a node into plain values: typed scalars, slices and ordered
// maps. Payloads that cannot be typed are shown as hex, and NaN or infinite
// floats as strings such as "NaN" and "+Inf".
func Project(registry *rhash.Registry, node rentry.Node) any {
	switch n := node.(type) {
	case *rentry.ValueEntry:
		if n.Header != nil {
			return projectValueArray(n)
		}
		v, err := rvalue.Get(n)
		if err != nil {
			return hex.EncodeToString(n.Data)
		}
		return jsonSafe(v)
	case *rentry.StringListEntry:
		return n.Strings
	case *rentry.StructEntry:
		lhm := orderedmap.New()
		lhm.Set(FieldNameType, registry.Label(n.TypeHash))
		putNodes(registry, lhm, n.Fields)
		return lhm
	case *rentry.ArrayEntry:
		if n.Header == nil {
			lhm := orderedmap.New()
			putNodes(registry, lhm, n.Elements)
			return lhm
		}
		return lo.Map(
			n.Elements,
			func(element rentry.Node, _ int) any {
				return Project(registry, element)
			},
		)
	}
	return nil
}

func projectValueArray(n *rentry.ValueEntry) any {
	width, fixed := rvalue.Width(n.ID.Type)
	if !fixed || int(n.Header.HeaderSize) != width || len(n.Data) != width*int(n.Header.ActualCount) {
		return hex.EncodeToString(n.Data)
	}
	values := make([]any, 0, n.Header.ActualCount)
	for i := 0; i < int(n.Header.ActualCount); i++ {
		v, err := rvalue.Decode(n.ID.Type, n.Data[i*width:(i+1)*width])
		if err != nil {
			return hex.EncodeToString(n.Data)
		}
		values = append(values, jsonSafe(v))
	}
	return values
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// jsonSafe replaces floats that encoding/json refuses with their strconv
// spelling.
func jsonSafe(v any) any {
	switch f := v.(type) {
	case float32:
		if !isFinite(float64(f)) {
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
	case float64:
		if !isFinite(f) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case rvalue.Vector4:
		if lo.SomeBy(f[:], func(x float32) bool { return !isFinite(float64(x)) }) {
			return lo.Map(f[:], func(x float32, _ int) any { return jsonSafe(x) })
		}
	}
	return v
}
