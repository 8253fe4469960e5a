package ds

import (
	"bytes"
	"encoding/json"
)

// LinkedHashMap is a map that remembers insertion order for key listing and
// JSON serialization.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: make([]K, 0),
	}
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	return ShallowCopy(r.ordering)
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.ordering)
}

// Put keeps the original position of a key that already exists.
func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering = append(r.ordering, key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for i, key := range r.ordering {
		keyBs, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(r.hashMap[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if i != len(r.ordering)-1 {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}
