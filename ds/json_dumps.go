package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON is t as compact JSON. Values JSON cannot hold, such as NaN, fall
// back to their %v form.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Sprintf("%v", t)
	}
	return string(tBytes)
}
