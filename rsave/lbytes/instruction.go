package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions creates the final value t with type T by
//
//   - Reading the instructions into a map, then
//   - Creating JSON bytes from the map, and finally
//   - Reading the JSON bytes into t
//
// In order to lessen the burden of manual mapping of fixed records.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateInt32ReadFunction(cursor *Cursor) ReadFunction {
	return func() (any, error) {
		return cursor.ReadInt32()
	}
}

func CreateUint32ReadFunction(cursor *Cursor) ReadFunction {
	return func() (any, error) {
		return cursor.ReadUint32()
	}
}
