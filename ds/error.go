package ds

import (
	"fmt"
)

type ErrNonPositiveDivisor struct {
	M int64
}

func (r ErrNonPositiveDivisor) Error() string {
	return fmt.Sprintf("NearestDivisibleByM: divisor must be positive, got %d", r.M)
}
