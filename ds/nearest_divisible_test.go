package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 8, NearestDivisibleByM(5, 4))
	assert.Equal(t, 8, NearestDivisibleByM(8, 4))
	assert.Equal(t, 16, NearestDivisibleByM(9, 16))
	assert.Equal(t, int64(0), NearestDivisibleByM(int64(0), 8))
	assert.Equal(t, 3, PaddingToM(5, 8))
	assert.Equal(t, 0, PaddingToM(12, 4))
	assert.Panics(t, func() { NearestDivisibleByM(3, 0) })
}
