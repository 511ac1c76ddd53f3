package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 16, NearestDivisibleByM(16, 8))
	assert.Equal(t, 24, NearestDivisibleByM(17, 8))
	assert.Equal(t, 0, NearestDivisibleByM(0, 8))

	assert.PanicsWithError(
		t,
		"NearestDivisibleByM: unreachable code: n = 3, m = 0",
		func() { NearestDivisibleByM(3, 0) },
	)
}
