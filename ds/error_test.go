package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUnreachableCode(t *testing.T) {
	assert.EqualError(t, ErrUnreachableCode{Caller: "f"}, "f: unreachable code")
	assert.EqualError(
		t,
		ErrUnreachableCode{Caller: "f", Detail: "m = 0"},
		"f: unreachable code: m = 0",
	)
}
