package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... up to end, excluded.
// It is empty when end is not after start.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	if end <= start || step <= 0 {
		return make([]T, 0)
	}
	sequence := make([]T, 0, int((end-start+step-1)/step))
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
