package ds

import (
	"fmt"
)

// NearestDivisibleByM returns the smallest multiple of m not below n. It panics
// when m is not positive.
func NearestDivisibleByM(n int, m int) int {
	for i := n; i < n+m; i++ {
		if i%m == 0 {
			return i
		}
	}

	panic(ErrUnreachableCode{
		Caller: "NearestDivisibleByM",
		Detail: fmt.Sprintf("n = %d, m = %d", n, m),
	})
}
