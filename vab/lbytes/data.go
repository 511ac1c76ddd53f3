// Package lbytes holds the in-memory streams the codec reads from and writes to.
//
// A Stream is a window over a shared buffer with its own cursor. Slicing a
// stream does not copy: every slice references the same backing array, which
// stays alive for as long as any of them does.
package lbytes

import (
	"github.com/pkg/errors"
)

type (
	buffer struct {
		data []byte
	}
	Stream struct {
		buf    *buffer
		offset int64
		length int64
		pos    int64
		// fixed streams are slices of another stream and cannot grow
		fixed bool
	}
)

var (
	ErrFixedLength  = errors.New("stream has a fixed length")
	ErrNegativeSeek = errors.New("seek to a negative position")
)
