// Package vbody splits the VAB body (VB) into its waveforms and joins them
// back.
package vbody

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

func WaveformName(index int) string {
	return fmt.Sprintf("audio%04d.adpcm", index)
}

// Split cuts body into consecutive waveforms of the given sizes, starting at
// its beginning. The waveforms share the body buffer. Trailing bytes after the
// last waveform are ignored.
func Split(sizes []int, body *lbytes.Stream) (*vnode.Container, error) {
	container := vnode.NewContainer()
	offset := int64(0)
	for i, size := range sizes {
		waveform, err := body.Slice(offset, int64(size))
		if err != nil {
			detail := verror.New(
				verror.KindSizeMismatch,
				"waveform %d at offset 0x%X with size 0x%X exceeds the body size 0x%X",
				i, offset, size, body.Len(),
			)
			return nil, errors.Wrap(detail, "vbody.Split error")
		}
		container.Add(vnode.NewBinary(WaveformName(i), waveform))
		offset += int64(size)
	}
	return container, nil
}
