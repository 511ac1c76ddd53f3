package vbody

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vag"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

type JoinOptions struct {
	// StripVagHeader drops the VAG header of waveforms that carry one.
	StripVagHeader bool
}

// waveforms returns the audio data of every binary node in order, checking
// the limits of the sound RAM.
func waveforms(container *vnode.Container, strip bool) ([][]byte, error) {
	result := make([][]byte, 0, container.Len())
	total := 0
	for _, node := range container.Children() {
		if node.IsHeader() {
			continue
		}
		if !node.IsBinary() {
			return nil, verror.New(
				verror.KindInvalidElement,
				"node %q is neither a header nor binary data",
				node.Name,
			)
		}
		if len(result) == vheader.MaximumWaveforms {
			return nil, verror.New(
				verror.KindTooManyWaveforms,
				"more than %d waveforms",
				vheader.MaximumWaveforms,
			)
		}
		data := node.Stream().Bytes()
		if strip {
			data = vag.StripHeader(data)
		}
		total += len(data)
		if total > vheader.MaximumTotalWaveformsSize {
			return nil, verror.New(
				verror.KindTotalSizeExceeded,
				"waveforms take 0x%X bytes up to %q, maximum is 0x%X",
				total, node.Name, vheader.MaximumTotalWaveformsSize,
			)
		}
		result = append(result, data)
	}
	return result, nil
}

// Join concatenates the binary nodes of container in order. Header nodes are
// skipped.
func Join(container *vnode.Container, opts JoinOptions) ([]byte, error) {
	blobs, err := waveforms(container, opts.StripVagHeader)
	if err != nil {
		return nil, errors.Wrap(err, "vbody.Join error")
	}
	stream := lbytes.NewStream()
	for _, blob := range blobs {
		if _, err := stream.Write(blob); err != nil {
			return nil, errors.Wrap(err, "vbody.Join error")
		}
	}
	return stream.Bytes(), nil
}

// WaveformSizes returns the sizes Join gives every waveform.
func WaveformSizes(container *vnode.Container, strip bool) ([]int, error) {
	blobs, err := waveforms(container, strip)
	if err != nil {
		return nil, errors.Wrap(err, "vbody.WaveformSizes error")
	}
	sizes := make([]int, 0, len(blobs))
	for _, blob := range blobs {
		sizes = append(sizes, len(blob))
	}
	return sizes, nil
}
