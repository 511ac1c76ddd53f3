// Package vab reads and writes PS1 VAB audio banks, either as a single .vab
// file or as a .vh header with its .vb body.
//
// Decoding yields a container with one binary node per waveform followed by
// the header node. Encoding takes such a container back, recomputing the
// waveform sizes from the binary nodes.
package vab

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vbody"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

type EncodeOptions struct {
	Header vheader.Options
	// StripVagHeader drops the VAG header of waveforms imported from .vag
	// files, both from the body and from the size table.
	StripVagHeader bool
}

func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Header:         vheader.DefaultOptions(),
		StripVagHeader: false,
	}
}

// DecodeVAB reads a .vab file: the header followed by the body.
func DecodeVAB(stream *lbytes.Stream, opts vheader.Options) (*vnode.Container, error) {
	header, err := vheader.Decode(stream, opts)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeVAB error")
	}
	offset := int64(header.HeaderSize())
	body, err := stream.Slice(offset, stream.Len()-offset)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeVAB error")
	}
	container, err := vbody.Split(header.WaveformSizes, body)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeVAB error")
	}
	container.Add(vnode.NewHeader(header))
	return container, nil
}

// DecodeVHVB reads a header and its body from two separate streams.
func DecodeVHVB(vh *lbytes.Stream, vb *lbytes.Stream, opts vheader.Options) (*vnode.Container, error) {
	header, err := vheader.Decode(vh, opts)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeVHVB error")
	}
	container, err := vbody.Split(header.WaveformSizes, vb)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeVHVB error")
	}
	container.Add(vnode.NewHeader(header))
	return container, nil
}

// UpdateWaveformSizes replaces the sizes of header with the ones of the
// binary nodes of container.
func UpdateWaveformSizes(header *vheader.Header, container *vnode.Container, strip bool) error {
	sizes, err := vbody.WaveformSizes(container, strip)
	if err != nil {
		return errors.Wrap(err, "UpdateWaveformSizes error")
	}
	header.WaveformSizes = sizes
	return nil
}

func findHeader(container *vnode.Container) (*vheader.Header, error) {
	header := container.Header()
	if header == nil {
		return nil, verror.New(verror.KindMissingHeader, "no header node among %d nodes", container.Len())
	}
	return header, nil
}

// EncodeVHVB writes the header and the body of container separately. The
// header node gets its waveform sizes updated.
func EncodeVHVB(container *vnode.Container, opts EncodeOptions) ([]byte, []byte, error) {
	header, err := findHeader(container)
	if err != nil {
		return nil, nil, errors.Wrap(err, "EncodeVHVB error")
	}
	if err := UpdateWaveformSizes(header, container, opts.StripVagHeader); err != nil {
		return nil, nil, errors.Wrap(err, "EncodeVHVB error")
	}
	vh, err := vheader.Encode(header, opts.Header)
	if err != nil {
		return nil, nil, errors.Wrap(err, "EncodeVHVB error")
	}
	vb, err := vbody.Join(container, vbody.JoinOptions{StripVagHeader: opts.StripVagHeader})
	if err != nil {
		return nil, nil, errors.Wrap(err, "EncodeVHVB error")
	}
	return vh, vb, nil
}

// EncodeVAB writes container as a single .vab file.
func EncodeVAB(container *vnode.Container, opts EncodeOptions) ([]byte, error) {
	vh, vb, err := EncodeVHVB(container, opts)
	if err != nil {
		return nil, errors.Wrap(err, "EncodeVAB error")
	}
	stream := lbytes.NewStream()
	for _, part := range [][]byte{vh, vb} {
		if _, err := stream.Write(part); err != nil {
			return nil, errors.Wrap(err, "EncodeVAB error")
		}
	}
	return stream.Bytes(), nil
}
