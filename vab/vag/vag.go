// Package vag recognizes waveforms that still carry the header of a VAG file.
//
// Only mono PSX VAG files are recognized: the ones starting with "VAGp" and
// the headerless-looking ones written by VAGEdit.
package vag

import (
	"encoding/binary"

	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/vazrupe/endibuf"
)

type header struct {
	Magic       [4]byte
	Version     uint32
	Reserved0   uint32
	ChannelSize uint32
	SampleRate  uint32
}

const (
	HeaderSize = 0x30
	Magic      = "VAGp"
	// MaximumSampleRate is the highest rate accepted when guessing a VAGEdit header.
	MaximumSampleRate = 96000
)

func readHeader(blob []byte) (*header, error) {
	reader := endibuf.NewReader(lbytes.NewStreamFromBytes(blob))
	reader.Endian = binary.BigEndian
	h := header{}
	if err := binary.Read(reader, reader.Endian, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// IsVagFormat reports whether blob starts with a VAG header.
func IsVagFormat(blob []byte) bool {
	if len(blob) < HeaderSize {
		return false
	}
	h, err := readHeader(blob)
	if err != nil {
		return false
	}
	if string(h.Magic[:]) == Magic {
		return true
	}
	return isVagEditFormat(h, len(blob))
}

// isVagEditFormat checks the files VAGEdit writes without magic nor version:
// only the channel size and sample rate are set.
func isVagEditFormat(h *header, length int) bool {
	if string(h.Magic[:]) != "\x00\x00\x00\x00" || h.Version != 0 {
		return false
	}
	if h.SampleRate == 0 || h.SampleRate > MaximumSampleRate {
		return false
	}
	return int64(h.ChannelSize)+HeaderSize == int64(length)
}

// GetChannelsLength returns the length of the audio channels of blob, that is
// without the VAG header when there is one.
func GetChannelsLength(blob []byte) int {
	if IsVagFormat(blob) {
		return len(blob) - HeaderSize
	}
	return len(blob)
}

// StripHeader returns the audio channels of blob without copying.
func StripHeader(blob []byte) []byte {
	return blob[len(blob)-GetChannelsLength(blob):]
}
