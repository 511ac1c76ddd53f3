package vprogram

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/vazrupe/endibuf"
)

// DecodeEntry reads one program slot. The tones are not read here: their
// table lives after the 128 slots, so only their count is returned.
func DecodeEntry(reader *endibuf.Reader, index int) (*Program, int, error) {
	e := entry{}
	if err := binary.Read(reader, reader.Endian, &e); err != nil {
		err := errors.Wrapf(err, "vprogram.DecodeEntry error at slot %d", index)
		return nil, 0, err
	}
	program := Program{
		Index:         index,
		MasterVolume:  e.MasterVolume,
		Priority:      e.Priority,
		Mode:          e.Mode,
		MasterPanning: e.MasterPanning,
		Reserved0:     e.Reserved0,
		Attributes:    e.Attributes,
		Reserved1:     e.Reserved1,
		Reserved2:     e.Reserved2,
	}
	return &program, int(e.ToneCount), nil
}
