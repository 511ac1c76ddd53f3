package vprogram

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/vpolicy"
	"github.com/vazrupe/endibuf"
)

func toEntry(program Program) entry {
	return entry{
		ToneCount:     uint8(len(program.Tones)),
		MasterVolume:  program.MasterVolume,
		Priority:      program.Priority,
		Mode:          program.Mode,
		MasterPanning: program.MasterPanning,
		Reserved0:     program.Reserved0,
		Attributes:    program.Attributes,
		Reserved1:     program.Reserved1,
		Reserved2:     program.Reserved2,
	}
}

func EncodeEntry(writer *endibuf.Writer, program Program) error {
	if err := binary.Write(writer, writer.Endian, toEntry(program)); err != nil {
		return errors.Wrapf(err, "vprogram.EncodeEntry error at slot %d", program.Index)
	}
	return nil
}

// CreateFiller builds the unused slot written after reference. It never has tones.
func CreateFiller(policy vpolicy.Policy, reference Program, index int) Program {
	filler := reference
	filler.Index = index
	filler.Tones = nil
	if policy.ClearProgramMasters {
		filler.MasterVolume = 0
		filler.MasterPanning = 0
	}
	return filler
}
