package vheader

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/ds"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vpolicy"
	"github.com/thanhnguyen2187/psx-vab/vab/vprogram"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
	"github.com/vazrupe/endibuf"
)

// ValidatePrograms checks the program list can be laid out in the slot table:
// it starts at slot 0, indexes strictly increase and tone tables fit.
func ValidatePrograms(programs []vprogram.Program) error {
	if len(programs) > 0 && programs[0].Index != 0 {
		return verror.New(
			verror.KindIndexOutOfRange,
			"first program must have index 0, got %d",
			programs[0].Index,
		)
	}
	for i, program := range programs {
		if program.Index >= vprogram.MaximumPrograms {
			return verror.New(
				verror.KindIndexOutOfRange,
				"program index %d, maximum is %d",
				program.Index, vprogram.MaximumPrograms-1,
			)
		}
		if i > 0 && program.Index <= programs[i-1].Index {
			return verror.New(
				verror.KindIndexOutOfRange,
				"program index %d after %d",
				program.Index, programs[i-1].Index,
			)
		}
		if len(program.Tones) > vtone.MaximumPerProgram {
			return verror.New(
				verror.KindCountMismatch,
				"program %d has %d tones, maximum is %d",
				program.Index, len(program.Tones), vtone.MaximumPerProgram,
			)
		}
	}
	return nil
}

func encodePrologue(writer *endibuf.Writer, header *Header) error {
	p := prologue{
		Magic:          MagicNumber,
		Version:        header.Version,
		ID:             header.ID,
		FullSize:       uint32(header.FullSize()),
		Reserved0:      header.Reserved0,
		ProgramCount:   uint16(len(header.ActivePrograms())),
		ToneCount:      uint16(header.ToneCount()),
		WaveformCount:  uint16(header.WaveformCount()),
		MasterVolume:   header.MasterVolume,
		MasterPan:      header.MasterPan,
		BankAttribute1: header.BankAttribute1,
		BankAttribute2: header.BankAttribute2,
		Reserved1:      header.Reserved1,
	}
	if err := binary.Write(writer, writer.Endian, p); err != nil {
		return errors.Wrap(err, "encodePrologue error")
	}
	return nil
}

// encodePrograms writes the whole slot table. Slots without a program are
// fillers derived from the program written right before them.
func encodePrograms(writer *endibuf.Writer, policy vpolicy.Policy, programs []vprogram.Program) error {
	reference := vprogram.New(-1)
	writeFillers := func(end int) error {
		for _, index := range ds.MakeRange(reference.Index+1, end, 1) {
			filler := vprogram.CreateFiller(policy, reference, index)
			if err := vprogram.EncodeEntry(writer, filler); err != nil {
				return err
			}
		}
		return nil
	}

	for _, program := range programs {
		if err := writeFillers(program.Index); err != nil {
			return err
		}
		if err := vprogram.EncodeEntry(writer, program); err != nil {
			return err
		}
		reference = program
	}
	return writeFillers(vprogram.MaximumPrograms)
}

func encodeTones(writer *endibuf.Writer, policy vpolicy.Policy, programs []vprogram.Program) error {
	for _, program := range programs {
		if !program.IsActive() {
			continue
		}
		if err := vtone.EncodeBlock(writer, policy, program.Tones); err != nil {
			return errors.Wrapf(err, "encodeTones error at program %d", program.Index)
		}
	}
	return nil
}

func encodeWaveformSizes(writer *endibuf.Writer, sizes []int, opts Options) error {
	// leading placeholder, sizes, then zero padding up to the block size
	entries := make([]uint16, WaveformSizesBlockSize/2)
	for i, size := range sizes {
		value := size
		if opts.QuantizedSizes {
			if size%(1<<sizeQuantizationShift) != 0 {
				return verror.New(
					verror.KindSizeMismatch,
					"waveform %d with size %d is not a multiple of %d",
					i, size, 1<<sizeQuantizationShift,
				)
			}
			value = size >> sizeQuantizationShift
		}
		if value < 0 || value > math.MaxUint16 {
			return verror.New(
				verror.KindTotalSizeExceeded,
				"waveform %d with size %d does not fit the size table",
				i, size,
			)
		}
		entries[i+1] = uint16(value)
	}
	if err := writer.WriteData(entries); err != nil {
		return errors.Wrap(err, "encodeWaveformSizes error")
	}
	return nil
}

// Encode writes header as a VH. The program and tone counts and the full
// size are computed from the header content, never taken from stored values.
func Encode(header *Header, opts Options) ([]byte, error) {
	policy, err := vpolicy.Lookup(header.Version)
	if err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	if err := ValidatePrograms(header.Programs); err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	if header.WaveformCount() > MaximumWaveforms {
		err := verror.New(
			verror.KindTooManyWaveforms,
			"%d waveforms, maximum is %d",
			header.WaveformCount(), MaximumWaveforms,
		)
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	for _, program := range header.Programs {
		if err := validateTones(program.Tones, program.Index, header.WaveformCount()); err != nil {
			return nil, errors.Wrap(err, "vheader.Encode error")
		}
	}

	stream := lbytes.NewStream()
	writer := endibuf.NewWriter(stream)
	writer.Endian = opts.byteOrder()

	if err := encodePrologue(writer, header); err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	if err := encodePrograms(writer, policy, header.Programs); err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	if err := encodeTones(writer, policy, header.Programs); err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}
	if err := encodeWaveformSizes(writer, header.WaveformSizes, opts); err != nil {
		return nil, errors.Wrap(err, "vheader.Encode error")
	}

	return stream.Bytes(), nil
}
