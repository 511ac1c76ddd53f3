package vheader

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vpolicy"
	"github.com/thanhnguyen2187/psx-vab/vab/vprogram"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
	"github.com/vazrupe/endibuf"
)

func seek(stream *lbytes.Stream, offset int) error {
	_, err := stream.Seek(int64(offset), io.SeekStart)
	return err
}

func decodePrologue(reader *endibuf.Reader) (*prologue, error) {
	p := prologue{}
	if err := binary.Read(reader, reader.Endian, &p); err != nil {
		err := errors.Wrap(err, "decodePrologue error")
		return nil, err
	}
	if p.Magic != MagicNumber {
		return nil, verror.New(
			verror.KindInvalidMagic,
			"expected 0x%08X, got 0x%08X",
			MagicNumber, p.Magic,
		)
	}
	if !vpolicy.IsSupported(p.Version) {
		return nil, verror.UnsupportedVersionError{Version: p.Version}
	}
	if int(p.WaveformCount) > MaximumWaveforms {
		return nil, verror.New(
			verror.KindTooManyWaveforms,
			"header declares %d waveforms, maximum is %d",
			p.WaveformCount, MaximumWaveforms,
		)
	}
	if int(p.ProgramCount) > vprogram.MaximumPrograms {
		return nil, verror.New(
			verror.KindCountMismatch,
			"header declares %d programs, maximum is %d",
			p.ProgramCount, vprogram.MaximumPrograms,
		)
	}
	return &p, nil
}

func validateTones(tones []vtone.Tone, slot int, waveformCount int) error {
	for i, tone := range tones {
		if int(tone.ProgramIndex) != slot {
			return verror.New(
				verror.KindIndexOutOfRange,
				"tone %d/%d references program %d",
				slot, i, tone.ProgramIndex,
			)
		}
		if tone.WaveformIndex < 0 || int(tone.WaveformIndex) >= waveformCount {
			return verror.New(
				verror.KindIndexOutOfRange,
				"tone %d/%d references waveform %d of %d",
				slot, i, tone.WaveformIndex, waveformCount,
			)
		}
	}
	return nil
}

// decodePrograms walks the physical slots until the declared number of active
// programs is found. Inactive slots in between are kept with no tones so they
// are written back unchanged; the ones after the last active program are left
// to the filler policy.
//
// Tone tables are packed: the n-th active program owns the n-th table,
// whatever its slot.
func decodePrograms(stream *lbytes.Stream, reader *endibuf.Reader, p prologue) ([]vprogram.Program, error) {
	programs := make([]vprogram.Program, 0, p.ProgramCount)
	numActive := 0
	numTones := 0
	for slot := 0; numActive < int(p.ProgramCount); slot++ {
		if slot >= vprogram.MaximumPrograms {
			return nil, verror.New(
				verror.KindCountMismatch,
				"found %d active programs, header declares %d",
				numActive, p.ProgramCount,
			)
		}

		if err := seek(stream, DefaultPrologueSize+slot*vprogram.DefaultEntrySize); err != nil {
			return nil, err
		}
		program, toneCount, err := vprogram.DecodeEntry(reader, slot)
		if err != nil {
			return nil, err
		}
		if toneCount == 0 {
			programs = append(programs, *program)
			continue
		}
		if toneCount > vtone.MaximumPerProgram {
			return nil, verror.New(
				verror.KindCountMismatch,
				"program %d declares %d tones, maximum is %d",
				slot, toneCount, vtone.MaximumPerProgram,
			)
		}

		if err := seek(stream, ToneBlockOffset+numActive*vtone.DefaultBlockSize); err != nil {
			return nil, err
		}
		tones, err := vtone.DecodeBlock(reader, toneCount)
		if err != nil {
			return nil, err
		}
		if err := validateTones(tones, slot, int(p.WaveformCount)); err != nil {
			return nil, err
		}

		program.Tones = tones
		programs = append(programs, *program)
		numActive++
		numTones += toneCount
	}

	if numTones != int(p.ToneCount) {
		return nil, verror.New(
			verror.KindCountMismatch,
			"read %d tones, header declares %d",
			numTones, p.ToneCount,
		)
	}
	return programs, nil
}

func decodeWaveformSizes(reader *endibuf.Reader, count int, opts Options) ([]int, error) {
	// the first entry is always zero: tones reference waveforms 1-based
	entries := make([]uint16, count+1)
	if err := reader.ReadData(entries); err != nil {
		err := errors.Wrap(err, "decodeWaveformSizes error")
		return nil, err
	}

	sizes := make([]int, 0, count)
	for _, entry := range entries[1:] {
		size := int(entry)
		if opts.QuantizedSizes {
			size <<= sizeQuantizationShift
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// Decode reads a VH from the start of stream. The stream may continue with
// the body (VAB files); it is left positioned after the header.
func Decode(stream *lbytes.Stream, opts Options) (*Header, error) {
	reader := endibuf.NewReader(stream)
	reader.Endian = opts.byteOrder()

	if err := seek(stream, 0); err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}
	p, err := decodePrologue(reader)
	if err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}

	header := Header{
		Version:        p.Version,
		ID:             p.ID,
		Reserved0:      p.Reserved0,
		MasterVolume:   p.MasterVolume,
		MasterPan:      p.MasterPan,
		BankAttribute1: p.BankAttribute1,
		BankAttribute2: p.BankAttribute2,
		Reserved1:      p.Reserved1,
	}
	header.Programs, err = decodePrograms(stream, reader, *p)
	if err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}

	sizesOffset := ToneBlockOffset + len(header.ActivePrograms())*vtone.DefaultBlockSize
	if err := seek(stream, sizesOffset); err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}
	header.WaveformSizes, err = decodeWaveformSizes(reader, int(p.WaveformCount), opts)
	if err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}
	if err := seek(stream, header.HeaderSize()); err != nil {
		return nil, errors.Wrap(err, "vheader.Decode error")
	}

	if opts.StrictSize && int(p.FullSize) != header.FullSize() {
		err := verror.New(
			verror.KindSizeMismatch,
			"computed size %d, header declares %d",
			header.FullSize(), p.FullSize,
		)
		return nil, errors.Wrap(err, "vheader.Decode error")
	}

	return &header, nil
}
