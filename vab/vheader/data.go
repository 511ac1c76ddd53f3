// Package vheader decodes and encodes the VAB header (VH): the global bank
// fields, the 128-slot program table, the tone tables of the active programs
// and the waveform size table.
package vheader

import (
	"encoding/binary"

	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/vab/vprogram"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
)

type (
	Header struct {
		Version        int32              `json:"version" yaml:"version"`
		ID             int32              `json:"id" yaml:"id"`
		Reserved0      int16              `json:"reserved_0" yaml:"reserved_0"`
		MasterVolume   uint8              `json:"master_volume" yaml:"master_volume"`
		MasterPan      uint8              `json:"master_pan" yaml:"master_pan"`
		BankAttribute1 uint8              `json:"bank_attribute_1" yaml:"bank_attribute_1"`
		BankAttribute2 uint8              `json:"bank_attribute_2" yaml:"bank_attribute_2"`
		Reserved1      int32              `json:"reserved_1" yaml:"reserved_1"`
		Programs       []vprogram.Program `json:"programs" yaml:"programs"`
		// WaveformSizes are byte lengths, recomputed from the body before encoding.
		WaveformSizes []int `json:"waveform_sizes" yaml:"-"`
	}
	Options struct {
		ByteOrder binary.ByteOrder
		// QuantizedSizes stores waveform sizes in 8-byte units.
		QuantizedSizes bool
		// StrictSize rejects headers whose declared full size disagrees with
		// the computed one. Some games ship with stale values.
		StrictSize bool
	}
	prologue struct {
		Magic          uint32
		Version        int32
		ID             int32
		FullSize       uint32
		Reserved0      int16
		ProgramCount   uint16
		ToneCount      uint16
		WaveformCount  uint16
		MasterVolume   uint8
		MasterPan      uint8
		BankAttribute1 uint8
		BankAttribute2 uint8
		Reserved1      int32
	}
)

const (
	// MagicNumber is "VABp", stored as "pBAV" by little-endian tools.
	MagicNumber            = 0x56414270
	DefaultPrologueSize    = 0x20
	ToneBlockOffset        = DefaultPrologueSize + vprogram.DefaultBlockSize
	WaveformSizesBlockSize = 0x200
	// MaximumWaveforms is what fits the size table next to its leading placeholder.
	MaximumWaveforms = WaveformSizesBlockSize/2 - 1
	// MaximumTotalWaveformsSize is the sound RAM (512 KiB) minus the area
	// reserved by the system.
	MaximumTotalWaveformsSize = 0x7EFF0
	sizeQuantizationShift     = 3
)

func DefaultOptions() Options {
	return Options{
		ByteOrder:      binary.LittleEndian,
		QuantizedSizes: true,
		StrictSize:     false,
	}
}

func (r Options) byteOrder() binary.ByteOrder {
	if r.ByteOrder == nil {
		return binary.LittleEndian
	}
	return r.ByteOrder
}

func New(version int32) *Header {
	return &Header{
		Version:       version,
		Programs:      make([]vprogram.Program, 0),
		WaveformSizes: make([]int, 0),
	}
}

func (r *Header) ActivePrograms() []vprogram.Program {
	return lo.Filter(
		r.Programs,
		func(program vprogram.Program, _ int) bool {
			return program.IsActive()
		},
	)
}

func (r *Header) ToneCount() int {
	return lo.Reduce(
		r.Programs,
		func(count int, program vprogram.Program, _ int) int {
			return count + len(program.Tones)
		},
		0,
	)
}

func (r *Header) WaveformCount() int {
	return len(r.WaveformSizes)
}

// HeaderSize is the size of the VH: only active programs own a tone table.
func (r *Header) HeaderSize() int {
	return DefaultPrologueSize +
		vprogram.DefaultBlockSize +
		len(r.ActivePrograms())*vtone.DefaultBlockSize +
		WaveformSizesBlockSize
}

func (r *Header) BodySize() int {
	return lo.Reduce(
		r.WaveformSizes,
		func(total int, size int, _ int) int {
			return total + size
		},
		0,
	)
}

// FullSize is the size of the whole VAB: header and body.
func (r *Header) FullSize() int {
	return r.HeaderSize() + r.BodySize()
}
