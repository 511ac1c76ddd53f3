// Package vprogram reads and writes the program (instrument) attributes of a VAB header.
package vprogram

import (
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
)

type (
	Program struct {
		// Index is the physical slot of the program in the 128-slot table.
		Index         int          `json:"index" yaml:"index"`
		MasterVolume  uint8        `json:"master_volume" yaml:"master_volume"`
		Priority      uint8        `json:"priority" yaml:"priority"`
		Mode          uint8        `json:"mode" yaml:"mode"`
		MasterPanning uint8        `json:"master_panning" yaml:"master_panning"`
		Reserved0     uint8        `json:"reserved_0" yaml:"reserved_0"`
		Attributes    int16        `json:"attributes" yaml:"attributes"`
		Reserved1     int32        `json:"reserved_1" yaml:"reserved_1"`
		Reserved2     int32        `json:"reserved_2" yaml:"reserved_2"`
		Tones         []vtone.Tone `json:"tones" yaml:"tones"`
	}
	entry struct {
		ToneCount     uint8
		MasterVolume  uint8
		Priority      uint8
		Mode          uint8
		MasterPanning uint8
		Reserved0     uint8
		Attributes    int16
		Reserved1     int32
		Reserved2     int32
	}
)

const (
	DefaultEntrySize = 0x10
	MaximumPrograms  = 0x80
	DefaultBlockSize = MaximumPrograms * DefaultEntrySize
	DefaultMode      = 0xE0
)

// New creates a program with the values the official tools use for an empty slot.
func New(index int) Program {
	return Program{
		Index:     index,
		Mode:      DefaultMode,
		Reserved1: -1,
		Reserved2: -1,
		Tones:     make([]vtone.Tone, 0),
	}
}

// IsActive reports whether the program has any tone. Inactive slots are part
// of the physical table but not of the program count.
func (r Program) IsActive() bool {
	return len(r.Tones) > 0
}
