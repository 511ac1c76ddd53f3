// Package vtone reads and writes the tone attributes of a VAB program.
package vtone

type (
	// Tone maps a key range of a program to one waveform.
	Tone struct {
		Priority uint8 `json:"priority" yaml:"priority"`
		// Mode is 0 for normal playback and 4 for reverberation.
		Mode             uint8 `json:"mode" yaml:"mode"`
		Volume           uint8 `json:"volume" yaml:"volume"`
		Panning          uint8 `json:"panning" yaml:"panning"`
		Centre           uint8 `json:"centre" yaml:"centre"`
		Fine             uint8 `json:"fine" yaml:"fine"`
		Minimum          uint8 `json:"minimum" yaml:"minimum"`
		Maximum          uint8 `json:"maximum" yaml:"maximum"`
		VibratoWidth     uint8 `json:"vibrato_width" yaml:"vibrato_width"`
		VibratoTime      uint8 `json:"vibrato_time" yaml:"vibrato_time"`
		PortamentoWidth  uint8 `json:"portamento_width" yaml:"portamento_width"`
		PortamentoTime   uint8 `json:"portamento_time" yaml:"portamento_time"`
		PitchBendMinimum uint8 `json:"pitch_bend_minimum" yaml:"pitch_bend_minimum"`
		PitchBendMaximum uint8 `json:"pitch_bend_maximum" yaml:"pitch_bend_maximum"`
		Reserved0        uint8 `json:"reserved_0" yaml:"reserved_0"`
		Reserved1        uint8 `json:"reserved_1" yaml:"reserved_1"`
		// Envelope1 holds attack and decay, Envelope2 sustain and release.
		Envelope1    uint16 `json:"envelope_1" yaml:"envelope_1"`
		Envelope2    uint16 `json:"envelope_2" yaml:"envelope_2"`
		ProgramIndex int16  `json:"program_index" yaml:"program_index"`
		// WaveformIndex is 0-based; on disk it is 1-based with 0 as "unset".
		WaveformIndex int16 `json:"waveform_index" yaml:"waveform_index"`
		Reserved2     int64 `json:"reserved_2" yaml:"reserved_2"`
	}
	// entry is the on-disk layout of a tone.
	entry struct {
		Priority         uint8
		Mode             uint8
		Volume           uint8
		Panning          uint8
		Centre           uint8
		Fine             uint8
		Minimum          uint8
		Maximum          uint8
		VibratoWidth     uint8
		VibratoTime      uint8
		PortamentoWidth  uint8
		PortamentoTime   uint8
		PitchBendMinimum uint8
		PitchBendMaximum uint8
		Reserved0        uint8
		Reserved1        uint8
		Envelope1        uint16
		Envelope2        uint16
		ProgramIndex     int16
		WaveformIndex    uint16
		Reserved2        int64
	}
)

const (
	DefaultEntrySize  = 0x20
	MaximumPerProgram = 0x10
	// DefaultBlockSize is the tone table of one program, always fully written.
	DefaultBlockSize = MaximumPerProgram * DefaultEntrySize
)

func fromEntry(e entry) Tone {
	return Tone{
		Priority:         e.Priority,
		Mode:             e.Mode,
		Volume:           e.Volume,
		Panning:          e.Panning,
		Centre:           e.Centre,
		Fine:             e.Fine,
		Minimum:          e.Minimum,
		Maximum:          e.Maximum,
		VibratoWidth:     e.VibratoWidth,
		VibratoTime:      e.VibratoTime,
		PortamentoWidth:  e.PortamentoWidth,
		PortamentoTime:   e.PortamentoTime,
		PitchBendMinimum: e.PitchBendMinimum,
		PitchBendMaximum: e.PitchBendMaximum,
		Reserved0:        e.Reserved0,
		Reserved1:        e.Reserved1,
		Envelope1:        e.Envelope1,
		Envelope2:        e.Envelope2,
		ProgramIndex:     e.ProgramIndex,
		WaveformIndex:    int16(e.WaveformIndex) - 1,
		Reserved2:        e.Reserved2,
	}
}

func toEntry(t Tone) entry {
	return entry{
		Priority:         t.Priority,
		Mode:             t.Mode,
		Volume:           t.Volume,
		Panning:          t.Panning,
		Centre:           t.Centre,
		Fine:             t.Fine,
		Minimum:          t.Minimum,
		Maximum:          t.Maximum,
		VibratoWidth:     t.VibratoWidth,
		VibratoTime:      t.VibratoTime,
		PortamentoWidth:  t.PortamentoWidth,
		PortamentoTime:   t.PortamentoTime,
		PitchBendMinimum: t.PitchBendMinimum,
		PitchBendMaximum: t.PitchBendMaximum,
		Reserved0:        t.Reserved0,
		Reserved1:        t.Reserved1,
		Envelope1:        t.Envelope1,
		Envelope2:        t.Envelope2,
		ProgramIndex:     t.ProgramIndex,
		WaveformIndex:    uint16(t.WaveformIndex + 1),
		Reserved2:        t.Reserved2,
	}
}
