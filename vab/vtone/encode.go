package vtone

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/psx-vab/vab/vpolicy"
	"github.com/vazrupe/endibuf"
)

func EncodeEntry(writer *endibuf.Writer, tone Tone) error {
	if err := binary.Write(writer, writer.Endian, toEntry(tone)); err != nil {
		return errors.Wrap(err, "vtone.EncodeEntry error")
	}
	return nil
}

// CreateFiller builds the unused tone that follows reference in a program
// table written by the given format version.
func CreateFiller(policy vpolicy.Policy, reference Tone) Tone {
	filler := reference
	if policy.ClearToneAttributes {
		filler.Priority = 0
		filler.Mode = 0
		filler.Volume = 0
		filler.Panning = 0
		filler.Centre = 0
		filler.Fine = 0
		filler.VibratoWidth = 0
		filler.VibratoTime = 0
		filler.PortamentoWidth = 0
		filler.PortamentoTime = 0
		filler.PitchBendMinimum = 0
		filler.PitchBendMaximum = 0
	}
	filler.Minimum = 0
	filler.Maximum = 0

	switch policy.Envelope {
	case vpolicy.EnvelopeZero:
		filler.Envelope1 = 0
		filler.Envelope2 = 0
	case vpolicy.EnvelopeSentinel:
		filler.Envelope1 = policy.EnvelopeSentinel1
		filler.Envelope2 = policy.EnvelopeSentinel2
	}

	if policy.ClearWaveformIndex {
		filler.WaveformIndex = -1
	}
	return filler
}

// EncodeBlock writes the tones of one program padded with fillers up to the
// fixed table size.
func EncodeBlock(writer *endibuf.Writer, policy vpolicy.Policy, tones []Tone) error {
	if len(tones) == 0 || len(tones) > MaximumPerProgram {
		return errors.Errorf("vtone.EncodeBlock invalid tone count %d", len(tones))
	}
	for _, tone := range tones {
		if err := EncodeEntry(writer, tone); err != nil {
			return err
		}
	}
	filler := CreateFiller(policy, tones[len(tones)-1])
	for i := len(tones); i < MaximumPerProgram; i++ {
		if err := EncodeEntry(writer, filler); err != nil {
			return errors.Wrapf(err, "vtone.EncodeBlock error writing filler %d", i)
		}
	}
	return nil
}
