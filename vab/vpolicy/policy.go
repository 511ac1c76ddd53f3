// Package vpolicy lists how each VH format version fills the unused program
// and tone slots.
//
// Games shipped with headers written by different versions of the official
// tools, and every version leaves a different trail in the unused slots.
// Reproducing it is the only way to write back an identical file.
package vpolicy

import (
	"sort"

	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
)

type (
	EnvelopeFill int
	Policy       struct {
		Version int32
		// ClearProgramMasters zeroes master volume and panning of filler programs.
		ClearProgramMasters bool
		// ClearToneAttributes zeroes the first 14 bytes of filler tones
		// (priority to pitch bend maximum).
		ClearToneAttributes bool
		Envelope            EnvelopeFill
		EnvelopeSentinel1   uint16
		EnvelopeSentinel2   uint16
		// ClearWaveformIndex writes the unset waveform (0 on disk) in filler tones.
		ClearWaveformIndex bool
	}
)

const (
	EnvelopeCopy EnvelopeFill = iota
	EnvelopeZero
	EnvelopeSentinel
)

var policies = map[int32]Policy{
	5: {
		Version:             5,
		ClearProgramMasters: false,
		ClearToneAttributes: false,
		Envelope:            EnvelopeCopy,
		ClearWaveformIndex:  false,
	},
	6: {
		Version:             6,
		ClearProgramMasters: true,
		ClearToneAttributes: true,
		Envelope:            EnvelopeZero,
		ClearWaveformIndex:  true,
	},
	7: {
		Version:             7,
		ClearProgramMasters: true,
		ClearToneAttributes: true,
		Envelope:            EnvelopeSentinel,
		EnvelopeSentinel1:   0x80FF,
		EnvelopeSentinel2:   0x5FC0,
		ClearWaveformIndex:  true,
	},
}

func Lookup(version int32) (Policy, error) {
	policy, ok := policies[version]
	if !ok {
		return Policy{}, verror.UnsupportedVersionError{Version: version}
	}
	return policy, nil
}

func IsSupported(version int32) bool {
	_, ok := policies[version]
	return ok
}

func SupportedVersions() []int32 {
	versions := lo.Keys(policies)
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions
}
