// Package vabtest builds sample VAB files byte by byte, without going through
// the encoders under test.
//
// The sample bank has three waveforms and three program slots in use: slot 0
// with two tones, slot 1 left empty between the others, slot 2 with one tone.
package vabtest

import (
	"bytes"
	"encoding/binary"
)

type (
	Fixture struct {
		Version   int32
		VH        []byte
		VB        []byte
		VAB       []byte
		Waveforms [][]byte
	}
	tone struct {
		Attributes [14]byte
		Reserved   [2]byte
		Envelope1  uint16
		Envelope2  uint16
		Program    int16
		Waveform   uint16
		Reserved2  int64
	}
	program struct {
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
	ID           = 0x2A
	MasterVolume = 0x7F
	MasterPan    = 0x40
	ProgramCount = 2
	ToneCount    = 3
	HeaderSize   = 0x20 + 0x80*0x10 + ProgramCount*0x200 + 0x200
)

var (
	WaveformSizes = []int{0x10, 0x20, 0x18}
	programs      = []program{
		{ToneCount: 2, MasterVolume: 0x7F, Priority: 8, Mode: 0xE0, MasterPanning: 0x40, Reserved1: -1, Reserved2: -1},
		{ToneCount: 0, MasterVolume: 0x50, Priority: 0, Mode: 0xE0, MasterPanning: 0x20, Reserved1: -1, Reserved2: -1},
		{ToneCount: 1, MasterVolume: 0x60, Priority: 4, Mode: 0xE0, MasterPanning: 0x30, Attributes: 1, Reserved1: -1, Reserved2: -1},
	}
	// by slot; slot 1 has none
	tones = map[int][]tone{
		0: {
			{
				Attributes: [14]byte{8, 0, 0x7F, 0x40, 0x3C, 0x00, 0x00, 0x3F, 0, 0, 0, 0, 2, 2},
				Envelope1:  0x00FF,
				Envelope2:  0x5FC0,
				Program:    0,
				Waveform:   1,
			},
			{
				Attributes: [14]byte{8, 4, 0x70, 0x40, 0x48, 0x10, 0x40, 0x7F, 1, 2, 3, 4, 2, 2},
				Reserved:   [2]byte{0x01, 0x02},
				Envelope1:  0x80FF,
				Envelope2:  0x5FDF,
				Program:    0,
				Waveform:   2,
				Reserved2:  0x1122,
			},
		},
		2: {
			{
				Attributes: [14]byte{4, 0, 0x60, 0x40, 0x30, 0x00, 0x00, 0x7F, 0, 0, 0, 0, 1, 1},
				Envelope1:  0x0EFF,
				Envelope2:  0x1FC2,
				Program:    2,
				Waveform:   3,
			},
		},
	}
)

func toneFiller(version int32, reference tone) tone {
	filler := reference
	if version >= 6 {
		filler.Attributes = [14]byte{}
		filler.Waveform = 0
	}
	// minimum and maximum note
	filler.Attributes[6] = 0
	filler.Attributes[7] = 0
	switch version {
	case 6:
		filler.Envelope1 = 0
		filler.Envelope2 = 0
	case 7:
		filler.Envelope1 = 0x80FF
		filler.Envelope2 = 0x5FC0
	}
	return filler
}

func programFiller(version int32, reference program) program {
	filler := reference
	filler.ToneCount = 0
	if version >= 6 {
		filler.MasterVolume = 0
		filler.MasterPanning = 0
	}
	return filler
}

func Waveform(index int) []byte {
	bs := make([]byte, WaveformSizes[index])
	for i := range bs {
		bs[i] = byte(index*17 + i)
	}
	return bs
}

func BuildVH(version int32) []byte {
	buf := bytes.Buffer{}
	write := func(data any) {
		if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
			panic(err)
		}
	}

	bodySize := 0
	for _, size := range WaveformSizes {
		bodySize += size
	}

	buf.WriteString("pBAV")
	write(version)
	write(int32(ID))
	write(uint32(HeaderSize + bodySize))
	write(int16(0))
	write(uint16(ProgramCount))
	write(uint16(ToneCount))
	write(uint16(len(WaveformSizes)))
	write([]uint8{MasterVolume, MasterPan, 0, 0})
	write(int32(0))

	for _, p := range programs {
		write(p)
	}
	last := programs[len(programs)-1]
	for i := len(programs); i < 0x80; i++ {
		write(programFiller(version, last))
	}

	for slot := range programs {
		slotTones := tones[slot]
		if len(slotTones) == 0 {
			continue
		}
		for _, t := range slotTones {
			write(t)
		}
		filler := toneFiller(version, slotTones[len(slotTones)-1])
		for i := len(slotTones); i < 0x10; i++ {
			write(filler)
		}
	}

	sizes := make([]uint16, 0x100)
	for i, size := range WaveformSizes {
		sizes[i+1] = uint16(size >> 3)
	}
	write(sizes)

	return buf.Bytes()
}

func Build(version int32) Fixture {
	fixture := Fixture{
		Version: version,
		VH:      BuildVH(version),
	}
	for i := range WaveformSizes {
		waveform := Waveform(i)
		fixture.Waveforms = append(fixture.Waveforms, waveform)
		fixture.VB = append(fixture.VB, waveform...)
	}
	fixture.VAB = append(append([]byte{}, fixture.VH...), fixture.VB...)
	return fixture
}
