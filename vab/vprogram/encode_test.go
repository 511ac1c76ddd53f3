package vprogram

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vpolicy"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
	"github.com/vazrupe/endibuf"
)

var sampleProgramBytes = []byte{
	0x02, 0x64, 0x08, 0xE0, 0x40, 0x00, 0x34, 0x12,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

func createSampleProgram() Program {
	program := New(4)
	program.MasterVolume = 0x64
	program.Priority = 8
	program.MasterPanning = 0x40
	program.Attributes = 0x1234
	program.Tones = []vtone.Tone{{ProgramIndex: 4}, {ProgramIndex: 4}}
	return program
}

func TestDecodeEntry(t *testing.T) {
	reader := endibuf.NewReader(lbytes.NewStreamFromBytes(sampleProgramBytes))
	reader.Endian = binary.LittleEndian

	program, toneCount, err := DecodeEntry(reader, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, toneCount)

	expected := createSampleProgram()
	expected.Tones = nil
	assert.Equal(t, expected, *program)
	assert.False(t, program.IsActive())
}

func TestEncodeEntry(t *testing.T) {
	stream := lbytes.NewStream()
	writer := endibuf.NewWriter(stream)
	writer.Endian = binary.LittleEndian

	require.NoError(t, EncodeEntry(writer, createSampleProgram()))
	assert.Equal(t, sampleProgramBytes, stream.Bytes())
}

func TestCreateFiller(t *testing.T) {
	reference := createSampleProgram()

	v5, err := vpolicy.Lookup(5)
	require.NoError(t, err)
	filler5 := CreateFiller(v5, reference, 5)
	assert.Equal(t, 5, filler5.Index)
	assert.Equal(t, uint8(0x64), filler5.MasterVolume)
	assert.Equal(t, uint8(0x40), filler5.MasterPanning)
	assert.False(t, filler5.IsActive())

	v7, err := vpolicy.Lookup(7)
	require.NoError(t, err)
	filler7 := CreateFiller(v7, reference, 9)
	assert.Equal(t, 9, filler7.Index)
	assert.Equal(t, uint8(0), filler7.MasterVolume)
	assert.Equal(t, uint8(0), filler7.MasterPanning)
	assert.Equal(t, uint8(8), filler7.Priority)
	assert.Equal(t, int16(0x1234), filler7.Attributes)
	assert.Empty(t, filler7.Tones)
	// the reference is untouched
	assert.Len(t, reference.Tones, 2)
}
