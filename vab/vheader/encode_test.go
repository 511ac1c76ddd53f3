package vheader

import (
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/psx-vab/internal/vabtest"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vprogram"
	"github.com/thanhnguyen2187/psx-vab/vab/vtone"
	"github.com/vazrupe/endibuf"
)

func createSampleHeader() *Header {
	header := New(7)
	header.ID = 1
	header.WaveformSizes = []int{0x10}
	program := vprogram.New(0)
	program.Tones = []vtone.Tone{{ProgramIndex: 0, WaveformIndex: 0}}
	header.Programs = append(header.Programs, program)
	return header
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, version := range []int32{5, 6, 7} {
		expected := vabtest.BuildVH(version)

		header, err := decodeBytes(expected, DefaultOptions())
		require.NoError(t, err, "version %d", version)
		actual, err := Encode(header, DefaultOptions())
		require.NoError(t, err, "version %d", version)

		assert.Equal(t, expected, actual, "version %d", version)
	}
}

func TestEncode_BigEndianUnquantized(t *testing.T) {
	header, err := decodeBytes(vabtest.BuildVH(6), DefaultOptions())
	require.NoError(t, err)

	opts := Options{
		ByteOrder:      binary.BigEndian,
		QuantizedSizes: false,
	}
	bs, err := Encode(header, opts)
	require.NoError(t, err)
	assert.Equal(t, []byte("VABp"), bs[:4])
	sizesOffset := ToneBlockOffset + vabtest.ProgramCount*vtone.DefaultBlockSize
	assert.Equal(t, uint16(0x20), binary.BigEndian.Uint16(bs[sizesOffset+4:]))

	decoded, err := decodeBytes(bs, opts)
	require.NoError(t, err)
	assert.Equal(t, header, decoded)
}

func TestEncode_Counts(t *testing.T) {
	header := createSampleHeader()

	bs, err := Encode(header, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, bs, header.HeaderSize())
	assert.Equal(t, uint32(header.FullSize()), binary.LittleEndian.Uint32(bs[0x0C:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(bs[0x12:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(bs[0x14:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(bs[0x16:]))
}

func TestEncode_FillsGaps(t *testing.T) {
	header := createSampleHeader()
	header.WaveformSizes = []int{0x10, 0x10}
	program := vprogram.New(3)
	program.MasterVolume = 0x33
	program.Tones = []vtone.Tone{{ProgramIndex: 3, WaveformIndex: 1}}
	header.Programs[0].MasterVolume = 0x22
	header.Programs[0].Priority = 9
	header.Programs = append(header.Programs, program)

	bs, err := Encode(header, DefaultOptions())
	require.NoError(t, err)

	decoded, err := Decode(lbytes.NewStreamFromBytes(bs), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, decoded.Programs, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, []int{
		decoded.Programs[0].Index,
		decoded.Programs[1].Index,
		decoded.Programs[2].Index,
		decoded.Programs[3].Index,
	})
	// gaps take after the previous program, masters cleared for version 7
	assert.Equal(t, uint8(9), decoded.Programs[1].Priority)
	assert.Equal(t, uint8(0), decoded.Programs[1].MasterVolume)
	assert.False(t, decoded.Programs[2].IsActive())
	assert.Equal(t, uint8(0x33), decoded.Programs[3].MasterVolume)
}

func TestEncode_FirstProgramNotZero(t *testing.T) {
	header := createSampleHeader()
	header.Programs[0].Index = 1
	header.Programs[0].Tones[0].ProgramIndex = 1

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrIndexOutOfRange))
}

func TestEncode_ProgramsOutOfOrder(t *testing.T) {
	header := createSampleHeader()
	header.Programs = append(header.Programs, vprogram.New(0))

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrIndexOutOfRange))
}

func TestEncode_ProgramIndexTooLarge(t *testing.T) {
	header := createSampleHeader()
	header.Programs = append(header.Programs, vprogram.New(vprogram.MaximumPrograms))

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrIndexOutOfRange))
}

func TestEncode_TooManyTones(t *testing.T) {
	header := createSampleHeader()
	tone := header.Programs[0].Tones[0]
	for i := 0; i < vtone.MaximumPerProgram; i++ {
		header.Programs[0].Tones = append(header.Programs[0].Tones, tone)
	}

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrCountMismatch))
}

func TestEncode_WaveformIndexOutOfRange(t *testing.T) {
	header := createSampleHeader()
	header.Programs[0].Tones[0].WaveformIndex = 1

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrIndexOutOfRange))
}

func TestEncode_TooManyWaveforms(t *testing.T) {
	header := createSampleHeader()
	header.WaveformSizes = make([]int, MaximumWaveforms+1)

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrTooManyWaveforms))
}

func TestEncode_WaveformTooLarge(t *testing.T) {
	header := createSampleHeader()
	header.WaveformSizes = []int{0x10000 << 3}

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrTotalSizeExceeded))
}

func TestEncode_UnalignedWaveformSize(t *testing.T) {
	header := createSampleHeader()
	header.WaveformSizes = []int{13}

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrSizeMismatch))

	opts := DefaultOptions()
	opts.QuantizedSizes = false
	bs, err := Encode(header, opts)
	require.NoError(t, err)
	decoded, err := decodeBytes(bs, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{13}, decoded.WaveformSizes)
}

func TestEncodePrologue(t *testing.T) {
	fixture := vabtest.Build(5)
	header, err := decodeBytes(fixture.VH, DefaultOptions())
	require.NoError(t, err)

	stream := lbytes.NewStream()
	writer := endibuf.NewWriter(stream)
	writer.Endian = binary.LittleEndian
	require.NoError(t, encodePrologue(writer, header))
	assert.Equal(t, fixture.VH[:DefaultPrologueSize], stream.Bytes())
}

func TestEncode_UnsupportedVersion(t *testing.T) {
	header := createSampleHeader()
	header.Version = 4

	_, err := Encode(header, DefaultOptions())
	assert.True(t, errors.Is(err, verror.ErrUnsupportedVersion))
}
