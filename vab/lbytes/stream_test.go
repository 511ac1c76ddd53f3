package lbytes

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_Read(t *testing.T) {
	stream := NewStreamFromBytes([]byte("pBAV\x07\x00\x00\x00"))

	magic := make([]byte, 4)
	_, err := io.ReadFull(stream, magic)
	assert.NoError(t, err)
	assert.Equal(t, "pBAV", string(magic))
	assert.Equal(t, int64(4), stream.Position())

	_, err = io.ReadFull(stream, make([]byte, 8))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestStream_WriteGrows(t *testing.T) {
	stream := NewStream()
	_, err := stream.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	_, err = stream.Seek(5, io.SeekStart)
	require.NoError(t, err)
	_, err = stream.Write([]byte{6})
	require.NoError(t, err)

	assert.Equal(t, []byte{1, 2, 3, 0, 0, 6}, stream.Bytes())
	assert.Equal(t, int64(6), stream.Len())
}

func TestStream_SliceSharesBuffer(t *testing.T) {
	stream := NewStreamFromBytes([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	slice, err := stream.Slice(2, 4)
	require.NoError(t, err)

	assert.Equal(t, []byte{2, 3, 4, 5}, slice.Bytes())
	assert.Equal(t, int64(0), slice.Position())

	// writes through the slice are visible in the parent
	_, err = slice.Write([]byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), stream.Bytes()[2])

	// but a slice cannot grow over its neighbours
	_, err = slice.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	_, err = slice.Write([]byte{0xBB})
	assert.True(t, errors.Is(err, ErrFixedLength))
	assert.Equal(t, byte(6), stream.Bytes()[6])
}

func TestStream_SliceOutOfRange(t *testing.T) {
	stream := NewStreamFromBytes(make([]byte, 4))
	_, err := stream.Slice(2, 4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestStream_NestedSliceIndependentCursor(t *testing.T) {
	stream := NewStreamFromBytes([]byte("0123456789"))
	outer, err := stream.Slice(2, 6)
	require.NoError(t, err)
	inner, err := outer.Slice(1, 3)
	require.NoError(t, err)

	bs := make([]byte, 3)
	_, err = io.ReadFull(inner, bs)
	require.NoError(t, err)
	assert.Equal(t, "345", string(bs))
	assert.Equal(t, int64(0), outer.Position())

	_, err = outer.Seek(4, io.SeekStart)
	require.NoError(t, err)
	bs = make([]byte, 4)
	n, err := outer.Read(bs)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "67", string(bs[:n]))
}
