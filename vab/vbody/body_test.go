package vbody

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/psx-vab/internal/vabtest"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vag"
	"github.com/thanhnguyen2187/psx-vab/vab/verror"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
	"github.com/thanhnguyen2187/psx-vab/vab/vnode"
)

func TestSplit(t *testing.T) {
	fixture := vabtest.Build(7)

	container, err := Split(vabtest.WaveformSizes, lbytes.NewStreamFromBytes(fixture.VB))
	require.NoError(t, err)

	children := container.Children()
	require.Len(t, children, 3)
	for i, node := range children {
		assert.Equal(t, WaveformName(i), node.Name)
		assert.Equal(t, fixture.Waveforms[i], node.Stream().Bytes())
	}
	assert.Equal(t, "audio0002.adpcm", children[2].Name)
}

func TestSplit_SharesBuffer(t *testing.T) {
	body := []byte{1, 2, 3, 4, 5, 6}

	container, err := Split([]int{2, 4}, lbytes.NewStreamFromBytes(body))
	require.NoError(t, err)

	body[2] = 0xFF
	assert.Equal(t, []byte{0xFF, 4, 5, 6}, container.Children()[1].Stream().Bytes())
}

func TestSplit_BodyTooShort(t *testing.T) {
	_, err := Split([]int{4, 4}, lbytes.NewStreamFromBytes(make([]byte, 6)))
	assert.True(t, errors.Is(err, verror.ErrSizeMismatch))
}

func TestJoin(t *testing.T) {
	fixture := vabtest.Build(6)
	container, err := Split(vabtest.WaveformSizes, lbytes.NewStreamFromBytes(fixture.VB))
	require.NoError(t, err)
	container.Add(vnode.NewHeader(vheader.New(6)))

	bs, err := Join(container, JoinOptions{})
	require.NoError(t, err)
	assert.Equal(t, fixture.VB, bs)

	sizes, err := WaveformSizes(container, false)
	require.NoError(t, err)
	assert.Equal(t, vabtest.WaveformSizes, sizes)
}

func TestJoin_StripVagHeader(t *testing.T) {
	waveform := vabtest.Waveform(0)
	withHeader := append(make([]byte, vag.HeaderSize), waveform...)
	copy(withHeader, vag.Magic)
	container := vnode.NewContainer()
	container.Add(vnode.NewBinary("a", lbytes.NewStreamFromBytes(withHeader)))

	bs, err := Join(container, JoinOptions{StripVagHeader: true})
	require.NoError(t, err)
	assert.Equal(t, waveform, bs)

	bs, err = Join(container, JoinOptions{})
	require.NoError(t, err)
	assert.Equal(t, withHeader, bs)
}

func TestJoin_InvalidElement(t *testing.T) {
	container := vnode.NewContainer()
	container.Add(vnode.Node{Name: "text", Format: "abc"})

	_, err := Join(container, JoinOptions{})
	assert.True(t, errors.Is(err, verror.ErrInvalidElement))
}

func TestJoin_TooManyWaveforms(t *testing.T) {
	container := vnode.NewContainer()
	for i := 0; i < vheader.MaximumWaveforms; i++ {
		container.Add(vnode.NewBinary(WaveformName(i), lbytes.NewStreamFromBytes([]byte{0})))
	}

	_, err := Join(container, JoinOptions{})
	assert.NoError(t, err)

	container.Add(vnode.NewBinary(WaveformName(vheader.MaximumWaveforms), lbytes.NewStreamFromBytes([]byte{0})))
	_, err = Join(container, JoinOptions{})
	assert.True(t, errors.Is(err, verror.ErrTooManyWaveforms))
}

func TestJoin_TotalSizeExceeded(t *testing.T) {
	container := vnode.NewContainer()
	container.Add(vnode.NewBinary("a", lbytes.NewStreamFromBytes(make([]byte, vheader.MaximumTotalWaveformsSize))))

	_, err := WaveformSizes(container, false)
	assert.NoError(t, err)

	container.Add(vnode.NewBinary("b", lbytes.NewStreamFromBytes(make([]byte, 1))))
	_, err = Join(container, JoinOptions{})
	assert.True(t, errors.Is(err, verror.ErrTotalSizeExceeded))
}
