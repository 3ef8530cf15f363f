// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReader simulates the go-audio decoders for testing
type mockReader struct {
	samples []int
	offset  int
	fail    error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: 2}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestSource_StopsAtFrameCount(t *testing.T) {
	t.Parallel()

	// Trailing values beyond the declared frames must not leak out.
	dec := &mockReader{samples: []int{16384, -16384, 8192, -8192, 99, 99}}
	src := NewSource(dec, 8000, 2, 16, 2)

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	assert.ErrorIs(t, err, io.EOF)
	require.Equal(t, 4, n)
	assert.Equal(t, []float32{0.5, -0.5, 0.25, -0.25}, buf[:n])

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_UnknownLength(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{samples: []int{1, 2, 3}}, 8000, 1, 16, -1)
	assert.Equal(t, int64(-1), src.Frames())

	buf := make([]float32, 2)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, _ = src.ReadSamples(buf)
	assert.Equal(t, 1, n)

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{fail: io.ErrUnexpectedEOF}, 8000, 1, 16, 10)
	_, err := src.ReadSamples(make([]float32, 4))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(br)
	require.NoError(t, err)
	assert.Same(t, br, rs)

	rs, err = Seekable(io.MultiReader(bytes.NewReader([]byte("xyz"))))
	require.NoError(t, err)
	data, err := io.ReadAll(rs)
	require.NoError(t, err)
	assert.Equal(t, "xyz", string(data))
}
