// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	channels int
	samples  []float32
	offset   int
	length   int64
}

func (m *mockOggVorbisReader) SampleRate() int { return 48000 }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return m.length }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	assert.Error(t, err)
}

func TestSource_ReadsWholeFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockOggVorbisReader{
			channels: 2,
			samples:  []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
			length:   3,
		},
		sampleRate: 48000,
		channels:   2,
	}

	assert.Equal(t, int64(3), src.Frames())

	// Odd destination length: only one full frame fits.
	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{0.1, -0.1}, buf[:n])

	buf = make([]float32, 8)
	n, _ = src.ReadSamples(buf)
	require.Equal(t, 4, n)
	assert.Equal(t, []float32{0.2, -0.2, 0.3, -0.3}, buf[:n])

	n, err = src.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_UnknownLength(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggVorbisReader{channels: 1}, channels: 1}
	assert.Equal(t, int64(-1), src.Frames())

	n, err := src.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}
