// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audseg/audio"
)

// createWAVFile builds a canonical 44-byte-header PCM WAV in memory.
func createWAVFile(format uint16, sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 7)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
	}
}

func TestDecoder_Stereo16(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 8192}
	data := createWAVFile(formatPCM, 22050, 2, 16, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 22050, src.SampleRate())
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, int64(3), audio.FramesOf(src))

	want := make([]float32, len(samples))
	for i, s := range samples {
		want[i] = float32(s) / 32768.0
	}
	assert.Equal(t, want, readAll(t, src))
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	data := createWAVFile(formatPCM, 8000, 1, 16, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)

	assert.Len(t, readAll(t, src), 4)
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "not a wav", data: []byte("This is definitely not a RIFF file at all....."), want: ErrNotWavFile},
		{name: "float format", data: createWAVFile(3, 8000, 1, 16, []int16{1, 2}), want: ErrOnlyPCMSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	in := []float32{0, 0.5, -0.5, 0.25, 1, -1}
	require.NoError(t, WritePCM16(f, 16000, 2, in))
	require.NoError(t, f.Close())

	rf, err := os.Open(path)
	require.NoError(t, err)
	defer rf.Close()

	src, err := Decoder{}.Decode(rf)
	require.NoError(t, err)
	assert.Equal(t, 16000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	assert.InDeltaSlice(t, in, readAll(t, src), 0.001)
}

func TestPCM16Writer_Streams(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stream.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := NewPCM16Writer(f, 8000, 1)
	for range 3 {
		require.NoError(t, w.Write(make([]float32, chunkValues+10)))
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	rf, err := os.Open(path)
	require.NoError(t, err)
	defer rf.Close()

	src, err := Decoder{}.Decode(rf)
	require.NoError(t, err)
	assert.Equal(t, int64(3*(chunkValues+10)), audio.FramesOf(src))
}

func TestWritePCM16_InvalidChannels(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, WritePCM16(f, 8000, 0, nil), ErrInvalidChannels)
}
