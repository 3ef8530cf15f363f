// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audseg/utils"
)

// chunkValues bounds how many samples are converted per encoder write.
const chunkValues = 8192

// WritePCM16 writes interleaved float32 samples as a 16-bit PCM WAV file.
// The encoder patches the header sizes on close, hence io.WriteSeeker.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels < 1 {
		return ErrInvalidChannels
	}

	enc := NewPCM16Writer(w, sampleRate, channels)
	if err := enc.Write(samples); err != nil {
		return err
	}

	return enc.Close()
}

// PCM16Writer streams float32 samples into a 16-bit PCM WAV file.
type PCM16Writer struct {
	enc *gowav.Encoder
	buf *goaudio.IntBuffer
}

func NewPCM16Writer(w io.WriteSeeker, sampleRate, channels int) *PCM16Writer {
	return &PCM16Writer{
		enc: gowav.NewEncoder(w, sampleRate, 16, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, chunkValues),
			SourceBitDepth: 16,
		},
	}
}

// Write appends interleaved samples. len(samples) should be a multiple of
// the channel count.
func (p *PCM16Writer) Write(samples []float32) error {
	for i := 0; i < len(samples); i += chunkValues {
		end := min(i+chunkValues, len(samples))
		n := utils.Float32ToInts(p.buf.Data[:cap(p.buf.Data)], samples[i:end])
		p.buf.Data = p.buf.Data[:n]

		if err := p.enc.Write(p.buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Close finalizes the WAV headers. It does not close the underlying writer.
func (p *PCM16Writer) Close() error {
	if err := p.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
