// SPDX-License-Identifier: EPL-2.0

package audseg

import (
	"fmt"
	"io"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/utils"
)

// Render16 drains src through a resampler and a channel mixer and returns
// the result as interleaved 16-bit PCM together with the output rate.
//
// The pipeline is resample -> mix. A targetRate equal to the source rate
// and a channel count equal to the source's skip the respective stage.
// bufferSize is the number of float32 values read per step.
//
// src is drained until io.EOF, so a stream that loops forever never
// returns.
func Render16(src audio.Source, targetRate, channels, bufferSize int) ([]int16, int, error) {
	if channels < 1 {
		return nil, 0, audio.ErrInvalidChannels
	}
	if bufferSize < channels {
		return nil, 0, audio.ErrInvalidDstSize
	}

	var stage audio.Source = src
	if targetRate != src.SampleRate() {
		stage = audio.NewResampler(stage, targetRate)
	}
	stage = audio.NewChannelMixer(stage, channels)

	// Sized sources let us allocate once.
	pcm16 := make([]int16, 0, targetRate*channels*2)
	if frames := audio.FramesOf(stage); frames > 0 {
		pcm16 = make([]int16, 0, frames*int64(channels))
	}

	buf := make([]float32, bufferSize-bufferSize%channels)
	for {
		n, err := stage.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// ResampleToMono16 is Render16 with a mono output.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	return Render16(src, targetRate, 1, bufferSize)
}
