// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/internal/pcm"
)

const formatPCM = 1

type Decoder struct{}

// Decode reads the RIFF headers and positions the decoder at the PCM data.
// Integer PCM of 8, 16, 24 or 32 bits is supported.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	frames := dec.PCMLen() / int64(channels*bitDepth/8)

	return pcm.NewSource(dec, int(dec.SampleRate), channels, bitDepth, frames), nil
}
