// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audseg/audio"
)

// frameReader is the part of goflac.Stream the source reads from, so tests
// can feed frames directly.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	scale      float32
	frames     int64

	// pending holds the interleaved samples of the current FLAC frame that
	// did not fit into the caller's buffer yet.
	pending []float32
	head    int
	done    bool
}

func newSource(dec frameReader, sampleRate, channels, bitDepth int, frames int64) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(uint64(1) << (bitDepth - 1)),
		frames:     frames,
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return max(cap(s.pending), 4096) }

// Frames is the sample count of the STREAMINFO block, or -1 when the
// encoder left it unset.
func (s *source) Frames() int64 { return s.frames }

// Close is a no-op; the caller owns the reader passed to Decode.
func (s *source) Close() error { return nil }

// next decodes one FLAC frame into pending.
func (s *source) next() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		return err
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", ErrUnsupportedLayout, len(f.Subframes), s.channels)
	}

	n := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		n = min(n, len(sub.Samples))
	}

	need := n * s.channels
	if cap(s.pending) < need {
		s.pending = make([]float32, need)
	}
	s.pending = s.pending[:need]
	s.head = 0

	for c, sub := range f.Subframes {
		for i := range n {
			s.pending[i*s.channels+c] = float32(sub.Samples[i]) / s.scale
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	var written int
	for written < len(dst) {
		if s.head == len(s.pending) {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				s.done = true
				if err == io.EOF {
					break
				}
				return written, fmt.Errorf("%w", err)
			}
			continue
		}

		n := copy(dst[written:], s.pending[s.head:])
		s.head += n
		written += n
	}

	if s.done && s.head == len(s.pending) {
		return written, io.EOF
	}

	return written, nil
}

type Decoder struct{}

// Decode reads the FLAC signature and STREAMINFO block. Other metadata
// blocks are skipped.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFLACFile, err)
	}

	info := stream.Info
	if info.NChannels < 1 {
		return nil, ErrUnsupportedLayout
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	frames := int64(-1)
	if info.NSamples > 0 {
		frames = int64(info.NSamples)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample), frames), nil
}
