// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources for tests. It does not
// import the audio package, so audio's own tests can use it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame.
type Waveform func(frame, ch int) float32

// MockSource generates a fixed number of frames from a Waveform. It
// implements audio.Source and audio.Sized.
type MockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	closed     int
	hideLength bool
}

func NewMockSource(rate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

// NewRampSource encodes the frame index as frame/scale on every channel,
// which makes ordering mistakes visible.
func NewRampSource(rate, channels, frames int, scale float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / scale
	})
}

func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	step := 2 * math.Pi * freq / float64(rate)
	return NewMockSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(step * float64(frame)))
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

// Close counts calls; see Closed.
func (m *MockSource) Close() error {
	m.closed++
	return nil
}

func (m *MockSource) Closed() int { return m.closed }

// Frames reports the total frame count, or -1 after HideLength.
func (m *MockSource) Frames() int64 {
	if m.hideLength {
		return -1
	}

	return int64(m.frames)
}

// HideLength makes the source behave like a stream of unknown length.
func (m *MockSource) HideLength() *MockSource {
	m.hideLength = true
	return m
}

// ReadSamples writes whole frames and returns io.EOF together with the
// last batch.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}
	if m.channels <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		frame := dst[f*m.channels : (f+1)*m.channels]
		for c := range frame {
			frame[c] = m.wave(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
