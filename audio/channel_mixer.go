// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer streams src converted to a fixed channel count.
type ChannelMixer struct {
	src      Source
	channels int
	mix      *Mix
	tmp      []float32
}

// NewChannelMixer wraps src so it yields channels interleaved channels.
// A non-positive channels value is treated as mono.
func NewChannelMixer(src Source, channels int) *ChannelMixer {
	channels = max(channels, 1)
	mix, _ := NewMix(max(src.Channels(), 1), channels)

	return &ChannelMixer{
		src:      src,
		channels: channels,
		mix:      mix,
		tmp:      make([]float32, 4096),
	}
}

// NewMonoMixer averages every channel of src into one.
func NewMonoMixer(src Source) *ChannelMixer {
	return NewChannelMixer(src, 1)
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

// Frames forwards the length hint of src; mixing keeps the frame count.
func (m *ChannelMixer) Frames() int64 { return FramesOf(m.src) }

func (m *ChannelMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.mix.In == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	if frames == 0 {
		return 0, ErrInvalidDstSize
	}

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	needed := frames * m.mix.Width()
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, max(needed, 8192))
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp[:frames*m.mix.In])
	if n == 0 {
		return 0, err
	}
	got := n / m.mix.In

	if mixErr := m.mix.Apply(m.tmp, got); mixErr != nil {
		return 0, mixErr
	}
	copy(dst, m.tmp[:got*m.channels])

	return got * m.channels, err
}
