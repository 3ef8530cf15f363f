// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Mix converts interleaved frames from In channels to Out channels in place.
//
// Downmixing to mono averages every channel. Other downmixes fold channel i
// into output channel i%Out and average the contributions. Upmixing repeats
// the input channels cyclically, so mono becomes dual-mono.
type Mix struct {
	In  int
	Out int

	acc   []float32
	count []int
}

func NewMix(in, out int) (*Mix, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("mix %d->%d: %w", in, out, ErrInvalidChannels)
	}

	return &Mix{
		In:    in,
		Out:   out,
		acc:   make([]float32, max(in, out)),
		count: make([]int, out),
	}, nil
}

// Width is the number of interleaved values per frame a buffer must hold
// for Apply to work in place.
func (m *Mix) Width() int {
	return max(m.In, m.Out)
}

// Apply mixes the first frames*In values of buf. On return the first
// frames*Out values hold the result.
func (m *Mix) Apply(buf []float32, frames int) error {
	if m.In == m.Out || frames <= 0 {
		return nil
	}
	if len(buf) < frames*m.Width() {
		return ErrMixBufferTooSmall
	}

	switch {
	case m.Out == 1:
		m.toMono(buf, frames)
	case m.Out < m.In:
		m.fold(buf, frames)
	default:
		m.spread(buf, frames)
	}

	return nil
}

func (m *Mix) toMono(buf []float32, frames int) {
	channels := m.In
	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			buf[f] = (buf[idx] + buf[idx+1]) * 0.5
		}
	case 4:
		for f := range frames {
			idx := f << 2
			sum := buf[idx] + buf[idx+1] + buf[idx+2] + buf[idx+3]
			buf[f] = sum * 0.25
		}
	default:
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += buf[baseIdx+c]
			}
			buf[f] = sum * invChannels
		}
	}
}

// fold runs front to back: frame f is written at or before where it was read.
func (m *Mix) fold(buf []float32, frames int) {
	for c := range m.Out {
		m.count[c] = 0
	}
	for c := range m.In {
		m.count[c%m.Out]++
	}

	for f := range frames {
		acc := m.acc[:m.Out]
		clear(acc)

		base := f * m.In
		for c := range m.In {
			acc[c%m.Out] += buf[base+c]
		}

		out := f * m.Out
		for c := range m.Out {
			buf[out+c] = acc[c] / float32(m.count[c])
		}
	}
}

// spread runs back to front: frame f is written at or after where it was read.
func (m *Mix) spread(buf []float32, frames int) {
	for f := frames - 1; f >= 0; f-- {
		acc := m.acc[:m.In]
		copy(acc, buf[f*m.In:f*m.In+m.In])

		out := f * m.Out
		for c := range m.Out {
			buf[out+c] = acc[c%m.In]
		}
	}
}
