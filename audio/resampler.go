// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Resampler converts src to another sample rate with Catmull-Rom cubic
// interpolation. The channel count is preserved. Downsampling runs every
// source frame through a one-pole low-pass first.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames advanced per output frame
	channels int

	// win holds four consecutive source frames, oldest first. Output is
	// interpolated between win[1] and win[2] at offset frac.
	win    []float32
	have   [4]bool
	frac   float64
	primed bool

	block      []float32
	head, tail int
	srcDone    bool
	srcErr     error

	lowpass bool
	seeded  bool
	prev    []float32
}

// lowpassAlpha weights the new sample of the smoothing filter.
const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	ch := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	return &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: ch,
		win:      make([]float32, 4*ch),
		block:    make([]float32, max(4096/ch, 1)*ch),
		lowpass:  step > 1,
		prev:     make([]float32, ch),
	}
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Frames estimates the output length from the source length hint.
func (r *Resampler) Frames() int64 {
	n := FramesOf(r.src)
	if n < 0 {
		return -1
	}

	return int64(math.Ceil(float64(n) / r.step))
}

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) slot(i int) []float32 {
	return r.win[i*r.channels : (i+1)*r.channels]
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) bool {
	for r.head == r.tail {
		if r.srcDone {
			return false
		}

		n, err := r.src.ReadSamples(r.block)
		r.head, r.tail = 0, n-n%r.channels
		if err != nil {
			r.srcDone = true
			if err != io.EOF {
				r.srcErr = err
			}
		}
	}

	copy(dst, r.block[r.head:r.head+r.channels])
	r.head += r.channels

	if r.lowpass {
		if !r.seeded {
			copy(r.prev, dst)
			r.seeded = true
		}
		for c := range dst {
			dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.prev[c]
			r.prev[c] = dst[c]
		}
	}

	return true
}

// prime loads the first frame into both win[0] and win[1] and looks two
// frames ahead.
func (r *Resampler) prime() {
	r.primed = true

	first := r.slot(1)
	if !r.pull(first) {
		return
	}
	copy(r.slot(0), first)
	r.have[0], r.have[1] = true, true

	r.have[2] = r.pull(r.slot(2))
	r.have[3] = r.have[2] && r.pull(r.slot(3))
}

// advance shifts the window one frame forward.
func (r *Resampler) advance() {
	copy(r.win, r.win[r.channels:])
	copy(r.have[:], r.have[1:])
	r.have[3] = r.have[2] && r.pull(r.slot(3))
}

// ReadSamples fills dst with whole frames at the target rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		r.prime()
	}

	frames := len(dst) / r.channels
	var written int
	for written < frames {
		for r.frac >= 1 {
			r.frac--
			r.advance()
		}

		if !r.have[1] {
			break
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		if !r.have[2] {
			// The last source frame is emitted only when landed on exactly.
			if r.frac != 0 {
				break
			}
			copy(out, r.slot(1))
			written++
			r.frac += r.step
			continue
		}

		y0, y1, y2, y3 := r.slot(0), r.slot(1), r.slot(2), r.slot(3)
		if !r.have[3] {
			y3 = y2
		}

		x := float32(r.frac)
		for c := range out {
			out[c] = cubic(y0[c], y1[c], y2[c], y3[c], x)
		}

		written++
		r.frac += r.step
	}

	n := written * r.channels
	if written < frames {
		if r.srcErr != nil {
			return n, fmt.Errorf("%w", r.srcErr)
		}
		return n, io.EOF
	}

	return n, nil
}

// cubic is a Catmull-Rom spline through y0..y3 evaluated at x in [0,1]
// between y1 and y2.
func cubic(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
