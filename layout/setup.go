// SPDX-License-Identifier: EPL-2.0

package layout

import "fmt"

// Finalize validates every slot, reconciles channel counts and sizes the
// scratch buffer. On error the layout is left as is; the caller should
// Close it.
//
// Output (post-mix) channels must match across segments; input (pre-mix)
// channels may differ since each segment mixes down on its own.
func (l *Layout) Finalize() error {
	var (
		maxIn, maxOut int
		prevOut       int
		prevRate      int
	)

	for i, h := range l.slots {
		if h == nil {
			return fmt.Errorf("segment %d: %w", i, ErrMissingSegment)
		}
		seg := h.seg

		if n := seg.NumSamples(); n <= 0 {
			return fmt.Errorf("segment %d: %w (%d frames)", i, ErrEmptySegment, n)
		}

		if seg.LoopFlag() && l.cfg.segmentLoops == SegmentLoopDisabled {
			l.log.Debug().Int("segment", i).Msg("segment loop disabled, layout owns looping")
		}

		in, out := seg.MixingChannels()
		if in <= 0 || out <= 0 {
			return fmt.Errorf("segment %d: %w (%d in, %d out)", i, ErrNoChannels, in, out)
		}
		maxIn = max(maxIn, in)
		maxOut = max(maxOut, out)

		rate := seg.SampleRate()
		if i > 0 {
			if out != prevOut {
				return fmt.Errorf("segment %d: %w (%d, previous %d)", i, ErrChannelMismatch, out, prevOut)
			}

			if rate != prevRate {
				if l.cfg.ratePolicy == RateStrict {
					return fmt.Errorf("segment %d: %w (%d Hz, previous %d Hz)", i, ErrSampleRateMismatch, rate, prevRate)
				}
				l.log.Warn().Int("segment", i).Int("rate", rate).Int("previous", prevRate).
					Msg("segment sample rate differs, not resampled")
			}
		}
		prevOut = out
		prevRate = rate

		if err := seg.Setup(SegmentConfig{ChunkSize: l.cfg.chunkSize, Loop: l.cfg.segmentLoops}); err != nil {
			return fmt.Errorf("segment %d: setup: %w", i, err)
		}
	}

	if maxIn > l.cfg.maxChannels || maxOut > l.cfg.maxChannels {
		return fmt.Errorf("%w: %d in, %d out (max %d)", ErrChannelOverflow, maxIn, maxOut, l.cfg.maxChannels)
	}

	// A segment reporting fewer input than output channels still needs
	// room for its mixed output.
	need := l.cfg.chunkSize * max(maxIn, maxOut)
	if cap(l.scratch) < need {
		l.scratch = make([]float32, need)
	}
	l.scratch = l.scratch[:need]

	l.inputChannels = maxIn
	l.outputChannels = maxOut
	l.finalized = true

	return nil
}
