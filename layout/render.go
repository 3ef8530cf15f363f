// SPDX-License-Identifier: EPL-2.0

package layout

import "fmt"

type renderState int

const (
	stateLoopCheck renderState = iota
	stateBoundaryCheck
	stateDecode
	stateAdvance
	stateDone
)

func (s renderState) String() string {
	switch s {
	case stateLoopCheck:
		return "loop-check"
	case stateBoundaryCheck:
		return "boundary-check"
	case stateDecode:
		return "decode"
	case stateAdvance:
		return "advance"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("renderState(%d)", int(s))
	}
}

// renderPass holds the per-call counters of one Render.
type renderPass struct {
	dst     []float32
	frames  int
	written int
	chunk   int
}

// Render writes frames interleaved frames into dst and returns how many
// were produced. Fewer frames come back only when playback runs past the
// last segment, which is logged. dst must hold frames*Channels values;
// larger requests are truncated. A layout changed by Set since it was
// finalized renders nothing until Finalize runs again.
//
// Every step checks the loop end before the segment boundary, so a loop
// ending exactly where a segment ends jumps back instead of advancing.
func (s *Stream) Render(dst []float32, frames int) int {
	if s == nil || frames <= 0 || s.comp.Channels <= 0 {
		return 0
	}

	if fit := len(dst) / s.comp.Channels; frames > fit {
		s.log.Warn().Int("requested", frames).Int("fits", fit).Msg("render buffer too small, truncating")
		frames = fit
	}

	if !s.layout.finalized {
		s.log.Error().Err(ErrNotFinalized).Msg("render on a layout that changed since it was finalized")
		return 0
	}

	p := renderPass{dst: dst, frames: frames}
	state := stateLoopCheck
	for state != stateDone {
		state = s.step(state, &p)
	}

	return p.written
}

// step runs one state and returns the next one.
func (s *Stream) step(state renderState, p *renderPass) renderState {
	switch state {
	case stateLoopCheck:
		return s.loopCheck(p)
	case stateBoundaryCheck:
		return s.boundaryCheck()
	case stateDecode:
		return s.decode(p)
	case stateAdvance:
		p.written += p.chunk
		s.pos += int64(p.chunk)
		s.layout.into += int64(p.chunk)
		p.chunk = 0
		return stateLoopCheck
	default:
		return stateDone
	}
}

func (s *Stream) loopCheck(p *renderPass) renderState {
	if p.written >= p.frames {
		return stateDone
	}
	if !s.looping || s.pos != s.comp.LoopEndSample {
		return stateBoundaryCheck
	}

	if s.loopLimit > 0 && s.loops >= s.loopLimit {
		s.looping = false
		return stateBoundaryCheck
	}

	if err := s.layout.seekTo(s.comp.LoopStartSample); err != nil {
		s.log.Warn().Err(err).Int64("loop_start", s.comp.LoopStartSample).Msg("loop start not found, looping disabled")
		s.looping = false
		return stateBoundaryCheck
	}

	s.pos = s.comp.LoopStartSample
	s.loops++

	return stateLoopCheck
}

func (s *Stream) boundaryCheck() renderState {
	l := s.layout
	if l.current < 0 || l.current >= len(l.slots) || l.slots[l.current] == nil {
		s.log.Error().Int("segment", l.current).Msg("invalid current segment")
		return stateDone
	}

	if l.into < l.slots[l.current].seg.NumSamples() {
		return stateDecode
	}

	if l.current+1 >= len(l.slots) {
		s.log.Warn().Err(ErrSegmentOverrun).Int("segment", l.current).Int64("position", s.pos).
			Msg("render requested past the last segment")
		return stateDone
	}

	l.current++
	l.into = 0
	if err := l.slots[l.current].seg.Reset(); err != nil {
		s.log.Error().Err(err).Int("segment", l.current).Msg("segment reset failed")
	}

	return stateLoopCheck
}

func (s *Stream) decode(p *renderPass) renderState {
	l := s.layout
	seg := l.slots[l.current].seg

	chunk := int64(min(p.frames-p.written, l.cfg.chunkSize))
	chunk = min(chunk, seg.NumSamples()-l.into)
	if s.looping && s.pos < s.comp.LoopEndSample {
		chunk = min(chunk, s.comp.LoopEndSample-s.pos)
	}
	if chunk <= 0 {
		// Nothing left in this segment: advance instead of spinning.
		l.into = seg.NumSamples()
		return stateBoundaryCheck
	}

	n := int(chunk)
	ch := s.comp.Channels
	out := p.dst[p.written*ch : (p.written+n)*ch]

	in, segOut := seg.MixingChannels()
	var (
		got int
		err error
	)
	if in == ch {
		got, err = seg.Render(out, n)
	} else if need := n * max(in, segOut); need > len(l.scratch) {
		err = fmt.Errorf("%w: segment %d needs %d scratch values, have %d", ErrNotFinalized, l.current, need, len(l.scratch))
	} else {
		got, err = seg.Render(l.scratch[:need], n)
		got = max(min(got, n), 0)
		copy(out, l.scratch[:got*ch])
	}

	if err != nil || got < n {
		s.log.Error().Err(err).Int("segment", l.current).Int("requested", n).Int("got", got).
			Msg("segment rendered short, padding with silence")
		clear(out[max(got, 0)*ch:])
	}

	p.chunk = n

	return stateAdvance
}
