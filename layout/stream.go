// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ik5/audseg/audio"
)

// Stream plays a finalized Layout as the single stream described by its
// Composite. It implements audio.Source.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	layout *Layout
	comp   Composite

	pos       int64 // frames into the concatenated timeline
	looping   bool
	loops     int
	loopLimit int

	log zerolog.Logger
}

// NewStream starts playback of l at its current cursor, which is the
// beginning for a freshly finalized layout.
func NewStream(l *Layout, c Composite, opts ...StreamOption) *Stream {
	s := &Stream{
		layout:  l,
		comp:    c,
		looping: c.LoopFlag,
		log:     l.log,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open finalizes l, builds its Composite and returns a Stream over it.
// l is closed when any step fails.
func Open(l *Layout, loop Loop, opts ...StreamOption) (*Stream, error) {
	if err := l.Finalize(); err != nil {
		return nil, closeOnError(l, err)
	}

	c, err := Build(l, loop)
	if err != nil {
		return nil, closeOnError(l, err)
	}

	return NewStream(l, c, opts...), nil
}

func closeOnError(l *Layout, err error) error {
	if cerr := l.Close(); cerr != nil {
		return fmt.Errorf("%w (close: %w)", err, cerr)
	}

	return err
}

func (s *Stream) Composite() Composite { return s.comp }
func (s *Stream) Layout() *Layout       { return s.layout }

// Position is the next frame to be rendered, in the concatenated timeline.
func (s *Stream) Position() int64 { return s.pos }

// LoopCount is how many times playback jumped back to the loop start.
func (s *Stream) LoopCount() int { return s.loops }

// Looping reports whether the next pass over the loop end will jump back.
func (s *Stream) Looping() bool { return s.looping }

func (s *Stream) SampleRate() int { return s.comp.SampleRate }
func (s *Stream) Channels() int   { return s.comp.Channels }
func (s *Stream) BufSize() int    { return s.layout.cfg.chunkSize * s.comp.Channels }

// Frames is the composite length, or -1 for a stream that loops forever.
func (s *Stream) Frames() int64 {
	if s.comp.LoopFlag && s.loopLimit == 0 {
		return -1
	}
	if s.comp.LoopFlag {
		return s.comp.NumSamples + int64(s.loopLimit)*(s.comp.LoopEndSample-s.comp.LoopStartSample)
	}

	return s.comp.NumSamples
}

// ReadSamples renders whole frames into dst and reports io.EOF once the
// composite is exhausted.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := s.comp.Channels
	frames := len(dst) / ch
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if !s.loopsLeft() {
		left := s.comp.NumSamples - s.pos
		if left <= 0 {
			return 0, io.EOF
		}
		frames = int(min(int64(frames), left))
	}

	n := s.Render(dst, frames)
	if n < frames || (!s.loopsLeft() && s.pos >= s.comp.NumSamples) {
		return n * ch, io.EOF
	}

	return n * ch, nil
}

// loopsLeft reports whether playback will still jump back at the loop end.
func (s *Stream) loopsLeft() bool {
	return s.looping && (s.loopLimit == 0 || s.loops < s.loopLimit)
}

// Seek moves playback to sample, counted in the played timeline whose
// length Frames reports. With looping active, targets at or past the loop
// end land inside the loop region and set the loop count. With a loop
// limit, targets beyond the last repetition land in the part after the
// loop end. Targets past the end clamp to the end.
func (s *Stream) Seek(sample int64) error {
	if sample < 0 {
		return fmt.Errorf("%w: %d", ErrSeekRange, sample)
	}

	l := s.layout
	c := s.comp
	if !l.finalized {
		return ErrNotFinalized
	}

	loops := 0
	if c.LoopFlag && sample >= c.LoopEndSample {
		span := c.LoopEndSample - c.LoopStartSample
		wraps := (sample - c.LoopStartSample) / span
		if s.loopLimit > 0 && wraps > int64(s.loopLimit) {
			wraps = int64(s.loopLimit)
			sample -= wraps * span
		} else {
			sample = c.LoopStartSample + (sample-c.LoopStartSample)%span
		}
		loops = int(wraps)
	}

	if sample >= c.NumSamples {
		last := len(l.slots) - 1
		l.current = last
		l.into = l.slots[last].seg.NumSamples()
		sample = c.NumSamples
	} else if err := l.seekTo(sample); err != nil {
		return err
	}

	s.pos = sample
	s.loops = loops
	s.looping = c.LoopFlag

	return nil
}

// Reset rewinds to the first frame and restores the loop state.
func (s *Stream) Reset() error {
	s.pos = 0
	s.loops = 0
	s.looping = s.comp.LoopFlag

	return s.layout.Reset()
}

// Close closes the layout and with it every segment.
func (s *Stream) Close() error {
	if s == nil {
		return nil
	}

	return s.layout.Close()
}
