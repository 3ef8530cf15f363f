// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Layout is the ordered segment table of a composite stream together with
// the playback cursor and the shared scratch buffer.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	slots []*Handle

	current int   // index of the segment being played
	into    int64 // frames consumed from the current segment

	scratch        []float32
	inputChannels  int
	outputChannels int
	finalized      bool

	cfg config
	log zerolog.Logger
}

// New allocates a layout with count empty slots.
func New(count int, opts ...Option) (*Layout, error) {
	if count < 1 || count > MaxSegments {
		return nil, fmt.Errorf("%w: %d (allowed 1..%d)", ErrCapacity, count, MaxSegments)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Layout{
		slots: make([]*Handle, count),
		cfg:   cfg,
		log:   cfg.logger.With().Str("component", "segmented-layout").Logger(),
	}, nil
}

// Set places h in slot i. The same handle may fill several slots. A handle
// already in the slot is released, which closes its segment when no other
// slot holds it. The layout must be finalized again afterwards.
func (l *Layout) Set(i int, h *Handle) error {
	if i < 0 || i >= len(l.slots) {
		return fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	if h == nil {
		return fmt.Errorf("slot %d: %w", i, ErrMissingSegment)
	}

	h.retain()
	if old := l.slots[i]; old != nil {
		if err := old.release(); err != nil {
			l.log.Warn().Err(err).Int("segment", i).Msg("closing replaced segment")
		}
	}
	l.slots[i] = h
	l.finalized = false

	return nil
}

// Len is the number of slots.
func (l *Layout) Len() int { return len(l.slots) }

// Segment returns the segment in slot i, or nil when unset.
func (l *Layout) Segment(i int) Segment {
	if i < 0 || i >= len(l.slots) || l.slots[i] == nil {
		return nil
	}

	return l.slots[i].seg
}

// Current is the index of the segment the next render reads from.
func (l *Layout) Current() int { return l.current }

// IntoSegment is the number of frames consumed from the current segment.
func (l *Layout) IntoSegment() int64 { return l.into }

func (l *Layout) InputChannels() int  { return l.inputChannels }
func (l *Layout) OutputChannels() int { return l.outputChannels }
func (l *Layout) Finalized() bool     { return l.finalized }

// Reset rewinds the cursor and every segment to their initial state.
func (l *Layout) Reset() error {
	if l == nil {
		return nil
	}

	l.current = 0
	l.into = 0

	var errs []error
	for i, h := range l.slots {
		if h == nil {
			continue
		}
		if err := h.seg.Reset(); err != nil {
			errs = append(errs, fmt.Errorf("segment %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Close releases every slot, so each distinct segment is closed exactly
// once, and drops the scratch buffer. Close is safe on a nil or partially
// populated layout and on repeated calls.
func (l *Layout) Close() error {
	if l == nil {
		return nil
	}

	var errs []error
	for i, h := range l.slots {
		if h == nil {
			continue
		}
		if err := h.release(); err != nil {
			errs = append(errs, fmt.Errorf("segment %d: %w", i, err))
		}
		l.slots[i] = nil
	}

	l.scratch = nil
	l.finalized = false

	return errors.Join(errs...)
}
