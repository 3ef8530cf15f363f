// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"fmt"

	"github.com/ik5/audseg/audio"
)

// Composite describes the logical stream formed by laying every segment
// end to end.
type Composite struct {
	NumSamples    int64
	SampleRate    int
	Channels      int
	ChannelLayout audio.ChannelLayout

	LoopFlag        bool
	LoopStartSample int64
	LoopEndSample   int64
	// LoopStartSegment and LoopEndSegment are the segments holding the loop
	// points, or -1 without a loop.
	LoopStartSegment int
	LoopEndSegment   int
}

type loopKind int

const (
	loopNone loopKind = iota
	loopBySegment
	loopBySample
)

// Loop selects the loop region of a composite.
type Loop struct {
	kind       loopKind
	startSeg   int
	endSeg     int
	startFrame int64
	endFrame   int64
}

func NoLoop() Loop { return Loop{} }

// LoopSegments loops from the start of segment start to the end of segment
// end, both inclusive.
func LoopSegments(start, end int) Loop {
	return Loop{kind: loopBySegment, startSeg: start, endSeg: end}
}

// LoopSamples loops between two positions of the concatenated timeline.
// end is exclusive.
func LoopSamples(start, end int64) Loop {
	return Loop{kind: loopBySample, startFrame: start, endFrame: end}
}

// Build aggregates the finalized segments into a Composite.
//
// The sample rate is the highest one seen. The channel layout is kept only
// when every segment reports the same one.
func Build(l *Layout, loop Loop) (Composite, error) {
	if l == nil || len(l.slots) == 0 {
		return Composite{}, ErrEmptyComposite
	}
	if !l.finalized {
		return Composite{}, ErrNotFinalized
	}
	if loop.kind == loopBySegment {
		if loop.startSeg < 0 || loop.endSeg >= len(l.slots) || loop.startSeg > loop.endSeg {
			return Composite{}, fmt.Errorf("%w: segments %d..%d of %d", ErrLoopRange, loop.startSeg, loop.endSeg, len(l.slots))
		}
	}

	c := Composite{
		Channels:         l.outputChannels,
		LoopStartSegment: -1,
		LoopEndSegment:   -1,
	}

	first := l.slots[0].seg.ChannelLayout()
	c.ChannelLayout = first

	for i, h := range l.slots {
		seg := h.seg

		if loop.kind == loopBySegment && i == loop.startSeg {
			c.LoopStartSample = c.NumSamples
		}
		c.NumSamples += seg.NumSamples()
		if loop.kind == loopBySegment && i == loop.endSeg {
			c.LoopEndSample = c.NumSamples
		}

		if seg.ChannelLayout() != first {
			c.ChannelLayout = audio.LayoutUnspecified
		}
		c.SampleRate = max(c.SampleRate, seg.SampleRate())
	}

	switch loop.kind {
	case loopBySegment:
		c.LoopFlag = true
		c.LoopStartSegment = loop.startSeg
		c.LoopEndSegment = loop.endSeg
	case loopBySample:
		if loop.startFrame < 0 || loop.endFrame > c.NumSamples || loop.startFrame >= loop.endFrame {
			return Composite{}, fmt.Errorf("%w: %d..%d of %d", ErrLoopRange, loop.startFrame, loop.endFrame, c.NumSamples)
		}
		c.LoopFlag = true
		c.LoopStartSample = loop.startFrame
		c.LoopEndSample = loop.endFrame
		c.LoopStartSegment, _, _ = l.locate(loop.startFrame)
		c.LoopEndSegment, _, _ = l.locate(loop.endFrame - 1)
	}

	return c, nil
}
