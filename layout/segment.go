// SPDX-License-Identifier: EPL-2.0

package layout

import "github.com/ik5/audseg/audio"

// LoopPolicy decides who owns looping: the layout or the segment itself.
type LoopPolicy int

const (
	// SegmentLoopDisabled clears a segment's own loop; the layout loops.
	SegmentLoopDisabled LoopPolicy = iota
	// SegmentLoopAllowed keeps a segment's own loop active inside it.
	SegmentLoopAllowed
)

func (p LoopPolicy) String() string {
	switch p {
	case SegmentLoopDisabled:
		return "disabled"
	case SegmentLoopAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// SegmentConfig is handed to every segment when the layout is finalized.
type SegmentConfig struct {
	// ChunkSize is the largest frame count a single Render call will ask for.
	ChunkSize int
	// Loop tells the segment whether its own loop metadata stays active.
	Loop LoopPolicy
}

// Segment is one independently decodable part of a composite stream.
type Segment interface {
	// NumSamples is the segment length in frames.
	NumSamples() int64
	SampleRate() int
	// MixingChannels reports the channel count a render buffer must hold
	// before mixing (input) and the count Render leaves behind (output).
	MixingChannels() (input, output int)
	ChannelLayout() audio.ChannelLayout
	// LoopFlag reports whether the segment carries its own loop points.
	LoopFlag() bool

	// Setup prepares the segment's mixing for chunks of cfg.ChunkSize
	// frames and applies cfg.Loop.
	Setup(cfg SegmentConfig) error
	// Render decodes frames frames into dst, which holds at least
	// frames*input values, and leaves frames*output mixed values at the
	// front. It returns the number of frames produced.
	Render(dst []float32, frames int) (int, error)
	Seek(frame int64) error
	Reset() error
	Close() error
}

// Handle is a reference-counted owner of a Segment. A handle assigned to
// several slots is retained once per slot and its segment is closed when
// the last slot releases it.
type Handle struct {
	seg  Segment
	refs int
}

func NewHandle(seg Segment) *Handle {
	return &Handle{seg: seg}
}

func (h *Handle) Segment() Segment { return h.seg }

// Refs is the number of slots currently holding the handle.
func (h *Handle) Refs() int { return h.refs }

func (h *Handle) retain() {
	h.refs++
}

func (h *Handle) release() error {
	if h.refs <= 0 {
		return nil
	}

	h.refs--
	if h.refs > 0 {
		return nil
	}

	return h.seg.Close()
}
