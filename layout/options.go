// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	MaxSegments        = 1024
	DefaultChunkSize   = 8192
	DefaultMaxChannels = 64
)

// RatePolicy decides what Finalize does with segments of differing rates.
type RatePolicy int

const (
	// RateTolerate logs the difference; the composite reports the highest rate.
	RateTolerate RatePolicy = iota
	// RateStrict fails Finalize with ErrSampleRateMismatch.
	RateStrict
)

type config struct {
	chunkSize    int
	segmentLoops LoopPolicy
	ratePolicy   RatePolicy
	maxChannels  int
	logger       zerolog.Logger
}

func defaultConfig() config {
	return config{
		chunkSize:    DefaultChunkSize,
		segmentLoops: SegmentLoopDisabled,
		ratePolicy:   RateTolerate,
		maxChannels:  DefaultMaxChannels,
		logger:       log.Logger,
	}
}

type Option func(*config)

// WithChunkSize sets the frames decoded per step and the scratch size.
// Non-positive values keep the default.
func WithChunkSize(frames int) Option {
	return func(c *config) {
		if frames > 0 {
			c.chunkSize = frames
		}
	}
}

func WithSegmentLoops(p LoopPolicy) Option {
	return func(c *config) { c.segmentLoops = p }
}

func WithSampleRatePolicy(p RatePolicy) Option {
	return func(c *config) { c.ratePolicy = p }
}

// WithMaxChannels sets the channel ceiling checked by Finalize.
func WithMaxChannels(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxChannels = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithLoopLimit stops looping after n jumps back to the loop start; the
// stream then plays through to its end. Zero loops forever.
func WithLoopLimit(n int) StreamOption {
	return func(s *Stream) {
		if n >= 0 {
			s.loopLimit = n
		}
	}
}
