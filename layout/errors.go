// SPDX-License-Identifier: EPL-2.0

package layout

import "errors"

var (
	// ErrCapacity is returned by New for a segment count outside 1..MaxSegments.
	ErrCapacity = errors.New("segment count out of range")
	// ErrSlotRange is returned by Set for an index outside the table.
	ErrSlotRange = errors.New("segment slot out of range")

	ErrMissingSegment     = errors.New("segment slot is empty")
	ErrEmptySegment       = errors.New("segment has no samples")
	ErrNoChannels         = errors.New("segment reports no channels")
	ErrChannelMismatch    = errors.New("segment output channels differ")
	ErrChannelOverflow    = errors.New("too many channels")
	ErrSampleRateMismatch = errors.New("segment sample rates differ")

	ErrEmptyComposite = errors.New("composite has no segments")
	ErrNotFinalized   = errors.New("layout is not finalized")
	ErrLoopRange      = errors.New("loop points outside the composite")

	// ErrSegmentOverrun marks renders past the last segment and loop targets
	// no segment contains. It is logged, never returned from Render.
	ErrSegmentOverrun = errors.New("position beyond the last segment")
	ErrSeekRange      = errors.New("seek target out of range")
)
