// SPDX-License-Identifier: EPL-2.0

// Package layout joins independently decoded segments into one logical
// stream.
//
// A Layout holds up to MaxSegments slots. Each slot references a Segment
// through a Handle; the same handle may appear in several slots and its
// segment is closed once, when the last slot lets go of it.
//
//	l, _ := layout.New(3, layout.WithLogger(logger))
//	intro := layout.NewHandle(introSeg)
//	body := layout.NewHandle(bodySeg)
//	_ = l.Set(0, intro)
//	_ = l.Set(1, body)
//	_ = l.Set(2, body)
//
//	s, err := layout.Open(l, layout.LoopSegments(1, 2))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	n := s.Render(buf, frames)
//
// Open closes the layout, and with it every segment, when any step fails.
//
// # Finalize
//
// Finalize checks that every slot is filled with a non-empty segment, that
// all segments agree on their output channel count and that no segment
// exceeds the channel ceiling. It then hands each segment its chunk size and
// loop policy and sizes the scratch buffer shared by segments that mix.
//
// Segments may differ in their input channel count, since each one mixes
// on its own. Sample rates are compared too: RateTolerate, the default,
// logs a difference and the composite reports the highest rate;
// WithSampleRatePolicy(RateStrict) turns it into ErrSampleRateMismatch.
//
// Set clears the finalized state. A stream whose layout changed renders
// nothing, and logs why, until Finalize runs again.
//
// # Composite
//
// Build describes the layout as one stream: total length, rate, channels,
// the channel layout when every segment agrees on it, and the loop region.
// Loops are selected by segment or by sample:
//
//	layout.NoLoop()
//	layout.LoopSegments(1, 2)     // from the start of 1 to the end of 2
//	layout.LoopSamples(200, 1500) // end exclusive
//
// # Playback
//
// Stream.Render runs a small state machine per chunk: loop check, boundary
// check, decode, advance. The loop end is checked before the segment
// boundary, so a loop that ends exactly where a segment ends jumps back
// instead of opening the next segment. Segments advance lazily, so
// rendering exactly to the end of a segment leaves the cursor there until
// more is asked for.
//
// A segment whose input channels match the composite renders straight into
// the caller's buffer. Others render into the scratch buffer and are
// copied out after mixing.
//
// Problems during playback are logged, not returned:
//   - a render past the last segment stops short with ErrSegmentOverrun
//   - a loop start no segment contains disables looping
//   - a segment that fails or renders short is padded with silence
//
// # Looping and Seeking
//
// WithLoopLimit(n) plays the loop region n extra times and then continues
// to the end; without it a looping stream never ends and Frames reports
// -1. Seek positions are counted in that played timeline: a target past the
// loop end lands inside the loop region with the matching loop count, and
// with a limit a target beyond the last repetition lands after the loop.
//
// # Source Adapter
//
// A Stream is an audio.Source and audio.Sized, so it plugs into the
// resampler, the channel mixer and the WAV writer like any decoder.
// ReadSamples reports io.EOF once the composite is exhausted.
//
// Layouts and streams are not safe for concurrent use.
package layout
