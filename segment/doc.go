// SPDX-License-Identifier: EPL-2.0

// Package segment provides Buffer, an in-memory layout.Segment.
//
// # Creating Segments
//
// A Buffer is usually filled from a decoder:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	seg, err := segment.FromSource(src, segment.WithChannels(2))
//
// FromSource drains and closes src. Sources that report their length are
// read into a single allocation. New wraps samples that are already
// decoded:
//
//	seg, err := segment.New(samples, 2, 44100, segment.WithLoop(0, 4410))
//
// # Channels
//
// Samples are stored with their original channel count and mixed to the
// requested count on every Render, so the layout sees the stored count as
// the segment's input channels and the requested count as its output.
// Render therefore needs room for max(input, output) channels per frame;
// the layout's scratch buffer is sized for that.
//
// Without WithChannelLayout the layout is guessed from the output count
// (mono, stereo or 5.1).
//
// # Segment Loops
//
// WithLoop gives a segment its own loop, with the end frame exclusive.
// The layout decides at Setup whether it plays: with
// layout.SegmentLoopDisabled, the default, the flag is cleared and the
// layout's composite loop is the only one. With SegmentLoopAllowed a
// looping segment never runs out of frames inside its own range.
//
// # Lifecycle
//
// A Buffer must be set up by its layout before Render; until then Render
// returns ErrNotSetup. Close releases the samples and any io.Closer given
// with WithCloser, exactly once. A closed Buffer returns ErrClosed.
//
// # Errors
//
//   - ErrNoChannels: a channel count below one
//   - ErrPartialFrame: sample data that does not hold whole frames
//   - ErrLoopRange: loop points outside the segment
//   - ErrSeekOutOfRange: a seek beyond the segment
//   - ErrBufferTooSmall: a Render buffer narrower than max(input, output)
package segment
