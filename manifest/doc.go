// SPDX-License-Identifier: EPL-2.0

// Package manifest describes a segmented stream in YAML and opens it as a
// layout.Stream.
//
// # File Format
//
//	chunk_size: 8192
//	max_channels: 8
//	segment_loops: disabled   # or allowed
//	sample_rate: tolerate     # or strict, or resample
//	target_rate: 44100        # resample only; 0 picks the highest rate
//	segments:
//	  - file: intro.ogg
//	  - file: body.wav
//	    channels: 2
//	    layout: [FL, FR]
//	  - file: body.wav
//	    channels: 2
//	    layout: [FL, FR]
//	  - file: sting.raw
//	    format: wav
//	    loop_start: 0
//	    loop_end: 2205
//	loop:
//	  start_segment: 1
//	  end_segment: 2
//	  count: 0
//
// Unknown fields are rejected, so a misspelt key fails loudly instead of
// being ignored. Omitted numbers keep the layout defaults.
//
// # Segments
//
// Each entry fills one slot of the layout, in order. The decoder is picked
// from the file extension unless format names it. channels mixes the
// segment to that count; layout names its speakers. loop_start and
// loop_end give the segment its own loop, which only plays with
// segment_loops: allowed.
//
// Entries that are equal in every field are decoded once and share a
// layout.Handle, so a body repeated three times costs one decode and is
// closed once.
//
// # Loop
//
// The loop section selects the composite loop either by segment
// (start_segment and end_segment, both inclusive) or by sample
// (start_sample inclusive, end_sample exclusive), never both. count
// limits the number of extra passes; zero loops forever. Without a loop
// section the stream plays once.
//
// # Sample Rates
//
//   - tolerate: segments keep their rates; the difference is logged and
//     the stream reports the highest one
//   - strict: differing rates fail Open with layout.ErrSampleRateMismatch
//   - resample: every segment that differs from the target is run through
//     audio.Resampler before it is loaded
//
// # Opening
//
//	m, err := manifest.Load("music/stage1.yaml")
//	if err != nil {
//	    return err
//	}
//	s, err := m.Open("music", registry, logger)
//
// Parse and Load validate the document. Open resolves relative paths
// against dir, decodes every segment into memory and finalizes the layout.
// Any failure closes what was opened so far.
//
// # Errors
//
//   - ErrNoSegments: the document lists no segments
//   - ErrBadEntry: an entry without a file or with half a loop
//   - ErrBadLoop: loop fields that mix modes or fall outside the segments
//   - ErrBadPolicy: an unknown segment_loops or sample_rate value, or a
//     negative number
//   - ErrUnknownFormat: no decoder registered for a segment
package manifest
