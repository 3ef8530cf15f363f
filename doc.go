// SPDX-License-Identifier: EPL-2.0

// Package audseg plays audio split into segments as one continuous stream.
//
// Game and streaming soundtracks are often shipped as separate files: an
// intro, a body that loops, an outro. audseg joins such files back into a
// single stream with one sample rate and one channel count, plays them
// back to back and loops the body seamlessly.
//
// The work happens in the subpackages:
//   - layout joins segments, reconciles their channels and renders the
//     composite with optional looping
//   - segment holds decoded segments in memory
//   - manifest reads a YAML description of a segmented stream
//   - audio and formats/* decode, mix and resample the segment sources
//
// This package ties them together for the common cases.
//
// # Quick Start
//
//	s, err := audseg.OpenManifest("music/stage1.yaml", logger)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	buf := make([]float32, s.BufSize())
//	n := s.Render(buf, len(buf)/s.Channels())
//
// The stream is also an audio.Source, so it can be read like any decoder:
//
//	for {
//	    n, err := s.ReadSamples(buf)
//	    play(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Manifests
//
// A manifest lists the segment files and the loop region:
//
//	segments:
//	  - file: intro.ogg
//	  - file: body.wav
//	loop:
//	  start_segment: 1
//	  end_segment: 1
//	  count: 2
//
// Segment paths are resolved relative to the manifest file. Entries that
// name the same file with the same options are decoded once and shared.
// See the manifest package for every field.
//
// # Rendering to PCM
//
// Render16 drains a source through an optional resampler and a channel
// mixer and returns 16-bit PCM:
//
//	pcm, rate, err := audseg.Render16(s, 8000, 1, 4096)
//
// ResampleToMono16 is the mono shortcut. Both read until io.EOF, so a
// stream that loops forever never returns. Give the manifest loop a count
// first. Sources that report their length are collected into a single
// allocation.
//
// # Supported Formats
//
// DefaultRegistry maps file extensions to decoders:
//   - wav: PCM 8/16/24/32-bit (formats/wav)
//   - aiff, aif: PCM 8/16/24/32-bit (formats/aiff)
//   - mp3: MPEG-1 Layer 3 (formats/mp3)
//   - ogg: Ogg Vorbis (formats/vorbis)
//   - flac: FLAC (formats/flac)
//
// A manifest entry can name the format explicitly when a file has no
// useful extension.
//
// # Logging
//
// Libraries log through the zerolog.Logger they are given. Recoverable
// playback problems are logged and never returned from Render: a render
// past the last segment, a loop start no segment contains, a segment that
// rendered short and was padded with silence. Pass zerolog.Nop() to
// silence them.
//
// # Error Handling
//
// Errors are sentinel values wrapped with context, so test them with
// errors.Is:
//
//	s, err := audseg.OpenManifest(path, logger)
//	switch {
//	case errors.Is(err, os.ErrNotExist):
//	    // a segment or the manifest is missing
//	case errors.Is(err, layout.ErrChannelMismatch):
//	    // segments disagree on their output channels
//	case errors.Is(err, manifest.ErrUnknownFormat):
//	    // no decoder for a segment file
//	}
package audseg
