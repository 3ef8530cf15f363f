// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 audio with github.com/hajimehoshi/go-mp3.
//
// # Features
//
//   - Layer 3 streams at constant or variable bit rate
//   - Output is always stereo; mono files are duplicated by go-mp3
//   - Sample rate taken from the first frame header
//
// # Basic Usage
//
//	f, _ := os.Open("theme.mp3")
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Samples arrive as 16-bit little-endian PCM from go-mp3 and are scaled to
// float32 in [-1, 1).
//
// # Length
//
// When the input implements io.Seeker, go-mp3 scans it once and knows the
// decoded length, so the source reports a frame count through audio.Sized.
// For other readers audio.FramesOf returns -1 and segment.FromSource grows
// its buffer while draining.
//
// # Segment Boundaries
//
// MP3 encoders add priming silence at the start and padding at the end of
// every file. Segments cut from one track and encoded separately therefore
// have small gaps at their joins. Prefer WAV, FLAC or Ogg Vorbis for
// segmented music with seamless loops.
//
// # Error Handling
//
// Decode returns the go-mp3 error wrapped for input without a valid frame
// header. Errors during ReadSamples are returned together with the samples
// decoded before them.
package mp3
