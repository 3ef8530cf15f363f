// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// # Features
//
//   - Any channel count the stream declares
//   - Sample rate and channels from the identification header
//   - Length in frames for seekable inputs
//   - Pure Go, no cgo
//
// # Basic Usage
//
//	f, _ := os.Open("intro.ogg")
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// oggvorbis already produces float32 samples, so they are returned without
// conversion.
//
// # Whole Frames
//
// ReadSamples only fills whole frames. With a 3-value buffer on a stereo
// stream it returns 2 values; the third slot is left untouched. Size
// buffers as a multiple of Channels to avoid short reads.
//
// # Length
//
// When the input implements io.Seeker, oggvorbis reads the last page to
// find the stream length, and the source reports it through audio.Sized.
// Otherwise audio.FramesOf returns -1.
//
// # Gapless Segments
//
// Vorbis carries exact sample positions in its pages, so segments encoded
// separately join without gaps. This makes it a good fit for looping game
// music.
package vorbis
