// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio with github.com/mewkiz/flac.
//
// # Features
//
//   - Any channel count FLAC allows (1 to 8)
//   - Bit depths from 4 to 32 bits, normalized to [-1, 1)
//   - Frame count from the STREAMINFO block, reported through audio.FramesOf
//   - Works on any io.Reader; seeking is not required
//
// # Basic Usage
//
//	f, err := os.Open("stage1.flac")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	buf := make([]float32, src.BufSize())
//	for {
//		n, err := src.ReadSamples(buf)
//		process(buf[:n])
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//	}
//
// # Registering
//
// The default registry of the root package maps the "flac" extension to
// this decoder. A custom registry does the same with:
//
//	reg.Register("flac", flac.Decoder{})
//
// # Frame Boundaries
//
// FLAC frames carry a variable number of samples. The source keeps the
// part of a frame that did not fit into the caller's buffer and returns it
// on the next call, so any buffer size works. Buffers that are a multiple
// of the channel count keep frames whole.
//
// # Errors
//
// Decode wraps ErrNotFLACFile around the parser error for input that is
// not a FLAC stream. ErrUnsupportedLayout and ErrUnsupportedBitDepth
// report STREAMINFO values the source cannot represent. Errors from
// frame parsing are returned from ReadSamples together with the samples
// decoded before them.
//
// # Closing
//
// Close does not close the reader passed to Decode; the caller owns it.
package flac
