// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Big-endian integer PCM of 8, 16, 24 or 32 bits
//   - Any channel count
//   - Any sample rate stored in the COMM chunk
//
// AIFF-C files with compressed sample data are not supported.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("intro.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
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
// The COMM chunk carries the frame count, which the returned source exposes
// through audio.Sized. Reading stops there even if the SSND chunk holds
// padding after the last frame.
//
// # Seeking Input
//
// go-audio moves between chunks with Seek. Readers that cannot seek, such
// as a network body, are buffered in memory before decoding.
//
// # Error Handling
//
// The package defines these errors:
//   - ErrNotAiffFile: the input has no FORM/AIFF header
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the COMM chunk is unreadable or declares
//     no channels
//
// # File Format
//
// AIFF files consist of:
//   - FORM header naming the AIFF form type
//   - COMM chunk: channels, frame count, bit depth, sample rate (80-bit float)
//   - SSND chunk: offset, block size and interleaved big-endian samples
package aiff
