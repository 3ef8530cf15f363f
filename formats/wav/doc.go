// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files using
// github.com/go-audio/wav.
//
// # Supported Formats
//
// The decoder accepts:
//   - PCM 8, 16, 24 and 32-bit (WAVE_FORMAT_PCM)
//   - Any channel count
//   - Any sample rate
//
// Float and compressed WAV files are rejected with ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
//	f, _ := os.Open("body.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	frames := audio.FramesOf(src) // from the data chunk size
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The source reports the total frame count, so segment.FromSource can
// allocate once. Samples past the declared data chunk are never returned.
// go-audio moves between chunks with Seek; a reader that cannot seek is
// buffered in memory first.
//
// # Writing WAV Files
//
// WritePCM16 writes a complete buffer in one call:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.WritePCM16(f, 44100, 2, samples)
//
// PCM16Writer streams a file of any length:
//
//	w := wav.NewPCM16Writer(f, src.SampleRate(), src.Channels())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if werr := w.Write(buf[:n]); werr != nil {
//	        return werr
//	    }
//	    if err == io.EOF {
//	        break
//	    }
//	}
//	err = w.Close() // patches the RIFF and data sizes
//
// Samples are clamped to [-1, 1] and scaled by 32767. The encoder rewrites
// the header on Close, so the destination must be an io.WriteSeeker such
// as *os.File. Close does not close the destination.
//
// # Error Handling
//
// The package defines these errors:
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: a sample size other than 8, 16, 24 or 32
//   - ErrUnsupportedWavChunks: no data chunk could be found
//   - ErrUnsupportedWavLayout: the header declares no channels
//   - ErrInvalidChannels: WritePCM16 was given fewer than one channel
//
// Wrapped errors keep the go-audio cause, so errors.Is works on both.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk: audio format, channels, sample rate, bit depth
//   - optional chunks such as LIST, skipped by the decoder
//   - data chunk: interleaved little-endian samples
package wav
