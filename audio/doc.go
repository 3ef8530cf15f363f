// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based sample primitives shared by the
// codecs, the segment decoders and the segmented layout.
//
// This package contains:
//   - Source interface for audio input, with the optional Sized length hint
//   - Mix and ChannelMixer for channel conversion
//   - Resampler for sample rate conversion
//   - Registry for decoder lookup by format key
//   - ChannelLayout speaker masks
//
// # Source Interface
//
// Every decoder and processor yields interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources that know their length up front also implement Sized; use
// FramesOf to query the hint without a type switch:
//
//	if n := audio.FramesOf(src); n > 0 {
//	    out = make([]float32, 0, n*int64(src.Channels()))
//	}
//
// ChannelMixer forwards the hint of its source and Resampler scales it by
// the rate ratio, so a pipeline keeps it.
//
// # Channel Mixing
//
// Mix converts a buffer between channel counts in place. It is what a
// segment runs after decoding a chunk, so the buffer must be wide enough for
// max(In, Out) channels:
//
//	m, _ := audio.NewMix(6, 2)
//	_ = m.Apply(buf, frames) // buf[:frames*2] now holds stereo
//
// Downmixing averages, folding input channels onto output channels
// round-robin. Upmixing repeats the input channels across the output.
//
// ChannelMixer applies the same conversion to a whole Source, and
// NewMonoMixer is the mono special case:
//
//	mono := audio.NewMonoMixer(src)
//	n, err := mono.ReadSamples(buf)
//
// # Resampling
//
// The Resampler changes the sample rate using Catmull-Rom cubic
// interpolation. When downsampling, every source frame first goes through a
// one-pole low-pass to reduce aliasing:
//
//	r := audio.NewResampler(src, 16000)
//	n, err := r.ReadSamples(buf) // len(buf) must hold whole frames
//
// Resampling to the source rate returns the input unchanged. The segmented
// layout never resamples on its own; conform segments with a Resampler
// before they are loaded if a common rate is required.
//
// # Format Registry
//
// The registry maps format keys to decoders. Keys are case-insensitive and
// a leading dot is ignored, so a file extension can be used directly:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(filepath.Ext(name)) // ".WAV" works too
//
// Register and Get are safe for concurrent use.
//
// # Channel Layouts
//
// ChannelLayout is a speaker bit mask using the WAVEFORMATEXTENSIBLE bit
// order. ParseChannelLayout reads names such as "FL" or "LFE", and
// DefaultLayout guesses a layout from a channel count. LayoutUnspecified
// (zero) means no layout is known, which is what a composite reports when
// its segments disagree.
//
// # Sample Format
//
// Audio samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Integer PCM is scaled by 2^(bits-1) on decode and clamped on encode.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with the last samples. Other errors come from the source or the
// processing step:
//
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
// ErrInvalidDstSize reports a buffer that does not hold whole frames,
// ErrInvalidChannels a channel count below one and ErrMixBufferTooSmall a
// Mix buffer narrower than max(In, Out) channels.
package audio
