// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/layout"
)

// Buffer is a fully decoded segment held in memory. It implements
// layout.Segment.
type Buffer struct {
	pcm    *goaudio.Float32Buffer
	frames int64
	in     int
	out    int
	layout audio.ChannelLayout

	loop      bool
	loopStart int64
	loopEnd   int64

	mix    *audio.Mix
	chunk  int
	ready  bool
	pos    int64
	closer io.Closer
	closed bool
}

var _ layout.Segment = (*Buffer)(nil)

type Option func(*Buffer)

// WithChannels makes Render mix down or up to n channels.
func WithChannels(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.out = n
		}
	}
}

func WithChannelLayout(l audio.ChannelLayout) Option {
	return func(b *Buffer) { b.layout = l }
}

// WithLoop marks frames start (inclusive) to end (exclusive) as the
// segment's own loop. It only plays when the layout allows segment loops.
func WithLoop(start, end int64) Option {
	return func(b *Buffer) {
		b.loop = true
		b.loopStart = start
		b.loopEnd = end
	}
}

// WithCloser attaches a resource that is closed with the segment.
func WithCloser(c io.Closer) Option {
	return func(b *Buffer) { b.closer = c }
}

// New wraps interleaved samples of the given channel count.
func New(data []float32, channels, sampleRate int, opts ...Option) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(data), channels)
	}

	b := &Buffer{
		pcm: &goaudio.Float32Buffer{
			Format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			Data:   data,
		},
		frames: int64(len(data) / channels),
		in:     channels,
		out:    channels,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.layout == audio.LayoutUnspecified {
		b.layout = audio.DefaultLayout(b.out)
	}

	if b.loop && (b.loopStart < 0 || b.loopEnd > b.frames || b.loopStart >= b.loopEnd) {
		return nil, fmt.Errorf("%w: %d..%d of %d", ErrLoopRange, b.loopStart, b.loopEnd, b.frames)
	}

	return b, nil
}

// FromSource drains src into a Buffer and closes it. The source's channel
// count and rate become the segment's input format.
func FromSource(src audio.Source, opts ...Option) (*Buffer, error) {
	ch := src.Channels()
	if ch <= 0 {
		return nil, errors.Join(ErrNoChannels, src.Close())
	}

	var data []float32
	if n := audio.FramesOf(src); n > 0 {
		data = make([]float32, 0, n*int64(ch))
	}

	size := src.BufSize()
	if size < ch {
		size = 4096
	}
	buf := make([]float32, size-size%ch)

	for {
		n, err := src.ReadSamples(buf)
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(fmt.Errorf("reading source: %w", err), src.Close())
		}
		if n == 0 {
			break
		}
	}

	if err := src.Close(); err != nil {
		return nil, fmt.Errorf("closing source: %w", err)
	}

	return New(data, ch, src.SampleRate(), opts...)
}

func (b *Buffer) NumSamples() int64 { return b.frames }
func (b *Buffer) SampleRate() int   { return b.pcm.Format.SampleRate }

// MixingChannels reports the stored channel count and the rendered one.
func (b *Buffer) MixingChannels() (input, output int) { return b.in, b.out }

func (b *Buffer) ChannelLayout() audio.ChannelLayout { return b.layout }
func (b *Buffer) LoopFlag() bool                     { return b.loop }

// Loop returns the segment's own loop points.
func (b *Buffer) Loop() (start, end int64, ok bool) {
	return b.loopStart, b.loopEnd, b.loop
}

// Position is the next frame Render reads.
func (b *Buffer) Position() int64 { return b.pos }

// Setup prepares mixing for chunks of cfg.ChunkSize frames. Under
// SegmentLoopDisabled the segment's own loop is dropped.
func (b *Buffer) Setup(cfg layout.SegmentConfig) error {
	if b.closed {
		return ErrClosed
	}

	if cfg.Loop == layout.SegmentLoopDisabled {
		b.loop = false
	}

	b.mix = nil
	if b.in != b.out {
		m, err := audio.NewMix(b.in, b.out)
		if err != nil {
			return err
		}
		b.mix = m
	}

	b.chunk = cfg.ChunkSize
	b.ready = true

	return nil
}

// Render copies frames frames starting at the current position into dst
// and mixes them to the output channel count in place.
func (b *Buffer) Render(dst []float32, frames int) (int, error) {
	switch {
	case b.closed:
		return 0, ErrClosed
	case !b.ready:
		return 0, ErrNotSetup
	case frames <= 0:
		return 0, nil
	}

	width := max(b.in, b.out)
	if len(dst) < frames*width {
		return 0, fmt.Errorf("%w: %d values for %d frames of %d channels", ErrBufferTooSmall, len(dst), frames, width)
	}

	n := b.copyFrames(dst, frames)

	if b.mix != nil {
		if err := b.mix.Apply(dst, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// copyFrames writes up to frames input frames and honours the segment loop.
func (b *Buffer) copyFrames(dst []float32, frames int) int {
	var written int
	for written < frames {
		end := b.frames
		if b.loop {
			end = b.loopEnd
			if b.pos >= end {
				b.pos = b.loopStart
			}
		}

		n := min(int64(frames-written), end-b.pos)
		if n <= 0 {
			break
		}

		from := b.pos * int64(b.in)
		copy(dst[written*b.in:], b.pcm.Data[from:from+n*int64(b.in)])
		written += int(n)
		b.pos += n
	}

	return written
}

func (b *Buffer) Seek(frame int64) error {
	if b.closed {
		return ErrClosed
	}
	if frame < 0 || frame > b.frames {
		return fmt.Errorf("%w: %d of %d", ErrSeekOutOfRange, frame, b.frames)
	}

	b.pos = frame

	return nil
}

func (b *Buffer) Reset() error {
	if b.closed {
		return ErrClosed
	}

	b.pos = 0

	return nil
}

// Close drops the samples and closes the attached closer. Later calls are
// no-ops.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}

	b.closed = true
	b.pcm.Data = nil

	if b.closer != nil {
		return b.closer.Close()
	}

	return nil
}
