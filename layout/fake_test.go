// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"errors"
	"fmt"

	"github.com/ik5/audseg/audio"
)

// fakeSegment produces id*10000+frame on every channel, so rendered output
// tells which segment and which frame it came from.
type fakeSegment struct {
	id       int
	frames   int64
	rate     int
	in, out  int
	layout   audio.ChannelLayout
	loop     bool
	closeErr error
	failAt   int64 // Render returns an error once pos reaches it; 0 = never

	pos      int64
	setup    *SegmentConfig
	closed   int
	resets   int
	seeks    []int64
	dstLens  []int
	dstHeads []*float32
}

func newFake(id int, frames int64) *fakeSegment {
	return &fakeSegment{id: id, frames: frames, rate: 44100, in: 1, out: 1}
}

func (f *fakeSegment) value(frame int64) float32 {
	return float32(int64(f.id)*10000 + frame)
}

func (f *fakeSegment) NumSamples() int64                  { return f.frames }
func (f *fakeSegment) SampleRate() int                    { return f.rate }
func (f *fakeSegment) MixingChannels() (int, int)         { return f.in, f.out }
func (f *fakeSegment) ChannelLayout() audio.ChannelLayout { return f.layout }
func (f *fakeSegment) LoopFlag() bool                     { return f.loop }

func (f *fakeSegment) Setup(cfg SegmentConfig) error {
	c := cfg
	f.setup = &c
	if cfg.Loop == SegmentLoopDisabled {
		f.loop = false
	}

	return nil
}

func (f *fakeSegment) Render(dst []float32, frames int) (int, error) {
	if f.closed > 0 {
		return 0, errors.New("render after close")
	}
	if len(dst) < frames*max(f.in, f.out) {
		return 0, fmt.Errorf("dst holds %d values, need %d", len(dst), frames*max(f.in, f.out))
	}

	f.dstLens = append(f.dstLens, len(dst))
	if len(dst) > 0 {
		f.dstHeads = append(f.dstHeads, &dst[0])
	}

	n := int(min(int64(frames), f.frames-f.pos))
	for i := range n {
		if f.failAt > 0 && f.pos >= f.failAt {
			return i, errors.New("decode failed")
		}
		v := f.value(f.pos)
		for c := range f.out {
			dst[i*f.out+c] = v
		}
		f.pos++
	}

	return n, nil
}

func (f *fakeSegment) Seek(frame int64) error {
	if frame < 0 || frame > f.frames {
		return errors.New("seek out of range")
	}
	f.seeks = append(f.seeks, frame)
	f.pos = frame

	return nil
}

func (f *fakeSegment) Reset() error {
	f.resets++
	f.pos = 0

	return nil
}

func (f *fakeSegment) Close() error {
	f.closed++

	return f.closeErr
}

// newLayout fills a layout with one fresh handle per segment.
func newLayout(segs []*fakeSegment, opts ...Option) (*Layout, error) {
	l, err := New(len(segs), opts...)
	if err != nil {
		return nil, err
	}
	for i, s := range segs {
		if err := l.Set(i, NewHandle(s)); err != nil {
			return nil, err
		}
	}

	return l, nil
}
