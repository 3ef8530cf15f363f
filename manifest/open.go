// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/layout"
	"github.com/ik5/audseg/segment"
)

// fileSource keeps the underlying file open until the decoded source is
// closed.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Frames() int64 { return audio.FramesOf(s.Source) }

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// Open decodes every segment, relative paths resolved against dir, and
// returns a stream ready to render. Entries that are equal are decoded once
// and share a handle.
func (m *Manifest) Open(dir string, reg *audio.Registry, logger zerolog.Logger) (*layout.Stream, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	loops, _ := m.loopPolicy()
	rates, _ := m.ratePolicy()

	log := logger.With().Str("component", "manifest").Logger()

	// Unique entries in first-seen order, and the slot each entry maps to.
	var (
		unique []Entry
		slots  = make([]int, len(m.Segments))
		seen   = make(map[string]int)
	)
	for i, e := range m.Segments {
		k := e.key()
		idx, ok := seen[k]
		if !ok {
			idx = len(unique)
			seen[k] = idx
			unique = append(unique, e)
		}
		slots[i] = idx
	}

	sources := make([]audio.Source, 0, len(unique))
	closeAll := func() {
		for _, s := range sources {
			_ = s.Close()
		}
	}

	for _, e := range unique {
		src, err := openEntry(dir, e, reg)
		if err != nil {
			closeAll()
			return nil, err
		}
		sources = append(sources, src)
	}

	if m.SampleRate == RateResample {
		target := m.TargetRate
		if target == 0 {
			for _, s := range sources {
				target = max(target, s.SampleRate())
			}
		}
		for i, s := range sources {
			if s.SampleRate() != target {
				log.Debug().Str("file", unique[i].File).Int("from", s.SampleRate()).Int("to", target).Msg("resampling segment")
				sources[i] = audio.NewResampler(s, target)
			}
		}
	}

	handles := make([]*layout.Handle, 0, len(unique))
	for i, e := range unique {
		seg, err := segment.FromSource(sources[i], entryOptions(e)...)
		if err != nil {
			for _, s := range sources[i+1:] {
				_ = s.Close()
			}
			for _, h := range handles {
				_ = h.Segment().Close()
			}
			return nil, fmt.Errorf("segment %s: %w", e.File, err)
		}
		handles = append(handles, layout.NewHandle(seg))
	}

	l, err := layout.New(len(m.Segments),
		layout.WithChunkSize(m.ChunkSize),
		layout.WithMaxChannels(m.MaxChannels),
		layout.WithSegmentLoops(loops),
		layout.WithSampleRatePolicy(rates),
		layout.WithLogger(logger),
	)
	if err != nil {
		for _, h := range handles {
			_ = h.Segment().Close()
		}
		return nil, err
	}

	for i, idx := range slots {
		if err := l.Set(i, handles[idx]); err != nil {
			_ = l.Close()
			return nil, err
		}
	}

	var opts []layout.StreamOption
	if m.Loop != nil {
		opts = append(opts, layout.WithLoopLimit(m.Loop.Count))
	}

	s, err := layout.Open(l, m.Loop.selector(), opts...)
	if err != nil {
		return nil, err
	}

	c := s.Composite()
	log.Info().Int("segments", len(m.Segments)).Int("decoded", len(unique)).
		Int64("frames", c.NumSamples).Int("rate", c.SampleRate).Int("channels", c.Channels).
		Bool("loop", c.LoopFlag).Msg("manifest opened")

	return s, nil
}

func openEntry(dir string, e Entry, reg *audio.Registry) (audio.Source, error) {
	format := e.Format
	if format == "" {
		format = filepath.Ext(e.File)
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("segment %s: %w: %q", e.File, ErrUnknownFormat, format)
	}

	path := e.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("segment %s: %w", e.File, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

func entryOptions(e Entry) []segment.Option {
	var opts []segment.Option
	if e.Channels > 0 {
		opts = append(opts, segment.WithChannels(e.Channels))
	}
	if l, _ := audio.ParseChannelLayout(e.Layout); l != audio.LayoutUnspecified {
		opts = append(opts, segment.WithChannelLayout(l))
	}
	if e.LoopStart != nil {
		opts = append(opts, segment.WithLoop(*e.LoopStart, *e.LoopEnd))
	}

	return opts
}
