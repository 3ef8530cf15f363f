// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/layout"
)

const (
	PolicyDisabled = "disabled"
	PolicyAllowed  = "allowed"

	RateTolerate = "tolerate"
	RateStrict   = "strict"
	RateResample = "resample"
)

// Manifest is the on-disk description of a segmented stream.
type Manifest struct {
	ChunkSize    int    `yaml:"chunk_size"`
	MaxChannels  int    `yaml:"max_channels"`
	SegmentLoops string `yaml:"segment_loops"`
	SampleRate   string `yaml:"sample_rate"`
	// TargetRate is the rate segments are resampled to under the resample
	// policy. Zero picks the highest segment rate.
	TargetRate int `yaml:"target_rate"`

	Segments []Entry `yaml:"segments"`
	Loop     *Loop   `yaml:"loop"`
}

// Entry is one slot of the layout. Entries that are equal share a segment.
type Entry struct {
	File string `yaml:"file"`
	// Format overrides the decoder picked from the file extension.
	Format   string   `yaml:"format"`
	Channels int      `yaml:"channels"`
	Layout   []string `yaml:"layout"`
	// LoopStart and LoopEnd are the segment's own loop, in frames.
	LoopStart *int64 `yaml:"loop_start"`
	LoopEnd   *int64 `yaml:"loop_end"`
}

// Loop selects the composite loop either by segment index or by sample
// position, never both.
type Loop struct {
	StartSegment *int   `yaml:"start_segment"`
	EndSegment   *int   `yaml:"end_segment"`
	StartSample  *int64 `yaml:"start_sample"`
	EndSample    *int64 `yaml:"end_sample"`
	// Count limits the number of loops; zero loops forever.
	Count int `yaml:"count"`
}

// Parse decodes and validates a manifest.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSegments
		}
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest at %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks everything that can be checked without opening files.
func (m *Manifest) Validate() error {
	if len(m.Segments) == 0 {
		return ErrNoSegments
	}
	if len(m.Segments) > layout.MaxSegments {
		return fmt.Errorf("%w: %d segments", layout.ErrCapacity, len(m.Segments))
	}
	if m.ChunkSize < 0 || m.MaxChannels < 0 || m.TargetRate < 0 {
		return fmt.Errorf("%w: negative chunk_size, max_channels or target_rate", ErrBadPolicy)
	}

	if _, err := m.loopPolicy(); err != nil {
		return err
	}
	if _, err := m.ratePolicy(); err != nil {
		return err
	}

	for i, e := range m.Segments {
		if err := e.validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}

	if m.Loop != nil {
		if err := m.Loop.validate(len(m.Segments)); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manifest) loopPolicy() (layout.LoopPolicy, error) {
	switch m.SegmentLoops {
	case "", PolicyDisabled:
		return layout.SegmentLoopDisabled, nil
	case PolicyAllowed:
		return layout.SegmentLoopAllowed, nil
	default:
		return 0, fmt.Errorf("%w: segment_loops %q", ErrBadPolicy, m.SegmentLoops)
	}
}

func (m *Manifest) ratePolicy() (layout.RatePolicy, error) {
	switch m.SampleRate {
	case "", RateTolerate, RateResample:
		return layout.RateTolerate, nil
	case RateStrict:
		return layout.RateStrict, nil
	default:
		return 0, fmt.Errorf("%w: sample_rate %q", ErrBadPolicy, m.SampleRate)
	}
}

func (e Entry) validate() error {
	if e.File == "" {
		return fmt.Errorf("%w: missing file", ErrBadEntry)
	}
	if e.Channels < 0 {
		return fmt.Errorf("%w: channels %d", ErrBadEntry, e.Channels)
	}
	if (e.LoopStart == nil) != (e.LoopEnd == nil) {
		return fmt.Errorf("%w: loop_start and loop_end go together", ErrBadEntry)
	}
	if _, err := audio.ParseChannelLayout(e.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrBadEntry, err)
	}

	return nil
}

// key identifies entries that can share one decoded segment.
func (e Entry) key() string {
	var loop string
	if e.LoopStart != nil {
		loop = fmt.Sprintf("%d:%d", *e.LoopStart, *e.LoopEnd)
	}

	return fmt.Sprintf("%s|%s|%d|%v|%s", filepath.Clean(e.File), e.Format, e.Channels, e.Layout, loop)
}

func (l *Loop) validate(segments int) error {
	bySegment := l.StartSegment != nil || l.EndSegment != nil
	bySample := l.StartSample != nil || l.EndSample != nil

	switch {
	case bySegment && bySample:
		return fmt.Errorf("%w: segment and sample loop points are exclusive", ErrBadLoop)
	case !bySegment && !bySample:
		return fmt.Errorf("%w: no loop points", ErrBadLoop)
	case l.Count < 0:
		return fmt.Errorf("%w: count %d", ErrBadLoop, l.Count)
	}

	if bySegment {
		if l.StartSegment == nil || l.EndSegment == nil {
			return fmt.Errorf("%w: start_segment and end_segment go together", ErrBadLoop)
		}
		if *l.StartSegment < 0 || *l.EndSegment >= segments || *l.StartSegment > *l.EndSegment {
			return fmt.Errorf("%w: segments %d..%d of %d", ErrBadLoop, *l.StartSegment, *l.EndSegment, segments)
		}
		return nil
	}

	if l.StartSample == nil || l.EndSample == nil {
		return fmt.Errorf("%w: start_sample and end_sample go together", ErrBadLoop)
	}
	if *l.StartSample < 0 || *l.StartSample >= *l.EndSample {
		return fmt.Errorf("%w: samples %d..%d", ErrBadLoop, *l.StartSample, *l.EndSample)
	}

	return nil
}

// selector converts the section to the layout's loop selector.
func (l *Loop) selector() layout.Loop {
	switch {
	case l == nil:
		return layout.NoLoop()
	case l.StartSegment != nil:
		return layout.LoopSegments(*l.StartSegment, *l.EndSegment)
	default:
		return layout.LoopSamples(*l.StartSample, *l.EndSample)
	}
}
