// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audseg/internal/audiotest"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok, "registered decoder not found")
	assert.Same(t, decoder, got)

	_, ok = registry.Get("mid")
	assert.False(t, ok, "unregistered format found")
}

func TestRegistry_ExtensionLookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "ogg"}
	registry.Register("OGG", decoder)

	for _, key := range []string{"ogg", ".ogg", ".OGG", "Ogg"} {
		got, ok := registry.Get(key)
		if assert.True(t, ok, "Get(%q)", key) {
			assert.Same(t, decoder, got, "Get(%q)", key)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{})
	registry.Register("mp3", &stubDecoder{})
	registry.Register(".aiff", &stubDecoder{})

	assert.Equal(t, []string{"aiff", "mp3", "wav"}, registry.Formats())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registry.Register("wav", &stubDecoder{})
			registry.Get("wav")
			if i%4 == 0 {
				registry.Formats()
			}
		}(i)
	}
	wg.Wait()

	_, ok := registry.Get("wav")
	assert.True(t, ok, "decoder missing after concurrent registration")
}

func TestFramesOf(t *testing.T) {
	t.Parallel()

	sized := audiotest.NewSilentSource(8000, 1, 123)
	assert.Equal(t, int64(123), FramesOf(sized))

	unknown := audiotest.NewSilentSource(8000, 1, 123).HideLength()
	assert.Equal(t, int64(-1), FramesOf(unknown))

	assert.Equal(t, int64(123), FramesOf(NewMonoMixer(sized)), "mixers forward the hint")
}

func TestChannelLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, LayoutStereo.Channels())
	assert.Equal(t, 6, Layout5Dot1.Channels())
	assert.Equal(t, "FL|FR", LayoutStereo.String())
	assert.Equal(t, "unspecified", LayoutUnspecified.String())

	l, err := ParseChannelLayout([]string{"fl", "FR", "LFE"})
	require.NoError(t, err)
	assert.Equal(t, SpeakerFrontLeft|SpeakerFrontRight|SpeakerLowFrequency, l)

	_, err = ParseChannelLayout([]string{"XX"})
	assert.ErrorIs(t, err, ErrUnknownSpeaker)
}

func TestDefaultLayout(t *testing.T) {
	t.Parallel()

	tests := map[int]ChannelLayout{
		0: LayoutUnspecified,
		1: LayoutMono,
		2: LayoutStereo,
		3: LayoutUnspecified,
		6: Layout5Dot1,
	}
	for ch, want := range tests {
		assert.Equal(t, want, DefaultLayout(ch), "DefaultLayout(%d)", ch)
	}
}
