// SPDX-License-Identifier: EPL-2.0

package audseg

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/audseg/audio"
	"github.com/ik5/audseg/formats/aiff"
	"github.com/ik5/audseg/formats/flac"
	"github.com/ik5/audseg/formats/mp3"
	"github.com/ik5/audseg/formats/vorbis"
	"github.com/ik5/audseg/formats/wav"
	"github.com/ik5/audseg/layout"
	"github.com/ik5/audseg/manifest"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// OpenManifest loads the manifest at path and opens it with the default
// registry. Segment files are resolved relative to the manifest.
func OpenManifest(path string, logger zerolog.Logger) (*layout.Stream, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	return m.Open(filepath.Dir(path), DefaultRegistry(), logger)
}
