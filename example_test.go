// SPDX-License-Identifier: EPL-2.0

package audseg_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ik5/audseg"
	"github.com/ik5/audseg/formats/wav"
)

// Example_openManifest renders an intro followed by a body that loops
// twice, resampled to 8kHz mono.
func Example_openManifest() {
	dir, err := os.MkdirTemp("", "audseg")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	for name, frames := range map[string]int{"intro.wav": 1600, "body.wav": 800} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			fmt.Println(err)
			return
		}
		// 16kHz stereo silence
		err = wav.WritePCM16(f, 16000, 2, make([]float32, frames*2))
		_ = f.Close()
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	manifest := `
segments:
  - file: intro.wav
  - file: body.wav
loop:
  start_segment: 1
  end_segment: 1
  count: 2
`
	path := filepath.Join(dir, "stream.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0o600); err != nil {
		fmt.Println(err)
		return
	}

	s, err := audseg.OpenManifest(path, zerolog.Nop())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	c := s.Composite()
	fmt.Printf("composite: %d frames, %d Hz, %d channels\n", c.NumSamples, c.SampleRate, c.Channels)
	fmt.Println("playback frames:", s.Frames())

	pcm, rate, err := audseg.Render16(s, 8000, 1, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("rendered about %d ms at %d Hz\n", (len(pcm)*1000/rate+5)/10*10, rate)

	// Output:
	// composite: 2400 frames, 16000 Hz, 2 channels
	// playback frames: 4000
	// rendered about 250 ms at 8000 Hz
}
