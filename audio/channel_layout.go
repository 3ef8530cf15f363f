// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math/bits"
	"strings"
)

// ChannelLayout is a speaker mask in WAVEFORMATEXTENSIBLE order.
// The zero value means the layout is unspecified.
type ChannelLayout uint32

const LayoutUnspecified ChannelLayout = 0

const (
	SpeakerFrontLeft ChannelLayout = 1 << iota
	SpeakerFrontRight
	SpeakerFrontCenter
	SpeakerLowFrequency
	SpeakerBackLeft
	SpeakerBackRight
	SpeakerFrontLeftCenter
	SpeakerFrontRightCenter
	SpeakerBackCenter
	SpeakerSideLeft
	SpeakerSideRight
)

const (
	LayoutMono   = SpeakerFrontCenter
	LayoutStereo = SpeakerFrontLeft | SpeakerFrontRight
	Layout5Dot1  = SpeakerFrontLeft | SpeakerFrontRight | SpeakerFrontCenter |
		SpeakerLowFrequency | SpeakerBackLeft | SpeakerBackRight
)

var speakerNames = []struct {
	name string
	mask ChannelLayout
}{
	{"FL", SpeakerFrontLeft},
	{"FR", SpeakerFrontRight},
	{"FC", SpeakerFrontCenter},
	{"LFE", SpeakerLowFrequency},
	{"BL", SpeakerBackLeft},
	{"BR", SpeakerBackRight},
	{"FLC", SpeakerFrontLeftCenter},
	{"FRC", SpeakerFrontRightCenter},
	{"BC", SpeakerBackCenter},
	{"SL", SpeakerSideLeft},
	{"SR", SpeakerSideRight},
}

// Channels returns the number of speakers set in the mask.
func (l ChannelLayout) Channels() int {
	return bits.OnesCount32(uint32(l))
}

func (l ChannelLayout) String() string {
	if l == LayoutUnspecified {
		return "unspecified"
	}

	names := make([]string, 0, l.Channels())
	for _, s := range speakerNames {
		if l&s.mask != 0 {
			names = append(names, s.name)
		}
	}

	return strings.Join(names, "|")
}

// ParseChannelLayout builds a mask from speaker names such as "FL", "FR".
func ParseChannelLayout(names []string) (ChannelLayout, error) {
	var l ChannelLayout

outer:
	for _, n := range names {
		for _, s := range speakerNames {
			if strings.EqualFold(n, s.name) {
				l |= s.mask
				continue outer
			}
		}

		return LayoutUnspecified, fmt.Errorf("%w: %q", ErrUnknownSpeaker, n)
	}

	return l, nil
}

// DefaultLayout is the conventional layout for a channel count, or
// LayoutUnspecified when there is none.
func DefaultLayout(channels int) ChannelLayout {
	switch channels {
	case 1:
		return LayoutMono
	case 2:
		return LayoutStereo
	case 6:
		return Layout5Dot1
	default:
		return LayoutUnspecified
	}
}
