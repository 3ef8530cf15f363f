// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrMixBufferTooSmall = errors.New("buffer too small for channel mix")
	ErrUnknownSpeaker    = errors.New("unknown speaker name")
)
