// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	ErrNoChannels     = errors.New("segment needs at least one channel")
	ErrPartialFrame   = errors.New("sample data does not hold whole frames")
	ErrLoopRange      = errors.New("segment loop points out of range")
	ErrSeekOutOfRange = errors.New("seek beyond segment bounds")
	ErrClosed         = errors.New("segment is closed")
	ErrBufferTooSmall = errors.New("render buffer too small")

	// ErrNotSetup is returned by Render before the owning layout called Setup.
	ErrNotSetup = errors.New("segment is not set up")
)
