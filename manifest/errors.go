// SPDX-License-Identifier: EPL-2.0

package manifest

import "errors"

var (
	ErrNoSegments    = errors.New("manifest lists no segments")
	ErrBadEntry      = errors.New("invalid segment entry")
	ErrUnknownFormat = errors.New("no decoder for segment format")
	ErrBadLoop       = errors.New("invalid loop section")
	ErrBadPolicy     = errors.New("unknown policy")
)
