// SPDX-License-Identifier: EPL-2.0

package layout

import "fmt"

// locate maps a position of the concatenated timeline to the segment that
// contains it and the offset inside that segment.
func (l *Layout) locate(sample int64) (segment int, offset int64, ok bool) {
	if sample < 0 {
		return 0, 0, false
	}

	var total int64
	for i, h := range l.slots {
		if h == nil {
			return 0, 0, false
		}

		n := h.seg.NumSamples()
		if sample < total+n {
			return i, sample - total, true
		}
		total += n
	}

	return 0, 0, false
}

// seekTo moves the cursor to sample: the containing segment is seeked to
// the offset and becomes current. The cursor is untouched on error.
func (l *Layout) seekTo(sample int64) error {
	i, offset, ok := l.locate(sample)
	if !ok {
		return fmt.Errorf("sample %d: %w", sample, ErrSegmentOverrun)
	}

	if err := l.slots[i].seg.Seek(offset); err != nil {
		return fmt.Errorf("segment %d: seek %d: %w", i, offset, err)
	}

	l.current = i
	l.into = offset

	return nil
}
