// File: internal/resolve/resolve.go
// Author: bytewell <dev@bytewell.io>
//
// Unified bound-resolution routines for view windows and single indices.
// Every operation taking caller-supplied bounds goes through this package
// so clamping and failure behavior stay identical across view types.
//
// The two entry points deliberately disagree about negative input:
// Window rejects negative bounds outright, Index interprets them from the
// end of the content. Both behaviors are part of the library's observable
// contract and must not be unified.

package resolve

import "github.com/bytewell/strspan/api"

// Window translates a [start, end) request into a canonical offset/length
// window over content of the given length.
//
// Negative start or end fails with api.ErrNegativeBounds. Bounds past the
// content clamp to length. If end lands before start after clamping, the
// result is the zero-length window at start, never a negative length.
func Window(length, start, end int) (offset, n int, err error) {
	if start < 0 || end < 0 {
		return 0, 0, api.ErrNegativeBounds
	}
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}
	return start, end - start, nil
}

// Index resolves a single, possibly-negative index against content of the
// given length.
//
// Non-negative indices must satisfy idx <= length. Negative indices count
// from the end, Python-style: -1 is the last byte, -length the first.
// Anything outside those ranges fails with api.ErrOutOfRange.
func Index(length, idx int) (int, error) {
	if idx >= 0 {
		if idx > length {
			return 0, api.ErrOutOfRange
		}
		return idx, nil
	}
	// idx < -length written without negating idx, which would overflow
	// at the most negative int.
	if idx < -length {
		return 0, api.ErrOutOfRange
	}
	return length + idx, nil
}
