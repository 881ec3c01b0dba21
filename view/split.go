// File: view/split.go
// Author: bytewell <dev@bytewell.io>
//
// Split operations. Both record windows into the caller's bytes; the
// parts never copy content and the resulting collection shares the
// caller's root.

package view

import "math"

// Splitlines splits the view on a single-byte separator. The
// separator occurrences are counted first so the part table is
// allocated once at its exact final size, then filled in one forward
// pass. With keepBreaks each part except the last retains its
// trailing separator byte; the last part is always the remainder.
// maxParts caps the total part count; maxParts == 1 yields the whole
// view as the sole part, and maxParts <= 0 means unlimited.
func (c *core) Splitlines(keepBreaks bool, sep byte, maxParts int) *Spans {
	if maxParts <= 0 {
		maxParts = math.MaxInt
	}
	k := c.be.CountByte(c.data, sep)
	parts := make([]span, min(k+1, maxParts))

	cursor := 0
	for i := 0; i+1 < len(parts); i++ {
		// Always found: i never reaches the separator count.
		pos := c.be.FindByte(c.data[cursor:], sep)
		n := pos
		if keepBreaks {
			n++
		}
		parts[i] = span{off: cursor, n: n}
		cursor += pos + 1
	}
	parts[len(parts)-1] = span{off: cursor, n: len(c.data) - cursor}
	return newSpans(c, parts)
}

// Split splits the view on an arbitrary separator. A single-byte
// separator with unlimited maxParts takes the Splitlines path, which
// produces identical windows. A match-terminated split always carries
// a trailing part covering whatever follows the last separator, even
// when that part is empty, so joining the parts with the separator
// reconstructs the view. maxParts caps the total part count including
// that trailing part; maxParts <= 0 means unlimited. The empty
// separator yields the whole view as the sole part.
func (c *core) Split(sep []byte, maxParts int, keepSep bool) *Spans {
	if maxParts <= 0 {
		maxParts = math.MaxInt
	}
	if len(sep) == 0 {
		return newSpans(c, []span{{off: 0, n: len(c.data)}})
	}
	if len(sep) == 1 && maxParts == math.MaxInt {
		return c.Splitlines(keepSep, sep[0], maxParts)
	}

	var parts []span
	cursor := 0
	matched := true
	for cursor < len(c.data) && len(parts)+1 < maxParts {
		rest := c.data[cursor:]
		pos := c.findIn(rest, sep)
		matched = pos != len(rest)
		n := pos
		if keepSep && matched {
			n += len(sep)
		}
		parts = append(parts, span{off: cursor, n: n})
		cursor += pos + len(sep)
	}
	// The final segment after the last match is a real part, even when
	// empty. Skipped only when the last search already consumed the
	// remainder.
	if matched {
		parts = append(parts, span{off: cursor, n: len(c.data) - cursor})
	}
	return newSpans(c, parts)
}
