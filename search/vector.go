// File: search/vector.go
// Author: bytewell <dev@bytewell.io>
//
// Vector strategy. Delegates to the bytes package, whose IndexByte,
// Index and Count are backed by SIMD assembly in the Go runtime on the
// architectures hasAccel reports. Only the sentinel convention differs
// from the stdlib: absent needles yield len(hay), not -1.

package search

import "bytes"

// vectorSearcher implements api.Searcher over the runtime's accelerated
// byte primitives.
type vectorSearcher struct{}

func (vectorSearcher) String() string { return "vector" }

func (vectorSearcher) FindByte(hay []byte, b byte) int {
	if i := bytes.IndexByte(hay, b); i >= 0 {
		return i
	}
	return len(hay)
}

func (vectorSearcher) Find(hay, needle []byte) int {
	if len(needle) == 0 {
		return len(hay)
	}
	if i := bytes.Index(hay, needle); i >= 0 {
		return i
	}
	return len(hay)
}

func (vectorSearcher) CountByte(hay []byte, b byte) int {
	return bytes.Count(hay, []byte{b})
}

func (vectorSearcher) Count(hay, needle []byte, overlap bool) int {
	if len(needle) == 0 {
		return 0
	}
	if !overlap {
		// bytes.Count is exactly the greedy left-to-right
		// non-overlapping scan the contract asks for.
		return bytes.Count(hay, needle)
	}
	count := 0
	rest := hay
	for {
		i := bytes.Index(rest, needle)
		if i < 0 {
			return count
		}
		count++
		rest = rest[i+1:]
	}
}
