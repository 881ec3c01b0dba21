// Package api
// Author: bytewell <dev@bytewell.io>
//
// Substring-search backend contract. Implementations may use any internal
// strategy (hardware-accelerated primitives, portable loops); callers are
// guaranteed identical results from every strategy on identical inputs.

package api

// Searcher is the four-operation search backend every view query is
// built on. All operations are read-only and safe for concurrent use.
//
// The "not found" return is len(hay), never -1: the query layer above
// translates the sentinel for its callers. Find is only invoked with
// needles of length >= 2; single-byte needles are routed to FindByte
// and empty needles are answered before the backend is reached.
type Searcher interface {
	// FindByte returns the offset of the first occurrence of b in hay,
	// or len(hay) if absent.
	FindByte(hay []byte, b byte) int

	// Find returns the first offset where needle occurs as a contiguous
	// substring of hay, or len(hay) if absent.
	Find(hay, needle []byte) int

	// CountByte returns the number of occurrences of b in hay.
	CountByte(hay []byte, b byte) int

	// Count returns the number of occurrences of needle in hay. With
	// overlap false, matches are found by a greedy left-to-right scan
	// that resumes strictly past each matched region; with overlap true,
	// every starting position counts, including positions inside a
	// previous match.
	Count(hay, needle []byte, overlap bool) int
}
