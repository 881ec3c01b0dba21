// Package fake
// Author: bytewell <dev@bytewell.io>
//
// Test doubles for the library's contracts.

package fake

import (
	"fmt"
	"sync"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/search"
)

// Searcher records every backend call and answers through the scalar
// reference strategy, so tests can assert dispatch routing without
// results changing.
type Searcher struct {
	mu    sync.Mutex
	calls []string
	ref   api.Searcher
}

var _ api.Searcher = (*Searcher)(nil)

// NewSearcher returns an empty recording searcher.
func NewSearcher() *Searcher {
	return &Searcher{ref: search.Scalar()}
}

// Calls returns a copy of the recorded call trace, in order.
func (s *Searcher) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset clears the recorded trace.
func (s *Searcher) Reset() {
	s.mu.Lock()
	s.calls = s.calls[:0]
	s.mu.Unlock()
}

func (s *Searcher) record(format string, args ...any) {
	s.mu.Lock()
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	s.mu.Unlock()
}

func (s *Searcher) FindByte(hay []byte, b byte) int {
	s.record("FindByte(%d, %q)", len(hay), b)
	return s.ref.FindByte(hay, b)
}

func (s *Searcher) Find(hay, needle []byte) int {
	s.record("Find(%d, %q)", len(hay), needle)
	return s.ref.Find(hay, needle)
}

func (s *Searcher) CountByte(hay []byte, b byte) int {
	s.record("CountByte(%d, %q)", len(hay), b)
	return s.ref.CountByte(hay, b)
}

func (s *Searcher) Count(hay, needle []byte, overlap bool) int {
	s.record("Count(%d, %q, %t)", len(hay), needle, overlap)
	return s.ref.Count(hay, needle, overlap)
}

func (s *Searcher) String() string { return "fake" }
