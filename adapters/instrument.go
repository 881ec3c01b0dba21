// Package adapters
// Author: bytewell <dev@bytewell.io>
//
// Searcher decorator feeding control.Metrics with per-call counters.

package adapters

import (
	"fmt"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/control"
)

// instrumentedSearcher wraps a backend and counts every call before
// delegating.
type instrumentedSearcher struct {
	base api.Searcher
	m    *control.Metrics
}

var _ api.Searcher = (*instrumentedSearcher)(nil)

// InstrumentSearcher returns a Searcher recording each call into m
// before delegating to base. A nil m returns base unchanged.
func InstrumentSearcher(base api.Searcher, m *control.Metrics) api.Searcher {
	if m == nil {
		return base
	}
	return &instrumentedSearcher{base: base, m: m}
}

func (s *instrumentedSearcher) FindByte(hay []byte, b byte) int {
	s.m.RecordFind(len(hay))
	return s.base.FindByte(hay, b)
}

func (s *instrumentedSearcher) Find(hay, needle []byte) int {
	s.m.RecordFind(len(hay))
	return s.base.Find(hay, needle)
}

func (s *instrumentedSearcher) CountByte(hay []byte, b byte) int {
	s.m.RecordCount(len(hay))
	return s.base.CountByte(hay, b)
}

func (s *instrumentedSearcher) Count(hay, needle []byte, overlap bool) int {
	s.m.RecordCount(len(hay))
	return s.base.Count(hay, needle, overlap)
}

func (s *instrumentedSearcher) String() string {
	return fmt.Sprintf("instrumented(%v)", s.base)
}
