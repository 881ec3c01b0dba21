// File: search/scalar.go
// Author: bytewell <dev@bytewell.io>
//
// Portable reference strategy. Plain loops, no dependencies on runtime
// internals. Every other strategy must agree with this one byte for byte.

package search

// scalarSearcher implements api.Searcher with straightforward scans.
type scalarSearcher struct{}

func (scalarSearcher) String() string { return "scalar" }

func (scalarSearcher) FindByte(hay []byte, b byte) int {
	for i := 0; i < len(hay); i++ {
		if hay[i] == b {
			return i
		}
	}
	return len(hay)
}

func (scalarSearcher) Find(hay, needle []byte) int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return len(hay)
	}
	first := needle[0]
	last := len(hay) - len(needle)
	for i := 0; i <= last; i++ {
		if hay[i] != first {
			continue
		}
		j := 1
		for j < len(needle) && hay[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return len(hay)
}

func (scalarSearcher) CountByte(hay []byte, b byte) int {
	count := 0
	for i := 0; i < len(hay); i++ {
		if hay[i] == b {
			count++
		}
	}
	return count
}

func (s scalarSearcher) Count(hay, needle []byte, overlap bool) int {
	if len(needle) == 0 {
		return 0
	}
	step := len(needle)
	if overlap {
		step = 1
	}
	count := 0
	rest := hay
	for {
		pos := s.Find(rest, needle)
		if pos == len(rest) {
			return count
		}
		count++
		rest = rest[pos+step:]
	}
}
