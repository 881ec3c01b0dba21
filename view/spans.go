// File: view/spans.go
// Author: bytewell <dev@bytewell.io>
//
// Spans is the split result: an ordered set of windows into one parent
// view, recorded once at split time. Elements materialize as Sub views
// on demand rather than being allocated up front.

package view

import (
	"iter"
	"sync/atomic"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/internal/resolve"
)

// span is one recorded window, relative to the parent's bytes.
type span struct {
	off, n int
}

// Spans is an immutable collection of windows into a single parent
// view. It holds one ownership reference to the parent's root; every
// Sub it materializes holds its own.
type Spans struct {
	data     []byte
	root     *root
	be       api.Searcher
	parts    []span
	released atomic.Bool
}

// newSpans wraps recorded windows over the parent core. Takes its own
// reference on the root.
func newSpans(c *core, parts []span) *Spans {
	c.root.retain()
	return &Spans{data: c.data, root: c.root, be: c.be, parts: parts}
}

// Len returns the number of parts in the collection.
func (sp *Spans) Len() int { return len(sp.parts) }

// At materializes the part at idx as a Sub view. Negative indices
// count from the end. Out-of-bounds access fails with
// api.ErrOutOfRange. The returned Sub owns its own reference and is
// released independently of the collection.
func (sp *Spans) At(idx int) (*Sub, error) {
	off, err := resolve.Index(len(sp.parts), idx)
	if err != nil {
		return nil, err
	}
	if off == len(sp.parts) {
		return nil, api.ErrOutOfRange
	}
	return sp.sub(sp.parts[off]), nil
}

// All returns a restartable forward iterator materializing each part
// in order. Every yielded Sub owns its own reference; when the root is
// a mapped file, release each one to let the mapping go.
func (sp *Spans) All() iter.Seq[*Sub] {
	return func(yield func(*Sub) bool) {
		for _, p := range sp.parts {
			if !yield(sp.sub(p)) {
				return
			}
		}
	}
}

// Sub returns a collection over the [start, end) range of parts,
// sharing the same parent. Bounds clamp like window resolution and
// negative bounds are rejected with api.ErrNegativeBounds.
func (sp *Spans) Sub(start, end int) (*Spans, error) {
	off, n, err := resolve.Window(len(sp.parts), start, end)
	if err != nil {
		return nil, err
	}
	sp.root.retain()
	return &Spans{
		data:  sp.data,
		root:  sp.root,
		be:    sp.be,
		parts: sp.parts[off : off+n : off+n],
	}, nil
}

// Release drops the collection's ownership reference and empties it.
// It is idempotent and does not affect Subs already materialized.
func (sp *Spans) Release() error {
	if !sp.released.CompareAndSwap(false, true) {
		return nil
	}
	sp.parts = nil
	sp.data = nil
	return sp.root.release()
}

func (sp *Spans) sub(p span) *Sub {
	sp.root.retain()
	return &Sub{core: core{
		data: sp.data[p.off : p.off+p.n : p.off+p.n],
		root: sp.root,
		be:   sp.be,
	}}
}
