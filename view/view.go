// File: view/view.go
// Author: bytewell <dev@bytewell.io>
//
// The shared core every concrete view type embeds, and the query
// operations implemented once against it. The window itself is a plain
// Go slice: {pointer, length} is exactly a slice header, so slicing and
// searching never copy.

package view

import (
	"iter"
	"math"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/internal/resolve"
	"github.com/bytewell/strspan/search"
)

// End marks "through the end of the view" wherever an end bound is
// taken. Any larger-than-content bound clamps the same way.
const End = math.MaxInt

// NoLimit removes the part-count cap on split operations. Any
// non-positive maxParts value behaves the same.
const NoLimit = -1

// Option configures a view at construction. Derived views (Sub, Spans
// elements) inherit their parent's configuration.
type Option func(*core)

// WithSearcher overrides the search backend used by every query on the
// view and everything derived from it. The default is search.Default().
func WithSearcher(s api.Searcher) Option {
	return func(c *core) {
		if s != nil {
			c.be = s
		}
	}
}

// core carries the window, the ownership handle and the search strategy.
// Embedding it is what gives Str, File and Sub their identical
// operation set.
type core struct {
	data []byte
	root *root
	be   api.Searcher
}

// Compile-time capability checks.
var (
	_ api.View = (*Str)(nil)
	_ api.View = (*File)(nil)
	_ api.View = (*Sub)(nil)
)

// Bytes returns the window without copying. Callers must not modify the
// returned slice.
func (c *core) Bytes() []byte { return c.data }

// Len returns the window length in bytes.
func (c *core) Len() int { return len(c.data) }

// String returns a copy of the window as a string.
func (c *core) String() string { return string(c.data) }

// Copy returns an independent copy of the window's bytes.
func (c *core) Copy() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// At returns the byte at idx. Negative indices count from the end:
// At(-1) is the last byte. Out-of-bounds access fails with
// api.ErrOutOfRange.
func (c *core) At(idx int) (byte, error) {
	off, err := resolve.Index(len(c.data), idx)
	if err != nil {
		return 0, err
	}
	// resolve.Index admits off == length for historical reasons;
	// there is no byte there to return.
	if off == len(c.data) {
		return 0, api.ErrOutOfRange
	}
	return c.data[off], nil
}

// All returns a restartable forward iterator over the window's bytes.
func (c *core) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, b := range c.data {
			if !yield(b) {
				return
			}
		}
	}
}

// Contains reports whether needle occurs inside the [start, end) window.
// The empty needle is contained in every view. Negative bounds fail with
// api.ErrNegativeBounds.
func (c *core) Contains(needle []byte, start, end int) (bool, error) {
	if len(needle) == 0 {
		return true, nil
	}
	win, err := c.window(start, end)
	if err != nil {
		return false, err
	}
	return c.findIn(win, needle) != len(win), nil
}

// Find returns the offset of the first occurrence of needle, relative
// to the resolved [start, end) window, or -1 if absent. The empty
// needle is found at 0.
func (c *core) Find(needle []byte, start, end int) (int, error) {
	if len(needle) == 0 {
		return 0, nil
	}
	win, err := c.window(start, end)
	if err != nil {
		return -1, err
	}
	pos := c.findIn(win, needle)
	if pos == len(win) {
		return -1, nil
	}
	return pos, nil
}

// Count returns the number of occurrences of needle inside the
// [start, end) window. With overlap false, counting is the greedy
// left-to-right non-overlapping scan; with overlap true every starting
// position counts. The empty needle counts zero.
func (c *core) Count(needle []byte, start, end int, overlap bool) (int, error) {
	if len(needle) == 0 {
		return 0, nil
	}
	win, err := c.window(start, end)
	if err != nil {
		return 0, err
	}
	if len(needle) == 1 {
		return c.be.CountByte(win, needle[0]), nil
	}
	return c.be.Count(win, needle, overlap), nil
}

// Sub returns a sub-view over the resolved [start, end) window. The
// sub-view shares the ultimate root with this view and keeps it alive.
func (c *core) Sub(start, end int) (*Sub, error) {
	off, n, err := resolve.Window(len(c.data), start, end)
	if err != nil {
		return nil, err
	}
	c.root.retain()
	return &Sub{core: core{
		data: c.data[off : off+n : off+n],
		root: c.root,
		be:   c.be,
	}}, nil
}

// window resolves bounds against this view's length and returns the
// matching slice of the window.
func (c *core) window(start, end int) ([]byte, error) {
	off, n, err := resolve.Window(len(c.data), start, end)
	if err != nil {
		return nil, err
	}
	return c.data[off : off+n], nil
}

// findIn routes to the single-byte or span search operation; the
// backend never sees needles shorter than two bytes through this path.
func (c *core) findIn(win, needle []byte) int {
	if len(needle) == 1 {
		return c.be.FindByte(win, needle[0])
	}
	return c.be.Find(win, needle)
}

// defaultCore builds a core over data with the process default backend,
// then applies options.
func defaultCore(data []byte, opts []Option) core {
	c := core{data: data, root: newRoot(), be: search.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
