// File: view/root.go
// Author: bytewell <dev@bytewell.io>
//
// Reference-counted ownership of backing storage. Dependent views only
// ever point at a root, never at each other, so release order cannot
// form cycles and the mapping behind a File is torn down exactly once,
// when the last handle lets go.

package view

import "sync/atomic"

// root owns one backing store. Heap-backed roots (Str) carry a nil unmap
// and rely on the garbage collector for the bytes themselves; the count
// still runs so dependents behave identically everywhere. File-backed
// roots release the OS mapping when the count reaches zero.
type root struct {
	refs  atomic.Int64
	unmap func() error
}

// newRoot returns a root holding one reference for its creator.
func newRoot() *root {
	r := &root{}
	r.refs.Store(1)
	return r
}

func (r *root) retain() {
	r.refs.Add(1)
}

// release drops one reference and tears the storage down on the last
// one. The error is the unmap result and concerns only the final caller.
func (r *root) release() error {
	if r.refs.Add(-1) != 0 {
		return nil
	}
	if r.unmap == nil {
		return nil
	}
	unmap := r.unmap
	r.unmap = nil
	return unmap()
}
