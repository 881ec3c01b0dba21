// File: view/file.go
// Author: bytewell <dev@bytewell.io>
//
// File is the mapped-file view: the whole file is mapped read-only into
// the address space and every operation runs against the mapping
// without reading the file into heap memory.

package view

import (
	"sync/atomic"

	"github.com/bytewell/strspan/search"
)

// File is a read-only view over a memory-mapped file. Construction
// either fully succeeds or acquires nothing. Close releases the
// mapping once every derived view has been released; closing the File
// while sub-views exist only defers the unmap, it never invalidates
// them.
type File struct {
	core
	path   string
	closed atomic.Bool
}

// Open maps the file at path read-only and returns a view covering its
// entire content. Failures to open, stat or map the file return an
// *api.IOError wrapping the OS error. An empty file yields a valid
// empty view with no mapping behind it.
func Open(path string, opts ...Option) (*File, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	r := newRoot()
	r.unmap = unmap
	f := &File{
		core: core{data: data, root: r, be: search.Default()},
		path: path,
	}
	for _, opt := range opts {
		opt(&f.core)
	}
	return f, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Close drops the File's ownership reference and empties the view.
// It is idempotent. The mapping itself is released when the last
// reference (this File or any view derived from it) is dropped.
// Close must not race with reads of the same File value.
func (f *File) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	f.data = nil
	return f.root.release()
}
