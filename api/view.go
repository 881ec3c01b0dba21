// Package api
// Author: bytewell <dev@bytewell.io>
//
// Capability contracts shared by every strspan component. The package
// carries no implementation: concrete view types live in package view,
// search strategies in package search.

package api

// View is the fundamental non-owning window over immutable bytes.
//
// A Go slice header is exactly the {pointer, length} pair the engine is
// built around, so Bytes returns the window itself, never a copy. The
// implementation must keep the returned slice valid and unmodified for
// the view's entire observable lifetime; callers must not write through
// it.
type View interface {
	// Bytes returns the window. Zero-copy: the slice aliases the
	// backing storage.
	Bytes() []byte

	// Len returns the window length in bytes.
	Len() int
}
