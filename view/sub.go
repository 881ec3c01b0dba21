// File: view/sub.go
// Author: bytewell <dev@bytewell.io>

package view

import "sync/atomic"

// Sub is a window into another view. It holds one ownership reference
// to the ultimate root, so the backing storage outlives it no matter
// what happens to the view it was sliced from. Slicing a Sub yields
// another Sub on the same root; chains never nest.
type Sub struct {
	core
	released atomic.Bool
}

// Release drops the Sub's ownership reference and empties the view.
// It is idempotent. For heap-backed roots releasing is optional; for
// mapped files it is what allows the mapping to be unmapped, so
// callers that care about deterministic release should release every
// Sub they hold. Release must not race with reads of the same Sub.
func (s *Sub) Release() error {
	if !s.released.CompareAndSwap(false, true) {
		return nil
	}
	s.data = nil
	return s.root.release()
}
