// Package api
// Author: bytewell <dev@bytewell.io>
//
// Common error types for the strspan library. Three categories exist:
// invalid-argument (negative bounds fed to window resolution),
// out-of-range (single-index access beyond the view), and IO failures
// raised while mapping a file. Every failure is synchronous and leaves
// no partial state behind.

package api

import "fmt"

// Category sentinels, matched with errors.Is.
var (
	// ErrNegativeBounds rejects negative start/end in window-resolving
	// operations (Sub, Contains, Find, Count). Single-index access does
	// accept negative indices; the asymmetry is part of the contract.
	ErrNegativeBounds = fmt.Errorf("negative slice bounds are not supported")

	// ErrOutOfRange reports single-index access beyond content length,
	// after negative-index normalization.
	ErrOutOfRange = fmt.Errorf("accessing beyond content length")
)

// IOError reports a failed step while constructing or releasing a
// mapped-file view. Op names the failing step ("open", "stat", "mmap",
// ...); Err is the underlying OS error and unwraps so
// errors.Is(err, fs.ErrNotExist) keeps working.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
