//go:build !unix && !windows

// File: view/file_stub.go
// Author: bytewell <dev@bytewell.io>
//
// Fallback for platforms without a memory-mapping backend: read the
// whole file into an owned buffer. The observable contract is the
// same; only the residency differs.

package view

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bytewell/strspan/api"
)

// mapFile reads the whole file into memory. There is nothing to
// release afterwards, so the release function is nil.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return nil, nil, &api.IOError{Op: pe.Op, Path: path, Err: pe.Err}
		}
		return nil, nil, &api.IOError{Op: "read", Path: path, Err: err}
	}
	if len(data) == 0 {
		return []byte{}, nil, nil
	}
	return data, nil, nil
}
