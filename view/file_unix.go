//go:build unix

// File: view/file_unix.go
// Author: bytewell <dev@bytewell.io>
//
// POSIX mapping backend: open(2) + fstat(2) + mmap(2) via x/sys/unix.

package view

import (
	"math"

	"golang.org/x/sys/unix"

	"github.com/bytewell/strspan/api"
)

// mapFile maps path read-only and returns the mapped bytes plus the
// function that releases the mapping. The descriptor is closed before
// returning; the mapping survives it. Empty files are not mapped
// (zero-length mmap is invalid) and yield an empty slice with no
// release function.
func mapFile(path string) ([]byte, func() error, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, nil, &api.IOError{Op: "open", Path: path, Err: err}
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, nil, &api.IOError{Op: "stat", Path: path, Err: err}
	}
	if st.Size == 0 {
		unix.Close(fd)
		return []byte{}, nil, nil
	}
	if st.Size > int64(math.MaxInt) {
		// Cannot address the whole file as one slice on this platform.
		unix.Close(fd)
		return nil, nil, &api.IOError{Op: "mmap", Path: path, Err: unix.EOVERFLOW}
	}

	data, err := unix.Mmap(fd, 0, int(st.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, nil, &api.IOError{Op: "mmap", Path: path, Err: err}
	}
	unix.Close(fd)

	unmap := func() error {
		if err := unix.Munmap(data); err != nil {
			return &api.IOError{Op: "munmap", Path: path, Err: err}
		}
		return nil
	}
	return data, unmap, nil
}
