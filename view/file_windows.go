//go:build windows
// +build windows

// File: view/file_windows.go
// Author: bytewell <dev@bytewell.io>
//
// Windows mapping backend: CreateFileMapping + MapViewOfFile via
// x/sys/windows.

package view

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bytewell/strspan/api"
)

// mapFile maps path read-only and returns the mapped bytes plus the
// function that releases the view and the mapping handle. The file
// handle is closed before returning; the mapping survives it. Empty
// files cannot be mapped and yield an empty slice with no release
// function.
func mapFile(path string) ([]byte, func() error, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, nil, &api.IOError{Op: "open", Path: path, Err: err}
	}
	h, err := windows.CreateFile(p, windows.GENERIC_READ, windows.FILE_SHARE_READ,
		nil, windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, nil, &api.IOError{Op: "open", Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	var fi windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &fi); err != nil {
		return nil, nil, &api.IOError{Op: "stat", Path: path, Err: err}
	}
	size := int64(fi.FileSizeHigh)<<32 | int64(fi.FileSizeLow)
	if size == 0 {
		return []byte{}, nil, nil
	}
	if size > int64(math.MaxInt) {
		return nil, nil, &api.IOError{Op: "map", Path: path, Err: windows.ERROR_FILE_TOO_LARGE}
	}

	m, err := windows.CreateFileMapping(h, nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, nil, &api.IOError{Op: "map", Path: path, Err: err}
	}
	addr, err := windows.MapViewOfFile(m, windows.FILE_MAP_READ, 0, 0, 0)
	if err != nil {
		windows.CloseHandle(m)
		return nil, nil, &api.IOError{Op: "map", Path: path, Err: err}
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	unmap := func() error {
		if err := windows.UnmapViewOfFile(addr); err != nil {
			windows.CloseHandle(m)
			return &api.IOError{Op: "unmap", Path: path, Err: err}
		}
		if err := windows.CloseHandle(m); err != nil {
			return &api.IOError{Op: "unmap", Path: path, Err: err}
		}
		return nil
	}
	return data, unmap, nil
}
