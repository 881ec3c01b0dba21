// File: adapters/io.go
// Package adapters
// Author: bytewell <dev@bytewell.io>
//
// Bridges between views and the standard io interfaces.

package adapters

import (
	"bytes"
	"io"

	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/view"
)

// NewReader returns a ReadSeeker over the view's bytes without
// copying them. The reader is valid for as long as the view is.
func NewReader(v api.View) *bytes.Reader {
	return bytes.NewReader(v.Bytes())
}

// FromReader drains r into an owned view. The content ends up in the
// view's private buffer, so r and its backing storage are free to go
// away afterwards.
func FromReader(r io.Reader, opts ...view.Option) (*view.Str, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return view.NewBytes(data, opts...), nil
}
