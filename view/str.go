// File: view/str.go
// Author: bytewell <dev@bytewell.io>
//
// Str is the owned-buffer view: it copies its input once at
// construction and serves every later operation zero-copy from that
// private buffer.

package view

// Str is a view over a private heap buffer. Construction is the only
// copy; slicing, searching and splitting all alias the buffer. The
// buffer lives for as long as the Str or any view derived from it is
// reachable, so Str has no release operation.
type Str struct {
	core
}

// NewStr builds an owned view holding a copy of s.
func NewStr(s string, opts ...Option) *Str {
	return &Str{core: defaultCore([]byte(s), opts)}
}

// NewBytes builds an owned view holding a copy of b. The caller keeps
// ownership of b and may modify it afterwards.
func NewBytes(b []byte, opts ...Option) *Str {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Str{core: defaultCore(buf, opts)}
}
