// Package control
// Author: bytewell <dev@bytewell.io>
//
// Engine observability layer: concurrent-safe operation counters and
// an optional debug trace sink. Nothing in this package touches view
// content; it only observes how views are constructed and queried.
package control
