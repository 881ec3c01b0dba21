// Package view
// Author: bytewell <dev@bytewell.io>
//
// Concrete view types for strspan: Str owns a copied buffer, File owns a
// read-only memory mapping, Sub windows into either while keeping it
// alive, and Spans is the ordered collection a split produces. All four
// share one implementation of the query, slice and split operations, so
// behavior is identical regardless of what backs the bytes.
// See split.go for the split state machines and root.go for lifetime
// management.
package view
