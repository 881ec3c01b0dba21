// Package search
// Author: bytewell <dev@bytewell.io>
//
// Search backend implementations for strspan.
// Two strategies satisfy the api.Searcher contract: a portable scalar
// reference and a vector strategy delegating to the Go runtime's
// hardware-accelerated byte primitives. Selection happens once at
// runtime from CPU capabilities; both strategies return identical
// results on identical inputs.
package search
