// File: search/searcher.go
// Author: bytewell <dev@bytewell.io>
//
// Strategy constructors and runtime selection. The decision between the
// scalar and vector strategies is made once from CPU capabilities and
// dispatched through the api.Searcher interface, so a single binary
// always picks the fastest strategy available on the host.

package search

import (
	"fmt"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/bytewell/strspan/api"
)

// Scalar returns the portable reference strategy. It is the slowest
// strategy and exists as the correctness baseline and the fallback for
// hosts without wide compare instructions.
func Scalar() api.Searcher { return scalarSearcher{} }

// Vector returns the strategy backed by the Go runtime's accelerated
// byte primitives.
func Vector() api.Searcher { return vectorSearcher{} }

// Auto probes the CPU once and returns the fastest available strategy.
func Auto() api.Searcher {
	if hasAccel() {
		return Vector()
	}
	return Scalar()
}

// ByName maps a configuration string to a strategy. Recognized names are
// "auto" (or empty), "vector" and "scalar".
func ByName(name string) (api.Searcher, error) {
	switch name {
	case "", "auto":
		return Auto(), nil
	case "vector":
		return Vector(), nil
	case "scalar":
		return Scalar(), nil
	default:
		return nil, fmt.Errorf("unknown search backend %q", name)
	}
}

var (
	defaultOnce sync.Once
	defaultImpl api.Searcher
)

// Default returns the process-wide strategy, resolving Auto on first use.
func Default() api.Searcher {
	defaultOnce.Do(func() { defaultImpl = Auto() })
	return defaultImpl
}

// hasAccel reports whether the host CPU exposes the wide compare
// instructions the runtime's byte primitives are specialized for.
// Fields for foreign architectures read as zero, so the checks compose.
func hasAccel() bool {
	return cpu.X86.HasSSE2 || cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}
