// File: facade/engine.go
// Unified facade for the strspan library.
// Author: bytewell <dev@bytewell.io>
//
// Engine bundles backend selection, metrics and debug tracing behind
// one constructor and hands out views bound to the configured search
// backend. Everything it produces can also be built directly from the
// view package; the facade only removes the wiring.

package facade

import (
	"fmt"
	"io"

	"github.com/bytewell/strspan/adapters"
	"github.com/bytewell/strspan/api"
	"github.com/bytewell/strspan/control"
	"github.com/bytewell/strspan/search"
	"github.com/bytewell/strspan/view"
)

// Config holds parameters immutable per Engine.
type Config struct {
	Backend       string    // Search strategy name: "auto", "vector" or "scalar"
	EnableMetrics bool      // Whether to count backend calls and view constructions
	DebugOut      io.Writer // Destination for debug traces; nil disables tracing
}

// DefaultConfig returns defaults suitable for typical use: automatic
// backend selection, metrics on, tracing off.
func DefaultConfig() *Config {
	return &Config{
		Backend:       "auto",
		EnableMetrics: true,
	}
}

// Engine is the main facade type. It is safe for concurrent use; all
// mutable state lives in the metrics counters.
type Engine struct {
	config  *Config
	be      api.Searcher
	metrics *control.Metrics
	debug   *control.DebugSink
}

// New constructs an Engine from cfg. A nil cfg means DefaultConfig.
// An unknown backend name is the only construction failure.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	be, err := search.ByName(cfg.Backend)
	if err != nil {
		return nil, err
	}

	e := &Engine{config: cfg, debug: control.Disabled()}
	if cfg.DebugOut != nil {
		e.debug = control.NewDebugSink(cfg.DebugOut)
	}
	if cfg.EnableMetrics {
		e.metrics = control.NewMetrics()
		be = adapters.InstrumentSearcher(be, e.metrics)
	}
	e.be = be

	e.debug.Backend(fmt.Sprint(be))
	return e, nil
}

// NewStr builds an owned view over a copy of s, bound to the engine's
// backend.
func (e *Engine) NewStr(s string) *view.Str {
	v := view.NewStr(s, view.WithSearcher(e.be))
	e.recordView("owned", v.Len())
	return v
}

// NewBytes builds an owned view over a copy of b, bound to the
// engine's backend.
func (e *Engine) NewBytes(b []byte) *view.Str {
	v := view.NewBytes(b, view.WithSearcher(e.be))
	e.recordView("owned", v.Len())
	return v
}

// FromReader drains r into an owned view bound to the engine's
// backend.
func (e *Engine) FromReader(r io.Reader) (*view.Str, error) {
	v, err := adapters.FromReader(r, view.WithSearcher(e.be))
	if err != nil {
		return nil, err
	}
	e.recordView("owned", v.Len())
	return v, nil
}

// Open maps the file at path read-only into a view bound to the
// engine's backend.
func (e *Engine) Open(path string) (*view.File, error) {
	f, err := view.Open(path, view.WithSearcher(e.be))
	if err != nil {
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.RecordMappedFile()
		e.metrics.RecordView()
	}
	e.debug.MappedFile(path, f.Len())
	return f, nil
}

// Searcher returns the engine's backend, metrics decoration included.
func (e *Engine) Searcher() api.Searcher { return e.be }

// Metrics returns a snapshot of the engine counters, or nil when
// metrics are disabled.
func (e *Engine) Metrics() map[string]int64 {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.Snapshot()
}

// Debug returns the engine's trace sink. It is never nil; with
// tracing disabled it simply drops everything.
func (e *Engine) Debug() *control.DebugSink { return e.debug }

func (e *Engine) recordView(kind string, n int) {
	if e.metrics != nil {
		e.metrics.RecordView()
	}
	e.debug.View(kind, n)
}
