// File: control/debug.go
// Author: bytewell <dev@bytewell.io>
//
// Debug trace sink. Tracing is opt-in per engine; the disabled sink
// keeps every call site unconditional.

package control

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DebugSink traces engine activity through a dedicated logrus logger.
// Construct with NewDebugSink or Disabled; the zero value is not
// usable.
type DebugSink struct {
	log *logrus.Logger
}

// NewDebugSink builds a sink writing debug-level records to out.
func NewDebugSink(out io.Writer) *DebugSink {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.DebugLevel)
	return &DebugSink{log: log}
}

// Disabled returns a sink that drops everything.
func Disabled() *DebugSink {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return &DebugSink{log: log}
}

// Backend records which search strategy an engine selected.
func (d *DebugSink) Backend(name string) {
	d.log.Debugf("search backend selected: %s", name)
}

// View records construction of a view holding n bytes.
func (d *DebugSink) View(kind string, n int) {
	d.log.Debugf("%s view created, %d bytes", kind, n)
}

// MappedFile records a successful file mapping.
func (d *DebugSink) MappedFile(path string, n int) {
	d.log.Debugf("mapped %s, %d bytes", path, n)
}

// Logger exposes the sink's logger so callers can route their own
// records through the same destination.
func (d *DebugSink) Logger() *logrus.Logger { return d.log }
