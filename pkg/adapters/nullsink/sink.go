// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/bitplot/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new null Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as no output is saved.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSeriesJSON does nothing.
func (s *Sink) SaveSeriesJSON(data []byte) error {
	return nil
}

// SaveFirstFrame does nothing.
func (s *Sink) SaveFirstFrame(img image.Image) error {
	return nil
}

// SaveChart does nothing.
func (s *Sink) SaveChart(data []byte, ext string) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
