package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing artifacts for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSeriesJSON saves the extracted frame-size series as JSON.
	SaveSeriesJSON(data []byte) error

	// SaveFirstFrame saves a thumbnail of the first decoded frame.
	SaveFirstFrame(img image.Image) error

	// SaveChart saves a copy of the rendered chart with the given extension.
	SaveChart(data []byte, ext string) error
}
