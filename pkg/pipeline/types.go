package pipeline

import (
	"image"
)

// =============================================================================
// Data Model
// =============================================================================

// FrameSeries holds one size sample per successfully decoded video frame, in
// decode order. Width and Height are set exactly once, from the first decoded
// frame. If no frame decodes both remain zero and Values is empty; that is not
// an error at extraction level, callers must check before normalizing or
// rendering.
type FrameSeries struct {
	Width  int
	Height int
	Values []float64
}

// PixelCount returns Width * Height.
func (s FrameSeries) PixelCount() int {
	return s.Width * s.Height
}

// Unit selects how frame sizes are reported.
type Unit int

const (
	// UnitRaw reports the raw encoded size of each frame.
	UnitRaw Unit = iota
	// UnitPerPixel reports the encoded size divided by the frame pixel count.
	UnitPerPixel
)

// Label returns the y-axis label for the unit.
func (u Unit) Label() string {
	switch u {
	case UnitPerPixel:
		return "bit per pixel"
	default:
		return "bit"
	}
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for frame-size extraction.
type ExtractInput struct {
	// InputPath is the media file to analyze.
	InputPath string
}

// ExtractResult contains the extracted frame-size series.
type ExtractResult struct {
	Series FrameSeries

	// FirstFrame is the first successfully decoded frame, kept for debug
	// output. Nil when no frame decoded.
	FirstFrame image.Image

	// PacketsRead is the total number of packets read from the container,
	// including packets of non-video tracks.
	PacketsRead int

	// PacketsSkipped is the number of video packets that failed to decode
	// and were skipped.
	PacketsSkipped int
}

// =============================================================================
// Transform Stage Types
// =============================================================================

// TransformInput contains parameters for metric transformation.
type TransformInput struct {
	Series FrameSeries
	Unit   Unit
}

// TransformResult contains the output series and its y-axis label.
type TransformResult struct {
	Values []float64
	Label  string
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains parameters for chart rendering.
type RenderInput struct {
	// Values is the series to plot, one point per frame index.
	Values []float64

	// YLabel is the y-axis description.
	YLabel string

	// CanvasWidth and CanvasHeight are the output image dimensions.
	CanvasWidth  int
	CanvasHeight int

	// FontPath is an optional TTF file for axis labels.
	FontPath string

	// OutputPath is the destination image file. The extension selects the
	// encoding format.
	OutputPath string
}

// RenderResult describes the written chart file.
type RenderResult struct {
	FileSize int64
	Format   string
}
