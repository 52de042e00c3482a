// Package summarizer provides summary generation for analysis results.
package summarizer

import "time"

// Summary contains all data collected during one analysis run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input media information
	Input InputInfo

	// Extracted series statistics
	Series SeriesInfo

	// Chart output details
	Output OutputInfo
}

// InputInfo contains information about the analyzed media file.
type InputInfo struct {
	Path           string
	Width          int
	Height         int
	FrameCount     int
	PacketsRead    int
	PacketsSkipped int
}

// SeriesInfo contains statistics of the plotted series.
type SeriesInfo struct {
	Unit string
	Max  float64
	Mean float64
}

// OutputInfo contains information about the written chart file.
type OutputInfo struct {
	Path     string
	Width    int
	Height   int
	Format   string
	FileSize int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input media information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithSeries sets series statistics.
func (b *Builder) WithSeries(series SeriesInfo) *Builder {
	b.summary.Series = series
	return b
}

// WithOutput sets chart output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
