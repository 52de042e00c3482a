package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("expected GeneratedAt between %v and %v, got %v", before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithInput(InputInfo{
			Path:        "input.mp4",
			Width:       320,
			Height:      180,
			FrameCount:  3,
			PacketsRead: 3,
		}).
		WithSeries(SeriesInfo{
			Unit: "bit",
			Max:  5068,
			Mean: 1816,
		}).
		WithOutput(OutputInfo{
			Path:     "chart.png",
			Width:    1920,
			Height:   1080,
			Format:   "png",
			FileSize: 4096,
		}).
		Build()

	if summary.Input.Path != "input.mp4" {
		t.Errorf("expected input path 'input.mp4', got %q", summary.Input.Path)
	}
	if summary.Input.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", summary.Input.FrameCount)
	}
	if summary.Series.Max != 5068 {
		t.Errorf("expected max 5068, got %v", summary.Series.Max)
	}
	if summary.Output.Format != "png" {
		t.Errorf("expected format 'png', got %q", summary.Output.Format)
	}
	if summary.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}
