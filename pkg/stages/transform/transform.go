// Package transform implements the metric transformation stage.
package transform

import (
	"context"
	"errors"

	"github.com/user/bitplot/pkg/pipeline"
)

// ErrInvalidNormalization is returned when per-pixel normalization is
// requested for a series with unknown frame dimensions, which happens when
// zero frames were decoded. Dividing by zero pixels is undefined.
var ErrInvalidNormalization = errors.New("transform: cannot normalize per pixel, frame dimensions are unknown")

// Stage converts a frame-size series into the requested unit.
type Stage struct{}

// NewStage creates a new transform stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute applies the unit transformation to the series.
func (s *Stage) Execute(ctx context.Context, input pipeline.TransformInput) (pipeline.TransformResult, error) {
	return Transform(input.Series, input.Unit)
}

// Transform converts the series values into the given unit and returns them
// with the matching y-axis label. UnitRaw passes values through unchanged.
func Transform(series pipeline.FrameSeries, unit pipeline.Unit) (pipeline.TransformResult, error) {
	result := pipeline.TransformResult{Label: unit.Label()}

	switch unit {
	case pipeline.UnitPerPixel:
		pixels := series.PixelCount()
		if pixels == 0 {
			return result, ErrInvalidNormalization
		}
		values := make([]float64, len(series.Values))
		for i, v := range series.Values {
			values[i] = v / float64(pixels)
		}
		result.Values = values
	default:
		result.Values = series.Values
	}

	return result, nil
}
