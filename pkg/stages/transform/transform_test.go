package transform

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/user/bitplot/pkg/pipeline"
)

func TestTransform_Raw(t *testing.T) {
	series := pipeline.FrameSeries{
		Width:  320,
		Height: 180,
		Values: []float64{5068, 206, 174},
	}

	result, err := Transform(series, pipeline.UnitRaw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Label != "bit" {
		t.Errorf("expected label 'bit', got %q", result.Label)
	}
	for i, v := range series.Values {
		if result.Values[i] != v {
			t.Errorf("sample %d: expected %v, got %v", i, v, result.Values[i])
		}
	}
}

func TestTransform_PerPixel(t *testing.T) {
	series := pipeline.FrameSeries{
		Width:  320,
		Height: 180,
		Values: []float64{5068, 206, 174},
	}
	pixels := float64(320 * 180)

	result, err := Transform(series, pipeline.UnitPerPixel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Label != "bit per pixel" {
		t.Errorf("expected label 'bit per pixel', got %q", result.Label)
	}
	for i, v := range series.Values {
		expected := v / pixels
		if math.Abs(result.Values[i]-expected) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, expected, result.Values[i])
		}
	}

	// Normalization must not mutate the source series
	if series.Values[0] != 5068 {
		t.Errorf("source series was mutated: %v", series.Values)
	}
}

func TestTransform_PerPixel_Roundtrip(t *testing.T) {
	series := pipeline.FrameSeries{
		Width:  1920,
		Height: 1080,
		Values: []float64{123456, 789, 42},
	}
	pixels := float64(series.PixelCount())

	result, err := Transform(series, pipeline.UnitPerPixel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range result.Values {
		back := v * pixels
		if math.Abs(back-series.Values[i]) > 1e-6 {
			t.Errorf("sample %d: roundtrip %v != original %v", i, back, series.Values[i])
		}
	}
}

func TestTransform_PerPixel_ZeroPixels(t *testing.T) {
	// Unknown dimensions happen when no frames decoded
	series := pipeline.FrameSeries{Values: []float64{100}}

	_, err := Transform(series, pipeline.UnitPerPixel)
	if !errors.Is(err, ErrInvalidNormalization) {
		t.Errorf("expected ErrInvalidNormalization, got %v", err)
	}
}

func TestTransform_EmptySeries(t *testing.T) {
	result, err := Transform(pipeline.FrameSeries{Width: 320, Height: 180}, pipeline.UnitRaw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Values) != 0 {
		t.Errorf("expected empty values, got %v", result.Values)
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage()

	result, err := stage.Execute(context.Background(), pipeline.TransformInput{
		Series: pipeline.FrameSeries{Width: 10, Height: 10, Values: []float64{100}},
		Unit:   pipeline.UnitPerPixel,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Values[0] != 1.0 {
		t.Errorf("expected 1.0, got %v", result.Values[0])
	}
}
