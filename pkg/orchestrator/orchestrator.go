// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/bitplot/pkg/pipeline"
	"github.com/user/bitplot/pkg/ports"
	"github.com/user/bitplot/pkg/stages/render"
)

// Config contains all configuration for one run.
type Config struct {
	// Input
	InputPath string

	// Output
	OutputPath   string
	CanvasWidth  int
	CanvasHeight int

	// Unit selects raw frame sizes or per-pixel normalization.
	Unit pipeline.Unit

	// FontPath is an optional TTF file for chart labels.
	FontPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  1920,
		CanvasHeight: 1080,
		Unit:         pipeline.UnitRaw,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	extractStage   pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult]
	renderStage    pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	transformStage pipeline.Stage[pipeline.TransformInput, pipeline.TransformResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		extractStage:   extractStage,
		transformStage: transformStage,
		renderStage:    renderStage,
		sink:           sink,
		logger:         logger,
	}
}

// RunResult summarizes one completed run.
type RunResult struct {
	InputPath      string
	VideoWidth     int
	VideoHeight    int
	FrameCount     int
	PacketsRead    int
	PacketsSkipped int

	MaxValue  float64
	MeanValue float64
	UnitLabel string

	OutputPath   string
	CanvasWidth  int
	CanvasHeight int
	FileSize     int64
	Format       string
}

// Run executes the complete pipeline: extract, transform, render.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Frame-size extraction
	o.logger.Info(l10n.F("Analyzing %s...", config.InputPath))
	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{InputPath: config.InputPath})
	if err != nil {
		o.logger.Error(l10n.F("Failed to extract frame sizes: %s", err))
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}

	series := extracted.Series
	if len(series.Values) == 0 {
		o.logger.Warn(l10n.T("No frames could be decoded"))
	} else {
		o.logger.Info(l10n.F("Decoded %d frames (%dx%d)", len(series.Values), series.Width, series.Height))
	}
	if extracted.PacketsSkipped > 0 {
		o.logger.Warn(l10n.F("Skipped %d packets that failed to decode", extracted.PacketsSkipped))
	}

	// Save extraction debug output
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(series, "", "  "); err == nil {
			if err := o.sink.SaveSeriesJSON(data); err != nil {
				o.logger.Debug(l10n.F("Failed to save series JSON: %s", err))
			}
		}
		if extracted.FirstFrame != nil {
			if err := o.sink.SaveFirstFrame(extracted.FirstFrame); err != nil {
				o.logger.Debug(l10n.F("Failed to save first frame: %s", err))
			}
		}
	}

	// 2. Unit transformation
	transformed, err := o.transformStage.Execute(ctx, pipeline.TransformInput{
		Series: series,
		Unit:   config.Unit,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to transform series: %s", err))
		return RunResult{}, fmt.Errorf("transform stage: %w", err)
	}
	if config.Unit == pipeline.UnitPerPixel {
		o.logger.Info(l10n.F("Normalizing series to %s", transformed.Label))
	}

	// 3. Chart rendering
	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{
		Values:       transformed.Values,
		YLabel:       transformed.Label,
		CanvasWidth:  config.CanvasWidth,
		CanvasHeight: config.CanvasHeight,
		FontPath:     config.FontPath,
		OutputPath:   config.OutputPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render chart: %s", err))
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}

	o.logger.Info(l10n.F("Chart saved to %s", config.OutputPath))
	o.logger.Info(l10n.T("Pipeline completed successfully"))

	result := RunResult{
		InputPath:      config.InputPath,
		VideoWidth:     series.Width,
		VideoHeight:    series.Height,
		FrameCount:     len(series.Values),
		PacketsRead:    extracted.PacketsRead,
		PacketsSkipped: extracted.PacketsSkipped,
		UnitLabel:      transformed.Label,
		OutputPath:     config.OutputPath,
		CanvasWidth:    config.CanvasWidth,
		CanvasHeight:   config.CanvasHeight,
		FileSize:       rendered.FileSize,
		Format:         rendered.Format,
	}
	if len(transformed.Values) > 0 {
		result.MaxValue, result.MeanValue = render.Stats(transformed.Values)
	}
	return result, nil
}
