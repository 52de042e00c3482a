// Package render implements the chart rendering stage.
//
// The stage projects a numeric series into a 2-D coordinate system, draws
// the series as a polyline together with a constant line at the series mean,
// and persists the canvas as a bitmap image file.
package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/user/bitplot/pkg/pipeline"
	"github.com/user/bitplot/pkg/ports"
)

var (
	// ErrEmptySeries is returned when the series has no samples; maximum
	// and mean are undefined for an empty series.
	ErrEmptySeries = errors.New("render: series has no samples")

	// ErrUnsupportedFormat is returned when the output extension does not
	// map to a supported image format.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")
)

// jpegQuality is the encoding quality for JPEG output.
const jpegQuality = 90

var (
	seriesColor = color.NRGBA{B: 255, A: 204} // semi-opaque blue
	meanColor   = color.NRGBA{R: 255, A: 77}  // low-opacity red
	axisColor   = color.NRGBA{A: 255}
	labelColor  = color.NRGBA{A: 255}
)

// Stage renders a series as a line chart image file.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new render stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		sink:     sink,
		logger:   logger.WithComponent("render"),
	}
}

// Execute draws the chart and writes it to the output path. The output file
// is created or overwritten; on failure no partial file handling is
// attempted beyond what the filesystem reports.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	result := pipeline.RenderResult{}

	if len(input.Values) == 0 {
		return result, ErrEmptySeries
	}

	format, ext, err := formatForPath(input.OutputPath)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Rendering %d samples to %dx%d canvas", len(input.Values), input.CanvasWidth, input.CanvasHeight)
	chart := ComputeChart(input.Values, input.CanvasWidth, input.CanvasHeight)
	s.logger.Debug("Series max %.1f, mean %.1f", chart.Max, chart.Mean)

	canvas := s.renderer.CreateCanvas(input.CanvasWidth, input.CanvasHeight, color.White)
	drawChart(canvas, chart, input.YLabel, input.FontPath, input.CanvasHeight)

	data, err := s.renderer.EncodeImage(canvas.ToImage(), format, jpegQuality)
	if err != nil {
		return result, fmt.Errorf("encode chart: %w", err)
	}
	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return result, fmt.Errorf("write chart: %w", err)
	}
	s.logger.Debug("Wrote %d bytes", len(data))

	if s.sink.Enabled() {
		if err := s.sink.SaveChart(data, ext); err != nil {
			s.logger.Debug("Failed to save chart copy: %s", err)
		}
	}

	result.FileSize = int64(len(data))
	result.Format = strings.TrimPrefix(ext, ".")
	return result, nil
}

// drawChart draws axes, tick labels, axis descriptions, the data polyline
// and the mean line onto the canvas. No background gridlines are drawn.
func drawChart(canvas ports.Canvas, chart Chart, yLabel, fontPath string, canvasHeight int) {
	plot := chart.Plot
	labelStyle := ports.TextStyle{
		FontSize: chart.FontSize,
		FontPath: fontPath,
		Color:    labelColor,
	}

	// Axis lines
	canvas.DrawLine(plot.X0, plot.Y0, plot.X0, plot.Y1, axisColor, 1)
	canvas.DrawLine(plot.X0, plot.Y1, plot.X1, plot.Y1, axisColor, 1)

	// Value axis ticks, labels right-aligned against the plot edge
	yStyle := labelStyle
	yStyle.Align = ports.AlignRight
	for _, tick := range chart.YTicks {
		canvas.DrawLine(tick.X-4, tick.Y, tick.X, tick.Y, axisColor, 1)
		canvas.DrawText(tick.Label, tick.X-8, tick.Y, yStyle)
	}

	// Frame axis ticks, labels centered below the plot
	xStyle := labelStyle
	xStyle.Align = ports.AlignCenter
	for _, tick := range chart.XTicks {
		canvas.DrawLine(tick.X, tick.Y, tick.X, tick.Y+4, axisColor, 1)
		canvas.DrawText(tick.Label, tick.X, tick.Y+4+chart.FontSize*0.7, xStyle)
	}

	// Axis descriptions
	descStyle := labelStyle
	descStyle.Align = ports.AlignCenter
	canvas.DrawTextRotated(yLabel, chart.FontSize, (plot.Y0+plot.Y1)/2, descStyle)
	xDescY := plot.Y1 + (float64(canvasHeight)-plot.Y1)*0.75
	canvas.DrawText("Frame no", (plot.X0+plot.X1)/2, xDescY, descStyle)

	// Data series and mean reference line
	canvas.DrawPolyline(chart.Points, seriesColor, 1)
	canvas.DrawLine(plot.X0, chart.MeanY, plot.X1, chart.MeanY, meanColor, 1)
}

// formatForPath maps the output file extension to an image format.
func formatForPath(path string) (ports.ImageFormat, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return ports.FormatPNG, ext, nil
	case ".jpg", ".jpeg":
		return ports.FormatJPEG, ext, nil
	default:
		return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
