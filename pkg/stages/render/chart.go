package render

import (
	"strconv"

	"github.com/user/bitplot/pkg/ports"
)

const (
	// yHeadroom is the fixed visual margin above the series maximum.
	yHeadroom = 1.2

	// leftLabelFraction is the canvas width fraction reserved for the
	// y-axis label area.
	leftLabelFraction = 0.10

	// bottomLabelFraction is the canvas height fraction reserved for the
	// x-axis label area.
	bottomLabelFraction = 0.10

	// labelFontFraction sizes the label font relative to canvas height.
	labelFontFraction = 0.03

	// maxXTicks bounds the number of ticks on the frame-number axis.
	maxXTicks = 10

	// yTickCount is the number of divisions on the value axis.
	yTickCount = 5
)

// Rect is an axis-aligned rectangle in canvas pixels, Y0 at the top.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Tick is one axis tick position with its label.
type Tick struct {
	X, Y  float64
	Label string
}

// Chart holds the computed geometry for one rendered chart: statistics, the
// plot area, tick positions and the series polyline projected into canvas
// pixels.
type Chart struct {
	Max  float64
	Mean float64

	// YMax is the upper bound of the y domain, Max * yHeadroom.
	YMax float64

	Plot     Rect
	FontSize float64

	Points []ports.Point
	MeanY  float64

	XTicks []Tick
	YTicks []Tick
}

// Stats returns the maximum and arithmetic mean of values.
// values must be non-empty.
func Stats(values []float64) (max, mean float64) {
	max = values[0]
	sum := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
		sum += v
	}
	return max, sum / float64(len(values))
}

// ComputeChart establishes the chart coordinate system for the given series
// and canvas size. The x domain is [0, len(values)-1], the y domain is
// [0, max*yHeadroom].
func ComputeChart(values []float64, width, height int) Chart {
	w := float64(width)
	h := float64(height)

	max, mean := Stats(values)
	yMax := max * yHeadroom
	if yMax <= 0 {
		// A flat zero series still gets a drawable domain.
		yMax = 1
	}

	fontSize := h * labelFontFraction
	plot := Rect{
		X0: w * leftLabelFraction,
		Y0: fontSize,
		X1: w - fontSize,
		Y1: h - h*bottomLabelFraction,
	}

	c := Chart{
		Max:      max,
		Mean:     mean,
		YMax:     yMax,
		Plot:     plot,
		FontSize: fontSize,
	}

	n := len(values)
	projectX := func(i int) float64 {
		if n < 2 {
			return plot.X0
		}
		return plot.X0 + float64(i)/float64(n-1)*(plot.X1-plot.X0)
	}
	projectY := func(v float64) float64 {
		return plot.Y1 - v/yMax*(plot.Y1-plot.Y0)
	}

	c.Points = make([]ports.Point, n)
	for i, v := range values {
		c.Points[i] = ports.Point{X: projectX(i), Y: projectY(v)}
	}
	c.MeanY = projectY(mean)

	step := xTickStep(n - 1)
	for i := 0; i <= n-1; i += step {
		c.XTicks = append(c.XTicks, Tick{
			X:     projectX(i),
			Y:     plot.Y1,
			Label: strconv.Itoa(i),
		})
	}
	for i := 0; i <= yTickCount; i++ {
		v := yMax * float64(i) / yTickCount
		c.YTicks = append(c.YTicks, Tick{
			X:     plot.X0,
			Y:     projectY(v),
			Label: formatTick(v, yMax),
		})
	}

	return c
}

// xTickStep picks a 1/2/5-series step so the frame axis has at most
// maxXTicks ticks.
func xTickStep(maxIdx int) int {
	if maxIdx <= 0 {
		return 1
	}
	for pow := 1; ; pow *= 10 {
		for _, m := range []int{1, 2, 5} {
			step := m * pow
			if maxIdx/step < maxXTicks {
				return step
			}
		}
	}
}

// formatTick formats a tick value with a precision suited to the axis scale.
func formatTick(v, yMax float64) string {
	switch {
	case yMax >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case yMax >= 1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
