package mocks

import (
	"image"
	"sync"

	"github.com/user/bitplot/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink that records what
// was saved.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	SaveSeriesJSONFunc func(data []byte) error
	SaveFirstFrameFunc func(img image.Image) error
	SaveChartFunc      func(data []byte, ext string) error

	SeriesJSON []byte
	FirstFrame image.Image
	Chart      []byte
	ChartExt   string
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSeriesJSON(data []byte) error {
	if m.SaveSeriesJSONFunc != nil {
		return m.SaveSeriesJSONFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeriesJSON = data
	return nil
}

func (m *DebugSink) SaveFirstFrame(img image.Image) error {
	if m.SaveFirstFrameFunc != nil {
		return m.SaveFirstFrameFunc(img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FirstFrame = img
	return nil
}

func (m *DebugSink) SaveChart(data []byte, ext string) error {
	if m.SaveChartFunc != nil {
		return m.SaveChartFunc(data, ext)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Chart = data
	m.ChartExt = ext
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
