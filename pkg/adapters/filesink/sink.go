// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/bitplot/pkg/ports"
)

// thumbnailWidth is the width of the saved first-frame thumbnail.
const thumbnailWidth = 320

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink writing into baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSeriesJSON saves the extracted frame-size series as JSON.
func (s *Sink) SaveSeriesJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "series.json")
	return s.fs.WriteFile(path, data)
}

// SaveFirstFrame saves a thumbnail of the first decoded frame.
func (s *Sink) SaveFirstFrame(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("empty frame image")
	}
	height := thumbnailWidth * bounds.Dy() / bounds.Dx()
	thumb := s.renderer.ResizeImage(img, thumbnailWidth, height)

	data, err := s.renderer.EncodeImage(thumb, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode first frame: %w", err)
	}
	path := filepath.Join(s.baseDir, "first-frame.png")
	return s.fs.WriteFile(path, data)
}

// SaveChart saves a copy of the rendered chart with the given extension.
func (s *Sink) SaveChart(data []byte, ext string) error {
	path := filepath.Join(s.baseDir, "chart"+ext)
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
