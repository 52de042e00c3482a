// Package h264decoder decodes H.264 access units using an ffmpeg external
// process. Each access unit is written to a temporary file, decoded to a
// single PNG image, and read back.
package h264decoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/user/bitplot/pkg/ports"
)

var (
	// ErrNotInitialized is returned when decoder methods are called before Init.
	ErrNotInitialized = errors.New("h264decoder: decoder not initialized")

	// ErrDecodeFailed is returned when decoding an access unit fails.
	ErrDecodeFailed = errors.New("h264decoder: decode failed")

	// ErrFFmpegNotFound is returned when ffmpeg cannot be located.
	ErrFFmpegNotFound = errors.New("h264decoder: ffmpeg not found in PATH")
)

// Decoder decodes H.264 access units via ffmpeg.
type Decoder struct {
	mu          sync.Mutex
	ffmpegPath  string
	customPath  string
	initialized bool
}

// New creates a new H.264 decoder.
func New() *Decoder {
	return &Decoder{}
}

// SetFFmpegPath sets an explicit ffmpeg executable path, overriding PATH
// lookup. Must be called before Init.
func (d *Decoder) SetFFmpegPath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customPath = path
}

// Init locates the ffmpeg executable. It must be called once before the
// first DecodeFrame.
func (d *Decoder) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	path, err := findFFmpeg(d.customPath)
	if err != nil {
		return err
	}
	d.ffmpegPath = path
	d.initialized = true
	return nil
}

// DecodeFrame decodes a single H.264 access unit in Annex B format.
func (d *Decoder) DecodeFrame(data []byte) (image.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return nil, ErrNotInitialized
	}
	if len(data) == 0 {
		return nil, ErrDecodeFailed
	}

	inputFile, err := os.CreateTemp("", "h264au_*.h264")
	if err != nil {
		return nil, fmt.Errorf("create input temp file: %w", err)
	}
	inputPath := inputFile.Name()
	defer os.Remove(inputPath)

	if _, err := inputFile.Write(data); err != nil {
		inputFile.Close()
		return nil, fmt.Errorf("write access unit: %w", err)
	}
	inputFile.Close()

	outputFile, err := os.CreateTemp("", "h264au_*.png")
	if err != nil {
		return nil, fmt.Errorf("create output temp file: %w", err)
	}
	outputPath := outputFile.Name()
	outputFile.Close()
	defer os.Remove(outputPath)

	var stderr bytes.Buffer
	cmd := exec.Command(d.ffmpegPath,
		"-y",
		"-f", "h264",
		"-i", inputPath,
		"-frames:v", "1",
		"-f", "image2",
		outputPath,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v\nstderr: %s", ErrDecodeFailed, err, stderr.String())
	}

	imgFile, err := os.Open(outputPath)
	if err != nil {
		return nil, fmt.Errorf("open decoded image: %w", err)
	}
	defer imgFile.Close()

	img, err := png.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// Close releases decoder resources.
func (d *Decoder) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initialized = false
}

// Available reports whether an ffmpeg executable can be found.
func Available() bool {
	_, err := findFFmpeg("")
	return err == nil
}

// findFFmpeg searches for ffmpeg at the custom path, in PATH, then in common
// install locations.
func findFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, customPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrFFmpegNotFound
}

// Ensure Decoder implements ports.FrameDecoder.
var _ ports.FrameDecoder = (*Decoder)(nil)
