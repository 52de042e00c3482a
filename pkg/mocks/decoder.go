package mocks

import (
	"image"

	"github.com/user/bitplot/pkg/ports"
)

// FrameDecoder is a mock implementation of ports.FrameDecoder.
type FrameDecoder struct {
	InitFunc        func() error
	DecodeFrameFunc func(data []byte) (image.Image, error)
	CloseFunc       func()

	// Width and Height size the frames returned by the default DecodeFrame.
	Width  int
	Height int

	Initialized bool
	Decoded     int
}

func (m *FrameDecoder) Init() error {
	if m.InitFunc != nil {
		return m.InitFunc()
	}
	m.Initialized = true
	return nil
}

func (m *FrameDecoder) DecodeFrame(data []byte) (image.Image, error) {
	m.Decoded++
	if m.DecodeFrameFunc != nil {
		return m.DecodeFrameFunc(data)
	}
	w, h := m.Width, m.Height
	if w == 0 {
		w = 320
	}
	if h == 0 {
		h = 180
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (m *FrameDecoder) Close() {
	if m.CloseFunc != nil {
		m.CloseFunc()
		return
	}
	m.Initialized = false
}

var _ ports.FrameDecoder = (*FrameDecoder)(nil)
