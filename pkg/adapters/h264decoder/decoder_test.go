package h264decoder

import (
	"errors"
	"testing"
)

func TestDecodeFrame_NotInitialized(t *testing.T) {
	d := New()

	_, err := d.DecodeFrame([]byte{0, 0, 0, 1, 0x65})
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestInit_CustomPathNotFound(t *testing.T) {
	d := New()
	d.SetFFmpegPath("/nonexistent/ffmpeg")

	if err := d.Init(); !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestDecodeFrame_EmptyData(t *testing.T) {
	d := New()
	if err := d.Init(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	defer d.Close()

	if _, err := d.DecodeFrame(nil); !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("expected ErrDecodeFailed, got %v", err)
	}
}

func TestDecodeFrame_GarbageData(t *testing.T) {
	d := New()
	if err := d.Init(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	defer d.Close()

	if _, err := d.DecodeFrame([]byte{1, 2, 3, 4}); !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("expected ErrDecodeFailed, got %v", err)
	}
}

func TestClose_ResetsInitialization(t *testing.T) {
	d := New()
	if err := d.Init(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}
	d.Close()

	if _, err := d.DecodeFrame([]byte{0, 0, 0, 1, 0x65}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized after Close, got %v", err)
	}
}
