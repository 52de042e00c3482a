package filesink

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/user/bitplot/pkg/mocks"
)

func TestSink_Enabled(t *testing.T) {
	sink := New("debug", mocks.NewFileSystem(), &mocks.Renderer{})
	if !sink.Enabled() {
		t.Error("expected file sink to be enabled")
	}
}

func TestSink_SaveSeriesJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("debug", fs, &mocks.Renderer{})

	payload := []byte(`{"values":[5068,206,174]}`)
	if err := sink.SaveSeriesJSON(payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.File(filepath.Join("debug", "series.json"))
	if !ok {
		t.Fatal("expected series.json to be written")
	}
	if string(data) != string(payload) {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestSink_SaveFirstFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{}
	sink := New("debug", fs, renderer)

	frame := image.NewRGBA(image.Rect(0, 0, 640, 360))
	if err := sink.SaveFirstFrame(frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := fs.File(filepath.Join("debug", "first-frame.png")); !ok {
		t.Error("expected first-frame.png to be written")
	}
}

func TestSink_SaveFirstFrame_KeepsAspectRatio(t *testing.T) {
	fs := mocks.NewFileSystem()

	var resizedW, resizedH int
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resizedW, resizedH = width, height
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
	}
	sink := New("debug", fs, renderer)

	if err := sink.SaveFirstFrame(image.NewRGBA(image.Rect(0, 0, 640, 360))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resizedW != 320 || resizedH != 180 {
		t.Errorf("expected 320x180 thumbnail, got %dx%d", resizedW, resizedH)
	}
}

func TestSink_SaveFirstFrame_EmptyImage(t *testing.T) {
	sink := New("debug", mocks.NewFileSystem(), &mocks.Renderer{})

	if err := sink.SaveFirstFrame(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestSink_SaveChart(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("debug", fs, &mocks.Renderer{})

	if err := sink.SaveChart([]byte{1, 2, 3}, ".png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.File(filepath.Join("debug", "chart.png"))
	if !ok {
		t.Fatal("expected chart.png to be written")
	}
	if len(data) != 3 {
		t.Errorf("unexpected chart contents: %v", data)
	}
}
