package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/user/bitplot/pkg/ports"
)

func TestCreateCanvas(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 100, color.White)

	img := canvas.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("expected 200x100 canvas, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The background fill covers the whole canvas
	r8, g8, b8, _ := img.At(100, 50).RGBA()
	if r8 != 0xffff || g8 != 0xffff || b8 != 0xffff {
		t.Errorf("expected white background, got %v %v %v", r8, g8, b8)
	}
}

func TestDrawLine(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)
	canvas.DrawLine(0, 50, 100, 50, color.NRGBA{A: 255}, 2)

	img := canvas.ToImage()
	r8, g8, b8, _ := img.At(50, 50).RGBA()
	if r8 == 0xffff && g8 == 0xffff && b8 == 0xffff {
		t.Error("expected line pixel to differ from background")
	}
}

func TestDrawPolyline(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)
	canvas.DrawPolyline([]ports.Point{
		{X: 10, Y: 90},
		{X: 50, Y: 10},
		{X: 90, Y: 90},
	}, color.NRGBA{B: 255, A: 255}, 2)

	img := canvas.ToImage()
	r8, g8, b8, _ := img.At(50, 10).RGBA()
	if r8 == 0xffff && g8 == 0xffff && b8 == 0xffff {
		t.Error("expected polyline vertex pixel to differ from background")
	}
}

func TestDrawPolyline_TooFewPoints(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	// A single point cannot form a segment; drawing must be a no-op
	canvas.DrawPolyline([]ports.Point{{X: 50, Y: 50}}, color.NRGBA{A: 255}, 2)

	img := canvas.ToImage()
	r8, g8, b8, _ := img.At(50, 50).RGBA()
	if r8 != 0xffff || g8 != 0xffff || b8 != 0xffff {
		t.Error("expected canvas to stay blank")
	}
}

func TestDrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 50, color.White)
	canvas.DrawText("123", 100, 25, ports.TextStyle{
		FontSize: 13,
		Color:    color.NRGBA{A: 255},
		Align:    ports.AlignCenter,
	})

	// Some pixel near the anchor must have been inked
	img := canvas.ToImage()
	found := false
	for x := 80; x < 120 && !found; x++ {
		for y := 15; y < 35 && !found; y++ {
			r8, g8, b8, _ := img.At(x, y).RGBA()
			if r8 != 0xffff || g8 != 0xffff || b8 != 0xffff {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected text pixels near the anchor point")
	}
}

func TestMeasureText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	w1, h := canvas.MeasureText("a", ports.TextStyle{FontSize: 13})
	w2, _ := canvas.MeasureText("aaaa", ports.TextStyle{FontSize: 13})

	if w1 <= 0 || h <= 0 {
		t.Errorf("expected positive measurements, got %v x %v", w1, h)
	}
	if w2 <= w1 {
		t.Errorf("expected longer text to measure wider: %v vs %v", w1, w2)
	}
}

func TestMeasureText_TracksFontSize(t *testing.T) {
	// The requested font size must apply even without a font file
	r := New()
	canvas := r.CreateCanvas(200, 200, color.White)

	wSmall, hSmall := canvas.MeasureText("123", ports.TextStyle{FontSize: 13})
	wLarge, hLarge := canvas.MeasureText("123", ports.TextStyle{FontSize: 60})

	if hLarge <= hSmall {
		t.Errorf("expected height to grow with font size: %v at 13, %v at 60", hSmall, hLarge)
	}
	if wLarge <= wSmall {
		t.Errorf("expected width to grow with font size: %v at 13, %v at 60", wSmall, wLarge)
	}
}

func TestEncodeImage_PNG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG signature")
	}
}

func TestEncodeImage_JPEG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	data, err := r.EncodeImage(img, ports.FormatJPEG, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		t.Error("expected JPEG SOI marker")
	}
}

func TestEncodeImage_UnsupportedFormat(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	if _, err := r.EncodeImage(img, ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestResizeImage(t *testing.T) {
	r := New()
	src := image.NewRGBA(image.Rect(0, 0, 640, 360))

	dst := r.ResizeImage(src, 320, 180)
	bounds := dst.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 180 {
		t.Errorf("expected 320x180, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
