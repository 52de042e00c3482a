package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image drawing and encoding operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodeImage encodes an image to the specified format.
	// The quality parameter applies to JPEG only.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides the drawing primitives needed for chart rendering.
type Canvas interface {
	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h float64, c color.Color)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 float64, c color.Color, width float64)

	// DrawPolyline draws connected line segments through the given points.
	DrawPolyline(points []Point, c color.Color, width float64)

	// DrawText draws text anchored at the specified position.
	DrawText(text string, x, y float64, style TextStyle)

	// DrawTextRotated draws text rotated 90 degrees counterclockwise around
	// its anchor point. Used for the vertical axis description.
	DrawTextRotated(text string, x, y float64, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// Point is a position in canvas pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color
	Align    TextAlign
}

// TextAlign specifies horizontal text alignment relative to the anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
