package ports

import (
	"image"
)

// FrameDecoder decodes compressed video access units into images.
//
// Implementations must be initialized exactly once via Init before the first
// DecodeFrame call. The extraction stage requires an already-initialized
// decoder and performs no hidden setup of its own.
type FrameDecoder interface {
	// Init prepares the decoder backend.
	Init() error

	// DecodeFrame decodes a single access unit in Annex B format.
	// A nil image with a nil error means the decoder consumed the input
	// without completing a frame (it is buffering for reordering).
	DecodeFrame(data []byte) (image.Image, error)

	// Close releases decoder resources.
	Close()
}
