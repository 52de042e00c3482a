package extract

import (
	"fmt"
	"image"
	"io"

	"github.com/user/bitplot/pkg/ports"
)

// DecodeWarning reports a video packet that failed to decode. Callers skip
// the packet and continue iterating.
type DecodeWarning struct {
	// Packet is the 1-based index of the failing packet in the stream.
	Packet int
	Err    error
}

// Error implements the error interface.
func (w *DecodeWarning) Error() string {
	return fmt.Sprintf("packet %d: %v", w.Packet, w.Err)
}

// Unwrap returns the underlying decode error.
func (w *DecodeWarning) Unwrap() error {
	return w.Err
}

// sampleIterator is a lazy, finite, non-restartable sequence of frame-size
// samples. Each call to Next advances the packet stream until a packet of
// the video track completes a frame, then yields that packet's stored byte
// size together with the decoded image.
//
// Outcomes of Next:
//   - sample, frame, nil: a frame completed
//   - *DecodeWarning: the current packet failed to decode, skip and retry
//   - io.EOF: the packet stream is exhausted
type sampleIterator struct {
	packets      ports.PacketReader
	videoTrackID uint32
	decoder      ports.FrameDecoder

	read    int // packets read, all tracks
	skipped int // video packets that failed to decode
}

func newSampleIterator(packets ports.PacketReader, videoTrackID uint32, decoder ports.FrameDecoder) *sampleIterator {
	return &sampleIterator{
		packets:      packets,
		videoTrackID: videoTrackID,
		decoder:      decoder,
	}
}

// Next returns the next sample. See the type comment for the outcome
// contract.
func (it *sampleIterator) Next() (float64, image.Image, error) {
	for {
		pkt, err := it.packets.Next()
		if err == io.EOF {
			return 0, nil, io.EOF
		}
		if err != nil {
			return 0, nil, err
		}
		it.read++

		// Containers multiplex audio and subtitle packets between video
		// packets; only the selected video track is relevant.
		if pkt.TrackID != it.videoTrackID {
			continue
		}

		frame, err := it.decoder.DecodeFrame(pkt.Data)
		if err != nil {
			it.skipped++
			return 0, nil, &DecodeWarning{Packet: it.read, Err: err}
		}
		if frame == nil {
			// The decoder buffered the packet without completing a frame.
			continue
		}

		return float64(pkt.Size), frame, nil
	}
}
