// Package extract implements the frame-size extraction stage.
//
// The stage drives a demuxer and a frame decoder over a media file and
// records the compressed byte size of every packet that decoded into a
// frame. Individual packets that fail to decode are skipped and the loop
// continues: one corrupt packet must not abort analysis of an otherwise
// valid stream. This is a deliberate partial-failure tolerance policy.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/user/bitplot/pkg/pipeline"
	"github.com/user/bitplot/pkg/ports"
)

// Stage extracts a frame-size series from a media file.
//
// The decoder must already be initialized; the stage performs no backend
// setup of its own.
type Stage struct {
	demuxer ports.Demuxer
	decoder ports.FrameDecoder
	logger  ports.Logger
}

// New creates a new extract stage.
func New(demuxer ports.Demuxer, decoder ports.FrameDecoder, logger ports.Logger) *Stage {
	return &Stage{
		demuxer: demuxer,
		decoder: decoder,
		logger:  logger.WithComponent("extract"),
	}
}

// Execute opens the input file and accumulates one size sample per decoded
// frame. A file from which zero frames decode yields an empty series with
// zero dimensions, not an error.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	s.logger.Debug("Opening media file")
	session, err := s.demuxer.Open(input.InputPath)
	if err != nil {
		return result, fmt.Errorf("open media: %w", err)
	}
	defer session.Close()
	s.logger.Debug("Selected video track %d", session.VideoTrackID())

	it := newSampleIterator(session.Packets(), session.VideoTrackID(), s.decoder)
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		sample, frame, err := it.Next()
		if err == io.EOF {
			break
		}
		var warning *DecodeWarning
		if errors.As(err, &warning) {
			s.logger.Debug("Skipping packet %d: %s", warning.Packet, warning.Err)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("read packets: %w", err)
		}

		if result.Series.Width == 0 && result.Series.Height == 0 {
			bounds := frame.Bounds()
			result.Series.Width = bounds.Dx()
			result.Series.Height = bounds.Dy()
			result.FirstFrame = frame
		}
		result.Series.Values = append(result.Series.Values, sample)
	}

	result.PacketsRead = it.read
	result.PacketsSkipped = it.skipped
	s.logger.Debug("Read %d packets, %d video frames recorded", it.read, len(result.Series.Values))

	return result, nil
}
