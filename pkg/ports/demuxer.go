package ports

// Packet is one compressed access unit read from a media container.
type Packet struct {
	// TrackID identifies the container track the packet belongs to.
	TrackID uint32

	// Data is the packet payload converted to Annex B format, with SPS/PPS
	// prepended on keyframes. Nil for packets of non-video tracks.
	Data []byte

	// Size is the packet's byte size as stored in the container. This is the
	// bitrate sample of interest and is independent of the Annex B
	// conversion or any prepended parameter sets.
	Size int

	// TimestampMs is the decode timestamp in milliseconds.
	TimestampMs int

	// IsKeyframe reports whether the packet is a sync sample.
	IsKeyframe bool
}

// PacketReader iterates packets in decode order.
// Next returns io.EOF when the packet stream is exhausted.
type PacketReader interface {
	Next() (Packet, error)
}

// DemuxSession is an open media container with a selected video track.
type DemuxSession interface {
	// VideoTrackID returns the track ID of the selected video track.
	VideoTrackID() uint32

	// Packets returns a reader over the container's packets. The reader is
	// single-use and not restartable.
	Packets() PacketReader

	// Close releases the underlying file handle.
	Close() error
}

// Demuxer opens media containers for packet iteration.
type Demuxer interface {
	Open(path string) (DemuxSession, error)
}
