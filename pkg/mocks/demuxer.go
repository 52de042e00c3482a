package mocks

import (
	"io"

	"github.com/user/bitplot/pkg/ports"
)

// Demuxer is a mock implementation of ports.Demuxer.
type Demuxer struct {
	OpenFunc func(path string) (ports.DemuxSession, error)

	// Session is returned by Open when OpenFunc is nil.
	Session *DemuxSession
}

func (m *Demuxer) Open(path string) (ports.DemuxSession, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	if m.Session != nil {
		return m.Session, nil
	}
	return &DemuxSession{}, nil
}

// DemuxSession is a mock implementation of ports.DemuxSession that serves
// packets from a slice.
type DemuxSession struct {
	TrackID    uint32
	PacketList []ports.Packet
	CloseErr   error

	Closed bool
}

func (m *DemuxSession) VideoTrackID() uint32 {
	return m.TrackID
}

func (m *DemuxSession) Packets() ports.PacketReader {
	return &PacketReader{packets: m.PacketList}
}

func (m *DemuxSession) Close() error {
	m.Closed = true
	return m.CloseErr
}

// PacketReader serves packets from a slice and then returns io.EOF.
type PacketReader struct {
	packets []ports.Packet
	pos     int
}

func (m *PacketReader) Next() (ports.Packet, error) {
	if m.pos >= len(m.packets) {
		return ports.Packet{}, io.EOF
	}
	pkt := m.packets[m.pos]
	m.pos++
	return pkt, nil
}

var (
	_ ports.Demuxer      = (*Demuxer)(nil)
	_ ports.DemuxSession = (*DemuxSession)(nil)
	_ ports.PacketReader = (*PacketReader)(nil)
)
