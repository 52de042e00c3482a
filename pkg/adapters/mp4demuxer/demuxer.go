// Package mp4demuxer reads compressed video packets from MP4 containers
// using the mp4ff library. Both progressive and fragmented files are
// supported. Video packets are converted from AVCC to Annex B format with
// SPS/PPS prepended on keyframes, so they can be fed to a decoder directly.
package mp4demuxer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/bitplot/pkg/ports"
)

var (
	// ErrMediaOpen is returned when the input cannot be read or is not a
	// recognized MP4 container.
	ErrMediaOpen = errors.New("mp4demuxer: cannot open media file")

	// ErrNoVideoStream is returned when the container has no video track.
	ErrNoVideoStream = errors.New("mp4demuxer: no video track found")

	// ErrUnsupportedCodec is returned when the video track carries no AVC
	// decoder configuration.
	ErrUnsupportedCodec = errors.New("mp4demuxer: video track has no AVC configuration")
)

// Demuxer opens MP4 files as packet streams.
type Demuxer struct{}

// New creates a new Demuxer.
func New() *Demuxer {
	return &Demuxer{}
}

// Open opens an MP4 file and selects its video track.
func (d *Demuxer) Open(path string) (ports.DemuxSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaOpen, err)
	}

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrMediaOpen, err)
	}

	s := &Session{
		file:       f,
		mp4File:    mp4File,
		trexs:      make(map[uint32]*mp4.TrexBox),
		timescales: make(map[uint32]uint32),
	}
	if err := s.selectVideoTrack(); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// Session is an open MP4 file with a selected video track.
type Session struct {
	file    *os.File
	mp4File *mp4.File

	videoTrackID uint32
	spsPPS       []byte
	trexs        map[uint32]*mp4.TrexBox
	timescales   map[uint32]uint32
}

// selectVideoTrack finds the first track with a "vide" handler and prepares
// its SPS/PPS parameter sets in Annex B format.
func (s *Session) selectVideoTrack() error {
	moov := s.mp4File.Moov
	if s.mp4File.IsFragmented() && s.mp4File.Init != nil {
		moov = s.mp4File.Init.Moov
	}
	if moov == nil {
		return fmt.Errorf("%w: no moov box", ErrMediaOpen)
	}

	var avcC *mp4.AvcCBox
	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
			continue
		}
		if trak.Mdia.Mdhd != nil {
			s.timescales[trak.Tkhd.TrackID] = trak.Mdia.Mdhd.Timescale
		}
		if s.videoTrackID != 0 || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		s.videoTrackID = trak.Tkhd.TrackID
		if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsd != nil {
			for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
				if visual, ok := child.(*mp4.VisualSampleEntryBox); ok {
					avcC = visual.AvcC
				}
			}
		}
	}

	if s.videoTrackID == 0 {
		return ErrNoVideoStream
	}
	if avcC == nil {
		return ErrUnsupportedCodec
	}

	for _, sps := range avcC.SPSnalus {
		s.spsPPS = append(s.spsPPS, 0, 0, 0, 1)
		s.spsPPS = append(s.spsPPS, sps...)
	}
	for _, pps := range avcC.PPSnalus {
		s.spsPPS = append(s.spsPPS, 0, 0, 0, 1)
		s.spsPPS = append(s.spsPPS, pps...)
	}

	if moov.Mvex != nil {
		for _, trex := range moov.Mvex.Trexs {
			s.trexs[trex.TrackID] = trex
		}
	}
	return nil
}

// VideoTrackID returns the selected video track's ID.
func (s *Session) VideoTrackID() uint32 {
	return s.videoTrackID
}

// Packets returns a single-use reader over the container's packets.
func (s *Session) Packets() ports.PacketReader {
	if s.mp4File.IsFragmented() {
		return newFragmentedReader(s)
	}
	return newProgressiveReader(s)
}

// Close releases the underlying file handle.
func (s *Session) Close() error {
	return s.file.Close()
}

func (s *Session) timescale(trackID uint32) uint32 {
	if ts, ok := s.timescales[trackID]; ok && ts != 0 {
		return ts
	}
	return 1000
}

// annexBPayload converts a raw AVCC sample to Annex B, prepending SPS/PPS for
// keyframes so each keyframe payload is independently decodable.
func (s *Session) annexBPayload(raw []byte, isKeyframe bool) []byte {
	annexB := avccToAnnexB(raw)
	if !isKeyframe {
		return annexB
	}
	data := make([]byte, len(s.spsPPS)+len(annexB))
	copy(data, s.spsPPS)
	copy(data[len(s.spsPPS):], annexB)
	return data
}

// =============================================================================
// Progressive files
// =============================================================================

// trackCursor walks one track's sample table.
type trackCursor struct {
	trackID   uint32
	stbl      *mp4.StblBox
	timescale uint32
	count     uint32
	sync      map[uint32]bool
	nr        uint32 // next sample number, 1-based
}

type progressiveReader struct {
	s      *Session
	tracks []trackCursor
	ti     int
}

func newProgressiveReader(s *Session) *progressiveReader {
	r := &progressiveReader{s: s}
	if s.mp4File.Moov == nil {
		return r
	}
	for _, trak := range s.mp4File.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
			continue
		}
		stbl := trak.Mdia.Minf.Stbl
		if stbl.Stsz == nil {
			continue
		}
		sync := make(map[uint32]bool)
		if stbl.Stss != nil {
			for _, nr := range stbl.Stss.SampleNumber {
				sync[nr] = true
			}
		}
		cur := trackCursor{
			trackID:   trak.Tkhd.TrackID,
			stbl:      stbl,
			timescale: s.timescale(trak.Tkhd.TrackID),
			count:     stbl.Stsz.SampleNumber,
			sync:      sync,
			nr:        1,
		}
		// The video track goes first so decoding starts immediately.
		if cur.trackID == s.videoTrackID {
			r.tracks = append([]trackCursor{cur}, r.tracks...)
		} else {
			r.tracks = append(r.tracks, cur)
		}
	}
	return r
}

func (r *progressiveReader) Next() (ports.Packet, error) {
	for r.ti < len(r.tracks) {
		cur := &r.tracks[r.ti]
		if cur.nr > cur.count {
			r.ti++
			continue
		}
		nr := cur.nr
		cur.nr++

		var decodeTime uint64
		if cur.stbl.Stts != nil {
			decodeTime, _ = cur.stbl.Stts.GetDecodeTime(nr)
		}
		pkt := ports.Packet{
			TrackID:     cur.trackID,
			Size:        int(cur.stbl.Stsz.GetSampleSize(int(nr))),
			TimestampMs: int(decodeTime * 1000 / uint64(cur.timescale)),
		}
		if cur.trackID != r.s.videoTrackID {
			// Payload is never needed for tracks the extractor skips.
			return pkt, nil
		}

		raw, err := readSampleData(cur.stbl, r.s.file, nr)
		if err != nil {
			// Unreadable payload. The packet is still emitted, size-only,
			// so the decode step sees it fail and counts the skip instead
			// of the sample vanishing from the accounting.
			return pkt, nil
		}
		isKey := cur.sync[nr] || len(cur.sync) == 0
		pkt.IsKeyframe = isKey
		pkt.Data = r.s.annexBPayload(raw, isKey)
		return pkt, nil
	}
	return ports.Packet{}, io.EOF
}

// readSampleData reads one sample's bytes from a progressive MP4 file.
func readSampleData(stbl *mp4.StblBox, reader io.ReadSeeker, sampleNr uint32) ([]byte, error) {
	if stbl.Stsc == nil || stbl.Stsz == nil {
		return nil, fmt.Errorf("missing stsc or stsz box")
	}

	chunkNr, firstSampleInChunk, err := stbl.Stsc.ChunkNrFromSampleNr(int(sampleNr))
	if err != nil {
		return nil, fmt.Errorf("get chunk nr: %w", err)
	}

	var chunkOffset uint64
	switch {
	case stbl.Stco != nil:
		chunkOffset, err = stbl.Stco.GetOffset(chunkNr)
		if err != nil {
			return nil, fmt.Errorf("get chunk offset: %w", err)
		}
	case stbl.Co64 != nil:
		if chunkNr < 1 || chunkNr > len(stbl.Co64.ChunkOffset) {
			return nil, fmt.Errorf("chunk nr out of range")
		}
		chunkOffset = stbl.Co64.ChunkOffset[chunkNr-1]
	default:
		return nil, fmt.Errorf("no stco or co64 box")
	}

	offset := chunkOffset
	for s := uint32(firstSampleInChunk); s < sampleNr; s++ {
		offset += uint64(stbl.Stsz.GetSampleSize(int(s)))
	}

	sampleSize := stbl.Stsz.GetSampleSize(int(sampleNr))
	if _, err := reader.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to sample: %w", err)
	}
	data := make([]byte, sampleSize)
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}
	return data, nil
}

// =============================================================================
// Fragmented files
// =============================================================================

type fragmentedReader struct {
	s     *Session
	frags []*mp4.Fragment
	fi    int
	queue []ports.Packet
}

func newFragmentedReader(s *Session) *fragmentedReader {
	r := &fragmentedReader{s: s}
	for _, seg := range s.mp4File.Segments {
		r.frags = append(r.frags, seg.Fragments...)
	}
	return r
}

func (r *fragmentedReader) Next() (ports.Packet, error) {
	for {
		if len(r.queue) > 0 {
			pkt := r.queue[0]
			r.queue = r.queue[1:]
			return pkt, nil
		}
		if r.fi >= len(r.frags) {
			return ports.Packet{}, io.EOF
		}
		frag := r.frags[r.fi]
		r.fi++
		r.queue = r.s.fragmentPackets(frag)
	}
}

// fragmentPackets collects the packets of one fragment. Video samples carry a
// decodable Annex B payload; samples of other tracks only carry their size.
func (s *Session) fragmentPackets(frag *mp4.Fragment) []ports.Packet {
	if frag.Moof == nil {
		return nil
	}

	var packets []ports.Packet
	for _, traf := range frag.Moof.Trafs {
		trackID := traf.Tfhd.TrackID
		if trackID != s.videoTrackID {
			packets = append(packets, trunSizePackets(traf, s.trexs[trackID])...)
			continue
		}

		var baseDecodeTime uint64
		if traf.Tfdt != nil {
			baseDecodeTime = traf.Tfdt.BaseMediaDecodeTime()
		}

		samples, err := frag.GetFullSamples(s.trexs[trackID])
		if err != nil {
			continue
		}

		currentTime := baseDecodeTime
		timescale := uint64(s.timescale(trackID))
		for i, sample := range samples {
			isKey := sample.Flags == mp4.SyncSampleFlags || i == 0
			packets = append(packets, ports.Packet{
				TrackID:     trackID,
				Size:        len(sample.Data),
				TimestampMs: int(currentTime * 1000 / timescale),
				IsKeyframe:  isKey,
				Data:        s.annexBPayload(sample.Data, isKey),
			})
			currentTime += uint64(sample.Dur)
		}
	}
	return packets
}

// trunSizePackets derives size-only packets from a track fragment's first
// trun box, falling back to tfhd/trex defaults when the trun has no
// per-sample sizes.
func trunSizePackets(traf *mp4.TrafBox, trex *mp4.TrexBox) []ports.Packet {
	if traf.Trun == nil {
		return nil
	}
	var defaultSize uint32
	if traf.Tfhd.HasDefaultSampleSize() {
		defaultSize = traf.Tfhd.DefaultSampleSize
	} else if trex != nil {
		defaultSize = trex.DefaultSampleSize
	}

	packets := make([]ports.Packet, 0, len(traf.Trun.Samples))
	for _, sample := range traf.Trun.Samples {
		size := sample.Size
		if !traf.Trun.HasSampleSize() {
			size = defaultSize
		}
		packets = append(packets, ports.Packet{
			TrackID: traf.Tfhd.TrackID,
			Size:    int(size),
		})
	}
	return packets
}

// avccToAnnexB converts AVCC format (length-prefixed NALUs) to Annex B format
// (start code prefixed).
func avccToAnnexB(data []byte) []byte {
	var result []byte
	offset := 0

	for offset+4 <= len(data) {
		naluLen := int(data[offset])<<24 | int(data[offset+1])<<16 |
			int(data[offset+2])<<8 | int(data[offset+3])
		offset += 4

		if offset+naluLen > len(data) {
			break
		}

		result = append(result, 0, 0, 0, 1)
		result = append(result, data[offset:offset+naluLen]...)
		offset += naluLen
	}

	return result
}

// Ensure interfaces are satisfied.
var (
	_ ports.Demuxer      = (*Demuxer)(nil)
	_ ports.DemuxSession = (*Session)(nil)
)
