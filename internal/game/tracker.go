package game

import (
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// FrameSource produces detector frames for the session loop. NextFrame
// never blocks: it hands over the latest unseen frame, or ok=false when
// nothing new has arrived, in which case the grid simply stays put
// (fail-static, not fail-fatal).
type FrameSource interface {
	NextFrame(now time.Time) (Frame, bool)
	Close() error
}

// trackerPayload is the wire shape the detector bridge sends: one JSON
// datagram per frame, each hand as 21 [x,y,z] triplets in [0,1] space.
type trackerPayload struct {
	Hands [][][3]float64 `json:"hands"`
}

// UDPSource reads landmark frames from an external hand-tracking process
// over UDP. A reader goroutine keeps only the newest frame in a mailbox;
// the frame loop drains it without ever blocking, so a stalled or dead
// detector just leaves the grid static.
type UDPSource struct {
	conn *net.UDPConn
	log  *zap.Logger

	mu     sync.Mutex
	latest []Hand
	fresh  bool
	closed bool
}

func NewUDPSource(addr string, log *zap.Logger) (*UDPSource, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &UDPSource{conn: conn, log: log}
	go s.readLoop()
	return s, nil
}

// Addr returns the bound listen address (useful when addr was ":0").
func (s *UDPSource) Addr() net.Addr { return s.conn.LocalAddr() }

func (s *UDPSource) readLoop() {
	buf := make([]byte, 64<<10)
	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if !closed {
				s.log.Warn("tracker read failed", zap.Error(err))
			}
			return
		}
		hands, err := decodeHands(buf[:n])
		if err != nil {
			// Sensor noise policy: malformed payloads are dropped.
			s.log.Debug("tracker payload dropped", zap.Error(err))
			continue
		}
		s.mu.Lock()
		s.latest = hands
		s.fresh = true
		s.mu.Unlock()
	}
}

func (s *UDPSource) NextFrame(now time.Time) (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fresh {
		return Frame{}, false
	}
	s.fresh = false
	return Frame{Hands: s.latest, Now: now}, true
}

func (s *UDPSource) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.conn.Close()
}

// decodeHands validates one detector datagram: every hand must carry
// exactly 21 landmarks; coordinates clamp into [0,1]. An empty hands
// list is a valid frame (no hands in view).
func decodeHands(raw []byte) ([]Hand, error) {
	var p trackerPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	hands := make([]Hand, 0, len(p.Hands))
	for _, pts := range p.Hands {
		if len(pts) != LandmarkCount {
			return nil, fmt.Errorf("hand has %d landmarks, want %d", len(pts), LandmarkCount)
		}
		var h Hand
		for i, pt := range pts {
			h[i] = Landmark{
				X: clampF(pt[0], 0, 1),
				Y: clampF(pt[1], 0, 1),
				Z: pt[2],
			}
		}
		hands = append(hands, h)
	}
	return hands, nil
}
