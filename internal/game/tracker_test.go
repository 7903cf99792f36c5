package game

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validPayload(hands ...[21][3]float64) []byte {
	p := trackerPayload{}
	for _, h := range hands {
		pts := make([][3]float64, LandmarkCount)
		copy(pts, h[:])
		p.Hands = append(p.Hands, pts)
	}
	raw, _ := json.Marshal(p)
	return raw
}

func TestDecodeHands(t *testing.T) {
	var one [21][3]float64
	one[IndexTip] = [3]float64{0.5, 0.25, -0.01}

	t.Run("single hand", func(t *testing.T) {
		hands, err := decodeHands(validPayload(one))
		require.NoError(t, err)
		require.Len(t, hands, 1)
		assert.Equal(t, 0.5, hands[0][IndexTip].X)
		assert.Equal(t, 0.25, hands[0][IndexTip].Y)
		assert.Equal(t, -0.01, hands[0][IndexTip].Z)
	})

	t.Run("empty hands list is valid", func(t *testing.T) {
		hands, err := decodeHands([]byte(`{"hands":[]}`))
		require.NoError(t, err)
		assert.Empty(t, hands)
	})

	t.Run("coordinates clamp into unit space", func(t *testing.T) {
		var h [21][3]float64
		h[Wrist] = [3]float64{-0.2, 1.4, 0}
		hands, err := decodeHands(validPayload(h))
		require.NoError(t, err)
		assert.Equal(t, 0.0, hands[0][Wrist].X)
		assert.Equal(t, 1.0, hands[0][Wrist].Y)
	})

	t.Run("wrong landmark count rejects the frame", func(t *testing.T) {
		_, err := decodeHands([]byte(`{"hands":[[[0.1,0.2,0]]]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "landmarks")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := decodeHands([]byte(`{"hands":`))
		assert.Error(t, err)
	})
}

func TestUDPSourceDeliversLatestFrame(t *testing.T) {
	src, err := NewUDPSource("127.0.0.1:0", zap.NewNop())
	require.NoError(t, err)
	defer src.Close()

	// Nothing received yet: the source reports no frame, never blocks.
	_, ok := src.NextFrame(time.Now())
	assert.False(t, ok)

	conn, err := net.Dial("udp", src.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	var h [21][3]float64
	h[IndexTip] = [3]float64{0.5, 0.5, 0}
	_, err = conn.Write(validPayload(h))
	require.NoError(t, err)

	var got Frame
	require.Eventually(t, func() bool {
		f, ok := src.NextFrame(time.Now())
		if ok {
			got = f
		}
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	require.Len(t, got.Hands, 1)
	assert.Equal(t, 0.5, got.Hands[0][IndexTip].X)

	// The frame was consumed; until another datagram lands there is
	// nothing new.
	_, ok = src.NextFrame(time.Now())
	assert.False(t, ok)
}

func TestUDPSourceDropsMalformedPayloads(t *testing.T) {
	src, err := NewUDPSource("127.0.0.1:0", zap.NewNop())
	require.NoError(t, err)
	defer src.Close()

	conn, err := net.Dial("udp", src.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(`not json at all`))
	require.NoError(t, err)
	var h [21][3]float64
	h[Wrist] = [3]float64{0.9, 0.9, 0}
	_, err = conn.Write(validPayload(h))
	require.NoError(t, err)

	// Only the well-formed datagram surfaces.
	var got Frame
	require.Eventually(t, func() bool {
		f, ok := src.NextFrame(time.Now())
		if ok {
			got = f
		}
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	require.Len(t, got.Hands, 1)
	assert.Equal(t, 0.9, got.Hands[0][Wrist].X)
}

func TestUDPSourceCloseStopsReader(t *testing.T) {
	src, err := NewUDPSource("127.0.0.1:0", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, src.Close())

	_, ok := src.NextFrame(time.Now())
	assert.False(t, ok)
}
