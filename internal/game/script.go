package game

import "time"

// Synthetic hand poses. These drive the demo choreography and the state
// machine tests: geometrically honest landmark sets that the classifier
// sees exactly as it would see a real hand.

// curledHand is a closed fist with the wrist at (wx, wy): every fingertip
// tucked just inside its PIP joint.
func curledHand(wx, wy float64) Hand {
	var h Hand
	for i := range h {
		h[i] = Landmark{X: wx, Y: wy}
	}
	spread := [4]float64{0, 0.02, 0.04, 0.06}
	mcps := [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}
	pips := [4]int{IndexPIP, MiddlePIP, RingPIP, PinkyPIP}
	tips := [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}
	for f := 0; f < 4; f++ {
		x := wx + spread[f]
		h[mcps[f]] = Landmark{X: x, Y: wy - 0.09}
		h[pips[f]] = Landmark{X: x, Y: wy - 0.12}
		h[tips[f]] = Landmark{X: x, Y: wy - 0.10}
	}
	h[ThumbTip] = Landmark{X: wx - 0.10, Y: wy - 0.04}
	return h
}

// pointingHandAt poses a fist with the index extended so the fingertip
// lands exactly on the normalized position (tx, ty).
func pointingHandAt(tx, ty float64) Hand {
	h := curledHand(tx, ty+0.28)
	h[IndexPIP] = Landmark{X: tx, Y: ty + 0.14}
	h[IndexTip] = Landmark{X: tx, Y: ty}
	return h
}

// pinchingHandAt poses a pinch with thumb and index tips meeting at
// (tx, ty). The middle finger stays extended so the pose never reads as
// pointing.
func pinchingHandAt(tx, ty float64) Hand {
	h := curledHand(tx, ty+0.28)
	h[IndexPIP] = Landmark{X: tx, Y: ty + 0.14}
	h[IndexTip] = Landmark{X: tx, Y: ty}
	h[MiddlePIP] = Landmark{X: tx + 0.02, Y: ty + 0.14}
	h[MiddleTip] = Landmark{X: tx + 0.02, Y: ty + 0.02}
	h[ThumbTip] = Landmark{X: tx, Y: ty}
	return h
}

// openHandAt poses a relaxed open hand with the index fingertip at
// (tx, ty): index and middle extended, thumb well clear of the index.
func openHandAt(tx, ty float64) Hand {
	h := pinchingHandAt(tx, ty)
	h[ThumbTip] = Landmark{X: tx - 0.15, Y: ty + 0.10}
	return h
}

// cellNorm returns the normalized detector-space position of a cell
// centre, for aiming synthetic fingertips at grid cells.
func cellNorm(col, row int) (float64, float64) {
	x, y := CenterOf(col, row)
	return x / CanvasWidth, y / CanvasHeight
}

// ScriptSource replays a canned choreography so the demo runs without a
// camera or detector: point to place three blocks, pinch-drag one across
// the grid, then join both hands to pop the newest. Deterministic: the
// same tick always yields the same frame.
type ScriptSource struct {
	tick int
}

func NewScriptSource() *ScriptSource {
	return &ScriptSource{}
}

const scriptLoop = 570

func (s *ScriptSource) NextFrame(now time.Time) (Frame, bool) {
	t := s.tick % scriptLoop
	s.tick++
	return Frame{Hands: scriptHands(t), Now: now}, true
}

func (s *ScriptSource) Close() error { return nil }

func scriptHands(t int) []Hand {
	switch {
	case t < 90:
		x, y := cellNorm(3, 2)
		return []Hand{pointingHandAt(x, y)}
	case t < 180:
		x, y := cellNorm(7, 4)
		return []Hand{pointingHandAt(x, y)}
	case t < 270:
		x, y := cellNorm(11, 6)
		return []Hand{pointingHandAt(x, y)}
	case t < 300:
		x, y := cellNorm(11, 6)
		return []Hand{openHandAt(x, y)}
	case t < 390:
		// Drag the block at (7,4) toward (12,2).
		x0, y0 := cellNorm(7, 4)
		x1, y1 := cellNorm(12, 2)
		f := float64(t-300) / 89
		return []Hand{pinchingHandAt(x0+(x1-x0)*f, y0+(y1-y0)*f)}
	case t < 405:
		x, y := cellNorm(12, 2)
		return []Hand{openHandAt(x, y)}
	case t < 480:
		return []Hand{openHandAt(0.30, 0.40), openHandAt(0.70, 0.40)}
	case t < 540:
		// Bring the hands together: wrists land within the join radius.
		return []Hand{openHandAt(0.46, 0.30), openHandAt(0.54, 0.30)}
	default:
		return nil
	}
}
