package game

import "time"

// Landmark indices in the 21-point hand topology the detector emits.
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexMCP  = 5
	IndexPIP  = 6
	IndexTip  = 8
	MiddleMCP = 9
	MiddlePIP = 10
	MiddleTip = 12
	RingMCP   = 13
	RingPIP   = 14
	RingTip   = 16
	PinkyMCP  = 17
	PinkyPIP  = 18
	PinkyTip  = 20
)

const LandmarkCount = 21

// Landmark is one tracked hand point in normalized [0,1] image space.
// Z is reported by the detector but unused here.
type Landmark struct {
	X, Y, Z float64
}

// Hand is the fixed 21-point landmark set of one detected hand.
type Hand [LandmarkCount]Landmark

// Frame is one detector observation: zero, one, or two hands, plus the
// wall-clock time the frame was sampled (used for cooldowns).
type Frame struct {
	Hands []Hand
	Now   time.Time
}
