package game

import "math"

// Gesture predicates are deterministic per-frame pure functions. Temporal
// smoothing is the session's job, not the classifier's.

// dist2D is the planar distance between two landmarks (depth ignored).
func dist2D(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// fingerExtended reports an extended finger: the tip sits farther from
// the wrist than the PIP joint by ExtendedMargin. A ratio test keeps the
// predicate stable under perspective foreshortening.
func fingerExtended(h Hand, tip, pip int) bool {
	return dist2D(h[tip], h[Wrist]) > dist2D(h[pip], h[Wrist])*ExtendedMargin
}

// IsPointing reports the closed-fist-with-index shape: index extended,
// middle, ring, and little fingers curled.
func IsPointing(h Hand) bool {
	return fingerExtended(h, IndexTip, IndexPIP) &&
		!fingerExtended(h, MiddleTip, MiddlePIP) &&
		!fingerExtended(h, RingTip, RingPIP) &&
		!fingerExtended(h, PinkyTip, PinkyPIP)
}

// IsPinching reports thumb tip and index tip touching.
func IsPinching(h Hand) bool {
	return dist2D(h[ThumbTip], h[IndexTip]) < PinchThreshold
}

// HandsJoined reports two hands brought together: wrists close, or the
// middle-finger knuckles close.
func HandsJoined(a, b Hand) bool {
	return dist2D(a[Wrist], b[Wrist]) < JoinWristDist ||
		dist2D(a[MiddleMCP], b[MiddleMCP]) < JoinKnuckleDist
}
