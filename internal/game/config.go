package game

import "time"

// Logical canvas (in canvas pixels). The detector reports normalized
// coordinates; everything downstream works in this space.
const (
	CanvasWidth  = 1280.0
	CanvasHeight = 720.0
)

// Grid layout.
const (
	GridCols     = 16
	GridRows     = 9
	GridCapacity = GridCols * GridRows
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Gesture thresholds (normalized hand coordinate space).
// ExtendedMargin is a tip/PIP wrist-distance ratio rather than an absolute
// distance so perspective foreshortening doesn't flip the predicate.
const (
	ExtendedMargin  = 1.05
	PinchThreshold  = 0.06
	JoinWristDist   = 0.15
	JoinKnuckleDist = 0.12
)

// Debounce. Raw per-frame classification is noisy; without hysteresis a
// single gesture would fire many times per second.
const (
	PointingFrames = 5
	CreateCooldown = 1200 * time.Millisecond
	DeleteCooldown = 800 * time.Millisecond
)

// Grab fallback radius (canvas pixels): fingertip-to-block rendered
// position match when the cursor cell itself holds nothing.
const GrabRadius = 48.0

// Motion.
const (
	SettleEase  = 0.35 // fraction of remaining distance per frame, settled blocks
	DragEase    = 0.25 // held block toward its tentative target
	SnapEpsilon = 0.5  // canvas pixels; close enough to pin exactly
	ScaleInTime = 350 * time.Millisecond
)

// Blocks.
const BlockSize = 56.0

// Particles (frame-stepped; the loop is clocked by the detector).
const (
	MaxParticles    = 4000
	MaxSpriteRender = 8000

	ParticleGravity = 0.22  // canvas px per frame^2
	ParticleDamping = 0.985 // horizontal velocity retention per frame
	ParticleDecay   = 0.022 // life units per frame

	PlaceBurstCount  = 26
	RemoveBurstCount = 64
)
