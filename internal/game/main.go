package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Options configures a run of the interaction surface.
type Options struct {
	ListenAddr string // UDP address the detector bridge sends frames to
	Demo       bool   // use the scripted choreography instead of a detector
	Seed       uint64 // 0 = clock-seeded
	Log        *zap.Logger
}

// Run opens the window and drives the session loop until the window
// closes or Escape is pressed. The loop is the single writer of all core
// state: frames are drained from the source, the session advances, motion
// and particles step, then the frame is drawn.
func Run(opts Options) error {
	runtime.LockOSThread()

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var source FrameSource
	if opts.Demo {
		source = NewScriptSource()
		log.Info("demo mode, scripted frames")
	} else {
		src, err := NewUDPSource(opts.ListenAddr, log)
		if err != nil {
			return fmt.Errorf("frame source: %w", err)
		}
		source = src
		log.Info("listening for detector frames", zap.String("addr", opts.ListenAddr))
	}
	defer source.Close()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	board := NewBoard()
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	session := NewSession(seed, log)
	defer session.Close()

	session.Bus.Subscribe(EventBlockPlaced, func(Event) { PlaySound(SoundPlace) })
	session.Bus.Subscribe(EventBlockRemoved, func(Event) { PlaySound(SoundRemove) })
	session.Bus.Subscribe(EventGridFull, func(Event) { PlaySound(SoundRefuse) })
	session.Bus.Subscribe(EventCellOccupied, func(Event) { PlaySound(SoundRefuse) })

	// Reusable render buffers.
	var blockBuf, partBuf, jointBuf, glowBuf, boneBuf []float32
	var lastHands []Hand
	var lastTitle string

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Wall-clock sampled once per frame; cooldowns key off it.
		now := time.Now()
		if frame, ok := source.NextFrame(now); ok {
			session.Advance(board, particles, frame)
			lastHands = frame.Hands
		}
		StepMotion(board, session.HeldID)
		particles.Step()

		rend.BeginFrame(fbW, fbH)
		rend.DrawLines(GridLines(), fbW, fbH)

		glowBuf = CursorGlow(board, session, glowBuf)
		rend.DrawGlow(glowBuf, fbW, fbH)

		blockBuf = BlockSprites(board, session.HeldID, now, blockBuf)
		rend.DrawBlocks(blockBuf, fbW, fbH)

		partBuf = particles.RenderData(partBuf)
		rend.DrawSprites(partBuf, fbW, fbH)

		boneBuf = HandBoneLines(lastHands, boneBuf)
		rend.DrawLines(boneBuf, fbW, fbH)
		jointBuf = HandJointSprites(lastHands, jointBuf)
		rend.DrawSprites(jointBuf, fbW, fbH)

		title := fmt.Sprintf("Handgrid | %s | %d blocks", session.Gesture, board.Count())
		if session.Notice != "" {
			title += " | " + session.Notice
		}
		if title != lastTitle {
			window.SetTitle(title)
			lastTitle = title
		}

		window.SwapBuffers()
	}
	return nil
}
