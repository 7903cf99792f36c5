package game

import (
	"time"

	"go.uber.org/zap"
)

// Session is the per-session interaction state machine. It owns the grab
// state, debounce bookkeeping, and cursor cell, and is the only writer of
// board mutations. One instance per active session; every call happens on
// the frame loop goroutine, so no locking anywhere in here.
type Session struct {
	HeldID               int // 0 = nothing held
	Streak               int // consecutive pointing frames
	CursorCol, CursorRow int

	// Gesture and Notice feed the HUD: the current gesture label and the
	// last refusal ("grid full" / "cell occupied") observed this frame.
	Gesture string
	Notice  string

	// Bus broadcasts placed/removed/refused events to decoupled
	// listeners (audio, logging).
	Bus *EventBus

	lastCreate time.Time
	lastDelete time.Time
	nextID     int
	active     bool

	rng *Rand
	log *zap.Logger
}

func NewSession(seed uint64, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Bus:    NewEventBus(),
		nextID: 1,
		active: true,
		rng:    NewRand(seed),
		log:    log,
	}
}

// Close tears the session down. Frames observed afterwards are no-ops,
// so a teardown racing one last detector callback cannot mutate state.
func (s *Session) Close() {
	s.active = false
}

func (s *Session) Active() bool { return s.active }

// Advance consumes one detector frame. Branches are exhaustive over the
// observed hand count; everything here treats the input as untrusted
// sensor noise and suppresses rather than errors.
func (s *Session) Advance(b *Board, ps *ParticleSystem, f Frame) {
	if !s.active {
		return
	}
	s.Notice = ""

	switch len(f.Hands) {
	case 0:
		// Hand lost (or ghost dropout): release in place, start over.
		s.releaseHeld(b)
		s.Streak = 0
		s.Gesture = "no hands"

	case 1:
		s.oneHand(b, ps, f.Hands[0], f.Now)

	case 2:
		s.releaseHeld(b)
		s.Streak = 0
		if HandsJoined(f.Hands[0], f.Hands[1]) {
			s.Gesture = "hands joined"
			s.deleteNewest(b, ps, f.Now)
		} else {
			s.Gesture = "two hands"
		}

	default:
		// Three or more detections carry no gesture.
		s.releaseHeld(b)
		s.Streak = 0
		s.Gesture = "too many hands"
	}
}

func (s *Session) oneHand(b *Board, ps *ParticleSystem, h Hand, now time.Time) {
	tip := h[IndexTip]
	px := clampF(tip.X, 0, 1) * CanvasWidth
	py := clampF(tip.Y, 0, 1) * CanvasHeight
	col, row := CellOf(px, py)
	s.CursorCol, s.CursorRow = col, row

	switch {
	case IsPointing(h):
		s.Gesture = "pointing"
		s.Streak++
		if s.Streak < PointingFrames {
			return
		}
		// Pointing cancels a grab before any occupancy check, so a block
		// dragged onto this cell counts as occupying it.
		s.releaseHeld(b)
		s.tryCreate(b, ps, col, row, now)

	case IsPinching(h):
		s.Gesture = "pinching"
		s.Streak = 0
		s.grabOrDrag(b, px, py, col, row)

	default:
		s.Gesture = "open hand"
		s.Streak = 0
		s.releaseHeld(b)
	}
}

// tryCreate places a new block at (col, row) once the pointing streak has
// been sustained. Refusals are ranked: full grid and occupied cell are
// user-visible notices, a cold cooldown is silently suppressed.
func (s *Session) tryCreate(b *Board, ps *ParticleSystem, col, row int, now time.Time) {
	if b.Full() {
		s.Notice = "grid full"
		if s.Streak == PointingFrames {
			s.Bus.Emit(Event{Type: EventGridFull})
			s.log.Info("create refused, grid full", zap.Int("count", b.Count()))
		}
		return
	}
	if !b.CellFree(col, row) {
		s.Notice = "cell occupied"
		if s.Streak == PointingFrames {
			s.Bus.Emit(Event{Type: EventCellOccupied})
			s.log.Debug("create refused, cell occupied",
				zap.Int("col", col), zap.Int("row", row))
		}
		return
	}
	if now.Sub(s.lastCreate) < CreateCooldown {
		return
	}

	id := s.nextID
	s.nextID++
	cx, cy := CenterOf(col, row)
	blk := Block{
		ID:        id,
		Col:       col,
		Row:       row,
		TargetCol: col,
		TargetRow: row,
		X:         cx,
		Y:         cy,
		Size:      BlockSize,
		Color:     BlockPalette[s.rng.Intn(len(BlockPalette))],
		CreatedAt: now,
	}
	b.Insert(blk)
	ps.SpawnPlaceBurst(cx, cy, blk.Color)
	s.lastCreate = now
	s.Streak = 0
	s.Bus.Emit(Event{Type: EventBlockPlaced, X: cx, Y: cy, ID: id})
	s.log.Info("block placed",
		zap.Int("id", id), zap.Int("col", col), zap.Int("row", row))
}

// grabOrDrag starts a grab when nothing is held, otherwise retargets the
// held block. Grab matching is newest-first: cursor cell, then rendered
// position within GrabRadius of the fingertip.
func (s *Session) grabOrDrag(b *Board, px, py float64, col, row int) {
	if s.HeldID == 0 {
		blk := b.BlockAt(col, row)
		if blk == nil {
			blk = b.BlockNear(px, py, GrabRadius)
		}
		if blk == nil {
			return
		}
		s.HeldID = blk.ID
		blk.TargetCol, blk.TargetRow = blk.Col, blk.Row
		s.log.Debug("block grabbed", zap.Int("id", blk.ID))
		return
	}

	held := b.ByID(s.HeldID)
	if held == nil {
		// Deleted out from under the grab.
		s.HeldID = 0
		return
	}
	// Retarget only onto cells not occupied by a different block; the
	// rendered position keeps easing, never snaps mid-drag.
	if other := b.BlockAt(col, row); other == nil || other.ID == held.ID {
		held.TargetCol, held.TargetRow = col, row
	}
}

// releaseHeld commits the held block to its target cell and snaps its
// rendered position onto the cell centre. Idempotent when nothing is held.
func (s *Session) releaseHeld(b *Board) {
	if s.HeldID == 0 {
		return
	}
	if blk := b.ByID(s.HeldID); blk != nil {
		blk.Col, blk.Row = blk.TargetCol, blk.TargetRow
		blk.X, blk.Y = CenterOf(blk.Col, blk.Row)
		s.log.Debug("block released",
			zap.Int("id", blk.ID), zap.Int("col", blk.Col), zap.Int("row", blk.Row))
	}
	s.HeldID = 0
}

// deleteNewest pops the most recently created block. Stack order is a
// deliberate trade: no second spatial-selection gesture needed.
func (s *Session) deleteNewest(b *Board, ps *ParticleSystem, now time.Time) {
	if b.Count() == 0 {
		return
	}
	if now.Sub(s.lastDelete) < DeleteCooldown {
		return
	}
	blk, ok := b.RemoveNewest()
	if !ok {
		return
	}
	if blk.ID == s.HeldID {
		s.HeldID = 0
	}
	ps.SpawnRemoveBurst(blk.X, blk.Y, blk.Color)
	s.lastDelete = now
	s.Bus.Emit(Event{Type: EventBlockRemoved, X: blk.X, Y: blk.Y, ID: blk.ID})
	s.log.Info("block removed",
		zap.Int("id", blk.ID), zap.Int("remaining", b.Count()))
}
