package game

import (
	"math"
	"time"
)

// StepMotion eases every block toward its cell centre by a fixed fraction
// of the remaining distance. Settled blocks chase their committed cell;
// the held block chases its tentative target, which gives continuous drag
// feedback before release. Once within SnapEpsilon the position pins
// exactly, so repeated calls are idempotent at rest.
func StepMotion(b *Board, heldID int) {
	for i := range b.Blocks {
		blk := &b.Blocks[i]
		var tx, ty float64
		ease := SettleEase
		if blk.ID == heldID {
			tx, ty = CenterOf(blk.TargetCol, blk.TargetRow)
			ease = DragEase
		} else {
			tx, ty = CenterOf(blk.Col, blk.Row)
		}
		dx := tx - blk.X
		dy := ty - blk.Y
		if math.Abs(dx) < SnapEpsilon && math.Abs(dy) < SnapEpsilon {
			blk.X, blk.Y = tx, ty
			continue
		}
		blk.X += dx * ease
		blk.Y += dy * ease
	}
}

// ScaleOf returns the entrance scale of a block: ease-out cubic from 0 to
// 1 over ScaleInTime after creation, 1 forever after.
func ScaleOf(blk *Block, now time.Time) float64 {
	age := now.Sub(blk.CreatedAt)
	if age >= ScaleInTime {
		return 1
	}
	if age < 0 {
		return 0
	}
	u := 1 - float64(age)/float64(ScaleInTime)
	return 1 - u*u*u
}
