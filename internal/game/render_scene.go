package game

import (
	"math"
	"time"
)

// Scene buffer builders. Pure functions from state to sprite/line data;
// all GL work stays in render_sprites.go.

// gridLineCache holds the static grid line buffer; the grid never moves.
var gridLineCache []float32

// GridLines returns the line buffer for the cell boundaries.
func GridLines() []float32 {
	if gridLineCache != nil {
		return gridLineCache
	}
	cr := float32(Palette.GridLine.R) / 255
	cg := float32(Palette.GridLine.G) / 255
	cb := float32(Palette.GridLine.B) / 255
	buf := make([]float32, 0, (GridCols+GridRows+2)*12)
	for c := 0; c <= GridCols; c++ {
		x := float32(c) * float32(CanvasWidth) / GridCols
		buf = append(buf,
			x, 0, cr, cg, cb, 0.6,
			x, float32(CanvasHeight), cr, cg, cb, 0.6)
	}
	for row := 0; row <= GridRows; row++ {
		y := float32(row) * float32(CanvasHeight) / GridRows
		buf = append(buf,
			0, y, cr, cg, cb, 0.6,
			float32(CanvasWidth), y, cr, cg, cb, 0.6)
	}
	gridLineCache = buf
	return buf
}

// BlockSprites appends one bevelled-box sprite per block. The held block
// wobbles slightly and renders above the rest (it is appended last).
func BlockSprites(b *Board, heldID int, now time.Time, buf []float32) []float32 {
	buf = buf[:0]
	var held *Block
	for i := range b.Blocks {
		blk := &b.Blocks[i]
		if blk.ID == heldID {
			held = blk
			continue
		}
		buf = appendBlock(buf, blk, now, 0)
	}
	if held != nil {
		wobble := float32(0.10 * math.Sin(float64(now.UnixMilli())*0.012))
		buf = appendBlock(buf, held, now, wobble)
	}
	return buf
}

func appendBlock(buf []float32, blk *Block, now time.Time, rot float32) []float32 {
	size := float32(blk.Size * ScaleOf(blk, now))
	if size < 1 {
		return buf
	}
	return append(buf,
		float32(blk.X), float32(blk.Y), size,
		float32(blk.Color.R)/255, float32(blk.Color.G)/255, float32(blk.Color.B)/255,
		1.0, rot)
}

// CursorGlow returns a soft halo over the cursor cell, colour-coded by
// whether a create would land there.
func CursorGlow(b *Board, s *Session, buf []float32) []float32 {
	buf = buf[:0]
	cx, cy := CenterOf(s.CursorCol, s.CursorRow)
	col := Palette.Cursor
	intensity := float32(0.35)
	if s.HeldID != 0 {
		col = Palette.HeldGlow
		intensity = 0.55
	}
	// Blocked reads against other blocks only: a held block hovering its
	// own cell is a legal drop.
	if other := b.BlockAt(s.CursorCol, s.CursorRow); (other != nil && other.ID != s.HeldID) || (s.HeldID == 0 && b.Full()) {
		col = Palette.CursorBlocked
	}
	buf = append(buf,
		float32(cx), float32(cy), float32(BlockSize)*1.6,
		float32(col.R)/255*intensity, float32(col.G)/255*intensity, float32(col.B)/255*intensity,
		1.0, 0)
	return buf
}

// handBones is the 21-point skeleton connection list: palm ring plus the
// four joints of each digit.
var handBones = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, // thumb
	{0, 5}, {5, 6}, {6, 7}, {7, 8}, // index
	{5, 9}, {9, 10}, {10, 11}, {11, 12}, // middle
	{9, 13}, {13, 14}, {14, 15}, {15, 16}, // ring
	{13, 17}, {17, 18}, {18, 19}, {19, 20}, // little
	{0, 17}, // palm base
}

// HandBoneLines appends skeleton line segments for every detected hand.
func HandBoneLines(hands []Hand, buf []float32) []float32 {
	buf = buf[:0]
	cr := float32(Palette.Bone.R) / 255
	cg := float32(Palette.Bone.G) / 255
	cb := float32(Palette.Bone.B) / 255
	for _, h := range hands {
		for _, bone := range handBones {
			a, b := h[bone[0]], h[bone[1]]
			buf = append(buf,
				float32(a.X*CanvasWidth), float32(a.Y*CanvasHeight), cr, cg, cb, 0.8,
				float32(b.X*CanvasWidth), float32(b.Y*CanvasHeight), cr, cg, cb, 0.8)
		}
	}
	return buf
}

// HandJointSprites appends a dot per landmark, with the index fingertip
// emphasized since it is the cursor.
func HandJointSprites(hands []Hand, buf []float32) []float32 {
	buf = buf[:0]
	for _, h := range hands {
		for i, lm := range h {
			col := Palette.Joint
			size := float32(6)
			if i == IndexTip {
				col = Palette.Fingertip
				size = 12
			}
			buf = append(buf,
				float32(lm.X*CanvasWidth), float32(lm.Y*CanvasHeight), size,
				float32(col.R)/255, float32(col.G)/255, float32(col.B)/255,
				0.95, 0)
		}
	}
	return buf
}
