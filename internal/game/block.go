package game

import "time"

// Block is one placed grid object. Col/Row is the committed logical cell;
// X/Y is the rendered position, easing toward that cell's centre (or
// toward TargetCol/TargetRow while the block is being dragged). Held
// status is not stored here; the session owns it as HeldID and per-block
// status is derived by comparison.
type Block struct {
	ID int // positive, unique and immutable for the block's lifetime

	Col, Row             int
	TargetCol, TargetRow int

	X, Y float64
	Size float64

	Color     RGB
	CreatedAt time.Time
}
