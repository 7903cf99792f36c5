package game

import "math"

// Board holds every placed block in creation order. Occupancy is keyed by
// committed cells: at most one block per cell at any settled instant.
// Lookups are linear scans; the board tops out at GridCapacity blocks,
// so re-deriving occupancy per frame is cheaper than keeping an index.
type Board struct {
	Blocks []Block // creation order, oldest first
}

func NewBoard() *Board {
	return &Board{Blocks: make([]Block, 0, GridCapacity)}
}

func (b *Board) Count() int { return len(b.Blocks) }

func (b *Board) Full() bool { return len(b.Blocks) >= GridCapacity }

// CellFree reports whether no block has committed to (col, row).
func (b *Board) CellFree(col, row int) bool {
	return b.BlockAt(col, row) == nil
}

// BlockAt returns the newest block committed to (col, row), or nil.
// Newest-first order matters for grab matching when blocks overlap.
func (b *Board) BlockAt(col, row int) *Block {
	for i := len(b.Blocks) - 1; i >= 0; i-- {
		if b.Blocks[i].Col == col && b.Blocks[i].Row == row {
			return &b.Blocks[i]
		}
	}
	return nil
}

// BlockNear returns the newest block whose rendered position lies within
// radius of (px, py), or nil.
func (b *Board) BlockNear(px, py, radius float64) *Block {
	for i := len(b.Blocks) - 1; i >= 0; i-- {
		blk := &b.Blocks[i]
		if math.Hypot(blk.X-px, blk.Y-py) <= radius {
			return blk
		}
	}
	return nil
}

// ByID returns the block with the given id, or nil.
func (b *Board) ByID(id int) *Block {
	for i := range b.Blocks {
		if b.Blocks[i].ID == id {
			return &b.Blocks[i]
		}
	}
	return nil
}

// Insert appends a block. Callers pre-check capacity and occupancy; an
// insert that would violate either is silently dropped.
func (b *Board) Insert(blk Block) {
	if b.Full() || !b.CellFree(blk.Col, blk.Row) {
		return
	}
	b.Blocks = append(b.Blocks, blk)
}

// RemoveNewest pops the most recently created block (stack order).
func (b *Board) RemoveNewest() (Block, bool) {
	if len(b.Blocks) == 0 {
		return Block{}, false
	}
	blk := b.Blocks[len(b.Blocks)-1]
	b.Blocks = b.Blocks[:len(b.Blocks)-1]
	return blk, true
}
