package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock(id, col, row int) Block {
	x, y := CenterOf(col, row)
	return Block{
		ID: id, Col: col, Row: row, TargetCol: col, TargetRow: row,
		X: x, Y: y, Size: BlockSize, CreatedAt: time.Now(),
	}
}

func TestBoardInsertAndOccupancy(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.CellFree(2, 3))

	b.Insert(testBlock(1, 2, 3))
	assert.Equal(t, 1, b.Count())
	assert.False(t, b.CellFree(2, 3))

	// Occupied cell: the insert is dropped.
	b.Insert(testBlock(2, 2, 3))
	assert.Equal(t, 1, b.Count())
	require.NotNil(t, b.BlockAt(2, 3))
	assert.Equal(t, 1, b.BlockAt(2, 3).ID)
}

func TestBoardCapacity(t *testing.T) {
	b := NewBoard()
	id := 1
	for col := 0; col < GridCols; col++ {
		for row := 0; row < GridRows; row++ {
			b.Insert(testBlock(id, col, row))
			id++
		}
	}
	require.Equal(t, GridCapacity, b.Count())
	assert.True(t, b.Full())

	// One over capacity: dropped even if a cell were somehow free.
	b.Blocks = b.Blocks[:len(b.Blocks)-1]
	b.Blocks = append(b.Blocks, testBlock(999, 0, 0)) // duplicate cell, bypassing Insert
	b.Insert(testBlock(1000, GridCols-1, GridRows-1))
	assert.Equal(t, GridCapacity, b.Count())
}

func TestBlockAtNewestFirst(t *testing.T) {
	b := NewBoard()
	b.Insert(testBlock(1, 4, 4))
	b.Insert(testBlock(2, 5, 4))

	// Simulate a mid-drag overlap: block 2's committed cell moves onto
	// block 1's. The newest must win the match.
	b.Blocks[1].Col, b.Blocks[1].Row = 4, 4
	got := b.BlockAt(4, 4)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
}

func TestBlockNear(t *testing.T) {
	b := NewBoard()
	b.Insert(testBlock(1, 3, 3))
	x, y := CenterOf(3, 3)

	assert.Nil(t, b.BlockNear(x+GrabRadius+1, y, GrabRadius))
	got := b.BlockNear(x+GrabRadius-1, y, GrabRadius)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)
}

func TestRemoveNewest(t *testing.T) {
	b := NewBoard()
	_, ok := b.RemoveNewest()
	assert.False(t, ok)

	b.Insert(testBlock(1, 0, 0))
	b.Insert(testBlock(2, 1, 0))
	b.Insert(testBlock(3, 2, 0))

	blk, ok := b.RemoveNewest()
	require.True(t, ok)
	assert.Equal(t, 3, blk.ID)

	blk, ok = b.RemoveNewest()
	require.True(t, ok)
	assert.Equal(t, 2, blk.ID)
	assert.Equal(t, 1, b.Count())
	assert.True(t, b.CellFree(1, 0))
}

func TestByID(t *testing.T) {
	b := NewBoard()
	b.Insert(testBlock(7, 1, 1))
	require.NotNil(t, b.ByID(7))
	assert.Nil(t, b.ByID(8))
}
