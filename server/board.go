package server

import (
	"sync"

	"github.com/zucenko/sweeper/model"
)

type RevealResult int

const (
	REVEALED RevealResult = iota
	EXPLODED
)

// Board is the single shared game board. Every method runs under one
// lock, so a whole flood fill is observed atomically.
type Board struct {
	mu   sync.Mutex
	grid *model.Grid
}

func NewBoard(grid *model.Grid) *Board {
	return &Board{grid: grid}
}

func (b *Board) Cols() int {
	return b.grid.Cols
}

func (b *Board) Rows() int {
	return b.grid.Rows
}

// Dig reveals the cell at col, row. Out of bounds, flagged and dug cells
// are left alone and REVEALED is returned. A bomb under the cell is
// cleared, already dug neighbours lose one from their count, and the
// result is EXPLODED. In both cases the cell is then dug against the
// live bombs and flooded when its count is zero.
func (b *Board) Dig(col, row int) RevealResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	cell := b.grid.Cell(col, row)
	if cell == nil || cell.State != model.UNTOUCHED {
		return REVEALED
	}

	result := REVEALED
	if cell.Bomb {
		cell.Bomb = false
		for _, n := range b.grid.Neighbours(col, row) {
			if n.State == model.DUG && n.Count > 0 {
				n.Count--
			}
		}
		result = EXPLODED
	}

	b.flood(cell)
	return result
}

// flood digs start and, through an explicit stack, every untouched cell
// reachable across zero counts. start must not hold a bomb; neighbours
// of a zero cell never do.
func (b *Board) flood(start *model.Cell) {
	stack := []*model.Cell{start}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cell.State != model.UNTOUCHED {
			continue
		}
		cell.State = model.DUG
		cell.Count = b.grid.BombsAround(cell.Col, cell.Row)
		if cell.Count != 0 {
			continue
		}
		for _, n := range b.grid.Neighbours(cell.Col, cell.Row) {
			if n.State == model.UNTOUCHED {
				stack = append(stack, n)
			}
		}
	}
}

// Flag marks an untouched cell. It reports whether anything changed.
func (b *Board) Flag(col, row int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cell := b.grid.Cell(col, row)
	if cell == nil || cell.State != model.UNTOUCHED {
		return false
	}
	cell.State = model.FLAGGED
	return true
}

// Deflag clears a flag. It reports whether anything changed.
func (b *Board) Deflag(col, row int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cell := b.grid.Cell(col, row)
	if cell == nil || cell.State != model.FLAGGED {
		return false
	}
	cell.State = model.UNTOUCHED
	return true
}

// Look returns a consistent copy of the visible board.
func (b *Board) Look() model.View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Snapshot()
}
