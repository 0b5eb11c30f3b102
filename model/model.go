package model

// CellState is the visible state of one cell.
type CellState int

const (
	UNTOUCHED CellState = iota
	FLAGGED
	DUG
)

type Cell struct {
	Col, Row int
	State    CellState
	// Count is the bomb adjacency count, meaningful only when State is DUG.
	Count int
	Bomb  bool
}

// Grid is the whole board. Matrix is indexed [col][row], so Matrix[x][y]
// is the cell in column x, row y.
type Grid struct {
	Cols, Rows int
	Matrix     [][]*Cell
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Cell returns nil when col, row is outside the grid.
func (g *Grid) Cell(col, row int) *Cell {
	if !g.InBounds(col, row) {
		return nil
	}
	return g.Matrix[col][row]
}

// Neighbours returns the in-bounds cells of the 8 around col, row.
func (g *Grid) Neighbours(col, row int) []*Cell {
	n := make([]*Cell, 0, 8)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if c := g.Cell(col+dc, row+dr); c != nil {
				n = append(n, c)
			}
		}
	}
	return n
}

// BombsAround counts live bombs among the neighbours of col, row.
func (g *Grid) BombsAround(col, row int) int {
	count := 0
	for _, c := range g.Neighbours(col, row) {
		if c.Bomb {
			count++
		}
	}
	return count
}
