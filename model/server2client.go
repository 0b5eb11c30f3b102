package model

import "strings"

// Visibilize is what a client may see of one cell: never the bomb.
type Visibilize struct {
	State CellState
	Count int
}

// View is a read-only copy of every cell's visible state, indexed like
// Grid.Matrix.
type View struct {
	Cols, Rows int
	Cells      [][]Visibilize
}

// Snapshot copies the visible state of g. Callers that share g between
// goroutines must hold the board lock.
func (g *Grid) Snapshot() View {
	cells := make([][]Visibilize, g.Cols)
	for c := 0; c < g.Cols; c++ {
		cells[c] = make([]Visibilize, g.Rows)
		for r := 0; r < g.Rows; r++ {
			cell := g.Matrix[c][r]
			cells[c][r] = Visibilize{State: cell.State, Count: cell.Count}
		}
	}
	return View{Cols: g.Cols, Rows: g.Rows, Cells: cells}
}

// Token is the single character shown for the cell.
func (v Visibilize) Token() string {
	switch v.State {
	case FLAGGED:
		return "F"
	case DUG:
		if v.Count == 0 {
			return " "
		}
		return string(rune('0' + v.Count))
	default:
		return "-"
	}
}

// Lines renders one string per row, tokens separated by a space.
func (v View) Lines() []string {
	lines := make([]string, 0, v.Rows)
	tokens := make([]string, v.Cols)
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < v.Cols; c++ {
			tokens[c] = v.Cells[c][r].Token()
		}
		lines = append(lines, strings.Join(tokens, " "))
	}
	return lines
}

// Render joins the rows with sep and leaves no trailing separator.
func (v View) Render(sep string) string {
	return strings.Join(v.Lines(), sep)
}
