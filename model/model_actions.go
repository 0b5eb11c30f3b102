package model

import (
	"errors"
	"math/rand"
)

// DefaultBombProbability is the chance of each cell of a random grid
// holding a bomb.
const DefaultBombProbability = 0.25

var ErrInvalidDimension = errors.New("grid dimensions must be positive")

// NewEmptyGrid creates cols x rows untouched cells without bombs.
func NewEmptyGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimension
	}
	matrix := make([][]*Cell, 0, cols)
	for c := 0; c < cols; c++ {
		column := make([]*Cell, 0, rows)
		for r := 0; r < rows; r++ {
			column = append(column, &Cell{Col: c, Row: r})
		}
		matrix = append(matrix, column)
	}
	return &Grid{Cols: cols, Rows: rows, Matrix: matrix}, nil
}

// NewRandomGrid places a bomb in each cell independently with
// probability p.
func NewRandomGrid(cols, rows int, p float64, rnd *rand.Rand) (*Grid, error) {
	g, err := NewEmptyGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			g.Matrix[c][r].Bomb = rnd.Float64() < p
		}
	}
	return g, nil
}

// NewGridFromBombs builds a grid from rows of bomb flags, bombs[row][col],
// the orientation of a board file. All rows must share one length.
func NewGridFromBombs(bombs [][]bool) (*Grid, error) {
	if len(bombs) == 0 {
		return nil, ErrInvalidDimension
	}
	cols := len(bombs[0])
	g, err := NewEmptyGrid(cols, len(bombs))
	if err != nil {
		return nil, err
	}
	for r, line := range bombs {
		if len(line) != cols {
			return nil, ErrInvalidDimension
		}
		for c, bomb := range line {
			g.Matrix[c][r].Bomb = bomb
		}
	}
	return g, nil
}
