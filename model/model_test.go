package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyGrid(t *testing.T) {
	g, err := NewEmptyGrid(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Cols)
	assert.Equal(t, 3, g.Rows)
	require.Len(t, g.Matrix, 4)
	for c, column := range g.Matrix {
		require.Len(t, column, 3)
		for r, cell := range column {
			assert.Equal(t, c, cell.Col)
			assert.Equal(t, r, cell.Row)
			assert.Equal(t, UNTOUCHED, cell.State)
			assert.False(t, cell.Bomb)
		}
	}
}

func TestNewEmptyGridInvalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := NewEmptyGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
	}
}

func TestNeighbours(t *testing.T) {
	g, err := NewEmptyGrid(3, 3)
	require.NoError(t, err)
	assert.Len(t, g.Neighbours(0, 0), 3)
	assert.Len(t, g.Neighbours(1, 0), 5)
	assert.Len(t, g.Neighbours(1, 1), 8)
	assert.Len(t, g.Neighbours(2, 2), 3)
	for _, n := range g.Neighbours(1, 1) {
		assert.False(t, n.Col == 1 && n.Row == 1)
	}
}

func TestCellOutOfBounds(t *testing.T) {
	g, err := NewEmptyGrid(2, 2)
	require.NoError(t, err)
	assert.Nil(t, g.Cell(-1, 0))
	assert.Nil(t, g.Cell(0, 2))
	assert.NotNil(t, g.Cell(1, 1))
}

func TestNewGridFromBombsOrientation(t *testing.T) {
	// two rows of three columns, bomb at column 2 row 0
	g, err := NewGridFromBombs([][]bool{
		{false, false, true},
		{false, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 2, g.Rows)
	assert.True(t, g.Cell(2, 0).Bomb)
	assert.False(t, g.Cell(0, 1).Bomb)
	assert.Equal(t, 1, g.BombsAround(1, 1))
	assert.Equal(t, 0, g.BombsAround(0, 0))
}

func TestNewGridFromBombsRagged(t *testing.T) {
	_, err := NewGridFromBombs([][]bool{{false, true}, {false}})
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewGridFromBombs(nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestNewRandomGridExtremes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	none, err := NewRandomGrid(5, 5, 0, rnd)
	require.NoError(t, err)
	all, err := NewRandomGrid(5, 5, 1, rnd)
	require.NoError(t, err)
	for c := 0; c < 5; c++ {
		for r := 0; r < 5; r++ {
			assert.False(t, none.Cell(c, r).Bomb)
			assert.True(t, all.Cell(c, r).Bomb)
		}
	}
}

func TestRender(t *testing.T) {
	g, err := NewEmptyGrid(3, 2)
	require.NoError(t, err)
	g.Cell(0, 0).State = FLAGGED
	g.Cell(1, 0).State = DUG
	g.Cell(1, 0).Count = 3
	g.Cell(2, 1).State = DUG

	v := g.Snapshot()
	assert.Equal(t, []string{"F 3 -", "- -  "}, v.Lines())
	assert.Equal(t, "F 3 -\r\n- -  ", v.Render("\r\n"))
}

func TestSnapshotIsACopy(t *testing.T) {
	g, err := NewEmptyGrid(2, 2)
	require.NoError(t, err)
	v := g.Snapshot()
	g.Cell(0, 0).State = FLAGGED
	assert.Equal(t, UNTOUCHED, v.Cells[0][0].State)
	assert.Equal(t, v.Render("\n"), v.Render("\n"))
}
