package model

import (
	"github.com/pkg/errors"
)

// Grid is one snapshot of the board: an ordered list of rows.
// Rows may have different lengths.
type Grid [][]Cell

// neighbourOffsets lists the Moore neighbourhood as (dx, dy) pairs
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CellAt returns the cell in column x of row y, or Dead when (x, y) is outside the grid
func CellAt(g Grid, x, y int) Cell {
	if y < 0 || y >= len(g) {
		return Dead
	}
	row := g[y]
	if x < 0 || x >= len(row) {
		return Dead
	}
	return row[x]
}

// CellAt returns the cell in column x of row y, or Dead when out of range
func (g Grid) CellAt(x, y int) Cell {
	return CellAt(g, x, y)
}

// LiveNeighbourCount counts live cells among the 8 neighbours of (x, y)
func (g Grid) LiveNeighbourCount(x, y int) (count int) {
	for _, off := range neighbourOffsets {
		count += g.CellAt(x+off[0], y+off[1]).Int()
	}
	return
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// Shape returns the length of every row
func (g Grid) Shape() []int {
	shape := make([]int, len(g))
	for y, row := range g {
		shape[y] = len(row)
	}
	return shape
}

// NewShaped creates an all-dead grid with the same row lengths as g
func NewShaped(g Grid) Grid {
	if g == nil {
		return nil
	}
	next := make(Grid, len(g))
	for y, row := range g {
		if row == nil {
			continue
		}
		next[y] = make([]Cell, len(row))
	}
	return next
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	next := NewShaped(g)
	for y, row := range g {
		copy(next[y], row)
	}
	return next
}

// Equal reports whether both grids have the same shape and live cells
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y, row := range g {
		if len(row) != len(other[y]) {
			return false
		}
		for x, c := range row {
			if c.IsLive() != other[y][x].IsLive() {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g Grid) CountLivingCells() (count int) {
	for _, row := range g {
		for _, c := range row {
			count += c.Int()
		}
	}
	return
}

// FromInts builds a grid from 0/1 values, failing on anything else
func FromInts(values [][]int) (Grid, error) {
	if values == nil {
		return nil, nil
	}
	g := make(Grid, len(values))
	for y, row := range values {
		g[y] = make([]Cell, len(row))
		for x, v := range row {
			c, err := ParseCell(v)
			if err != nil {
				return nil, errors.Wrapf(err, "[FromInts] row %d column %d", y, x)
			}
			g[y][x] = c
		}
	}
	return g, nil
}

// FromIntsLenient builds a grid treating every value other than 1 as Dead
func FromIntsLenient(values [][]int) Grid {
	if values == nil {
		return nil
	}
	g := make(Grid, len(values))
	for y, row := range values {
		g[y] = make([]Cell, len(row))
		for x, v := range row {
			if v == 1 {
				g[y][x] = Live
			}
		}
	}
	return g
}

// Ints converts the grid back into 0/1 values
func (g Grid) Ints() [][]int {
	if g == nil {
		return nil
	}
	values := make([][]int, len(g))
	for y, row := range g {
		values[y] = make([]int, len(row))
		for x, c := range row {
			values[y][x] = c.Int()
		}
	}
	return values
}
