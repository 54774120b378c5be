package model

import "github.com/pkg/errors"

// ErrInvalidCell is returned when a cell value is neither 0 nor 1.
var ErrInvalidCell = errors.New("invalid cell value")

// Cell is the state of one grid position
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

// ParseCell converts an integer into a Cell, rejecting anything but 0 and 1
func ParseCell(v int) (Cell, error) {
	switch v {
	case 0:
		return Dead, nil
	case 1:
		return Live, nil
	}
	return Dead, errors.Wrapf(ErrInvalidCell, "[ParseCell] got %d", v)
}

// IsLive reports whether c is Live. Any other value is treated as Dead.
func (c Cell) IsLive() bool {
	return c == Live
}

// Int returns 1 for a live cell and 0 otherwise
func (c Cell) Int() int {
	if c.IsLive() {
		return 1
	}
	return 0
}

func (c Cell) String() string {
	if c.IsLive() {
		return "1"
	}
	return "0"
}
