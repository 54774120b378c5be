package utils

import (
	"fmt"

	"github.com/eemmzz/game-of-life/model"
)

// Stats describes the change between two consecutive generations
type Stats struct {
	PreviousPopulation int
	Population         int
	Births             int
	Deaths             int
	Survivors          int
	Stable             bool
}

// Summarize compares prev with next cell by cell.
// Cells present in only one of the grids count as dead in the other.
func Summarize(prev, next model.Grid) Stats {
	s := Stats{
		PreviousPopulation: prev.CountLivingCells(),
		Population:         next.CountLivingCells(),
		Stable:             prev.Equal(next),
	}

	for y := 0; y < max(prev.Height(), next.Height()); y++ {
		width := 0
		if y < prev.Height() {
			width = len(prev[y])
		}
		if y < next.Height() {
			width = max(width, len(next[y]))
		}
		for x := 0; x < width; x++ {
			before := prev.CellAt(x, y).IsLive()
			after := next.CellAt(x, y).IsLive()
			switch {
			case before && after:
				s.Survivors++
			case before:
				s.Deaths++
			case after:
				s.Births++
			}
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("Living: %d -> %d | Births: %d | Deaths: %d | Survivors: %d | Stable: %v",
		s.PreviousPopulation, s.Population, s.Births, s.Deaths, s.Survivors, s.Stable)
}
