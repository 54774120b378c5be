package rules

const (
	// UnderpopulationThreshold is the fewest live neighbours a live cell needs to survive.
	UnderpopulationThreshold = 2
	// OverpopulationThreshold is the most live neighbours a live cell can have and survive.
	OverpopulationThreshold = 3
	// BirthCount is the exact number of live neighbours that brings a dead cell to life.
	BirthCount = 3
)

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbours and dies otherwise.
A dead cell becomes live with exactly 3 live neighbours.
*/
func Next(alive bool, neighbours int) bool {
	if alive {
		return neighbours >= UnderpopulationThreshold && neighbours <= OverpopulationThreshold
	}
	return neighbours == BirthCount
}
