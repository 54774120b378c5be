package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/eemmzz/game-of-life/rules"
)

// Evolve computes the next generation of current.
// The result is a new grid with the same shape; current is never modified.
func Evolve(current Grid) Grid {
	next := NewShaped(current)
	EvolveRows(current, next, 0, len(current))
	return next
}

// EvolveRows writes rows [from, to) of next using only the cells of current.
// next must have the same shape as current.
func EvolveRows(current, next Grid, from, to int) {
	from = max(0, from)
	to = min(len(current), to)
	for y := from; y < to; y++ {
		for x, c := range current[y] {
			if rules.Next(c.IsLive(), current.LiveNeighbourCount(x, y)) {
				next[y][x] = Live
			} else {
				next[y][x] = Dead
			}
		}
	}
}

// EvolveParallel computes the same result as Evolve, splitting the rows into
// bands evaluated by up to workers goroutines.
func EvolveParallel(current Grid, workers int) Grid {
	if workers <= 1 || len(current) < 2 {
		return Evolve(current)
	}

	var (
		eg            errgroup.Group
		next          = NewShaped(current)
		height        = len(current)
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
	)

	for startRow := 0; startRow < height; startRow += rowsPerWorker {
		startRow := startRow
		endRow := min(startRow+rowsPerWorker, height)
		eg.Go(func() error {
			EvolveRows(current, next, startRow, endRow)
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()

	return next
}
