package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/eemmzz/game-of-life/model"
	"github.com/eemmzz/game-of-life/utils"
)

// loadConfig reads the config file, falling back to defaults when it is missing,
// then applies environment overrides
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// readGrid decodes a JSON array of rows of 0/1 values
func readGrid(r io.Reader, strict bool) (model.Grid, error) {
	var values [][]int
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, errors.Wrap(err, "[readGrid] failed to decode grid")
	}
	if !strict {
		return model.FromIntsLenient(values), nil
	}
	return model.FromInts(values)
}

// loadGrid reads a grid from a JSON file
func loadGrid(filename string, strict bool) (model.Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadGrid] failed to open file: %+v", filename)
	}
	defer f.Close()

	grid, err := readGrid(f, strict)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadGrid] file: %+v", filename)
	}
	return grid, nil
}

// writeGrid encodes the grid as one JSON row per line
func writeGrid(w io.Writer, grid model.Grid) error {
	values := grid.Ints()
	if _, err := io.WriteString(w, "["); err != nil {
		return errors.Wrap(err, "[writeGrid] failed to write grid")
	}
	for y, row := range values {
		data, err := json.Marshal(row)
		if err != nil {
			return errors.Wrapf(err, "[writeGrid] failed to marshal row %d", y)
		}
		sep := ","
		if y == len(values)-1 {
			sep = ""
		}
		if _, err = fmt.Fprintf(w, "\n  %s%s", data, sep); err != nil {
			return errors.Wrap(err, "[writeGrid] failed to write grid")
		}
	}
	if len(values) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(err, "[writeGrid] failed to write grid")
		}
	}
	if _, err := io.WriteString(w, "]\n"); err != nil {
		return errors.Wrap(err, "[writeGrid] failed to write grid")
	}
	return nil
}

// saveGrid writes the grid to filename, or to stdout when filename is empty
func saveGrid(filename string, grid model.Grid) error {
	if filename == "" {
		return writeGrid(os.Stdout, grid)
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[saveGrid] failed to create file: %+v", filename)
	}
	if err = writeGrid(f, grid); err != nil {
		f.Close()
		return errors.Wrapf(err, "[saveGrid] file: %+v", filename)
	}
	return errors.Wrapf(f.Close(), "[saveGrid] failed to close file: %+v", filename)
}

// evolveGrid runs one generation, in parallel when more than one worker is configured
func evolveGrid(config utils.Config, grid model.Grid) model.Grid {
	if config.Workers > 1 {
		return model.EvolveParallel(grid, config.Workers)
	}
	return model.Evolve(grid)
}

// displayGenerations renders the input and output grids one after the other
func displayGenerations(w io.Writer, renderer *model.TerminalRenderer, current, next model.Grid) error {
	fmt.Fprintln(w, "Generation 0:")
	if err := renderer.Display(w, current); err != nil {
		return err
	}
	fmt.Fprintln(w, "Generation 1:")
	return renderer.Display(w, next)
}
