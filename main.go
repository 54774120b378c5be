package main

import (
	"flag"
	"log"
	"os"

	"github.com/eemmzz/game-of-life/model"
	"github.com/eemmzz/game-of-life/utils"
)

func main() {
	log.SetPrefix("[game-of-life] ")
	log.SetFlags(0)

	configFile := flag.String("config", "config.json", "path to JSON config file")
	input := flag.String("input", "", "grid JSON file (overrides config)")
	output := flag.String("output", "", "write the next generation here instead of stdout (overrides config)")
	workers := flag.Int("workers", 0, "row bands evaluated concurrently (overrides config when > 0)")
	render := flag.Bool("render", false, "draw both generations to stderr")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *input != "" {
		config.InputFile = *input
	}
	if *output != "" {
		config.OutputFile = *output
	}
	if *workers > 0 {
		config.Workers = *workers
	}
	config.Render = config.Render || *render

	grid, err := loadGrid(config.InputFile, config.Strict)
	if err != nil {
		log.Fatalf("input: %v", err)
	}

	next := evolveGrid(config, grid)

	if config.Render {
		if err = displayGenerations(os.Stderr, &model.TerminalRenderer{}, grid, next); err != nil {
			log.Fatalf("render: %v", err)
		}
	}

	if err = saveGrid(config.OutputFile, next); err != nil {
		log.Fatalf("output: %v", err)
	}

	log.Println(utils.Summarize(grid, next))
}
