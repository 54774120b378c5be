package utils

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for a single evolution run
type Config struct {
	InputFile  string `json:"input_file" env:"GOL_INPUT_FILE"`
	OutputFile string `json:"output_file" env:"GOL_OUTPUT_FILE"`
	Workers    int    `json:"workers" env:"GOL_WORKERS"`
	Strict     bool   `json:"strict" env:"GOL_STRICT"`
	Render     bool   `json:"render" env:"GOL_RENDER"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InputFile: "grid.json",
		Workers:   1, // sequential evolve
		Strict:    true,
		Render:    false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides config fields with any GOL_* environment variables that are set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}
