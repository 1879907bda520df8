package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// demoConfig is the sandbox tuning knobs, optionally overridden by a
// sandbox.toml next to the binary.
type demoConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`

	Seed        int64   `toml:"seed"`
	GridSize    int32   `toml:"grid_size"`
	Threshold   float32 `toml:"threshold"`
	Frequency   float32 `toml:"frequency"`
	Octaves     int     `toml:"octaves"`
	Lacunarity  float32 `toml:"lacunarity"`
	Persistence float32 `toml:"persistence"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Title:       "glint sandbox",
		Width:       1280,
		Height:      720,
		VSync:       true,
		Seed:        1,
		GridSize:    32,
		Threshold:   0,
		Frequency:   0.09,
		Octaves:     4,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// loadConfig reads path over the defaults. A missing file is not an
// error; a malformed one is.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
