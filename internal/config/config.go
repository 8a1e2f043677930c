package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"texatlas/atlas"
)

// Config holds input selection and output settings for an atlasgen run.
type Config struct {
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"` // "png" or "webp"
	MaxSize   int    `json:"max_size"`
	Workers   int    `json:"workers"`
	Verbose   bool   `json:"verbose"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Format    string
	MaxSize   int
	Workers   int
	Verbose   bool
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults: current directory in, input directory out, PNG format, the
// packer's size cap, NumCPU workers.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.MaxSize > 0 {
		c.MaxSize = flags.MaxSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Verbose {
		c.Verbose = true
	}

	// Defaults
	if c.InputDir == "" {
		c.InputDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "png"
	}
	if c.MaxSize <= 0 {
		c.MaxSize = atlas.DefaultMaxSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
