// SPDX-License-Identifier: MIT

// Package config loads the JSON configuration of the microsim command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/sim"
)

// ParseConfig parses the raw JSON configuration. Fields left out keep their
// Default values.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Load reads and parses the file at path. A missing file yields Default.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Join(fmt.Errorf("could not read config file %q", path), err)
	}
	return ParseConfig(raw)
}

type Config struct {
	LogLevel  LogLevel     `json:"log_level"`
	OutputDir string       `json:"output_dir"`
	Canvas    ConfigCanvas `json:"canvas"`
	Kernel    ConfigKernel `json:"kernel"`
	Check     ConfigCheck  `json:"check"`
}

// ConfigCanvas sizes every render in logical pixels.
type ConfigCanvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ConfigKernel holds numeric policy forwarded to the linear algebra kernel.
type ConfigKernel struct {
	SingularEpsilon float64 `json:"singular_epsilon"`
}

// ConfigCheck drives the randomized law sweep.
type ConfigCheck struct {
	Iterations int    `json:"iterations"`
	Seed       uint64 `json:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  LogLevelInfo,
		OutputDir: ".",
		Canvas: ConfigCanvas{
			Width:  sim.DefaultWidth,
			Height: sim.DefaultHeight,
		},
		Kernel: ConfigKernel{
			SingularEpsilon: matrix.DefaultSingularEpsilon,
		},
		Check: ConfigCheck{
			Iterations: 1_000,
			Seed:       1,
		},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if !(c.Canvas.Width > 0) || !(c.Canvas.Height > 0) || math.IsInf(c.Canvas.Width, 0) || math.IsInf(c.Canvas.Height, 0) {
		errs = append(errs, fmt.Errorf("canvas must be finite and > 0, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if eps := c.Kernel.SingularEpsilon; math.IsNaN(eps) || math.IsInf(eps, 0) || !(eps > 0) {
		errs = append(errs, fmt.Errorf("kernel.singular_epsilon must be finite and > 0, got %v", eps))
	}
	if c.Check.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("check.iterations must be > 0, got %d", c.Check.Iterations))
	}
	if !c.LogLevel.Valid() {
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{errors.New("invalid config")}, errs...)...)
	}
	return nil
}

// SimOptions converts the canvas and kernel sections into sim options.
func (c Config) SimOptions() []sim.Option {
	return []sim.Option{
		sim.WithCanvas(c.Canvas.Width, c.Canvas.Height),
		sim.WithSingularEpsilon(c.Kernel.SingularEpsilon),
	}
}
