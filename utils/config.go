package utils

import (
	"encoding/json"
	"flag"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	Pattern        string `json:"pattern"` // empty asks the operator
	Seed           int64  `json:"seed"`
	AliveSymbol    string `json:"alive_symbol"`
	DeadSymbol     string `json:"dead_symbol"`
	ClearScreen    bool   `json:"clear_screen"`
	Screen         bool   `json:"screen"`
	MaxGenerations int    `json:"max_generations"`
	ChartPath      string `json:"chart_path"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:        20,
		Cols:        20,
		AliveSymbol: "X",
		DeadSymbol:  ".",
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

// Bind attaches the configuration to the provided FlagSet, using the current
// values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: glider, semaphore, random or custom (prompts when empty)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern (0 uses the clock)")
	fs.StringVar(&c.AliveSymbol, "alive", c.AliveSymbol, "symbol for living cells")
	fs.StringVar(&c.DeadSymbol, "dead", c.DeadSymbol, "symbol for dead cells")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal before each generation")
	fs.BoolVar(&c.Screen, "screen", c.Screen, "draw on a full-screen terminal view")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 for no limit)")
	fs.StringVar(&c.ChartPath, "chart", c.ChartPath, "write a PNG population chart here on exit")
}

// Validate reports configuration values the game cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if utf8.RuneCountInString(c.AliveSymbol) != 1 || utf8.RuneCountInString(c.DeadSymbol) != 1 {
		return errors.Errorf("[Validate] symbols must be single characters, got %q and %q", c.AliveSymbol, c.DeadSymbol)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Symbols returns the alive and dead symbols as runes. Call after Validate.
func (c Config) Symbols() (alive, dead rune) {
	alive, _ = utf8.DecodeRuneInString(c.AliveSymbol)
	dead, _ = utf8.DecodeRuneInString(c.DeadSymbol)
	return alive, dead
}
