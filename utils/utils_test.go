package utils

import (
	"bytes"
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rows": 8, "pattern": "glider", "alive_symbol": "#"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 8 || cfg.Cols != 20 || cfg.Pattern != "glider" || cfg.AliveSymbol != "#" || cfg.DeadSymbol != "." {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v, expected os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"rows":`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected unmarshal error")
	}
	if cfg.Rows != 20 {
		t.Fatalf("defaults lost on error: %+v", cfg)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 12

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "30", "-screen", "-chart", "pop.png"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 12 || cfg.Cols != 30 || !cfg.Screen || cfg.ChartPath != "pop.png" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Rows = 0 },
		func(c *Config) { c.Cols = -3 },
		func(c *Config) { c.AliveSymbol = "" },
		func(c *Config) { c.DeadSymbol = "--" },
		func(c *Config) { c.MaxGenerations = -1 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, cfg)
		}
	}

	cfg := DefaultConfig()
	cfg.AliveSymbol = "█"
	alive, dead := cfg.Symbols()
	if alive != '█' || dead != '.' {
		t.Fatalf("Symbols()=%q,%q", alive, dead)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 10, 0)
	s.Update(1, 20, 500*time.Millisecond)

	if s.TotalGenerations != 1 || s.PeakPopulation != 20 || len(s.Populations) != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("average=%v, expected 11", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("gen/sec=%v, expected 2", s.GenerationsPerSecond)
	}
}

func TestWritePopulationChart(t *testing.T) {
	s := NewStats()
	s.Update(0, 5, 0)
	if err := WritePopulationChart(&bytes.Buffer{}, s); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("single generation err=%v, expected ErrNotEnoughData", err)
	}

	// Flat population, as produced by a still life
	s.Update(1, 5, time.Millisecond)
	s.Update(2, 5, time.Millisecond)

	var buf bytes.Buffer
	if err := WritePopulationChart(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("chart output is not a PNG")
	}
}
