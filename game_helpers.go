package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-stepper/model"
	"github.com/sheikhrachel/go-gol-stepper/patterns"
	"github.com/sheikhrachel/go-gol-stepper/utils"
)

const (
	patternPrompt = "Select field spec to load ([G]lider, [S]emaphore, [R]andom or [C]ustom): "
	customPrompt  = "Give custom format string: "
	stepPrompt    = "\nSelect one of the following options: \n" +
		"        (enter) Step\n" +
		"        (any)   Exit\n"
	screenHint = "Enter: step | any other key: exit"
)

// game is one operator session over a single grid
type game struct {
	config   utils.Config
	grid     *model.Grid
	loader   patterns.Loader
	renderer *model.TextRenderer
	stats    *utils.Stats

	in  *bufio.Reader
	out io.Writer

	lastStep time.Duration
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, in io.Reader, out io.Writer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}

	alive, dead := config.Symbols()
	return &game{
		config:   config,
		grid:     grid,
		loader:   patterns.Loader{Seed: config.Seed},
		renderer: &model.TextRenderer{Out: out, Alive: alive, Dead: dead},
		stats:    utils.NewStats(),
		in:       bufio.NewReader(in),
		out:      out,
	}, nil
}

// readLine returns the next input line without its line break
func (g *game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// choosePattern seeds the grid from the configured pattern, asking the
// operator when none is configured. Rejected custom input is asked for again.
func (g *game) choosePattern() error {
	choice := g.config.Pattern
	if choice == "" {
		fmt.Fprint(g.out, patternPrompt)
		line, err := g.readLine()
		if err != nil {
			return errors.Wrap(err, "[choosePattern] reading pattern choice")
		}
		choice = line
	}

	pattern := patterns.ParsePattern(choice)
	if pattern != patterns.Custom {
		return g.loader.Load(g.grid, pattern, nil)
	}

	for {
		fmt.Fprint(g.out, customPrompt)
		line, err := g.readLine()
		if err != nil {
			return errors.Wrap(err, "[choosePattern] reading custom coordinates")
		}

		cells, err := patterns.ParseCoordinates(line)
		if err == nil {
			err = g.loader.Load(g.grid, patterns.Custom, cells)
		}
		if err == nil {
			return nil
		}
		fmt.Fprintf(g.out, "Invalid coordinates: %v\n", err)
	}
}

// observe records the current generation in the run history and describes it
func (g *game) observe() (model.Snapshot, string) {
	snap := g.grid.Snapshot()

	// Check for stagnation before the generation joins the history
	isStagnant := g.grid.IsStagnant()
	g.grid.UpdateHistory()
	g.stats.Update(snap.Generation(), snap.Population(), g.lastStep)

	return snap, gameStatus(snap, isStagnant)
}

// gameStatus summarises a generation in one line
func gameStatus(snap model.Snapshot, isStagnant bool) string {
	living := snap.Population()
	density := float64(living) / float64(snap.Rows()*snap.Cols()) * 100

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if living == 0 {
		status = "Extinct"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		snap.Generation(), living, density, status)
}

func (g *game) limitReached(generation int) bool {
	return g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations
}

func (g *game) step() {
	start := time.Now()
	g.grid.Step()
	g.lastStep = time.Since(start)
}

// play runs the line-based loop: show a generation, then step on an empty
// line and stop on anything else or end of input
func (g *game) play() error {
	for {
		if g.config.ClearScreen {
			g.renderer.Clear()
		}

		snap, status := g.observe()
		if err := g.renderer.Display(snap); err != nil {
			return errors.Wrap(err, "[play] rendering grid")
		}
		fmt.Fprintln(g.out, status)

		if g.limitReached(snap.Generation()) {
			fmt.Fprintf(g.out, "Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return nil
		}

		fmt.Fprint(g.out, stepPrompt)
		line, err := g.readLine()
		if errors.Is(err, io.EOF) || (err == nil && line != "") {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "[play] reading step choice")
		}

		g.step()
	}
}

// playScreen runs the game on a full-screen terminal. Events are pumped from
// the screen by a separate goroutine; the screen is finalised on return.
func (g *game) playScreen(ctx context.Context, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalised
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer screen.Fini()
		defer cancel()
		alive, dead := g.config.Symbols()
		return g.screenLoop(ctx, model.NewScreenRenderer(screen, alive, dead), events)
	})

	return eg.Wait()
}

func (g *game) screenLoop(ctx context.Context, r *model.ScreenRenderer, events <-chan tcell.Event) error {
	snap, status := g.observe()
	for {
		done := g.limitReached(snap.Generation())
		if done {
			r.Display(snap, status+" | generation limit reached, any key: exit")
		} else {
			r.Display(snap, status+" | "+screenHint)
		}

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if done || ev.Key() != tcell.KeyEnter {
					return nil
				}
				g.step()
				snap, status = g.observe()
			case *tcell.EventResize:
				r.Screen.Sync()
			}
		}
	}
}

// displayFinalStats prints a summary of the run
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Fprintf(out, "Average population: %.1f | Peak population: %d\n",
		stats.AveragePopulation, stats.PeakPopulation)
}

// writeChart saves the population chart to path
func writeChart(path string, stats *utils.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writeChart] failed to create file: %+v", path)
	}
	if err := utils.WritePopulationChart(f, stats); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
