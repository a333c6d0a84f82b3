package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%v", err)
		}
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	ctx := context.Background()
	if config.Screen {
		// Line mode blocks on stdin, so signals are only routed in screen mode
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}

	if err := run(ctx, config, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run plays one session from pattern selection to final stats
func run(ctx context.Context, config utils.Config, in io.Reader, out io.Writer) error {
	g, err := initializeGame(config, in, out)
	if err != nil {
		return err
	}
	if err := g.choosePattern(); err != nil {
		return err
	}

	if config.Screen {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "[run] failed to open screen")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "[run] failed to initialise screen")
		}
		err = g.playScreen(ctx, screen)
		if err != nil {
			return err
		}
	} else if err := g.play(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	displayFinalStats(out, g.stats)

	if config.ChartPath != "" {
		if err := writeChart(config.ChartPath, g.stats); err != nil {
			return err
		}
		fmt.Fprintf(out, "Population chart written to %s\n", config.ChartPath)
	}
	return nil
}
