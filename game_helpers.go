package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

const defaultConfigFile = "config.json"

// outcome names why the game loop stopped
type outcome string

const (
	outcomeExtinct         outcome = "extinction"
	outcomeGenerationLimit outcome = "generation limit"
	outcomeInterrupted     outcome = "interrupted"
)

// loadConfig layers the optional config file, GOL_* environment and command-line flags
func loadConfig(args []string, logger *log.Logger) (utils.Config, error) {
	var (
		flags = utils.DefaultConfig()
		fs    = flag.NewFlagSet("gol", flag.ContinueOnError)
	)
	fs.SetOutput(logger.Writer())
	configFile := fs.String("config", defaultConfigFile, "path to a JSON config file")
	fs.IntVar(&flags.Rows, "rows", flags.Rows, "number of board rows")
	fs.IntVar(&flags.Columns, "columns", flags.Columns, "number of board columns")
	fs.IntVar(&flags.LivePercent, "live", flags.LivePercent, "percentage of cells seeded alive [0,100]")
	fs.DurationVar(&flags.FrameRate, "frame-rate", flags.FrameRate, "pause between generations")
	fs.IntVar(&flags.MaxGenerations, "max-generations", flags.MaxGenerations, "stop after this many generations (0 = until extinction)")
	fs.Int64Var(&flags.Seed, "seed", flags.Seed, "random seed for reproducibility (0 = random)")
	if err := fs.Parse(args); err != nil {
		return flags, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		logger.Printf("using default configuration (%s not found)", *configFile)
		config = utils.DefaultConfig()
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}

	// Only flags given explicitly override the file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			config.Rows = flags.Rows
		case "columns":
			config.Columns = flags.Columns
		case "live":
			config.LivePercent = flags.LivePercent
		case "frame-rate":
			config.FrameRate = flags.FrameRate
		case "max-generations":
			config.MaxGenerations = flags.MaxGenerations
		case "seed":
			config.Seed = flags.Seed
		}
	})

	return config, config.Validate()
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Board,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed, err := utils.ResolveSeed(config.Seed)
	if err != nil {
		return nil, nil, nil, err
	}

	board, err := model.NewBoard(config.Rows, config.Columns, config.LivePercent, utils.NewRand(seed))
	if err != nil {
		return nil, nil, nil, err
	}

	renderer := &model.TerminalRenderer{Out: out}
	stats := utils.NewStats()

	return board, renderer, stats, nil
}

// run drives the board until extinction, the generation limit or cancellation
func run(
	ctx context.Context,
	board *model.Board,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) (outcome, error) {
	for {
		livingCells := board.CountAliveCells()
		if livingCells == 0 {
			return outcomeExtinct, nil
		}
		if config.MaxGenerations > 0 && board.Generation() > config.MaxGenerations {
			return outcomeGenerationLimit, nil
		}

		stats.Update(board.Generation(), livingCells)
		if err := renderer.Display(board); err != nil {
			return "", errors.Wrap(err, "[run] failed to display board")
		}

		board.NextGeneration()

		if err := pause(ctx, config.FrameRate); err != nil {
			return outcomeInterrupted, nil
		}
		if err := renderer.Clear(); err != nil {
			return "", errors.Wrap(err, "[run] failed to clear screen")
		}
	}
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// displayFinalStats shows the run summary
func displayFinalStats(out io.Writer, result outcome, stats *utils.Stats) {
	fmt.Fprintf(out, "\nStopped: %s\n", result)
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Elapsed().Seconds())
	fmt.Fprintf(out, "Peak population: %d | Avg Pop: %.1f\n",
		stats.PeakPopulation, stats.AveragePopulation)
}
