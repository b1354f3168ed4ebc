package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

func main() {
	logger := log.New(os.Stderr, "gol: ", 0)

	config, err := loadConfig(os.Args[1:], logger)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	board, renderer, stats, err := initializeGame(config, os.Stdout)
	if err != nil {
		logger.Fatalf("init: %v", err)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		result    outcome
	)
	eg.Go(func() error {
		defer cancel()
		var err error
		result, err = run(egCtx, board, renderer, stats, config)
		return err
	})
	eg.Go(func() error {
		select {
		case <-sigChan:
			cancel()
		case <-egCtx.Done():
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.Fatalf("run: %v", err)
	}
	displayFinalStats(os.Stdout, result, stats)
}
