// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/simplehardware/labyrinth/config"
	"github.com/simplehardware/labyrinth/generator"
	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/reach"
)

func runGenerate(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", cfg.Size, "Grid size n (n×n, at least 5).")
	players := fs.Int("players", cfg.Players, "Number of players (1-8).")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed; 0 picks one from the clock.")
	strict := fs.Bool("strict", cfg.StrictSpread, "Require start distances to differ by at most tolerance × mean.")
	configPath := fs.String("config", "", "Optional HCL file with a maze block.")
	oneLine := fs.Bool("layout", false, "Print the slash-delimited layout on one line.")
	logLevel := fs.String("log-level", cfg.LogLevel, "Logging level: debug, info, warn, error.")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2}
	}

	if *configPath != "" {
		if cfg, err = config.LoadFile(*configPath, cfg); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}
	// Explicit flags win over env and file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "players":
			cfg.Players = *players
		case "seed":
			cfg.Seed = *seed
		case "strict":
			cfg.StrictSpread = *strict
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevel)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormat)
		}
	})
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("generate config resolved", "config", cfg)

	b := grid.NewBoard(cfg.Size)
	pl, err := generator.GenerateBalanced(b, cfg.Players,
		generator.WithSeed(cfg.Seed),
		generator.WithLogger(logger),
		generator.WithPlacementOptions(cfg.PlacementOptions()...),
	)
	if err != nil {
		return fmt.Errorf("generate %d×%d for %d players (seed %d): %w", cfg.Size, cfg.Size, cfg.Players, cfg.Seed, err)
	}

	layout := grid.Format(b)
	if *oneLine {
		fmt.Fprintln(stdout, layout)
	} else {
		for _, row := range strings.Split(layout, grid.RowSeparator) {
			fmt.Fprintln(stdout, row)
		}
	}
	fmt.Fprintf(stdout, "seed %d, regions %d, finish (%d,%d)\n",
		cfg.Seed, len(reach.Regions(b)), pl.Finish.X, pl.Finish.Y)
	for i, s := range pl.Starts {
		fmt.Fprintf(stdout, "player %d start (%d,%d) distance %d\n", i+1, s.X, s.Y, pl.Distances[i])
	}
	return nil
}
