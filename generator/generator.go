// SPDX-License-Identifier: MIT

// Package generator produces a complete level in one call: a carved maze
// with a balanced finish and one start per player.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/maze"
	"github.com/simplehardware/labyrinth/placement"
)

// MinSize is the smallest grid GenerateBalanced accepts.
const MinSize = 5

// ErrGridTooSmall is returned for grids smaller than MinSize.
var ErrGridTooSmall = errors.New("generator: grid too small")

// Option customizes GenerateBalanced.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	logger    *slog.Logger
	placeOpts []placement.Option
}

// WithRand shares r between carving and placement.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG for carving and placement.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger logs generation and placement progress to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithPlacementOptions forwards opts to placement.Place. The generator's RNG
// and logger are applied first, so opts may override them.
func WithPlacementOptions(opts ...placement.Option) Option {
	return func(c *config) { c.placeOpts = append(c.placeOpts, opts...) }
}

// GenerateBalanced carves a maze over g and places one finish and players
// starts on it. Without WithRand or WithSeed a time-seeded RNG is used.
// On a placement failure g keeps the carved maze without markers.
func GenerateBalanced(g grid.Grid, players int, opts ...Option) (*placement.Placement, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	n := g.Size()
	if n < MinSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrGridTooSmall, n, MinSize)
	}
	if err := maze.Carve(g, cfg.rng); err != nil {
		return nil, fmt.Errorf("carve: %w", err)
	}
	cfg.logger.Debug("maze carved", "size", n, "floors", grid.Count(g, grid.Floor))

	placeOpts := append([]placement.Option{
		placement.WithRand(cfg.rng),
		placement.WithLogger(cfg.logger),
	}, cfg.placeOpts...)
	pl, err := placement.Place(g, players, placeOpts...)
	if err != nil {
		cfg.logger.Info("balanced placement failed", "size", n, "players", players, "error", err)
		return nil, fmt.Errorf("place: %w", err)
	}
	cfg.logger.Info("level generated", "size", n, "players", players,
		"finish", pl.Finish, "distances", pl.Distances, "attempts", pl.Attempts)
	return pl, nil
}
