// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"context"

	"github.com/apex/log"

	"github.com/staranto/aocctl/internal/client"
	"github.com/staranto/aocctl/internal/puzzle"
	"github.com/staranto/aocctl/internal/store"
	"github.com/staranto/aocctl/internal/store/local"
)

// InputRepository returns puzzle inputs, going to the client only when the
// store has nothing for the puzzle. There is no locking: two concurrent misses
// for the same puzzle both fetch and the last write wins.
type InputRepository struct {
	store  store.Store
	client client.InputGetter
}

// New returns a repository caching under <cacheDir>/cached_inputs.
func New(cacheDir string, c client.InputGetter) *InputRepository {
	return NewWithStore(local.New(cacheDir), c)
}

// NewWithStore returns a repository over any store.
func NewWithStore(s store.Store, c client.InputGetter) *InputRepository {
	return &InputRepository{store: s, client: c}
}

// Get returns the input for (year, day). A store hit never touches the
// network. On a miss the input is fetched once, stored verbatim, and
// returned. Errors from the store and the client are returned as-is.
func (r *InputRepository) Get(ctx context.Context, year, day int) (puzzle.Input, error) {
	p, err := puzzle.New(year, day)
	if err != nil {
		return puzzle.Input{}, err
	}

	text, found, err := r.store.Get(ctx, p.Year, p.Day)
	if err != nil {
		return puzzle.Input{}, err
	}
	if found {
		return puzzle.Input{Year: p.Year, Day: p.Day, Input: text}, nil
	}

	log.Debugf("cache miss: %s", p)
	return r.fetchAndCache(ctx, p)
}

func (r *InputRepository) fetchAndCache(ctx context.Context, p puzzle.Puzzle) (puzzle.Input, error) {
	text, err := r.client.GetPuzzleInput(ctx, p.Year, p.Day)
	if err != nil {
		return puzzle.Input{}, err
	}
	if err := r.store.Put(ctx, p.Year, p.Day, text); err != nil {
		return puzzle.Input{}, err
	}
	return puzzle.Input{Year: p.Year, Day: p.Day, Input: text}, nil
}

// ClearCache removes every cached input, for all years and days.
func (r *InputRepository) ClearCache(ctx context.Context) error {
	return r.store.Clear(ctx)
}

// List returns the cached entries sorted by year and day.
func (r *InputRepository) List(ctx context.Context) ([]store.Entry, error) {
	return r.store.List(ctx)
}

// Root is where the cache tree lives.
func (r *InputRepository) Root() string {
	return r.store.Root()
}

// Path is where the input for (year, day) is, or would be, cached.
func (r *InputRepository) Path(year, day int) (string, error) {
	if err := puzzle.Validate(year, day); err != nil {
		return "", err
	}
	return r.store.Location(year, day), nil
}
