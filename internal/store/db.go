// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Options configure the badger database.
type Options struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string

	// InMemory runs badger without persistence.
	InMemory bool
}

// Open opens the badger database. Badger's own logger is silenced; the store
// logs through zerolog instead.
func Open(opts Options, logger zerolog.Logger) (*badger.DB, error) {
	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	badgerOpts = badgerOpts.WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	logger.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Msg("Badger store opened")
	return db, nil
}

// GCService runs badger value-log garbage collection on an interval. It
// implements suture.Service so the supervision tree owns its lifecycle.
type GCService struct {
	db       *badger.DB
	interval time.Duration
	logger   zerolog.Logger
}

// NewGCService creates a garbage-collection service for db.
func NewGCService(db *badger.DB, interval time.Duration, logger zerolog.Logger) *GCService {
	return &GCService{
		db:       db,
		interval: interval,
		logger:   logger.With().Str("component", "store-gc").Logger(),
	}
}

// Serve implements suture.Service.
func (s *GCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// RunValueLogGC returns ErrNoRewrite when there is nothing to
			// collect; that is the common case, not a failure.
			err := s.db.RunValueLogGC(0.5)
			switch {
			case err == nil:
				s.logger.Debug().Msg("Value log GC reclaimed space")
			case errors.Is(err, badger.ErrNoRewrite):
			case errors.Is(err, badger.ErrRejected):
			default:
				s.logger.Warn().Err(err).Msg("Value log GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *GCService) String() string {
	return "store-gc"
}
