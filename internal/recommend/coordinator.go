// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Coordinator orchestrates the recommendation pipeline for all users.
//
// Concurrency model: each user has a registry entry carrying a mutex and an
// atomically published history pointer. Mutations (Like, Dislike) serialize
// per user under the entry mutex; different users never block one another.
// Mutations work on a clone of the current history and publish the clone only
// after persistence succeeds, so any failure leaves the visible history
// untouched and readers never observe a partial update.
type Coordinator struct {
	provider   AnimalProvider
	histories  HistoryStore
	vectorizer *Vectorizer
	engine     *Engine
	logger     zerolog.Logger

	mu    sync.Mutex
	users map[int64]*userEntry
}

type userEntry struct {
	mu       sync.Mutex
	hydrated bool
	hist     atomic.Pointer[InteractionHistory]
}

// NewCoordinator builds a coordinator. histories may be nil, in which case
// interaction histories are held in memory only.
func NewCoordinator(provider AnimalProvider, histories HistoryStore, vectorizer *Vectorizer, engine *Engine, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		provider:   provider,
		histories:  histories,
		vectorizer: vectorizer,
		engine:     engine,
		logger:     logger.With().Str("component", "coordinator").Logger(),
		users:      make(map[int64]*userEntry),
	}
}

// FetchRanked returns all non-adopted animals the user has not yet judged,
// scored against the user's history and sorted by score descending. Ties
// break by most recent DatePosted, then highest ID, so the ordering is
// deterministic for a fixed candidate set and history.
func (c *Coordinator) FetchRanked(ctx context.Context, userID int64) ([]ScoredCandidate, error) {
	entry, err := c.entry(ctx, userID)
	if err != nil {
		return nil, err
	}
	hist := entry.hist.Load()

	animals, err := c.provider.GetNonAdoptedAnimals(ctx)
	if err != nil {
		return nil, c.providerErr("list candidates", err)
	}

	ranked := make([]ScoredCandidate, 0, len(animals))
	for _, a := range animals {
		if hist.Judged(a.ID) {
			continue
		}
		fv := c.vectorizer.Vectorize(a)
		ranked = append(ranked, ScoredCandidate{
			Animal: a,
			Score:  c.engine.Score(hist, fv),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if !ranked[i].Animal.DatePosted.Equal(ranked[j].Animal.DatePosted) {
			return ranked[i].Animal.DatePosted.After(ranked[j].Animal.DatePosted)
		}
		return ranked[i].Animal.ID > ranked[j].Animal.ID
	})

	c.logger.Debug().
		Int64("user_id", userID).
		Int("candidates", len(animals)).
		Int("ranked", len(ranked)).
		Msg("Ranked recommendations computed")
	return ranked, nil
}

// Like records a like judgment for (userID, animalID).
//
// Returns an error wrapping ErrNotFound when the animal does not exist,
// ErrInvalidOperation when the user has already judged it (either way),
// ErrUpstreamUnavailable on provider failure, and ErrConcurrentMutation when
// the durable store rejects the write. On any error the user's visible
// history is unchanged.
func (c *Coordinator) Like(ctx context.Context, userID, animalID int64) error {
	return c.judge(ctx, userID, animalID, true)
}

// Dislike records a dislike judgment for (userID, animalID). Error contract
// matches Like.
func (c *Coordinator) Dislike(ctx context.Context, userID, animalID int64) error {
	return c.judge(ctx, userID, animalID, false)
}

// History returns the user's current history snapshot. The returned value is
// immutable by convention: callers must not mutate it.
func (c *Coordinator) History(ctx context.Context, userID int64) (*InteractionHistory, error) {
	entry, err := c.entry(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entry.hist.Load(), nil
}

func (c *Coordinator) judge(ctx context.Context, userID, animalID int64, like bool) error {
	entry, err := c.entry(ctx, userID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	animal, err := c.provider.GetAnimalByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return c.providerErr("lookup animal", err)
	}

	hist := entry.hist.Load()
	if hist.Liked(animalID) {
		return fmt.Errorf("%w: animal %d already liked by user %d", ErrInvalidOperation, animalID, userID)
	}
	if hist.Disliked(animalID) {
		return fmt.Errorf("%w: animal %d already disliked by user %d", ErrInvalidOperation, animalID, userID)
	}

	next := hist.Clone()
	fv := c.vectorizer.Vectorize(animal)
	if like {
		next.RecordLike(animalID, fv)
	} else {
		next.RecordDislike(animalID, fv)
	}

	if c.histories != nil {
		if err := c.histories.SaveHistory(ctx, userID, next); err != nil {
			return fmt.Errorf("persist history for user %d: %w", userID, err)
		}
	}
	entry.hist.Store(next)

	c.logger.Info().
		Int64("user_id", userID).
		Int64("animal_id", animalID).
		Bool("like", like).
		Msg("Judgment recorded")
	return nil
}

// entry returns the user's registry entry, creating and hydrating it from the
// history store on first use.
func (c *Coordinator) entry(ctx context.Context, userID int64) (*userEntry, error) {
	c.mu.Lock()
	e, ok := c.users[userID]
	if !ok {
		e = &userEntry{}
		e.hist.Store(NewInteractionHistory())
		c.users[userID] = e
	}
	c.mu.Unlock()

	if err := c.hydrate(ctx, userID, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (c *Coordinator) hydrate(ctx context.Context, userID int64, e *userEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.hydrated || c.histories == nil {
		e.hydrated = true
		return nil
	}
	hist, err := c.histories.LoadHistory(ctx, userID)
	switch {
	case err == nil:
		hist.Normalize()
		e.hist.Store(hist)
	case errors.Is(err, ErrNotFound):
		// First contact with this user.
	default:
		return fmt.Errorf("load history for user %d: %w", userID, err)
	}
	e.hydrated = true
	return nil
}

// providerErr normalizes provider failures onto the error taxonomy. Errors
// already carrying a sentinel pass through unchanged.
func (c *Coordinator) providerErr(op string, err error) error {
	if errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUpstreamUnavailable, err)
}
