// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/petmatch/petmatch/internal/models"
)

// BreakerProvider wraps an AnimalProvider with a circuit breaker. Provider
// failures trip the breaker; once open, calls fail fast with
// ErrUpstreamUnavailable instead of hammering a struggling store.
//
// ErrNotFound is a correct answer, not a provider failure: it passes through
// without counting against the breaker.
type BreakerProvider struct {
	inner  AnimalProvider
	cb     *gobreaker.CircuitBreaker[any]
	logger zerolog.Logger
}

// NewBreakerProvider wraps inner with a breaker built from cfg. onStateChange
// may be nil; when set it is invoked on every breaker state transition (used
// to feed the breaker-state gauge).
func NewBreakerProvider(inner AnimalProvider, cfg BreakerConfig, logger zerolog.Logger, onStateChange func(name, from, to string)) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        "animal-provider",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			if onStateChange != nil {
				onStateChange(name, from.String(), to.String())
			}
		},
	}
	return &BreakerProvider{
		inner:  inner,
		cb:     gobreaker.NewCircuitBreaker[any](settings),
		logger: logger,
	}
}

// GetAnimalByID implements AnimalProvider.
func (p *BreakerProvider) GetAnimalByID(ctx context.Context, id int64) (models.Animal, error) {
	var (
		animal   models.Animal
		notFound error
	)
	_, err := p.cb.Execute(func() (any, error) {
		a, err := p.inner.GetAnimalByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				notFound = err
				return nil, nil
			}
			return nil, err
		}
		animal = a
		return nil, nil
	})
	if err != nil {
		return models.Animal{}, p.mapError(err)
	}
	if notFound != nil {
		return models.Animal{}, notFound
	}
	return animal, nil
}

// GetNonAdoptedAnimals implements AnimalProvider.
func (p *BreakerProvider) GetNonAdoptedAnimals(ctx context.Context) ([]models.Animal, error) {
	var animals []models.Animal
	_, err := p.cb.Execute(func() (any, error) {
		a, err := p.inner.GetNonAdoptedAnimals(ctx)
		if err != nil {
			return nil, err
		}
		animals = a
		return nil, nil
	})
	if err != nil {
		return nil, p.mapError(err)
	}
	return animals, nil
}

// State returns the breaker's current state for health reporting.
func (p *BreakerProvider) State() gobreaker.State {
	return p.cb.State()
}

func (p *BreakerProvider) mapError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: circuit open", ErrUpstreamUnavailable)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
