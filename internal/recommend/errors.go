// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"errors"
)

// Sentinel errors returned by the recommendation core. Callers should test
// with errors.Is; concrete call sites wrap these with fmt.Errorf("%w") to add
// context.
var (
	// ErrNotFound indicates the referenced entity (animal, user history)
	// does not exist.
	ErrNotFound = errors.New("recommend: not found")

	// ErrInvalidOperation indicates the request is well-formed but violates a
	// domain rule, such as liking an animal the user already disliked.
	ErrInvalidOperation = errors.New("recommend: invalid operation")

	// ErrUpstreamUnavailable indicates the animal provider failed or its
	// circuit breaker is open. The caller may retry later.
	ErrUpstreamUnavailable = errors.New("recommend: upstream unavailable")

	// ErrConcurrentMutation indicates an optimistic persistence conflict:
	// two mutations raced on the same user's history and one lost. The
	// losing mutation was not applied.
	ErrConcurrentMutation = errors.New("recommend: concurrent mutation conflict")
)
