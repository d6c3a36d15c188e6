// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package recommend implements the personalized recommendation core.
//
// The pipeline has four stages:
//
//   - Vectorizer converts an animal listing into a FeatureVector over a
//     closed set of attribute keys (categorical and numeric).
//   - InteractionHistory accumulates a user's like/dislike signals as signed
//     per-attribute counters and running numeric means, and remembers which
//     animals the user has already judged.
//   - Engine scores a candidate vector against a history: the weighted sum of
//     per-attribute affinities. Scoring is pure and deterministic.
//   - Coordinator ties the stages together: it fetches candidates from an
//     AnimalProvider, ranks them, excludes already-judged animals, and applies
//     judgments atomically under per-user locking.
//
// All scoring is explainable: every score decomposes into per-attribute
// affinity times weight, with no hidden randomness or model state.
//
// Failures surface through a small sentinel-error taxonomy (ErrNotFound,
// ErrInvalidOperation, ErrUpstreamUnavailable, ErrConcurrentMutation) that
// callers test with errors.Is.
package recommend
