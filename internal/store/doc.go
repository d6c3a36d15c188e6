// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package store persists animal listings and interaction histories in
// BadgerDB.
//
// Two stores share one DB:
//   - AnimalStore: listing CRUD plus the candidate queries the
//     recommendation coordinator needs. Implements recommend.AnimalProvider.
//   - HistoryStore: durable per-user interaction histories. Implements
//     recommend.HistoryStore.
//
// Values are goccy/go-json encoded. Badger's optimistic transactions surface
// write conflicts, which both stores map onto
// recommend.ErrConcurrentMutation; missing keys map onto recommend.ErrNotFound.
package store
