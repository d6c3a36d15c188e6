// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/petmatch/petmatch/internal/recommend"
)

const historyKeyPrefix = "history:"

// HistoryStore persists per-user interaction histories. It implements
// recommend.HistoryStore.
type HistoryStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewHistoryStore creates a history store over db.
func NewHistoryStore(db *badger.DB, logger zerolog.Logger) *HistoryStore {
	return &HistoryStore{
		db:     db,
		logger: logger.With().Str("component", "history-store").Logger(),
	}
}

func historyKey(userID int64) []byte {
	return []byte(fmt.Sprintf("%s%d", historyKeyPrefix, userID))
}

// LoadHistory returns the stored history for a user, or an error wrapping
// recommend.ErrNotFound for users that never judged anything.
func (s *HistoryStore) LoadHistory(ctx context.Context, userID int64) (*recommend.InteractionHistory, error) {
	var hist recommend.InteractionHistory
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(historyKey(userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("history for user %d: %w", userID, recommend.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &hist)
		})
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			return nil, err
		}
		return nil, mapBadgerErr("load history", err)
	}
	hist.Normalize()
	return &hist, nil
}

// SaveHistory writes a user's history. A badger transaction conflict maps to
// recommend.ErrConcurrentMutation and leaves the stored history unchanged.
func (s *HistoryStore) SaveHistory(ctx context.Context, userID int64, hist *recommend.InteractionHistory) error {
	data, err := json.Marshal(hist)
	if err != nil {
		return fmt.Errorf("marshal history for user %d: %w", userID, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(historyKey(userID), data)
	})
	if err != nil {
		return mapBadgerErr("save history", err)
	}

	s.logger.Debug().Int64("user_id", userID).Msg("History persisted")
	return nil
}
