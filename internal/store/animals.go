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
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/petmatch/petmatch/internal/models"
	"github.com/petmatch/petmatch/internal/recommend"
)

// Key prefixes for BadgerDB storage.
const (
	animalKeyPrefix = "animal:"
	animalSeqKey    = "seq:animal"
)

// AnimalStore persists animal listings. It implements
// recommend.AnimalProvider.
type AnimalStore struct {
	db     *badger.DB
	seq    *badger.Sequence
	logger zerolog.Logger
}

// NewAnimalStore creates an animal store over db. The store owns a badger
// sequence for ID assignment; call Close to release it.
func NewAnimalStore(db *badger.DB, logger zerolog.Logger) (*AnimalStore, error) {
	seq, err := db.GetSequence([]byte(animalSeqKey), 64)
	if err != nil {
		return nil, fmt.Errorf("animal id sequence: %w", err)
	}
	return &AnimalStore{
		db:     db,
		seq:    seq,
		logger: logger.With().Str("component", "animal-store").Logger(),
	}, nil
}

// Close releases the ID sequence. Unused IDs in the current lease are lost,
// which is fine: IDs are unique, not dense.
func (s *AnimalStore) Close() error {
	return s.seq.Release()
}

func animalKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", animalKeyPrefix, id))
}

// PutAnimal inserts or updates a listing. A zero ID gets the next sequence
// value; a zero DatePosted gets the current time.
func (s *AnimalStore) PutAnimal(ctx context.Context, animal *models.Animal) error {
	if animal.ID == 0 {
		next, err := s.seq.Next()
		if err != nil {
			return fmt.Errorf("next animal id: %w", err)
		}
		// Sequence starts at 0; listing IDs start at 1.
		animal.ID = int64(next) + 1
	}
	if animal.DatePosted.IsZero() {
		animal.DatePosted = time.Now().UTC()
	}

	data, err := json.Marshal(animal)
	if err != nil {
		return fmt.Errorf("marshal animal %d: %w", animal.ID, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(animalKey(animal.ID), data)
	})
	if err != nil {
		return mapBadgerErr("put animal", err)
	}

	s.logger.Debug().Int64("animal_id", animal.ID).Str("name", animal.Name).Msg("Animal stored")
	return nil
}

// GetAnimalByID returns one listing. Missing listings return an error
// wrapping recommend.ErrNotFound.
func (s *AnimalStore) GetAnimalByID(ctx context.Context, id int64) (models.Animal, error) {
	var animal models.Animal
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(animalKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("animal %d: %w", id, recommend.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &animal)
		})
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			return models.Animal{}, err
		}
		return models.Animal{}, mapBadgerErr("get animal", err)
	}
	return animal, nil
}

// GetNonAdoptedAnimals returns every listing still available for adoption.
// Adopted listings are filtered here so the recommendation core never sees
// them.
func (s *AnimalStore) GetNonAdoptedAnimals(ctx context.Context) ([]models.Animal, error) {
	animals, err := s.list(func(a models.Animal) bool { return !a.Adopted })
	if err != nil {
		return nil, mapBadgerErr("list non-adopted animals", err)
	}
	return animals, nil
}

// ListAnimals returns every listing, adopted included.
func (s *AnimalStore) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	animals, err := s.list(func(models.Animal) bool { return true })
	if err != nil {
		return nil, mapBadgerErr("list animals", err)
	}
	return animals, nil
}

func (s *AnimalStore) list(keep func(models.Animal) bool) ([]models.Animal, error) {
	var animals []models.Animal
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(animalKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var a models.Animal
				if err := json.Unmarshal(val, &a); err != nil {
					return fmt.Errorf("unmarshal animal %s: %w", it.Item().Key(), err)
				}
				if keep(a) {
					animals = append(animals, a)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// MarkAdopted flags a listing as adopted. Returns recommend.ErrNotFound for
// unknown listings and recommend.ErrInvalidOperation when the listing is
// already adopted.
func (s *AnimalStore) MarkAdopted(ctx context.Context, id int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(animalKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("animal %d: %w", id, recommend.ErrNotFound)
		}
		if err != nil {
			return err
		}

		var animal models.Animal
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &animal)
		}); err != nil {
			return err
		}
		if animal.Adopted {
			return fmt.Errorf("animal %d already adopted: %w", id, recommend.ErrInvalidOperation)
		}

		animal.Adopted = true
		data, err := json.Marshal(&animal)
		if err != nil {
			return fmt.Errorf("marshal animal %d: %w", id, err)
		}
		return txn.Set(animalKey(id), data)
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) || errors.Is(err, recommend.ErrInvalidOperation) {
			return err
		}
		return mapBadgerErr("mark adopted", err)
	}

	s.logger.Info().Int64("animal_id", id).Msg("Animal marked adopted")
	return nil
}

// DeleteAnimal removes a listing. Deleting an unknown listing returns
// recommend.ErrNotFound.
func (s *AnimalStore) DeleteAnimal(ctx context.Context, id int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(animalKey(id)); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("animal %d: %w", id, recommend.ErrNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(animalKey(id))
	})
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			return err
		}
		return mapBadgerErr("delete animal", err)
	}

	s.logger.Info().Int64("animal_id", id).Msg("Animal deleted")
	return nil
}

// mapBadgerErr folds badger transaction conflicts into the recommendation
// error taxonomy.
func mapBadgerErr(op string, err error) error {
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%s: %w", op, recommend.ErrConcurrentMutation)
	}
	return fmt.Errorf("%s: %w", op, err)
}
