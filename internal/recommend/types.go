// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"context"

	"github.com/petmatch/petmatch/internal/models"
)

// AttributeKey identifies one attribute of an animal listing in the closed
// key set the recommendation core operates over. Keys outside this set never
// enter a FeatureVector.
type AttributeKey string

// Categorical attribute keys.
const (
	KeySpecies  AttributeKey = "species"
	KeyBreed    AttributeKey = "breed"
	KeySex      AttributeKey = "sex"
	KeySize     AttributeKey = "size"
	KeyAgeClass AttributeKey = "ageClass"
	KeyCity     AttributeKey = "city"
	KeyState    AttributeKey = "state"
)

// Numeric attribute keys.
const (
	KeyAge    AttributeKey = "age"
	KeyHeight AttributeKey = "height"
	KeyWeight AttributeKey = "weight"
)

// CategoricalKeys returns the closed set of categorical attribute keys in a
// fixed order.
func CategoricalKeys() []AttributeKey {
	return []AttributeKey{KeySpecies, KeyBreed, KeySex, KeySize, KeyAgeClass, KeyCity, KeyState}
}

// NumericKeys returns the closed set of numeric attribute keys in a fixed
// order.
func NumericKeys() []AttributeKey {
	return []AttributeKey{KeyAge, KeyHeight, KeyWeight}
}

// FeatureVector is the vectorized form of a single animal listing.
//
// Categorical holds normalized (lowercased, trimmed) string values; Numeric
// holds values normalized into [0,1]. An attribute the listing does not
// record is absent from the map rather than present with a zero value.
type FeatureVector struct {
	Categorical map[AttributeKey]string
	Numeric     map[AttributeKey]float64
}

// ScoredCandidate pairs an animal listing with its score for one user.
type ScoredCandidate struct {
	Animal models.Animal `json:"animal"`
	Score  float64       `json:"score"`
}

// AnimalProvider supplies animal listings to the coordinator. Implementations
// include the badger-backed store and its circuit-breaker wrapper.
type AnimalProvider interface {
	// GetAnimalByID returns the listing with the given ID, or an error
	// wrapping ErrNotFound when no such listing exists.
	GetAnimalByID(ctx context.Context, id int64) (models.Animal, error)

	// GetNonAdoptedAnimals returns all listings still available for
	// adoption. Order is not significant; the coordinator sorts.
	GetNonAdoptedAnimals(ctx context.Context) ([]models.Animal, error)
}

// HistoryStore persists per-user interaction histories. Implementations must
// return an error wrapping ErrNotFound for users with no stored history and
// an error wrapping ErrConcurrentMutation when an optimistic write conflicts.
type HistoryStore interface {
	LoadHistory(ctx context.Context, userID int64) (*InteractionHistory, error)
	SaveHistory(ctx context.Context, userID int64, hist *InteractionHistory) error
}
