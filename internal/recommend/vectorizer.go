// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"strings"

	"github.com/petmatch/petmatch/internal/models"
)

// NumericBounds define the expected range of one numeric attribute. Values
// are normalized to [0,1] against the range; out-of-range values clamp to the
// nearest bound rather than failing.
type NumericBounds struct {
	Min float64
	Max float64
}

// DefaultNumericBounds returns the normalization bounds for the closed
// numeric key set: age in years, height and weight in shelter units.
func DefaultNumericBounds() map[AttributeKey]NumericBounds {
	return map[AttributeKey]NumericBounds{
		KeyAge:    {Min: 0, Max: 30},
		KeyHeight: {Min: 0, Max: 100},
		KeyWeight: {Min: 0, Max: 200},
	}
}

// Vectorizer converts animal listings into feature vectors. Vectorization is
// total and deterministic: the same listing always produces the same vector,
// and no listing can fail to vectorize.
type Vectorizer struct {
	bounds map[AttributeKey]NumericBounds
}

// NewVectorizer returns a vectorizer with the given numeric bounds. Keys
// missing from bounds fall back to DefaultNumericBounds.
func NewVectorizer(bounds map[AttributeKey]NumericBounds) *Vectorizer {
	merged := DefaultNumericBounds()
	for k, b := range bounds {
		if b.Max > b.Min {
			merged[k] = b
		}
	}
	return &Vectorizer{bounds: merged}
}

// Vectorize converts one listing into a FeatureVector. Categorical values are
// lowercased and trimmed; empty values are omitted. Numeric values are
// normalized to [0,1] with clamping; unrecorded values are omitted.
func (v *Vectorizer) Vectorize(a models.Animal) FeatureVector {
	fv := FeatureVector{
		Categorical: make(map[AttributeKey]string),
		Numeric:     make(map[AttributeKey]float64),
	}

	v.setCategorical(fv, KeySpecies, a.Species)
	v.setCategorical(fv, KeyBreed, a.Breed)
	v.setCategorical(fv, KeySex, string(a.Sex))
	v.setCategorical(fv, KeySize, string(a.Size))
	v.setCategorical(fv, KeyAgeClass, string(a.AgeClass))
	v.setCategorical(fv, KeyCity, a.City)
	v.setCategorical(fv, KeyState, a.State)

	v.setNumeric(fv, KeyAge, a.Age)
	v.setNumeric(fv, KeyHeight, a.Height)
	v.setNumeric(fv, KeyWeight, a.Weight)

	return fv
}

func (v *Vectorizer) setCategorical(fv FeatureVector, key AttributeKey, raw string) {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "" {
		return
	}
	fv.Categorical[key] = val
}

func (v *Vectorizer) setNumeric(fv FeatureVector, key AttributeKey, raw *float64) {
	if raw == nil {
		return
	}
	b := v.bounds[key]
	val := *raw
	if val < b.Min {
		val = b.Min
	}
	if val > b.Max {
		val = b.Max
	}
	fv.Numeric[key] = (val - b.Min) / (b.Max - b.Min)
}
