// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"math"
	"testing"
)

func TestEngineScoreEmptyHistoryIsZero(t *testing.T) {
	e := NewEngine(Weights{})
	fv := FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog", KeyBreed: "husky"},
		Numeric:     map[AttributeKey]float64{KeyAge: 0.4},
	}
	if got := e.Score(NewInteractionHistory(), fv); got != 0 {
		t.Errorf("score on empty history = %v, want 0", got)
	}
}

func TestEngineScoreDeterminism(t *testing.T) {
	e := NewEngine(Weights{})
	h := NewInteractionHistory()
	h.RecordLike(1, FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog", KeySize: "large"},
		Numeric:     map[AttributeKey]float64{KeyWeight: 0.2},
	})
	fv := FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog", KeySize: "small"},
		Numeric:     map[AttributeKey]float64{KeyWeight: 0.3},
	}
	first := e.Score(h, fv)
	for i := 0; i < 20; i++ {
		if got := e.Score(h, fv); got != first {
			t.Fatalf("score not deterministic: %v != %v", got, first)
		}
	}
}

func TestEngineScoreMonotonicity(t *testing.T) {
	// Each additional like of a matching attribute must not lower the score.
	e := NewEngine(Weights{})
	h := NewInteractionHistory()
	candidate := fvCat(map[AttributeKey]string{KeyBreed: "labrador"})

	prev := e.Score(h, candidate)
	for i := int64(1); i <= 5; i++ {
		h.RecordLike(i, fvCat(map[AttributeKey]string{KeyBreed: "labrador"}))
		got := e.Score(h, candidate)
		if got <= prev {
			t.Fatalf("score after %d likes = %v, not above previous %v", i, got, prev)
		}
		prev = got
	}
}

func TestEngineScoreSymmetry(t *testing.T) {
	// A like and a dislike of identical vectors cancel exactly.
	e := NewEngine(Weights{})
	h := NewInteractionHistory()
	fv := FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "cat", KeyCity: "denver"},
		Numeric:     map[AttributeKey]float64{KeyAge: 0.25, KeyHeight: 0.6},
	}
	h.RecordLike(1, fv)
	h.RecordDislike(2, fv)

	if got := e.Score(h, fv); math.Abs(got) > 1e-12 {
		t.Errorf("score after cancelling judgments = %v, want 0", got)
	}
}

func TestEngineScoreWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		want    float64
	}{
		{
			name:    "zero weights default to 1.0",
			weights: Weights{},
			want:    2.0, // species + breed affinities, each 1
		},
		{
			name:    "explicit default",
			weights: Weights{Default: 2.0},
			want:    4.0,
		},
		{
			name: "override beats default",
			weights: Weights{
				Default:   1.0,
				Overrides: map[AttributeKey]float64{KeyBreed: 5.0},
			},
			want: 6.0,
		},
		{
			name: "zero override silences an attribute",
			weights: Weights{
				Default:   1.0,
				Overrides: map[AttributeKey]float64{KeyBreed: 0},
			},
			want: 1.0,
		},
	}

	fv := fvCat(map[AttributeKey]string{KeySpecies: "dog", KeyBreed: "corgi"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInteractionHistory()
			h.RecordLike(1, fv)
			e := NewEngine(tt.weights)
			if got := e.Score(h, fv); got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngineScoreIgnoresAbsentAttributes(t *testing.T) {
	e := NewEngine(Weights{})
	h := NewInteractionHistory()
	h.RecordLike(1, FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog"},
		Numeric:     map[AttributeKey]float64{KeyAge: 0.5},
	})

	// Candidate without an age gets no numeric contribution at all.
	withAge := FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog"},
		Numeric:     map[AttributeKey]float64{KeyAge: 0.9},
	}
	withoutAge := fvCat(map[AttributeKey]string{KeySpecies: "dog"})

	if got, want := e.Score(h, withoutAge), 1.0; got != want {
		t.Errorf("score without age = %v, want %v", got, want)
	}
	if got := e.Score(h, withAge); got >= e.Score(h, withoutAge) {
		t.Errorf("candidate far from liked mean should score below one with no age: %v", got)
	}
}
