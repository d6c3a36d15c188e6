// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func fvCat(pairs map[AttributeKey]string) FeatureVector {
	return FeatureVector{Categorical: pairs, Numeric: map[AttributeKey]float64{}}
}

func fvNum(pairs map[AttributeKey]float64) FeatureVector {
	return FeatureVector{Categorical: map[AttributeKey]string{}, Numeric: pairs}
}

func TestHistoryEmptyAffinitiesAreZero(t *testing.T) {
	h := NewInteractionHistory()
	if !h.Empty() {
		t.Fatal("new history should be empty")
	}
	if got := h.CategoricalAffinity(KeySpecies, "dog"); got != 0 {
		t.Errorf("categorical affinity = %v, want 0", got)
	}
	if got := h.NumericAffinity(KeyAge, 0.5); got != 0 {
		t.Errorf("numeric affinity = %v, want 0", got)
	}
}

func TestHistoryCategoricalAffinity(t *testing.T) {
	tests := []struct {
		name     string
		likes    int
		dislikes int
		want     float64
	}{
		{name: "likes only", likes: 3, dislikes: 0, want: 3},
		{name: "dislikes only", likes: 0, dislikes: 2, want: -2},
		{name: "mixed", likes: 5, dislikes: 2, want: 3},
		{name: "balanced cancels", likes: 4, dislikes: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInteractionHistory()
			fv := fvCat(map[AttributeKey]string{KeyBreed: "beagle"})
			id := int64(1)
			for i := 0; i < tt.likes; i++ {
				h.RecordLike(id, fv)
				id++
			}
			for i := 0; i < tt.dislikes; i++ {
				h.RecordDislike(id, fv)
				id++
			}
			if got := h.CategoricalAffinity(KeyBreed, "beagle"); got != tt.want {
				t.Errorf("affinity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistoryNumericAffinity(t *testing.T) {
	h := NewInteractionHistory()
	h.RecordLike(1, fvNum(map[AttributeKey]float64{KeyAge: 0.2}))
	h.RecordLike(2, fvNum(map[AttributeKey]float64{KeyAge: 0.4}))
	// liked mean = 0.3

	if got, want := h.NumericAffinity(KeyAge, 0.3), 0.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("affinity at liked mean = %v, want %v", got, want)
	}
	if got, want := h.NumericAffinity(KeyAge, 0.5), -0.2; math.Abs(got-want) > 1e-12 {
		t.Errorf("affinity away from liked mean = %v, want %v", got, want)
	}

	h.RecordDislike(3, fvNum(map[AttributeKey]float64{KeyAge: 0.9}))
	// disliked mean = 0.9: distance from it is rewarded
	got := h.NumericAffinity(KeyAge, 0.3)
	want := -0.0 + 0.6
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("affinity with both sides = %v, want %v", got, want)
	}
}

func TestHistoryRecordTouchesExactlyOneSide(t *testing.T) {
	h := NewInteractionHistory()
	fv := FeatureVector{
		Categorical: map[AttributeKey]string{KeySpecies: "dog"},
		Numeric:     map[AttributeKey]float64{KeyAge: 0.1},
	}
	h.RecordLike(1, fv)

	if h.LikedCategorical[KeySpecies]["dog"] != 1 {
		t.Error("like not recorded on liked side")
	}
	if len(h.DislikedCategorical) != 0 || len(h.DislikedNumericCount) != 0 {
		t.Error("like leaked onto disliked side")
	}
	if !h.Liked(1) || h.Disliked(1) {
		t.Error("judgment set wrong after like")
	}

	h.RecordDislike(2, fv)
	if h.DislikedCategorical[KeySpecies]["dog"] != 1 {
		t.Error("dislike not recorded on disliked side")
	}
	if h.LikedCategorical[KeySpecies]["dog"] != 1 {
		t.Error("dislike mutated liked side")
	}
}

func TestHistoryCloneIsDeep(t *testing.T) {
	h := NewInteractionHistory()
	h.RecordLike(1, FeatureVector{
		Categorical: map[AttributeKey]string{KeyBreed: "pug"},
		Numeric:     map[AttributeKey]float64{KeyWeight: 0.1},
	})

	c := h.Clone()
	if !reflect.DeepEqual(h, c) {
		t.Fatal("clone differs from original")
	}

	c.RecordDislike(2, fvCat(map[AttributeKey]string{KeyBreed: "pug"}))
	if h.Disliked(2) {
		t.Error("mutating clone leaked into original judgment set")
	}
	if h.CategoricalAffinity(KeyBreed, "pug") != 1 {
		t.Error("mutating clone changed original affinity")
	}
}

func TestHistoryNormalizeRepairsNilMaps(t *testing.T) {
	var h InteractionHistory
	h.Normalize()
	// Must not panic and must accept mutations.
	h.RecordLike(1, fvCat(map[AttributeKey]string{KeySpecies: "cat"}))
	if !h.Liked(1) {
		t.Error("normalized history did not record like")
	}
}
