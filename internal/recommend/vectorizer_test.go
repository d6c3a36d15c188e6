// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"reflect"
	"testing"
	"time"

	"github.com/petmatch/petmatch/internal/models"
)

func TestVectorizerVectorize(t *testing.T) {
	v := NewVectorizer(nil)

	tests := []struct {
		name   string
		animal models.Animal
		verify func(t *testing.T, fv FeatureVector)
	}{
		{
			name: "full listing normalizes all attributes",
			animal: models.Animal{
				ID:       1,
				Species:  "Dog",
				Breed:    "  Labrador Retriever ",
				Sex:      models.SexFemale,
				Size:     models.SizeLarge,
				AgeClass: models.AgeClassAdult,
				City:     "Austin",
				State:    "TX",
				Age:      models.Float64Ptr(3),
				Height:   models.Float64Ptr(50),
				Weight:   models.Float64Ptr(30),
			},
			verify: func(t *testing.T, fv FeatureVector) {
				wantCat := map[AttributeKey]string{
					KeySpecies:  "dog",
					KeyBreed:    "labrador retriever",
					KeySex:      "female",
					KeySize:     "large",
					KeyAgeClass: "adult",
					KeyCity:     "austin",
					KeyState:    "tx",
				}
				if !reflect.DeepEqual(fv.Categorical, wantCat) {
					t.Errorf("categorical = %v, want %v", fv.Categorical, wantCat)
				}
				wantNum := map[AttributeKey]float64{
					KeyAge:    0.1,
					KeyHeight: 0.5,
					KeyWeight: 0.15,
				}
				if !reflect.DeepEqual(fv.Numeric, wantNum) {
					t.Errorf("numeric = %v, want %v", fv.Numeric, wantNum)
				}
			},
		},
		{
			name:   "missing attributes are omitted not zeroed",
			animal: models.Animal{ID: 2, Species: "Cat"},
			verify: func(t *testing.T, fv FeatureVector) {
				if len(fv.Categorical) != 1 || fv.Categorical[KeySpecies] != "cat" {
					t.Errorf("categorical = %v, want only species", fv.Categorical)
				}
				if len(fv.Numeric) != 0 {
					t.Errorf("numeric = %v, want empty", fv.Numeric)
				}
			},
		},
		{
			name: "out of range values clamp",
			animal: models.Animal{
				ID:     3,
				Age:    models.Float64Ptr(45),
				Weight: models.Float64Ptr(-5),
			},
			verify: func(t *testing.T, fv FeatureVector) {
				if got := fv.Numeric[KeyAge]; got != 1.0 {
					t.Errorf("age = %v, want 1.0", got)
				}
				if got := fv.Numeric[KeyWeight]; got != 0.0 {
					t.Errorf("weight = %v, want 0.0", got)
				}
			},
		},
		{
			name:   "whitespace-only categorical is omitted",
			animal: models.Animal{ID: 4, Breed: "   "},
			verify: func(t *testing.T, fv FeatureVector) {
				if _, ok := fv.Categorical[KeyBreed]; ok {
					t.Error("breed should be omitted for whitespace-only value")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, v.Vectorize(tt.animal))
		})
	}
}

func TestVectorizerDeterminism(t *testing.T) {
	v := NewVectorizer(nil)
	a := models.Animal{
		ID:         7,
		DatePosted: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Species:    "Dog",
		Breed:      "Beagle",
		Age:        models.Float64Ptr(2.5),
	}
	first := v.Vectorize(a)
	for i := 0; i < 10; i++ {
		if got := v.Vectorize(a); !reflect.DeepEqual(got, first) {
			t.Fatalf("vectorize not deterministic: run %d = %v, first = %v", i, got, first)
		}
	}
}

func TestVectorizerCustomBounds(t *testing.T) {
	v := NewVectorizer(map[AttributeKey]NumericBounds{
		KeyAge: {Min: 0, Max: 10},
	})
	fv := v.Vectorize(models.Animal{ID: 1, Age: models.Float64Ptr(5)})
	if got := fv.Numeric[KeyAge]; got != 0.5 {
		t.Errorf("age with custom bounds = %v, want 0.5", got)
	}

	// Invalid custom bounds fall back to defaults.
	v2 := NewVectorizer(map[AttributeKey]NumericBounds{
		KeyAge: {Min: 10, Max: 10},
	})
	fv2 := v2.Vectorize(models.Animal{ID: 1, Age: models.Float64Ptr(15)})
	if got := fv2.Numeric[KeyAge]; got != 0.5 {
		t.Errorf("age with invalid bounds = %v, want 0.5 (default 0-30)", got)
	}
}
