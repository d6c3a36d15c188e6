// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package models

import (
	"time"
)

// AnimalSex is the recorded sex of an animal.
type AnimalSex string

const (
	SexMale    AnimalSex = "MALE"
	SexFemale  AnimalSex = "FEMALE"
	SexUnknown AnimalSex = "UNKNOWN"
)

// Valid reports whether the value is a known sex.
func (s AnimalSex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	default:
		return false
	}
}

// AnimalSize is the coarse size class of an animal.
type AnimalSize string

const (
	SizeSmall  AnimalSize = "SMALL"
	SizeMedium AnimalSize = "MEDIUM"
	SizeLarge  AnimalSize = "LARGE"
	SizeXLarge AnimalSize = "XLARGE"
)

// Valid reports whether the value is a known size class.
func (s AnimalSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXLarge:
		return true
	default:
		return false
	}
}

// AnimalAgeClass is the life-stage class of an animal.
type AnimalAgeClass string

const (
	AgeClassBaby   AnimalAgeClass = "BABY"
	AgeClassYoung  AnimalAgeClass = "YOUNG"
	AgeClassAdult  AnimalAgeClass = "ADULT"
	AgeClassSenior AnimalAgeClass = "SENIOR"
)

// Valid reports whether the value is a known age class.
func (a AnimalAgeClass) Valid() bool {
	switch a {
	case AgeClassBaby, AgeClassYoung, AgeClassAdult, AgeClassSenior:
		return true
	default:
		return false
	}
}

// Animal is a single adoptable-animal listing.
//
// Numeric attributes are pointers so that "not recorded" is distinguishable
// from zero: a shelter that never weighed a kitten has not listed a
// zero-weight kitten. Categorical fields use the empty string for the same
// purpose.
type Animal struct {
	// ID is the listing identifier, assigned by the store on first insert.
	ID int64 `json:"id"`

	// CenterID identifies the adoption center that posted the listing.
	CenterID int64 `json:"center_id,omitempty"`

	// DatePosted is when the listing was created. It is the secondary sort
	// key for recommendations: equal scores rank newest-first.
	DatePosted time.Time `json:"date_posted"`

	// Name is the animal's display name.
	Name string `json:"name"`

	// Species is the free-form species label (e.g. "Dog", "Cat").
	Species string `json:"species"`

	// Breed is the free-form breed label.
	Breed string `json:"breed,omitempty"`

	// Sex is the recorded sex.
	Sex AnimalSex `json:"sex,omitempty"`

	// Size is the coarse size class.
	Size AnimalSize `json:"size,omitempty"`

	// AgeClass is the life-stage class.
	AgeClass AnimalAgeClass `json:"age_class,omitempty"`

	// Age is the age in years, if recorded.
	Age *float64 `json:"age,omitempty"`

	// Height is the height in shelter units, if recorded.
	Height *float64 `json:"height,omitempty"`

	// Weight is the weight in shelter units, if recorded.
	Weight *float64 `json:"weight,omitempty"`

	// City and State locate the adoption center.
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	// Description is the free-form listing text.
	Description string `json:"description,omitempty"`

	// PicPath is the listing photo path, if any.
	PicPath string `json:"pic_path,omitempty"`

	// Adopted marks a completed adoption. Adopted animals never reach the
	// recommendation core; the store filters them out of candidate sets.
	Adopted bool `json:"adopted"`
}

// Float64Ptr returns a pointer to v. Convenience for building listings with
// optional numeric attributes.
func Float64Ptr(v float64) *float64 {
	return &v
}
