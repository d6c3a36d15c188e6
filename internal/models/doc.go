// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package models defines the shared data types of the PetMatch service.
//
// Domain types:
//   - Animal: an adoptable-animal listing with categorical, numeric, and
//     geographic attributes
//   - AnimalSex, AnimalSize, AnimalAgeClass: closed enums over the
//     categorical attributes
//
// API types:
//   - APIResponse: standardized response wrapper
//   - APIError: structured error details
//   - Metadata: response timing and tracing metadata
//
// The package has no dependencies on other internal packages so that every
// layer (store, recommendation core, HTTP API) can share these types without
// import cycles.
package models
