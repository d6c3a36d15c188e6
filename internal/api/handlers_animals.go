// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/petmatch/petmatch/internal/logging"
	"github.com/petmatch/petmatch/internal/metrics"
	"github.com/petmatch/petmatch/internal/models"
)

// createAnimalRequest is the POST /animals payload.
type createAnimalRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Species     string   `json:"species" validate:"required,max=50"`
	Breed       string   `json:"breed" validate:"omitempty,max=100"`
	Sex         string   `json:"sex" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Size        string   `json:"size" validate:"omitempty,oneof=SMALL MEDIUM LARGE XLARGE"`
	AgeClass    string   `json:"age_class" validate:"omitempty,oneof=BABY YOUNG ADULT SENIOR"`
	Age         *float64 `json:"age" validate:"omitempty,gte=0,lte=100"`
	Height      *float64 `json:"height" validate:"omitempty,gte=0"`
	Weight      *float64 `json:"weight" validate:"omitempty,gte=0"`
	City        string   `json:"city" validate:"omitempty,max=100"`
	State       string   `json:"state" validate:"omitempty,max=50"`
	Description string   `json:"description" validate:"omitempty,max=4000"`
	PicPath     string   `json:"pic_path" validate:"omitempty,max=500"`
	CenterID    int64    `json:"center_id" validate:"omitempty,gte=0"`
}

// CreateAnimal handles POST /api/v1/animals.
func (h *Handler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req createAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	animal := models.Animal{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Sex:         models.AnimalSex(req.Sex),
		Size:        models.AnimalSize(req.Size),
		AgeClass:    models.AnimalAgeClass(req.AgeClass),
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		City:        req.City,
		State:       req.State,
		Description: req.Description,
		PicPath:     req.PicPath,
		CenterID:    req.CenterID,
	}

	err := h.animals.PutAnimal(r.Context(), &animal)
	metrics.RecordStoreOperation("put_animal", err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("animal_id", animal.ID).
		Str("species", sanitizeLogValue(animal.Species)).
		Msg("Animal created")
	respondSuccess(w, r, http.StatusCreated, animal, started)
}

// ListAnimals handles GET /api/v1/animals.
func (h *Handler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	animals, err := h.animals.ListAnimals(r.Context())
	metrics.RecordStoreOperation("list_animals", err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"items": animals,
		"count": len(animals),
	}, started)
}

// GetAnimal handles GET /api/v1/animals/{animalID}.
func (h *Handler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, err := pathID(r, "animalID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "animalID must be a positive integer", err)
		return
	}

	animal, err := h.animals.GetAnimalByID(r.Context(), id)
	metrics.RecordStoreOperation("get_animal", err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, animal, started)
}

// AdoptAnimal handles PUT /api/v1/animals/{animalID}/adopt.
func (h *Handler) AdoptAnimal(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, err := pathID(r, "animalID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "animalID must be a positive integer", err)
		return
	}

	err = h.animals.MarkAdopted(r.Context(), id)
	metrics.RecordStoreOperation("mark_adopted", err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("animal_id", id).Msg("Animal adopted")
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"id": id, "adopted": true}, started)
}

// DeleteAnimal handles DELETE /api/v1/animals/{animalID}.
func (h *Handler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, err := pathID(r, "animalID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "animalID must be a positive integer", err)
		return
	}

	err = h.animals.DeleteAnimal(r.Context(), id)
	metrics.RecordStoreOperation("delete_animal", err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("animal_id", id).Msg("Animal deleted")
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"id": id, "deleted": true}, started)
}
