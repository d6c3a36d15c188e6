// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/petmatch/petmatch/internal/logging"
	"github.com/petmatch/petmatch/internal/metrics"
)

// Recommendations handles GET /api/v1/recommendations/{userID}.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "userID must be a positive integer", err)
		return
	}

	ranked, err := h.recommender.FetchRanked(r.Context(), userID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	metrics.RecordRanking(len(ranked), time.Since(started))

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"items": ranked,
		"count": len(ranked),
	}, started)
}

// LikeAnimal handles PUT /api/v1/recommendations/{userID}/like/{animalID}.
func (h *Handler) LikeAnimal(w http.ResponseWriter, r *http.Request) {
	h.judge(w, r, "like", h.recommender.Like)
}

// DislikeAnimal handles PUT /api/v1/recommendations/{userID}/dislike/{animalID}.
func (h *Handler) DislikeAnimal(w http.ResponseWriter, r *http.Request) {
	h.judge(w, r, "dislike", h.recommender.Dislike)
}

func (h *Handler) judge(w http.ResponseWriter, r *http.Request, kind string, apply func(ctx context.Context, userID, animalID int64) error) {
	started := time.Now()

	userID, err := pathID(r, "userID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "userID must be a positive integer", err)
		return
	}
	animalID, err := pathID(r, "animalID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "animalID must be a positive integer", err)
		return
	}

	err = apply(r.Context(), userID, animalID)
	metrics.RecordJudgment(kind, err)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("user_id", userID).
		Int64("animal_id", animalID).
		Str("kind", kind).
		Msg("Judgment accepted")
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"user_id":   userID,
		"animal_id": animalID,
		"judgment":  kind,
	}, started)
}
