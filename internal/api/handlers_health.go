// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package api

import (
	"net/http"
	"time"
)

// Health handles GET /api/v1/health. It reports overall status plus the
// readiness check outcome.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	status := "healthy"
	var checkErr string
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			status = "degraded"
			checkErr = err.Error()
		}
	}

	data := map[string]interface{}{
		"status": status,
	}
	if checkErr != "" {
		data["error"] = checkErr
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondSuccess(w, r, code, data, started)
}

// HealthLive handles GET /api/v1/health/live. Liveness means the process is
// serving requests; it never consults dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"status": "alive"}, time.Now())
}

// HealthReady handles GET /api/v1/health/ready.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Service is not ready", err)
			return
		}
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{"status": "ready"}, started)
}
