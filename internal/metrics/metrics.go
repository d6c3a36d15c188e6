// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

// Package metrics defines the Prometheus collectors for PetMatch.
//
// Instrumented surfaces:
//   - HTTP endpoint latency and throughput
//   - Badger store operations
//   - Recommendation ranking latency and judgment throughput
//   - Animal-provider circuit breaker state
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petmatch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "petmatch_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Store metrics.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petmatch_store_operations_total",
			Help: "Total number of badger store operations",
		},
		[]string{"operation", "result"},
	)

	// Recommendation metrics.
	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "petmatch_ranking_duration_seconds",
			Help:    "Duration of recommendation ranking in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RankedCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "petmatch_ranked_candidates",
			Help:    "Number of candidates returned per ranking request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	JudgmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petmatch_judgments_total",
			Help: "Total number of like/dislike judgments",
		},
		[]string{"kind", "result"},
	)

	// Circuit breaker state: 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "petmatch_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"breaker"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordStoreOperation records one store operation outcome.
func RecordStoreOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperations.WithLabelValues(operation, result).Inc()
}

// RecordJudgment records one like/dislike attempt.
func RecordJudgment(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	JudgmentsTotal.WithLabelValues(kind, result).Inc()
}

// RecordRanking records one ranking request.
func RecordRanking(candidates int, duration time.Duration) {
	RankingDuration.Observe(duration.Seconds())
	RankedCandidates.Observe(float64(candidates))
}

// SetBreakerState updates the breaker-state gauge from a state name.
func SetBreakerState(breaker, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	}
	BreakerState.WithLabelValues(breaker).Set(v)
}
