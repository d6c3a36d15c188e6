// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

// InteractionHistory accumulates one user's like/dislike signals.
//
// Categorical signals are per-(attribute, value) counts, kept separately for
// likes and dislikes so the affinity is their signed difference. Numeric
// signals are running sum+count pairs per attribute, giving incremental means
// without retaining individual observations. Judgment sets record which
// animals the user has already judged, so conflicting judgments can be
// rejected and judged animals excluded from rankings.
//
// The struct itself is not safe for concurrent use. The Coordinator provides
// concurrency control: it clones, mutates, and atomically publishes
// histories, so readers outside the coordinator only ever see immutable
// snapshots. All fields are exported with JSON tags so the history store can
// serialize histories directly.
type InteractionHistory struct {
	LikedCategorical    map[AttributeKey]map[string]int `json:"liked_categorical"`
	DislikedCategorical map[AttributeKey]map[string]int `json:"disliked_categorical"`

	LikedNumericSum      map[AttributeKey]float64 `json:"liked_numeric_sum"`
	LikedNumericCount    map[AttributeKey]int     `json:"liked_numeric_count"`
	DislikedNumericSum   map[AttributeKey]float64 `json:"disliked_numeric_sum"`
	DislikedNumericCount map[AttributeKey]int     `json:"disliked_numeric_count"`

	LikedAnimals    map[int64]bool `json:"liked_animals"`
	DislikedAnimals map[int64]bool `json:"disliked_animals"`
}

// NewInteractionHistory returns an empty history. Every affinity of an empty
// history is zero.
func NewInteractionHistory() *InteractionHistory {
	return &InteractionHistory{
		LikedCategorical:     make(map[AttributeKey]map[string]int),
		DislikedCategorical:  make(map[AttributeKey]map[string]int),
		LikedNumericSum:      make(map[AttributeKey]float64),
		LikedNumericCount:    make(map[AttributeKey]int),
		DislikedNumericSum:   make(map[AttributeKey]float64),
		DislikedNumericCount: make(map[AttributeKey]int),
		LikedAnimals:         make(map[int64]bool),
		DislikedAnimals:      make(map[int64]bool),
	}
}

// RecordLike applies one like event for the given animal and vector. Each
// call counts: recording the same like twice doubles its weight, which is why
// the Coordinator rejects repeat judgments before calling this.
func (h *InteractionHistory) RecordLike(animalID int64, fv FeatureVector) {
	h.record(h.LikedCategorical, h.LikedNumericSum, h.LikedNumericCount, fv)
	h.LikedAnimals[animalID] = true
}

// RecordDislike applies one dislike event for the given animal and vector.
func (h *InteractionHistory) RecordDislike(animalID int64, fv FeatureVector) {
	h.record(h.DislikedCategorical, h.DislikedNumericSum, h.DislikedNumericCount, fv)
	h.DislikedAnimals[animalID] = true
}

func (h *InteractionHistory) record(cat map[AttributeKey]map[string]int, sum map[AttributeKey]float64, count map[AttributeKey]int, fv FeatureVector) {
	for key, val := range fv.Categorical {
		vals := cat[key]
		if vals == nil {
			vals = make(map[string]int)
			cat[key] = vals
		}
		vals[val]++
	}
	for key, val := range fv.Numeric {
		sum[key] += val
		count[key]++
	}
}

// CategoricalAffinity returns likes minus dislikes for one (attribute, value)
// pair. Zero when the user has never judged an animal carrying the value.
func (h *InteractionHistory) CategoricalAffinity(key AttributeKey, value string) float64 {
	return float64(h.LikedCategorical[key][value] - h.DislikedCategorical[key][value])
}

// NumericAffinity returns the numeric affinity for a normalized candidate
// value: proximity to the liked mean raises the score, proximity to the
// disliked mean lowers it. A side with no observations contributes nothing.
func (h *InteractionHistory) NumericAffinity(key AttributeKey, value float64) float64 {
	var affinity float64
	if n := h.LikedNumericCount[key]; n > 0 {
		mean := h.LikedNumericSum[key] / float64(n)
		affinity -= abs(value - mean)
	}
	if n := h.DislikedNumericCount[key]; n > 0 {
		mean := h.DislikedNumericSum[key] / float64(n)
		affinity += abs(value - mean)
	}
	return affinity
}

// Liked reports whether the user has already liked the animal.
func (h *InteractionHistory) Liked(animalID int64) bool {
	return h.LikedAnimals[animalID]
}

// Disliked reports whether the user has already disliked the animal.
func (h *InteractionHistory) Disliked(animalID int64) bool {
	return h.DislikedAnimals[animalID]
}

// Judged reports whether the user has judged the animal either way.
func (h *InteractionHistory) Judged(animalID int64) bool {
	return h.Liked(animalID) || h.Disliked(animalID)
}

// Empty reports whether the history carries no judgments at all.
func (h *InteractionHistory) Empty() bool {
	return len(h.LikedAnimals) == 0 && len(h.DislikedAnimals) == 0
}

// Clone returns a deep copy. The Coordinator mutates clones so a failed
// mutation never leaves a partially updated history visible.
func (h *InteractionHistory) Clone() *InteractionHistory {
	c := NewInteractionHistory()
	for key, vals := range h.LikedCategorical {
		inner := make(map[string]int, len(vals))
		for v, n := range vals {
			inner[v] = n
		}
		c.LikedCategorical[key] = inner
	}
	for key, vals := range h.DislikedCategorical {
		inner := make(map[string]int, len(vals))
		for v, n := range vals {
			inner[v] = n
		}
		c.DislikedCategorical[key] = inner
	}
	for key, v := range h.LikedNumericSum {
		c.LikedNumericSum[key] = v
	}
	for key, n := range h.LikedNumericCount {
		c.LikedNumericCount[key] = n
	}
	for key, v := range h.DislikedNumericSum {
		c.DislikedNumericSum[key] = v
	}
	for key, n := range h.DislikedNumericCount {
		c.DislikedNumericCount[key] = n
	}
	for id := range h.LikedAnimals {
		c.LikedAnimals[id] = true
	}
	for id := range h.DislikedAnimals {
		c.DislikedAnimals[id] = true
	}
	return c
}

// Normalize repairs nil maps after JSON deserialization so a stored history
// is safe to mutate. Store implementations call this after decoding.
func (h *InteractionHistory) Normalize() {
	if h.LikedCategorical == nil {
		h.LikedCategorical = make(map[AttributeKey]map[string]int)
	}
	if h.DislikedCategorical == nil {
		h.DislikedCategorical = make(map[AttributeKey]map[string]int)
	}
	if h.LikedNumericSum == nil {
		h.LikedNumericSum = make(map[AttributeKey]float64)
	}
	if h.LikedNumericCount == nil {
		h.LikedNumericCount = make(map[AttributeKey]int)
	}
	if h.DislikedNumericSum == nil {
		h.DislikedNumericSum = make(map[AttributeKey]float64)
	}
	if h.DislikedNumericCount == nil {
		h.DislikedNumericCount = make(map[AttributeKey]int)
	}
	if h.LikedAnimals == nil {
		h.LikedAnimals = make(map[int64]bool)
	}
	if h.DislikedAnimals == nil {
		h.DislikedAnimals = make(map[int64]bool)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
