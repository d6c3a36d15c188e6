// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

// Weights control how much each attribute contributes to a score. Attributes
// without an override use Default; a zero-valued Weights applies weight 1.0
// everywhere.
type Weights struct {
	Default   float64
	Overrides map[AttributeKey]float64
}

func (w Weights) weightFor(key AttributeKey) float64 {
	if ov, ok := w.Overrides[key]; ok {
		return ov
	}
	if w.Default == 0 {
		return 1.0
	}
	return w.Default
}

// Engine scores candidate vectors against interaction histories.
//
// Scoring is pure: it reads the history, mutates nothing, and is fully
// deterministic. score = sum over the candidate's attributes of
// weight(key) * affinity(key, value). Attributes absent from the candidate
// contribute nothing, so two listings differing only in an unrecorded
// attribute score identically.
type Engine struct {
	weights Weights
}

// NewEngine returns a scoring engine with the given weights.
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Score returns the candidate vector's score under the user's history. An
// empty history scores every candidate 0.
func (e *Engine) Score(hist *InteractionHistory, fv FeatureVector) float64 {
	var score float64
	for key, val := range fv.Categorical {
		score += e.weights.weightFor(key) * hist.CategoricalAffinity(key, val)
	}
	for key, val := range fv.Numeric {
		score += e.weights.weightFor(key) * hist.NumericAffinity(key, val)
	}
	return score
}
