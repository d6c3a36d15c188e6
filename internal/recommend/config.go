// PetMatch - Pet Adoption Listings and Recommendations
// Copyright 2026 PetMatch Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/petmatch/petmatch

package recommend

import (
	"fmt"
	"time"
)

// Config holds the recommendation core's tunables. Loaded through the
// service-wide koanf configuration under the "recommend" section.
type Config struct {
	// DefaultWeight applies to every attribute without an override.
	DefaultWeight float64 `koanf:"default_weight"`

	// WeightOverrides maps attribute keys to per-key weights. Keys outside
	// the closed attribute-key set are rejected by Validate.
	WeightOverrides map[string]float64 `koanf:"weight_overrides"`

	// Normalization upper bounds for the numeric attributes. Lower bounds
	// are zero.
	AgeMax    float64 `koanf:"age_max"`
	HeightMax float64 `koanf:"height_max"`
	WeightMax float64 `koanf:"weight_max"`

	// Breaker configures the animal-provider circuit breaker.
	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the animal-provider circuit breaker.
type BreakerConfig struct {
	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the cyclic period for clearing counts while closed.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests is the minimum sample size before the breaker may trip.
	MinRequests uint32 `koanf:"min_requests"`

	// FailureRatio trips the breaker once reached over a full sample.
	FailureRatio float64 `koanf:"failure_ratio"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		DefaultWeight: 1.0,
		AgeMax:        30,
		HeightMax:     100,
		WeightMax:     200,
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     60 * time.Second,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.DefaultWeight < 0 {
		return fmt.Errorf("default_weight must be >= 0, got %v", c.DefaultWeight)
	}
	known := make(map[string]bool)
	for _, k := range CategoricalKeys() {
		known[string(k)] = true
	}
	for _, k := range NumericKeys() {
		known[string(k)] = true
	}
	for key, w := range c.WeightOverrides {
		if !known[key] {
			return fmt.Errorf("weight_overrides: unknown attribute key %q", key)
		}
		if w < 0 {
			return fmt.Errorf("weight_overrides[%s] must be >= 0, got %v", key, w)
		}
	}
	if c.AgeMax <= 0 || c.HeightMax <= 0 || c.WeightMax <= 0 {
		return fmt.Errorf("numeric bounds must be > 0 (age_max=%v height_max=%v weight_max=%v)",
			c.AgeMax, c.HeightMax, c.WeightMax)
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("breaker.failure_ratio must be in (0,1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("breaker.timeout must be > 0, got %v", c.Breaker.Timeout)
	}
	// A zero sample floor would let a single failed request trip the breaker.
	if c.Breaker.MinRequests == 0 {
		return fmt.Errorf("breaker.min_requests must be > 0")
	}
	return nil
}

// Weights builds the scoring weights from the configuration.
func (c Config) Weights() Weights {
	w := Weights{Default: c.DefaultWeight}
	if len(c.WeightOverrides) > 0 {
		w.Overrides = make(map[AttributeKey]float64, len(c.WeightOverrides))
		for key, v := range c.WeightOverrides {
			w.Overrides[AttributeKey(key)] = v
		}
	}
	return w
}

// Bounds builds the vectorizer's numeric bounds from the configuration.
func (c Config) Bounds() map[AttributeKey]NumericBounds {
	return map[AttributeKey]NumericBounds{
		KeyAge:    {Min: 0, Max: c.AgeMax},
		KeyHeight: {Min: 0, Max: c.HeightMax},
		KeyWeight: {Min: 0, Max: c.WeightMax},
	}
}
