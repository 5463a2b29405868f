// SPDX-License-Identifier: MIT

// File: config.go
// Role: resolved builder configuration shared by every constructor.

package builder

import "math/rand"

// builderConfig is the snapshot constructors read from. It is built once
// per BuildGraph call and never mutated afterwards.
type builderConfig struct {
	idFn     IDFn       // index -> vertex ID
	rng      *rand.Rand // nil unless WithSeed/WithRand was given
	weightFn WeightFn   // per-arc weight draw
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next arc weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
