// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices reports a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability reports a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource reports a stochastic constructor run without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
