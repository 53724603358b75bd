// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w; sentinels carry no parameters.
//   - Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not assemble a graph,
// e.g. no constructors were given or a constructor was nil.
var ErrConstructFailed = errors.New("builder: construction failed")
