// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, prefixed by the method name.
//   • Constructors never panic at runtime; option constructors do, for nil
//     arguments that can only be programmer errors.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a size or depth parameter outside the accepted range
// (negative n, negative depth, depth above MaxCompleteDepth).
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a sentinel with the constructor name and a
// formatted detail: "<Method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
