// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the allowed minimum for
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph was handed a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
