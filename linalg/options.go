// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — misconfiguration is a programmer error, not a runtime
//     condition).
//
// The only policy today is the Eigh-family Hermitian precondition
// check. The underlying routines treat symmetry as a caller-asserted
// precondition (violating it yields an undefined numerical result, not
// an error), so verification is a deliberate opt-in trade of O(n²)
// scan time for an early typed failure.

package linalg

import "fmt"

// DefaultHermitianCheck leaves the Eigh-family input check disabled,
// matching the contract of the underlying routines.
const DefaultHermitianCheck = false

// DefaultHermitianTolFactor scales the machine epsilon of the scalar
// type (times the largest magnitude in the matrix) into the default
// tolerance used by WithHermitianCheck.
const DefaultHermitianTolFactor = 100.0

// options is the gathered, validated option state. Fields are
// unexported; public APIs consume ...Option.
type options struct {
	checkHermitian bool
	hermitianTol   float64 // absolute tolerance; 0 means "derive from eps"
}

// Option mutates the option state for one call.
type Option func(*options)

// WithHermitianCheck enables verification that the input of Eigh /
// EighGen is symmetric (real scalars) or Hermitian (complex scalars)
// before dispatching. On violation the operation returns
// ErrNotHermitian and the backend is never invoked.
//
// The tolerance is DefaultHermitianTolFactor·eps·max|a_ij| unless
// overridden by WithHermitianTolerance.
func WithHermitianCheck() Option {
	return func(o *options) { o.checkHermitian = true }
}

// WithHermitianTolerance enables the check with an explicit absolute
// tolerance. tol must be non-negative and finite; anything else is a
// programmer error and panics.
func WithHermitianTolerance(tol float64) Option {
	if tol < 0 || tol != tol {
		panic(fmt.Sprintf("linalg: invalid Hermitian tolerance %v", tol))
	}
	return func(o *options) {
		o.checkHermitian = true
		o.hermitianTol = tol
	}
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		checkHermitian: DefaultHermitianCheck,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
