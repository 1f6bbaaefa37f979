// SPDX-License-Identifier: MIT

// Package linalg: sentinel error set and typed failure payloads.
// This file defines ONLY the package error surface. Every operation
// returns these sentinels (possibly wrapped with an operation tag) and
// tests check them via errors.Is; the typed structs are extracted via
// errors.As when the diagnostic payload is needed. No operation panics
// on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON TAXONOMY
// ----------------
// The taxonomy is closed on purpose: it mirrors the status-code
// contract every conforming backend honors, so no backend-specific
// variants exist. Shape and flag violations detected before the
// backend is reached belong to the same InvalidArgument category as a
// negative info code, and match ErrInvalidArgument through wrapping.

var (
	// ErrInvalidArgument is the base category for any caller mistake:
	// inconsistent dimensions, an undefined flag value, or a negative
	// info code reported by a routine.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrSingular indicates a factorization or solve met an exactly
	// zero (or, for Cholesky, non-positive-definite) pivot.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotConverged indicates an iterative eigen/SVD routine
	// exhausted its iteration budget before all values converged.
	ErrNotConverged = errors.New("linalg: iteration did not converge")

	// ErrWorkspace indicates the workspace size query reported a
	// nonsensical size, so the execute phase was never attempted.
	ErrWorkspace = errors.New("linalg: workspace query failed")
)

// Shape-level sentinels. All of them are members of the
// InvalidArgument category: errors.Is(err, ErrInvalidArgument) holds
// for each.
var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimension, backing slice too short, unknown layout).
	ErrBadShape = fmt.Errorf("invalid shape: %w", ErrInvalidArgument)

	// ErrOutOfRange indicates a row or column index outside bounds.
	ErrOutOfRange = fmt.Errorf("index out of range: %w", ErrInvalidArgument)

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = fmt.Errorf("matrix is not square: %w", ErrInvalidArgument)

	// ErrShapeMismatch indicates incompatible dimensions between the
	// operands of one call (e.g. Solve with len(b) ≠ n).
	ErrShapeMismatch = fmt.Errorf("dimension mismatch: %w", ErrInvalidArgument)

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = fmt.Errorf("nil matrix: %w", ErrInvalidArgument)

	// ErrNotHermitian is returned by the Eigh family when the optional
	// input check is enabled and the matrix violates symmetry /
	// Hermitian-ness beyond the configured tolerance.
	ErrNotHermitian = fmt.Errorf("matrix is not Hermitian within tolerance: %w", ErrInvalidArgument)
)

// ArgumentError reports that a routine rejected its Index-th argument
// (1-indexed, following the LAPACK convention for negative info).
type ArgumentError struct {
	Routine string // routine family name, e.g. "getrf"
	Index   int    // 1-indexed position of the rejected argument
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("linalg: %s: argument %d is invalid", e.Routine, e.Index)
}

// Unwrap places ArgumentError in the InvalidArgument category.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// SingularError reports the 1-indexed pivot at which a factorization
// or solve detected singularity. For Cholesky-family routines the
// pivot is the order of the first non-positive-definite leading minor.
type SingularError struct {
	Routine string
	Pivot   int // 1-indexed pivot position
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("linalg: %s: singular at pivot %d", e.Routine, e.Pivot)
}

// Unwrap places SingularError in the Singular category.
func (e *SingularError) Unwrap() error { return ErrSingular }

// ConvergenceError reports how many values an iterative eigen/SVD
// routine failed to converge within its iteration budget.
type ConvergenceError struct {
	Routine string
	Failed  int // number of unconverged values
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("linalg: %s: %d value(s) did not converge", e.Routine, e.Failed)
}

// Unwrap places ConvergenceError in the NotConverged category.
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// opErrorf wraps err with an operation tag, preserving the original
// error for errors.Is / errors.As. Call only with err != nil.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// shapeErrorf tags a shape-level sentinel with its call-site context.
// format must wrap the sentinel via %w.
func shapeErrorf(op, format string, args ...any) error {
	return fmt.Errorf(op+": "+format, args...)
}
