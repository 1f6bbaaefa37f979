// SPDX-License-Identifier: MIT

// Package linalg: status-code translation.
//
// Every routine reports through one signed integer. The mapping is a
// pure, total function over that integer: zero is success, negative
// codes identify the rejected argument, and positive codes are
// routine-specific — a zero/non-PD pivot for factorizations, an
// unconverged-value count for the iterative eigen/SVD families. No
// status code is ever ignored, and the raw integer never reaches
// callers.

package linalg

// routineKind classifies what a positive info code means for a
// routine family.
type routineKind uint8

const (
	// kindFactor: positive info is the 1-indexed pivot at which the
	// factorization (or the solve built on it) found the matrix
	// singular or not positive definite.
	kindFactor routineKind = iota
	// kindIterate: positive info is the number of values the
	// iterative routine failed to converge.
	kindIterate
)

// translate maps a raw info code to the typed error surface.
// Returns nil exactly when info == 0.
func translate(routine string, kind routineKind, info int) error {
	switch {
	case info == 0:
		return nil
	case info < 0:
		return &ArgumentError{Routine: routine, Index: -info}
	case kind == kindFactor:
		return &SingularError{Routine: routine, Pivot: info}
	default:
		return &ConvergenceError{Routine: routine, Failed: info}
	}
}
