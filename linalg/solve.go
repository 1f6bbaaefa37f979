// SPDX-License-Identifier: MIT

// Package linalg: public facades for the LU-backed dense operations.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the
//     canonical LUFactors implementation with no logic duplication.
//   - Callers that need several of these on the same matrix should
//     call LU once and reuse the factorization object instead.

package linalg

import "errors"

// Solve solves the linear system A·X = B for a nonsingular square A.
// B's columns are independent right-hand sides; a single vector is the
// one-column case. Neither input is modified; X is returned in b's
// layout.
//
// A singular A yields a SingularError carrying the offending pivot.
func Solve[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	const op = "Solve"
	if err := validateSolveShapes(op, a, b); err != nil {
		return nil, err
	}
	f, err := LU(a)
	if err != nil {
		return nil, err
	}
	return f.Solve(b)
}

// Inverse computes A⁻¹ for a nonsingular square A. Prefer Solve when
// the inverse is only needed to apply it to right-hand sides.
func Inverse[T Scalar](a *Matrix[T]) (*Matrix[T], error) {
	const op = "Inverse"
	if err := validateSquare(op, a); err != nil {
		return nil, err
	}
	f, err := LU(a)
	if err != nil {
		return nil, err
	}
	return f.Inverse()
}

// Det computes the determinant of a square A via LU: the product of
// the U diagonal with one sign flip per recorded row interchange.
//
// A singular matrix is not an error here — its determinant is zero,
// and the zero-pivot report from the factorization is folded into
// that result. The determinant of the empty 0×0 matrix is 1.
func Det[T Scalar](a *Matrix[T]) (T, error) {
	const op = "Det"
	var zero T
	if err := validateSquare(op, a); err != nil {
		return zero, err
	}
	f, err := LU(a)
	if err != nil {
		var sing *SingularError
		if errors.As(err, &sing) {
			return zero, nil
		}
		return zero, err
	}
	return f.Det()
}
