// SPDX-License-Identifier: MIT

// Package linalg: canonical validation helpers.
//
// Purpose:
//   - Single source of truth for the shape/flag guards every operation
//     runs before touching the backend.
//   - Return shape-level sentinels (see errors.go); the operation
//     facade wraps them with its own tag.
//
// All checks are pure, deterministic and allocation-free.

package linalg

import "github.com/elsuizo/ndarray-linalg/lapack"

// validateNotNil ensures m is a non-nil view.
func validateNotNil[T Scalar](op string, m *Matrix[T]) error {
	if m == nil {
		return shapeErrorf(op, "%w", ErrNilMatrix)
	}
	return nil
}

// validateSquare ensures m is non-nil and square.
func validateSquare[T Scalar](op string, m *Matrix[T]) error {
	if err := validateNotNil(op, m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return shapeErrorf(op, "%dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	return nil
}

// validateSameShape ensures a and b are non-nil with equal dimensions.
func validateSameShape[T Scalar](op string, a, b *Matrix[T]) error {
	if err := validateNotNil(op, a); err != nil {
		return err
	}
	if err := validateNotNil(op, b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return shapeErrorf(op, "%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	return nil
}

// validateSolveShapes ensures a is square n×n and b has n rows.
func validateSolveShapes[T Scalar](op string, a, b *Matrix[T]) error {
	if err := validateSquare(op, a); err != nil {
		return err
	}
	if err := validateNotNil(op, b); err != nil {
		return err
	}
	if b.rows != a.rows {
		return shapeErrorf(op, "rhs has %d rows, want %d: %w", b.rows, a.rows, ErrShapeMismatch)
	}
	return nil
}

// validateUplo ensures ul is one of the two defined triangles.
func validateUplo(op string, ul lapack.UPLO) error {
	if !ul.Valid() {
		return shapeErrorf(op, "uplo %q: %w", byte(ul), ErrInvalidArgument)
	}
	return nil
}

// validateNormKind ensures k is one of the four defined norm kinds.
func validateNormKind(op string, k lapack.NormKind) error {
	if !k.Valid() {
		return shapeErrorf(op, "norm kind %q: %w", byte(k), ErrInvalidArgument)
	}
	return nil
}

// validateHermitian scans the upper triangle once and reports
// ErrNotHermitian when a_ij deviates from conj(a_ji) beyond the
// tolerance from o (derived from machine epsilon and the largest
// magnitude in a when not set explicitly). O(n²), allocation-free.
// Only invoked when the caller opted in; the routines themselves treat
// symmetry as an unchecked precondition.
func validateHermitian[T Scalar](op string, a *Matrix[T], o options) error {
	tb := traits[T]()
	tol := o.hermitianTol
	if tol == 0 {
		scale := 0.0
		for _, v := range a.data {
			if m := tb.abs(v); m > scale {
				scale = m
			}
		}
		tol = DefaultHermitianTolFactor * tb.eps * scale
	}
	for i := 0; i < a.rows; i++ {
		for j := i; j < a.cols; j++ {
			if tb.abs(a.at(i, j)-tb.conj(a.at(j, i))) > tol {
				return shapeErrorf(op, "element (%d,%d): %w", i, j, ErrNotHermitian)
			}
		}
	}
	return nil
}
