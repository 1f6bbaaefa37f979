// SPDX-License-Identifier: MIT

// Package linalg: eigen-decomposition of general (nonsymmetric)
// square matrices.

package linalg

// Eig computes the eigenvalues and, when wantVectors is set, the right
// eigenvectors of a general square matrix.
//
// Eigenvalues of a general matrix are complex for every scalar type,
// so they are returned as []complex128 and the eigenvector matrix as
// *Matrix[complex128] (column j is the eigenvector of value j);
// single-precision inputs are widened exactly. When wantVectors is
// false the vector buffer is never allocated and the returned matrix
// is nil.
//
// a is not modified. Eigenvalue order is the routine's own: complex
// conjugate pairs of a real input appear consecutively, the value with
// positive imaginary part first.
func Eig[T Scalar](a *Matrix[T], wantVectors bool) ([]complex128, *Matrix[complex128], error) {
	const op = "Eig"
	if err := validateSquare(op, a); err != nil {
		return nil, nil, err
	}
	n := a.rows
	if n == 0 {
		if !wantVectors {
			return []complex128{}, nil, nil
		}
		return []complex128{}, emptyLike[complex128](0, 0, a.layout), nil
	}
	buf, lda := backendClone(a)
	tb := traits[T]()

	w := make([]complex128, n)
	var vr []complex128
	if wantVectors {
		vr = make([]complex128, n*n)
	}
	info, err := tb.geev(wantVectors, n, buf, lda, w, vr)
	if err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if err := translate(tb.name("geev"), kindIterate, info); err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if !wantVectors {
		return w, nil, nil
	}
	return w, fromColMajor(vr, n, n, a.layout), nil
}

// EigValues computes eigenvalues only; the vector-output buffer is
// never allocated.
func EigValues[T Scalar](a *Matrix[T]) ([]complex128, error) {
	w, _, err := Eig(a, false)
	return w, err
}
