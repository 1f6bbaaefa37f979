// SPDX-License-Identifier: MIT

package linalg

import "github.com/elsuizo/ndarray-linalg/lapack"

// Norm computes a matrix norm of a.
//
// The kind selects among the max-magnitude pseudo-norm, the one norm
// (max column sum), the infinity norm (max row sum) and the Frobenius
// norm. The result is always float64; a is read but never modified,
// and an already column-major matrix is passed through without a copy.
//
// The norm of a matrix with no elements is zero for every kind.
func Norm[T Scalar](a *Matrix[T], kind lapack.NormKind) (float64, error) {
	const op = "Norm"
	if err := validateNotNil(op, a); err != nil {
		return 0, err
	}
	if err := validateNormKind(op, kind); err != nil {
		return 0, err
	}
	if a.IsEmpty() {
		return 0, nil
	}
	buf, lda, _ := backendView(a)
	tb := traits[T]()
	return tb.lange(kind, a.rows, a.cols, buf, lda), nil
}
