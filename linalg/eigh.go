// SPDX-License-Identifier: MIT

// Package linalg: eigen-decomposition of symmetric (real) and
// Hermitian (complex) matrices, plus the generalized symmetric-
// definite pair problem.
//
// Symmetry/Hermitian-ness of the input is a caller-asserted
// precondition of the underlying routines: violating it produces an
// undefined numerical result, not an error. WithHermitianCheck trades
// an O(n²) scan for an early typed failure instead.

package linalg

import "github.com/elsuizo/ndarray-linalg/lapack"

// Eigh computes all eigenvalues and eigenvectors of the symmetric /
// Hermitian matrix a, reading only the triangle declared by ul.
//
// Eigenvalues of a Hermitian matrix are real; they are returned
// ascending as []float64 (exact widening for single precision). The
// eigenvectors are the columns of the returned matrix, in a's scalar
// type and layout, orthonormal to working precision.
func Eigh[T Scalar](a *Matrix[T], ul lapack.UPLO, opts ...Option) ([]float64, *Matrix[T], error) {
	const op = "Eigh"
	w, v, err := eighDispatch(op, a, ul, lapack.EVCompute, opts...)
	if err != nil {
		return nil, nil, err
	}
	return w, v, nil
}

// EighValues computes the eigenvalues only. The vector output is not
// allocated and the routine runs in its values-only mode.
func EighValues[T Scalar](a *Matrix[T], ul lapack.UPLO, opts ...Option) ([]float64, error) {
	const op = "EighValues"
	w, _, err := eighDispatch(op, a, ul, lapack.EVNone, opts...)
	return w, err
}

func eighDispatch[T Scalar](op string, a *Matrix[T], ul lapack.UPLO, jobz lapack.EVJob, opts ...Option) ([]float64, *Matrix[T], error) {
	if err := validateSquare(op, a); err != nil {
		return nil, nil, err
	}
	if err := validateUplo(op, ul); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts...)
	if o.checkHermitian {
		if err := validateHermitian(op, a, o); err != nil {
			return nil, nil, err
		}
	}
	n := a.rows
	if n == 0 {
		if jobz == lapack.EVNone {
			return []float64{}, nil, nil
		}
		return []float64{}, emptyLike[T](0, 0, a.layout), nil
	}
	buf, lda := backendClone(a)
	tb := traits[T]()
	w := make([]float64, n)

	info, err := tb.syev(jobz, ul, n, buf, lda, w)
	if err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if err := translate(tb.syevName(), kindIterate, info); err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if jobz == lapack.EVNone {
		return w, nil, nil
	}
	// With EVCompute the routine overwrote the input buffer with the
	// orthonormal eigenvectors.
	return w, fromColMajor(buf, n, n, a.layout), nil
}

// EighGen solves the generalized symmetric-definite eigen-problem
// A·x = λ·B·x for a Hermitian pair (A, B) with positive definite B,
// reading only the ul triangle of both. Eigenvalues are returned
// ascending; the eigenvectors (columns of the returned matrix) are
// normalized so that Xᴴ·B·X = I.
//
// Failure modes beyond the usual: a B that is not positive definite
// yields a SingularError whose Pivot is the order of the violating
// leading minor of B.
func EighGen[T Scalar](a, b *Matrix[T], ul lapack.UPLO, opts ...Option) ([]float64, *Matrix[T], error) {
	const op = "EighGen"
	if err := validateSquare(op, a); err != nil {
		return nil, nil, err
	}
	if err := validateSameShape(op, a, b); err != nil {
		return nil, nil, err
	}
	if err := validateUplo(op, ul); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts...)
	if o.checkHermitian {
		if err := validateHermitian(op, a, o); err != nil {
			return nil, nil, err
		}
		if err := validateHermitian(op, b, o); err != nil {
			return nil, nil, err
		}
	}
	n := a.rows
	if n == 0 {
		return []float64{}, emptyLike[T](0, 0, a.layout), nil
	}
	abuf, lda := backendClone(a)
	bbuf, ldb := backendClone(b)
	tb := traits[T]()
	w := make([]float64, n)

	info, err := tb.sygv(lapack.AxLambdaBx, lapack.EVCompute, ul, n, abuf, lda, bbuf, ldb, w)
	if err != nil {
		return nil, nil, opErrorf(op, err)
	}
	// The generalized routines overload positive info: codes ≤ n are
	// an unconverged count from the embedded symmetric solve, codes
	// > n report that leading minor info-n of B is not positive
	// definite (its own Cholesky step failed).
	if info > n {
		return nil, nil, opErrorf(op, &SingularError{Routine: tb.sygvName(), Pivot: info - n})
	}
	if err := translate(tb.sygvName(), kindIterate, info); err != nil {
		return nil, nil, opErrorf(op, err)
	}
	return w, fromColMajor(abuf, n, n, a.layout), nil
}
