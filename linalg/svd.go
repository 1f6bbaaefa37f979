// SPDX-License-Identifier: MIT

package linalg

import "github.com/elsuizo/ndarray-linalg/lapack"

// SVDResult bundles the factors of a singular value decomposition
// A = U·Σ·Vᴴ. S always holds all min(m,n) singular values, descending
// and non-negative, widened to float64. U and VT are nil when the job
// did not request them.
type SVDResult[T Scalar] struct {
	U  *Matrix[T]
	S  []float64
	VT *Matrix[T]
}

// SVD computes the singular value decomposition of a.
//
// The job argument controls the vector outputs:
//
//	SVDAll     — U is m×m, VT is n×n (full orthogonal bases)
//	SVDEconomy — U is m×k, VT is k×n, k = min(m,n)
//	SVDNone    — singular values only; U and VT are nil
//
// a itself is never modified.
func SVD[T Scalar](a *Matrix[T], job lapack.SVDJob) (*SVDResult[T], error) {
	const op = "SVD"
	if err := validateNotNil(op, a); err != nil {
		return nil, err
	}
	switch job {
	case lapack.SVDAll, lapack.SVDEconomy, lapack.SVDNone:
	default:
		return nil, shapeErrorf(op, "unknown svd job %q: %w", byte(job), ErrBadShape)
	}
	m, n := a.rows, a.cols
	k := min(m, n)

	if m == 0 || n == 0 {
		res := &SVDResult[T]{S: []float64{}}
		if job != lapack.SVDNone {
			res.U = emptyLike[T](m, uDim(job, m, k), a.layout)
			res.VT = emptyLike[T](vtDim(job, n, k), n, a.layout)
		}
		return res, nil
	}

	buf, lda := backendClone(a)
	tb := traits[T]()

	s := make([]float64, k)
	var u, vt []T
	ucols := uDim(job, m, k)
	vtrows := vtDim(job, n, k)
	ldu, ldvt := ldOf(m), ldOf(vtrows)
	if job != lapack.SVDNone {
		u = make([]T, m*ucols)
		vt = make([]T, vtrows*n)
	} else {
		// The routine still wants sane leading dimensions.
		ldu, ldvt = 1, 1
	}

	info, err := tb.gesvd(job, job, m, n, buf, lda, s, u, ldu, vt, ldvt)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	if err := translate(tb.name("gesvd"), kindIterate, info); err != nil {
		return nil, opErrorf(op, err)
	}

	res := &SVDResult[T]{S: s}
	if job != lapack.SVDNone {
		res.U = fromColMajor(u, m, ucols, a.layout)
		res.VT = fromColMajor(vt, vtrows, n, a.layout)
	}
	return res, nil
}

// SingularValues computes only the singular values of a, descending.
func SingularValues[T Scalar](a *Matrix[T]) ([]float64, error) {
	res, err := SVD(a, lapack.SVDNone)
	if err != nil {
		return nil, err
	}
	return res.S, nil
}

func uDim(job lapack.SVDJob, m, k int) int {
	if job == lapack.SVDAll {
		return m
	}
	return k
}

func vtDim(job lapack.SVDJob, n, k int) int {
	if job == lapack.SVDAll {
		return n
	}
	return k
}
