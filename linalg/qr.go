// SPDX-License-Identifier: MIT

// Package linalg: QR decomposition.
//
// The factorization runs in two backend phases: geqrf produces R and
// the elementary reflectors of Q in packed form, then orgqr/ungqr
// expands the reflectors into explicit orthonormal columns. Both
// phases use the workspace query protocol.

package linalg

// QR computes the reduced QR decomposition A = Q·R of an m×n matrix:
// Q is m×k with orthonormal columns and R is k×n upper triangular,
// k = min(m, n). a is not modified; both results are returned in a's
// layout.
func QR[T Scalar](a *Matrix[T]) (q, r *Matrix[T], err error) {
	const op = "QR"
	if err := validateNotNil(op, a); err != nil {
		return nil, nil, err
	}
	m, n := a.rows, a.cols
	k := min(m, n)
	if m == 0 || n == 0 {
		return emptyLike[T](m, k, a.layout), emptyLike[T](k, n, a.layout), nil
	}
	buf, lda := backendClone(a)
	tb := traits[T]()
	tau := make([]T, k)

	info, err := tb.geqrf(m, n, buf, lda, tau)
	if err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if err := translate(tb.name("geqrf"), kindFactor, info); err != nil {
		return nil, nil, opErrorf(op, err)
	}

	// R: the upper triangle of the first k rows of the packed factor.
	rbuf := make([]T, k*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j && i < k; i++ {
			rbuf[i+j*k] = buf[i+j*lda]
		}
	}

	// Q: expand the k reflectors into explicit columns, in place.
	info, err = tb.orgqr(m, k, k, buf, lda, tau)
	if err != nil {
		return nil, nil, opErrorf(op, err)
	}
	if err := translate(tb.orgqrName(), kindFactor, info); err != nil {
		return nil, nil, opErrorf(op, err)
	}
	qbuf := make([]T, m*k)
	copy(qbuf, buf[:m*k]) // first k columns of the packed buffer

	return fromColMajor(qbuf, m, k, a.layout), fromColMajor(rbuf, k, n, a.layout), nil
}
