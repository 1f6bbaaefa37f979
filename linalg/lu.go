// SPDX-License-Identifier: MIT

// Package linalg: LU factorization with partial pivoting, and the
// solve/inverse/determinant operations built on it.

package linalg

// LUFactors is a computed P·A = L·U factorization of an m×n matrix,
// reusable for solves, inversion and determinants. The packed factor
// is held in the backend's column-major form: U in and above the
// diagonal, the unit-lower L below it (unit diagonal implied).
// Immutable after construction.
type LUFactors[T Scalar] struct {
	lu     []T // packed column-major m×n
	pivots []int32
	m, n   int
	layout Layout
}

// LU computes the pivoted LU factorization of a (square or
// rectangular). a is not modified.
//
// A factorization that meets an exactly zero pivot returns a
// SingularError carrying the 1-indexed pivot position; the factors are
// not returned in that case because a solve against them would divide
// by zero.
func LU[T Scalar](a *Matrix[T]) (*LUFactors[T], error) {
	const op = "LU"
	if err := validateNotNil(op, a); err != nil {
		return nil, err
	}
	m, n := a.rows, a.cols
	if m == 0 || n == 0 {
		return &LUFactors[T]{m: m, n: n, layout: a.layout}, nil
	}
	buf, lda := backendClone(a)
	k := m
	if n < k {
		k = n
	}
	pivots := make([]int32, k)
	tb := traits[T]()
	if err := translate(tb.name("getrf"), kindFactor, tb.getrf(m, n, buf, lda, pivots)); err != nil {
		return nil, opErrorf(op, err)
	}
	return &LUFactors[T]{lu: buf, pivots: pivots, m: m, n: n, layout: a.layout}, nil
}

// Dims returns the shape of the factorized matrix.
func (f *LUFactors[T]) Dims() (m, n int) { return f.m, f.n }

// Pivots returns a copy of the row-interchange record: row i was
// swapped with row Pivots[i]. Indices are 1-based, exactly as the
// routine reports them.
func (f *LUFactors[T]) Pivots() []int32 {
	out := make([]int32, len(f.pivots))
	copy(out, f.pivots)
	return out
}

// L returns the m×k unit-lower-triangular factor, k = min(m, n).
func (f *LUFactors[T]) L() *Matrix[T] {
	k := min(f.m, f.n)
	out := make([]T, f.m*k)
	for j := 0; j < k; j++ {
		out[j+j*f.m] = 1
		for i := j + 1; i < f.m; i++ {
			out[i+j*f.m] = f.lu[i+j*f.m]
		}
	}
	return fromColMajor(out, f.m, k, f.layout)
}

// U returns the k×n upper-triangular factor, k = min(m, n).
func (f *LUFactors[T]) U() *Matrix[T] {
	k := min(f.m, f.n)
	out := make([]T, k*f.n)
	for j := 0; j < f.n; j++ {
		for i := 0; i <= j && i < k; i++ {
			out[i+j*k] = f.lu[i+j*f.m]
		}
	}
	return fromColMajor(out, k, f.n, f.layout)
}

// Solve solves A·X = B for X using the precomputed factorization.
// The factorized matrix must be square; b must have n rows. b is not
// modified; X is returned in b's layout.
func (f *LUFactors[T]) Solve(b *Matrix[T]) (*Matrix[T], error) {
	const op = "LUFactors.Solve"
	if f.m != f.n {
		return nil, shapeErrorf(op, "%dx%d: %w", f.m, f.n, ErrNotSquare)
	}
	if err := validateNotNil(op, b); err != nil {
		return nil, err
	}
	if b.rows != f.n {
		return nil, shapeErrorf(op, "rhs has %d rows, want %d: %w", b.rows, f.n, ErrShapeMismatch)
	}
	if f.n == 0 || b.cols == 0 {
		return emptyLike[T](f.n, b.cols, b.layout), nil
	}
	bbuf, ldb := backendClone(b)
	tb := traits[T]()
	info := tb.getrs(f.n, b.cols, f.lu, ldOf(f.n), f.pivots, bbuf, ldb)
	if err := translate(tb.name("getrs"), kindFactor, info); err != nil {
		return nil, opErrorf(op, err)
	}
	return fromColMajor(bbuf, b.rows, b.cols, b.layout), nil
}

// Inverse computes A⁻¹ from the factorization. The factorized matrix
// must be square.
func (f *LUFactors[T]) Inverse() (*Matrix[T], error) {
	const op = "LUFactors.Inverse"
	if f.m != f.n {
		return nil, shapeErrorf(op, "%dx%d: %w", f.m, f.n, ErrNotSquare)
	}
	if f.n == 0 {
		return emptyLike[T](0, 0, f.layout), nil
	}
	buf := make([]T, len(f.lu))
	copy(buf, f.lu)
	tb := traits[T]()
	info, err := tb.getri(f.n, buf, ldOf(f.n), f.pivots)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	if err := translate(tb.name("getri"), kindFactor, info); err != nil {
		return nil, opErrorf(op, err)
	}
	return fromColMajor(buf, f.n, f.n, f.layout), nil
}

// Det returns the determinant of the (square) factorized matrix:
// the product of U's diagonal, with one sign flip per recorded row
// interchange.
func (f *LUFactors[T]) Det() (T, error) {
	const op = "LUFactors.Det"
	var det T
	if f.m != f.n {
		return det, shapeErrorf(op, "%dx%d: %w", f.m, f.n, ErrNotSquare)
	}
	det = 1
	for i := 0; i < f.n; i++ {
		det *= f.lu[i+i*f.m]
		if f.pivots[i] != int32(i+1) {
			det = -det
		}
	}
	return det, nil
}

