// SPDX-License-Identifier: MIT

// Package linalg: Cholesky decomposition of Hermitian (or real
// symmetric) positive definite matrices.
//
// Two surfaces are provided:
//   - Cholesky / CholeskyInPlace — one-shot factor extraction;
//   - FactorizeCholesky — a reusable CholeskyFactors object for
//     repeated solves, inversion and determinants without
//     refactorizing.
//
// The caller declares which triangle of the input is meaningful via
// UPLO; the other triangle is never referenced by the routine and is
// zeroed in the returned factor.

package linalg

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/lapack"
)

// Cholesky computes the Cholesky factor of the Hermitian positive
// definite matrix a.
//
// With lapack.Lower the decomposition is A = L·Lᴴ and L is returned;
// with lapack.Upper it is A = Uᴴ·U and U is returned. Only the
// declared triangle of a is read. a itself is not modified; the result
// is returned in a's layout with the opposite triangle zeroed.
//
// A non-positive-definite input yields a SingularError whose Pivot is
// the order of the first violating leading minor.
func Cholesky[T Scalar](a *Matrix[T], ul lapack.UPLO, opts ...Option) (*Matrix[T], error) {
	const op = "Cholesky"
	buf, err := choleskyFactorize(op, a, ul, opts...)
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return emptyLike[T](0, 0, a.layout), nil
	}
	return fromColMajor(buf, a.rows, a.rows, a.layout), nil
}

// CholeskyInPlace overwrites a with its Cholesky factor: a consumes-
// and-overwrites contract, unlike Cholesky which materializes a copy.
//
// For column-major contiguous input the routine works directly on a's
// storage, so on failure a is left partially overwritten (routine-
// defined state). For any other layout the factorization runs on a
// private transpose copy that is written back only on success, so a
// is intact after a failure.
func CholeskyInPlace[T Scalar](a *Matrix[T], ul lapack.UPLO) error {
	const op = "CholeskyInPlace"
	if err := validateSquare(op, a); err != nil {
		return err
	}
	if err := validateUplo(op, ul); err != nil {
		return err
	}
	n := a.rows
	if n == 0 {
		return nil
	}
	buf, lda, copied := backendView(a)
	tb := traits[T]()
	if err := translate(tb.name("potrf"), kindFactor, tb.potrf(ul, n, buf, lda)); err != nil {
		return opErrorf(op, err)
	}
	zeroOtherTriangle(buf, n, lda, ul)
	backendWriteBack(a, buf, copied)
	return nil
}

// CholeskyFactors is a computed Cholesky decomposition, reusable for
// solves, inversion and determinants. The factor is held in the
// backend's column-major form; derived results are reconstituted in
// the layout of the matrix that was factorized. Immutable after
// construction.
type CholeskyFactors[T Scalar] struct {
	factor []T // packed column-major n×n, declared triangle + zeros
	n      int
	uplo   lapack.UPLO
	layout Layout
}

// FactorizeCholesky computes the Cholesky decomposition of a and
// returns it as a reusable factorization object. See Cholesky for the
// triangle convention and failure modes.
func FactorizeCholesky[T Scalar](a *Matrix[T], ul lapack.UPLO, opts ...Option) (*CholeskyFactors[T], error) {
	const op = "FactorizeCholesky"
	buf, err := choleskyFactorize(op, a, ul, opts...)
	if err != nil {
		return nil, err
	}
	return &CholeskyFactors[T]{factor: buf, n: a.rows, uplo: ul, layout: a.layout}, nil
}

// choleskyFactorize is the shared validate/adapt/dispatch body.
// A nil buffer with nil error signals the empty short-circuit.
func choleskyFactorize[T Scalar](op string, a *Matrix[T], ul lapack.UPLO, opts ...Option) ([]T, error) {
	if err := validateSquare(op, a); err != nil {
		return nil, err
	}
	if err := validateUplo(op, ul); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if o.checkHermitian {
		if err := validateHermitian(op, a, o); err != nil {
			return nil, err
		}
	}
	n := a.rows
	if n == 0 {
		return nil, nil
	}
	buf, lda := backendClone(a)
	tb := traits[T]()
	if err := translate(tb.name("potrf"), kindFactor, tb.potrf(ul, n, buf, lda)); err != nil {
		return nil, opErrorf(op, err)
	}
	zeroOtherTriangle(buf, n, lda, ul)
	return buf, nil
}

// N returns the order of the factorized matrix.
func (f *CholeskyFactors[T]) N() int { return f.n }

// UPLO returns which triangle the factor occupies.
func (f *CholeskyFactors[T]) UPLO() lapack.UPLO { return f.uplo }

// Lower returns L from A = L·Lᴴ. When the factorization was computed
// with lapack.Upper, L is derived as Uᴴ (conjugate transpose).
func (f *CholeskyFactors[T]) Lower() *Matrix[T] { return f.triangle(lapack.Lower) }

// Upper returns U from A = Uᴴ·U. When the factorization was computed
// with lapack.Lower, U is derived as Lᴴ (conjugate transpose).
func (f *CholeskyFactors[T]) Upper() *Matrix[T] { return f.triangle(lapack.Upper) }

func (f *CholeskyFactors[T]) triangle(want lapack.UPLO) *Matrix[T] {
	n := f.n
	out := make([]T, n*n)
	if f.uplo == want {
		copy(out, f.factor)
		return fromColMajor(out, n, n, f.layout)
	}
	tb := traits[T]()
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out[i+j*n] = tb.conj(f.factor[j+i*n])
		}
	}
	return fromColMajor(out, n, n, f.layout)
}

// Solve solves A·X = B for X using the precomputed factorization.
// b must have N rows; multiple right-hand sides are the columns of b.
// b is not modified; X is returned in b's layout.
func (f *CholeskyFactors[T]) Solve(b *Matrix[T]) (*Matrix[T], error) {
	const op = "CholeskyFactors.Solve"
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
	info := tb.potrs(f.uplo, f.n, b.cols, f.factor, ldOf(f.n), bbuf, ldb)
	if err := translate(tb.name("potrs"), kindFactor, info); err != nil {
		return nil, opErrorf(op, err)
	}
	return fromColMajor(bbuf, b.rows, b.cols, b.layout), nil
}

// Inverse computes A⁻¹ from the factorization. The routine produces
// the declared triangle of the inverse; the other triangle is filled
// by Hermitian reflection before returning.
func (f *CholeskyFactors[T]) Inverse() (*Matrix[T], error) {
	const op = "CholeskyFactors.Inverse"
	n := f.n
	if n == 0 {
		return emptyLike[T](0, 0, f.layout), nil
	}
	buf := make([]T, len(f.factor))
	copy(buf, f.factor)
	tb := traits[T]()
	if err := translate(tb.name("potri"), kindFactor, tb.potri(f.uplo, n, buf, ldOf(n))); err != nil {
		return nil, opErrorf(op, err)
	}
	// Mirror the computed triangle across the diagonal.
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			if f.uplo == lapack.Upper {
				buf[j+i*n] = tb.conj(buf[i+j*n])
			} else {
				buf[i+j*n] = tb.conj(buf[j+i*n])
			}
		}
	}
	return fromColMajor(buf, n, n, f.layout), nil
}

// Det returns the determinant of A. A positive definite matrix has a
// positive real determinant for every scalar type, so the result is a
// float64. Computed as exp(LogDet) — see LogDet for why.
func (f *CholeskyFactors[T]) Det() float64 { return math.Exp(f.LogDet()) }

// LogDet returns ln(det A), accumulated in the log domain from the
// factor diagonal: det A = ∏ |l_ii|². The log-domain sum stays finite
// for matrices whose determinant would over- or underflow a float64.
func (f *CholeskyFactors[T]) LogDet() float64 {
	tb := traits[T]()
	sum := 0.0
	for i := 0; i < f.n; i++ {
		sum += math.Log(tb.abs(f.factor[i+i*f.n]))
	}
	return 2 * sum
}

// zeroOtherTriangle clears the triangle opposite to keep in a packed
// column-major n×n buffer. The routine never wrote there, so the
// buffer still holds the caller's input values.
func zeroOtherTriangle[T Scalar](buf []T, n, lda int, keep lapack.UPLO) {
	var zero T
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if (keep == lapack.Lower && i < j) || (keep == lapack.Upper && i > j) {
				buf[i+j*lda] = zero
			}
		}
	}
}
