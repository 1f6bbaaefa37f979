// SPDX-License-Identifier: MIT

// Package linalg: the per-scalar trait table.
//
// Purpose:
//   - Bind every logical operation to the concrete routine family of
//     one scalar type (s/d/c/z), together with the scalar-specific
//     constants (machine epsilon) and functions (conjugate, absolute
//     value) the operations need.
//   - Resolve the table from a type parameter, so call sites stay
//     generic and never reason about precision or realness.
//
// Completeness: the Scalar constraint is an exact four-type set and
// the resolver switches over exactly those four cases; each table is
// additionally pinned to its scalar by a package-level var declaration
// in its scalar_*.go file, so a missing or mistyped binding is a build
// error, not a runtime "unsupported type" path.

package linalg

import "github.com/elsuizo/ndarray-linalg/lapack"

// lapackFor binds one scalar type to its routine family.
//
// Signature conventions, shared by all four tables:
//   - matrices are contiguous column-major with leading dimension lda,
//     exactly as produced by the layout adapter;
//   - functions wrapping a workspace-query routine return (info, err)
//     where err is non-nil only when the query phase failed (the
//     execute phase then never ran);
//   - real-valued routine outputs (symmetric eigenvalues, singular
//     values) are widened to float64, and general eigen output to
//     complex128, by the binding itself — widening from single
//     precision is exact.
type lapackFor[T Scalar] struct {
	// prefix is the LAPACK routine prefix ('s','d','c' or 'z'),
	// used to tag routine names in translated errors.
	prefix byte
	// eps is the machine epsilon of T's real type, as float64.
	eps float64
	// conj returns the complex conjugate (identity for real scalars).
	conj func(T) T
	// abs returns |v| as a real float64 magnitude for any scalar.
	abs func(T) float64

	potrf func(ul lapack.UPLO, n int, a []T, lda int) int
	potrs func(ul lapack.UPLO, n, nrhs int, a []T, lda int, b []T, ldb int) int
	potri func(ul lapack.UPLO, n int, a []T, lda int) int

	getrf func(m, n int, a []T, lda int, ipiv []int32) int
	getrs func(n, nrhs int, a []T, lda int, ipiv []int32, b []T, ldb int) int
	getri func(n int, a []T, lda int, ipiv []int32) (info int, err error)

	geqrf func(m, n int, a []T, lda int, tau []T) (info int, err error)
	orgqr func(m, n, k int, a []T, lda int, tau []T) (info int, err error)

	// geev computes eigenvalues into w (length n) and, when wantV,
	// right eigenvectors into vr as a packed column-major n×n complex
	// matrix. Real bindings unpack the conjugate-pair convention of
	// their routine before returning.
	geev func(wantV bool, n int, a []T, lda int, w []complex128, vr []complex128) (info int, err error)

	syev func(jobz lapack.EVJob, ul lapack.UPLO, n int, a []T, lda int, w []float64) (info int, err error)
	sygv func(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []T, lda int, b []T, ldb int, w []float64) (info int, err error)

	gesvd func(jobu, jobvt lapack.SVDJob, m, n int, a []T, lda int, s []float64, u []T, ldu int, vt []T, ldvt int) (info int, err error)

	// lange returns the requested norm as float64. The binding
	// allocates the routine's closed-form work buffer (length m, only
	// referenced for the infinity norm) itself.
	lange func(norm lapack.NormKind, m, n int, a []T, lda int) float64
}

// name returns the prefixed routine name for error tags, e.g. "dgetrf".
func (tb *lapackFor[T]) name(family string) string {
	return string(tb.prefix) + family
}

// isComplex reports whether the table binds a complex routine family.
func (tb *lapackFor[T]) isComplex() bool { return tb.prefix == 'c' || tb.prefix == 'z' }

// Some routine families are named differently for real and complex
// scalars; these helpers produce the correct tag for error reports.

func (tb *lapackFor[T]) orgqrName() string {
	if tb.isComplex() {
		return tb.name("ungqr")
	}
	return tb.name("orgqr")
}

func (tb *lapackFor[T]) syevName() string {
	if tb.isComplex() {
		return tb.name("heev")
	}
	return tb.name("syev")
}

func (tb *lapackFor[T]) sygvName() string {
	if tb.isComplex() {
		return tb.name("hegv")
	}
	return tb.name("sygv")
}

// traits resolves the trait table for the scalar type parameter.
// The switch is exhaustive over the closed Scalar set; the final panic
// is unreachable for any type the constraint admits.
func traits[T Scalar]() *lapackFor[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(&real32Table).(*lapackFor[T])
	case float64:
		return any(&real64Table).(*lapackFor[T])
	case complex64:
		return any(&complex64Table).(*lapackFor[T])
	case complex128:
		return any(&complex128Table).(*lapackFor[T])
	}
	panic("linalg: scalar type outside the closed constraint set")
}

// Eps returns the machine epsilon of T's associated real type as a
// float64 (exact for float32 as well).
func Eps[T Scalar]() float64 { return traits[T]().eps }
