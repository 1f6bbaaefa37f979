// Package linalg dispatches dense linear-algebra operations to a
// LAPACK backend, generically over the four LAPACK scalar types.
//
// 🚀 What does linalg do?
//
//	It owns everything between "I have a matrix of some scalar type"
//	and "the backend routine ran and here is a typed result":
//	  • Scalar dispatch: float32, float64, complex64 and complex128
//	    each bind to their own routine family (s/d/c/z) through a
//	    per-scalar trait table resolved from the type parameter
//	  • Layout adaptation: row-major views are transposed into the
//	    column-major buffers the routines require, and results are
//	    reconstituted in the caller's original layout; contiguous
//	    column-major input is passed through without copying
//	  • Workspace protocol: the two-call "query size, then execute"
//	    pattern, with the scratch buffer sized by the routine's own
//	    report, allocated once and scoped to the call
//	  • Status translation: raw info codes become typed errors that
//	    carry the failing pivot, the invalid argument's position, or
//	    the number of unconverged values
//
// Operations: Cholesky (plus a reusable factorization object), LU,
// QR, Eig, Eigh, EighGen, SVD, Solve, Inverse, Det and matrix norms.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/elsuizo/ndarray-linalg/lapack"
//		"github.com/elsuizo/ndarray-linalg/linalg"
//	)
//
//	a, _ := linalg.FromSlice(3, 3, linalg.RowMajor, []float64{
//		4, 12, -16,
//		12, 37, -43,
//		-16, -43, 98,
//	})
//	l, err := linalg.Cholesky(a, lapack.Lower)
//
// Concurrency: operations are synchronous and share no mutable state;
// concurrent calls on independent matrices are safe. Running an
// in-place operation concurrently with any other use of the same
// matrix is a caller-side race, not detected here.
//
// Error taxonomy is closed: ErrInvalidArgument, ErrSingular,
// ErrNotConverged and ErrWorkspace, matched with errors.Is; the typed
// ArgumentError, SingularError and ConvergenceError payloads are
// extracted with errors.As.
package linalg
