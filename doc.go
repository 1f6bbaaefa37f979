// Package ndarraylinalg is a thin, type-safe dispatch layer over dense
// LAPACK linear algebra for multi-dimensional numeric data.
//
// 🚀 What is ndarray-linalg?
//
//	A generic binding layer that lets you run the standard dense
//	decompositions without caring which scalar precision you hold or
//	how the underlying Fortran-convention routines want their memory:
//	  • Factorizations: Cholesky, LU, QR
//	  • Spectra: Eig (general), Eigh (symmetric/Hermitian), EighGen
//	  • SVD: full, economy, values-only
//	  • Dense solvers: Solve, Inverse, Det, matrix norms
//
// ✨ Why choose ndarray-linalg?
//
//   - One generic API – float32, float64, complex64, complex128 share
//     a single entry point per operation
//   - Layout freedom – row-major or column-major views; transposition
//     happens only when unavoidable
//   - Honest failures – typed errors carrying the failing pivot,
//     argument index or unconverged-value count
//   - Trusted numerics – the algorithms come from the LAPACK backend
//     you link, never from hand-rolled Go
//
// Under the hood, everything is organized under three subpackages:
//
//	lapack/         — the routine-boundary contract (flags, info codes)
//	lapack/lapacke/ — cgo bindings to the build-time selected backend
//	linalg/         — matrix views, scalar traits, and the operations
//
// Backend selection is a build-time choice: the default build links
// the reference LAPACKE library, `-tags openblas` links OpenBLAS, and
// `-tags static` links a self-contained static LAPACK. All backends
// present the identical routine contract.
//
//	go get github.com/elsuizo/ndarray-linalg/linalg
package ndarraylinalg
