// Package lapack defines the routine-boundary contract shared by every
// LAPACK backend linked into this module.
//
// The package carries no computation. It declares the one-byte
// character flags the Fortran calling convention uses (triangle
// selection, job switches, norm kinds) and documents the info-code
// contract that the error translation in linalg relies on. Any
// conforming backend — reference LAPACKE, OpenBLAS, a static build —
// must honor exactly this contract; backend-specific extensions are
// deliberately not represented.
//
// Info codes, uniformly across routines:
//
//	info == 0  — success
//	info == -k — the k-th argument (1-indexed) had an illegal value
//	info == +k — routine-specific numerical failure: the k-th pivot
//	             was exactly zero (factorizations), k values failed
//	             to converge (iterative eigen/SVD routines), or for
//	             the generalized symmetric-definite problems with
//	             k > n, the leading minor of order k-n of B is not
//	             positive definite.
package lapack
