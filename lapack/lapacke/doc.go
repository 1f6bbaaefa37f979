// Package lapacke provides cgo bindings to a C LAPACKE library.
//
// Only the *_work entry points are bound. The high-level LAPACKE
// wrappers allocate workspace internally; binding the _work variants
// instead keeps every scratch buffer allocated, sized and owned on the
// Go side, which is what the linalg workspace driver requires for its
// query/execute protocol (lwork == -1 probes the optimal size into
// work[0]).
//
// All calls use column-major storage, so LAPACKE forwards them
// directly to the underlying Fortran routines without hidden
// transposition buffers. Raw info codes are returned unmodified;
// translating them into typed errors is the linalg layer's job.
//
// Which vendor library provides the LAPACKE symbols is a mutually
// exclusive build-time choice, made through the link_*.go files:
// the reference implementation by default, OpenBLAS under the
// `openblas` tag, and a statically linked LAPACK under the `static`
// tag. Every vendor must honor the identical routine contract
// documented in the lapack package.
package lapacke
