//go:build openblas

package lapacke

// OpenBLAS backend: OpenBLAS bundles LAPACKE, LAPACK and BLAS in a
// single optimized library.

/*
#cgo LDFLAGS: -lopenblas
*/
import "C"
