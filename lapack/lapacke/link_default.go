//go:build !openblas && !static

package lapacke

// Default backend: the reference LAPACKE/LAPACK/BLAS shared libraries
// as packaged by the distribution.

/*
#cgo LDFLAGS: -llapacke -llapack -lblas
*/
import "C"
