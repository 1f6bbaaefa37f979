//go:build static

package lapacke

// Static backend: link the reference archives directly so the binary
// carries its own LAPACK and needs no shared numerics libraries at
// run time. gfortran supplies the Fortran runtime the archives need.

/*
#cgo LDFLAGS: -l:liblapacke.a -l:liblapack.a -l:librefblas.a -lgfortran -lm
*/
import "C"
