// SPDX-License-Identifier: MIT

// Package lapack: character flag types.
// This file defines ONLY the closed set of one-byte flags passed across
// the routine boundary. Values are the exact ASCII codes the Fortran
// interface expects; backends forward them unmodified. Validation of
// flag values happens in the linalg dispatch layer, never here.

package lapack

// UPLO selects which triangle of a symmetric, Hermitian or triangular
// matrix is stored and referenced by a routine.
type UPLO byte

const (
	// Upper means the upper triangle is stored; A = Uᴴ·U for Cholesky.
	Upper UPLO = 'U'
	// Lower means the lower triangle is stored; A = L·Lᴴ for Cholesky.
	Lower UPLO = 'L'
)

// Valid reports whether ul is one of the two defined triangles.
func (ul UPLO) Valid() bool { return ul == Upper || ul == Lower }

// EVJob tells an eigen routine whether to compute eigenvectors in
// addition to eigenvalues.
type EVJob byte

const (
	// EVNone computes eigenvalues only; vector buffers are never touched.
	EVNone EVJob = 'N'
	// EVCompute computes eigenvalues and eigenvectors.
	EVCompute EVJob = 'V'
)

// SVDJob selects how many singular vectors an SVD routine computes.
type SVDJob byte

const (
	// SVDAll computes the full U (m×m) and Vᴴ (n×n).
	SVDAll SVDJob = 'A'
	// SVDEconomy computes the reduced U (m×k) and Vᴴ (k×n), k = min(m,n).
	SVDEconomy SVDJob = 'S'
	// SVDNone computes singular values only.
	SVDNone SVDJob = 'N'
)

// NormKind selects which matrix norm Lange-family routines compute.
type NormKind byte

const (
	// NormMax is max(|a_ij|); not a consistent matrix norm.
	NormMax NormKind = 'M'
	// NormOne is the maximum absolute column sum.
	NormOne NormKind = '1'
	// NormInf is the maximum absolute row sum.
	NormInf NormKind = 'I'
	// NormFrobenius is the square root of the sum of squared magnitudes.
	NormFrobenius NormKind = 'F'
)

// Valid reports whether k is one of the four defined norm kinds.
func (k NormKind) Valid() bool {
	return k == NormMax || k == NormOne || k == NormInf || k == NormFrobenius
}

// GenEigType is the ITYPE argument of the generalized symmetric-definite
// eigen routines (sygv/hegv family).
type GenEigType int

const (
	// AxLambdaBx solves A·x = λ·B·x.
	AxLambdaBx GenEigType = 1
	// ABxLambdaX solves A·B·x = λ·x.
	ABxLambdaX GenEigType = 2
	// BAxLambdaX solves B·A·x = λ·x.
	BAxLambdaX GenEigType = 3
)
