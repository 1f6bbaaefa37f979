// SPDX-License-Identifier: MIT

// Package linalg: helpers shared by the scalar binding tables.

package linalg

// realScalar is the internal constraint for the two real precisions.
type realScalar interface{ float32 | float64 }

// unpackConjugatePairs converts the packed representation the real
// geev routines use for right eigenvectors into explicit complex
// columns. A real eigenvalue's vector occupies one real column; a
// complex conjugate pair (j, j+1) is stored as the shared real part in
// column j and the imaginary part in column j+1:
//
//	v_j     = VR[:,j] + i·VR[:,j+1]
//	v_{j+1} = VR[:,j] - i·VR[:,j+1]
//
// vr and out are packed column-major n×n; wi holds the imaginary parts
// of the eigenvalues, which identify the pair columns (pairs appear
// consecutively).
func unpackConjugatePairs[R realScalar](n int, wi []R, vr []R, out []complex128) {
	for j := 0; j < n; {
		if wi[j] == 0 {
			for i := 0; i < n; i++ {
				out[i+j*n] = complex(float64(vr[i+j*n]), 0)
			}
			j++
			continue
		}
		for i := 0; i < n; i++ {
			re := float64(vr[i+j*n])
			im := float64(vr[i+(j+1)*n])
			out[i+j*n] = complex(re, im)
			out[i+(j+1)*n] = complex(re, -im)
		}
		j += 2
	}
}

// widenF32 copies src into dst element-wise; float32→float64 is exact.
func widenF32(dst []float64, src []float32) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// widenC64 copies src into dst element-wise; complex64→complex128 is
// exact.
func widenC64(dst []complex128, src []complex64) {
	for i, v := range src {
		dst[i] = complex128(v)
	}
}

// rworkLen3n is the closed-form real-workspace length of the complex
// symmetric-eigen family (heev/hegv): max(1, 3n-2).
func rworkLen3n(n int) int {
	if l := 3*n - 2; l > 1 {
		return l
	}
	return 1
}

// rworkLen5min is the closed-form real-workspace length of the complex
// SVD family (gesvd): max(1, 5·min(m,n)).
func rworkLen5min(m, n int) int {
	k := m
	if n < k {
		k = n
	}
	if l := 5 * k; l > 1 {
		return l
	}
	return 1
}
