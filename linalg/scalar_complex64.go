// SPDX-License-Identifier: MIT

// Package linalg: trait table for complex64 — the c-routine family.
// Combines the closed-form real workspaces of the complex routines
// with the exact single→double widening of the s family.

package linalg

import (
	"math/cmplx"

	"github.com/elsuizo/ndarray-linalg/lapack"
	"github.com/elsuizo/ndarray-linalg/lapack/lapacke"
)

func conj64(v complex64) complex64 { return complex(real(v), -imag(v)) }

var complex64Table = lapackFor[complex64]{
	prefix: 'c',
	eps:    0x1p-23,
	conj:   conj64,
	abs:    func(v complex64) float64 { return cmplx.Abs(complex128(v)) },

	potrf: lapacke.Cpotrf,
	potrs: lapacke.Cpotrs,
	potri: lapacke.Cpotri,

	getrf: lapacke.Cgetrf,
	getrs: func(n, nrhs int, a []complex64, lda int, ipiv []int32, b []complex64, ldb int) int {
		return lapacke.Cgetrs('N', n, nrhs, a, lda, ipiv, b, ldb)
	},
	getri: func(n int, a []complex64, lda int, ipiv []int32) (int, error) {
		return runWork("cgetri", func(work []complex64, lwork int) int {
			return lapacke.Cgetri(n, a, lda, ipiv, work, lwork)
		})
	},

	geqrf: func(m, n int, a []complex64, lda int, tau []complex64) (int, error) {
		return runWork("cgeqrf", func(work []complex64, lwork int) int {
			return lapacke.Cgeqrf(m, n, a, lda, tau, work, lwork)
		})
	},
	orgqr: func(m, n, k int, a []complex64, lda int, tau []complex64) (int, error) {
		return runWork("cungqr", func(work []complex64, lwork int) int {
			return lapacke.Cungqr(m, n, k, a, lda, tau, work, lwork)
		})
	},

	geev: func(wantV bool, n int, a []complex64, lda int, w []complex128, vr []complex128) (int, error) {
		jobvr := lapack.EVNone
		var vrbuf []complex64
		ldvr := 1
		if wantV {
			jobvr = lapack.EVCompute
			vrbuf = make([]complex64, n*n)
			ldvr = ldOf(n)
		}
		wc := make([]complex64, n)
		rwork := make([]float32, 2*n)
		info, err := runWork("cgeev", func(work []complex64, lwork int) int {
			return lapacke.Cgeev(lapack.EVNone, jobvr, n, a, lda, wc, nil, 1, vrbuf, ldvr, work, lwork, rwork)
		})
		if err != nil || info != 0 {
			return info, err
		}
		widenC64(w, wc)
		if wantV {
			widenC64(vr, vrbuf)
		}
		return 0, nil
	},

	syev: func(jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex64, lda int, w []float64) (int, error) {
		ws := make([]float32, n)
		rwork := make([]float32, rworkLen3n(n))
		info, err := runWork("cheev", func(work []complex64, lwork int) int {
			return lapacke.Cheev(jobz, ul, n, a, lda, ws, work, lwork, rwork)
		})
		if err == nil && info == 0 {
			widenF32(w, ws)
		}
		return info, err
	},
	sygv: func(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex64, lda int, b []complex64, ldb int, w []float64) (int, error) {
		ws := make([]float32, n)
		rwork := make([]float32, rworkLen3n(n))
		info, err := runWork("chegv", func(work []complex64, lwork int) int {
			return lapacke.Chegv(itype, jobz, ul, n, a, lda, b, ldb, ws, work, lwork, rwork)
		})
		if err == nil && info == 0 {
			widenF32(w, ws)
		}
		return info, err
	},

	gesvd: func(jobu, jobvt lapack.SVDJob, m, n int, a []complex64, lda int, s []float64, u []complex64, ldu int, vt []complex64, ldvt int) (int, error) {
		ss := make([]float32, len(s))
		rwork := make([]float32, rworkLen5min(m, n))
		info, err := runWork("cgesvd", func(work []complex64, lwork int) int {
			return lapacke.Cgesvd(jobu, jobvt, m, n, a, lda, ss, u, ldu, vt, ldvt, work, lwork, rwork)
		})
		if err == nil && info == 0 {
			widenF32(s, ss)
		}
		return info, err
	},

	lange: func(norm lapack.NormKind, m, n int, a []complex64, lda int) float64 {
		var work []float32
		if norm == lapack.NormInf {
			work = make([]float32, m)
		}
		return float64(lapacke.Clange(norm, m, n, a, lda, work))
	},
}
