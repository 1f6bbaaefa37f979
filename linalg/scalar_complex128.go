// SPDX-License-Identifier: MIT

// Package linalg: trait table for complex128 — the z-routine family.
// The complex eigen/SVD routines carry an extra real workspace with a
// documented closed-form size (no query mode); those buffers are
// allocated here, next to the calls that need them.

package linalg

import (
	"math/cmplx"

	"github.com/elsuizo/ndarray-linalg/lapack"
	"github.com/elsuizo/ndarray-linalg/lapack/lapacke"
)

var complex128Table = lapackFor[complex128]{
	prefix: 'z',
	eps:    0x1p-52,
	conj:   cmplx.Conj,
	abs:    cmplx.Abs,

	potrf: lapacke.Zpotrf,
	potrs: lapacke.Zpotrs,
	potri: lapacke.Zpotri,

	getrf: lapacke.Zgetrf,
	getrs: func(n, nrhs int, a []complex128, lda int, ipiv []int32, b []complex128, ldb int) int {
		return lapacke.Zgetrs('N', n, nrhs, a, lda, ipiv, b, ldb)
	},
	getri: func(n int, a []complex128, lda int, ipiv []int32) (int, error) {
		return runWork("zgetri", func(work []complex128, lwork int) int {
			return lapacke.Zgetri(n, a, lda, ipiv, work, lwork)
		})
	},

	geqrf: func(m, n int, a []complex128, lda int, tau []complex128) (int, error) {
		return runWork("zgeqrf", func(work []complex128, lwork int) int {
			return lapacke.Zgeqrf(m, n, a, lda, tau, work, lwork)
		})
	},
	orgqr: func(m, n, k int, a []complex128, lda int, tau []complex128) (int, error) {
		return runWork("zungqr", func(work []complex128, lwork int) int {
			return lapacke.Zungqr(m, n, k, a, lda, tau, work, lwork)
		})
	},

	geev: func(wantV bool, n int, a []complex128, lda int, w []complex128, vr []complex128) (int, error) {
		jobvr := lapack.EVNone
		var vrbuf []complex128
		ldvr := 1
		if wantV {
			jobvr = lapack.EVCompute
			vrbuf = vr // complex output needs no unpacking
			ldvr = ldOf(n)
		}
		rwork := make([]float64, 2*n)
		return runWork("zgeev", func(work []complex128, lwork int) int {
			return lapacke.Zgeev(lapack.EVNone, jobvr, n, a, lda, w, nil, 1, vrbuf, ldvr, work, lwork, rwork)
		})
	},

	syev: func(jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex128, lda int, w []float64) (int, error) {
		rwork := make([]float64, rworkLen3n(n))
		return runWork("zheev", func(work []complex128, lwork int) int {
			return lapacke.Zheev(jobz, ul, n, a, lda, w, work, lwork, rwork)
		})
	},
	sygv: func(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex128, lda int, b []complex128, ldb int, w []float64) (int, error) {
		rwork := make([]float64, rworkLen3n(n))
		return runWork("zhegv", func(work []complex128, lwork int) int {
			return lapacke.Zhegv(itype, jobz, ul, n, a, lda, b, ldb, w, work, lwork, rwork)
		})
	},

	gesvd: func(jobu, jobvt lapack.SVDJob, m, n int, a []complex128, lda int, s []float64, u []complex128, ldu int, vt []complex128, ldvt int) (int, error) {
		rwork := make([]float64, rworkLen5min(m, n))
		return runWork("zgesvd", func(work []complex128, lwork int) int {
			return lapacke.Zgesvd(jobu, jobvt, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork, rwork)
		})
	},

	lange: func(norm lapack.NormKind, m, n int, a []complex128, lda int) float64 {
		var work []float64
		if norm == lapack.NormInf {
			work = make([]float64, m)
		}
		return lapacke.Zlange(norm, m, n, a, lda, work)
	},
}
