// SPDX-License-Identifier: MIT

// Package linalg: trait table for float64 — the d-routine family.
// The double-precision bindings are the straightest of the four:
// every real output already is float64, so most entries delegate
// directly to the lapacke wrappers.

package linalg

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/lapack"
	"github.com/elsuizo/ndarray-linalg/lapack/lapacke"
)

var real64Table = lapackFor[float64]{
	prefix: 'd',
	eps:    0x1p-52,
	conj:   func(v float64) float64 { return v },
	abs:    math.Abs,

	potrf: lapacke.Dpotrf,
	potrs: lapacke.Dpotrs,
	potri: lapacke.Dpotri,

	getrf: lapacke.Dgetrf,
	getrs: func(n, nrhs int, a []float64, lda int, ipiv []int32, b []float64, ldb int) int {
		return lapacke.Dgetrs('N', n, nrhs, a, lda, ipiv, b, ldb)
	},
	getri: func(n int, a []float64, lda int, ipiv []int32) (int, error) {
		return runWork("dgetri", func(work []float64, lwork int) int {
			return lapacke.Dgetri(n, a, lda, ipiv, work, lwork)
		})
	},

	geqrf: func(m, n int, a []float64, lda int, tau []float64) (int, error) {
		return runWork("dgeqrf", func(work []float64, lwork int) int {
			return lapacke.Dgeqrf(m, n, a, lda, tau, work, lwork)
		})
	},
	orgqr: func(m, n, k int, a []float64, lda int, tau []float64) (int, error) {
		return runWork("dorgqr", func(work []float64, lwork int) int {
			return lapacke.Dorgqr(m, n, k, a, lda, tau, work, lwork)
		})
	},

	geev: func(wantV bool, n int, a []float64, lda int, w []complex128, vr []complex128) (int, error) {
		jobvr := lapack.EVNone
		var vrbuf []float64
		ldvr := 1
		if wantV {
			jobvr = lapack.EVCompute
			vrbuf = make([]float64, n*n)
			ldvr = ldOf(n)
		}
		wr := make([]float64, n)
		wi := make([]float64, n)
		info, err := runWork("dgeev", func(work []float64, lwork int) int {
			return lapacke.Dgeev(lapack.EVNone, jobvr, n, a, lda, wr, wi, nil, 1, vrbuf, ldvr, work, lwork)
		})
		if err != nil || info != 0 {
			return info, err
		}
		for i := range wr {
			w[i] = complex(wr[i], wi[i])
		}
		if wantV {
			unpackConjugatePairs(n, wi, vrbuf, vr)
		}
		return 0, nil
	},

	syev: func(jobz lapack.EVJob, ul lapack.UPLO, n int, a []float64, lda int, w []float64) (int, error) {
		return runWork("dsyev", func(work []float64, lwork int) int {
			return lapacke.Dsyev(jobz, ul, n, a, lda, w, work, lwork)
		})
	},
	sygv: func(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []float64, lda int, b []float64, ldb int, w []float64) (int, error) {
		return runWork("dsygv", func(work []float64, lwork int) int {
			return lapacke.Dsygv(itype, jobz, ul, n, a, lda, b, ldb, w, work, lwork)
		})
	},

	gesvd: func(jobu, jobvt lapack.SVDJob, m, n int, a []float64, lda int, s []float64, u []float64, ldu int, vt []float64, ldvt int) (int, error) {
		return runWork("dgesvd", func(work []float64, lwork int) int {
			return lapacke.Dgesvd(jobu, jobvt, m, n, a, lda, s, u, ldu, vt, ldvt, work, lwork)
		})
	},

	lange: func(norm lapack.NormKind, m, n int, a []float64, lda int) float64 {
		var work []float64
		if norm == lapack.NormInf {
			work = make([]float64, m)
		}
		return lapacke.Dlange(norm, m, n, a, lda, work)
	},
}
