// SPDX-License-Identifier: MIT

// Package linalg: trait table for float32 — the s-routine family.
// Real-valued outputs (eigenvalues, singular values) come back from
// the routines as float32 and are widened to the float64 the trait
// contract promises; the widening is exact.

package linalg

import (
	"math"

	"github.com/elsuizo/ndarray-linalg/lapack"
	"github.com/elsuizo/ndarray-linalg/lapack/lapacke"
)

var real32Table = lapackFor[float32]{
	prefix: 's',
	eps:    0x1p-23,
	conj:   func(v float32) float32 { return v },
	abs:    func(v float32) float64 { return math.Abs(float64(v)) },

	potrf: lapacke.Spotrf,
	potrs: lapacke.Spotrs,
	potri: lapacke.Spotri,

	getrf: lapacke.Sgetrf,
	getrs: func(n, nrhs int, a []float32, lda int, ipiv []int32, b []float32, ldb int) int {
		return lapacke.Sgetrs('N', n, nrhs, a, lda, ipiv, b, ldb)
	},
	getri: func(n int, a []float32, lda int, ipiv []int32) (int, error) {
		return runWork("sgetri", func(work []float32, lwork int) int {
			return lapacke.Sgetri(n, a, lda, ipiv, work, lwork)
		})
	},

	geqrf: func(m, n int, a []float32, lda int, tau []float32) (int, error) {
		return runWork("sgeqrf", func(work []float32, lwork int) int {
			return lapacke.Sgeqrf(m, n, a, lda, tau, work, lwork)
		})
	},
	orgqr: func(m, n, k int, a []float32, lda int, tau []float32) (int, error) {
		return runWork("sorgqr", func(work []float32, lwork int) int {
			return lapacke.Sorgqr(m, n, k, a, lda, tau, work, lwork)
		})
	},

	geev: func(wantV bool, n int, a []float32, lda int, w []complex128, vr []complex128) (int, error) {
		jobvr := lapack.EVNone
		var vrbuf []float32
		ldvr := 1
		if wantV {
			jobvr = lapack.EVCompute
			vrbuf = make([]float32, n*n)
			ldvr = ldOf(n)
		}
		wr := make([]float32, n)
		wi := make([]float32, n)
		info, err := runWork("sgeev", func(work []float32, lwork int) int {
			return lapacke.Sgeev(lapack.EVNone, jobvr, n, a, lda, wr, wi, nil, 1, vrbuf, ldvr, work, lwork)
		})
		if err != nil || info != 0 {
			return info, err
		}
		for i := range wr {
			w[i] = complex(float64(wr[i]), float64(wi[i]))
		}
		if wantV {
			unpackConjugatePairs(n, wi, vrbuf, vr)
		}
		return 0, nil
	},

	syev: func(jobz lapack.EVJob, ul lapack.UPLO, n int, a []float32, lda int, w []float64) (int, error) {
		ws := make([]float32, n)
		info, err := runWork("ssyev", func(work []float32, lwork int) int {
			return lapacke.Ssyev(jobz, ul, n, a, lda, ws, work, lwork)
		})
		if err == nil && info == 0 {
			widenF32(w, ws)
		}
		return info, err
	},
	sygv: func(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []float32, lda int, b []float32, ldb int, w []float64) (int, error) {
		ws := make([]float32, n)
		info, err := runWork("ssygv", func(work []float32, lwork int) int {
			return lapacke.Ssygv(itype, jobz, ul, n, a, lda, b, ldb, ws, work, lwork)
		})
		if err == nil && info == 0 {
			widenF32(w, ws)
		}
		return info, err
	},

	gesvd: func(jobu, jobvt lapack.SVDJob, m, n int, a []float32, lda int, s []float64, u []float32, ldu int, vt []float32, ldvt int) (int, error) {
		ss := make([]float32, len(s))
		info, err := runWork("sgesvd", func(work []float32, lwork int) int {
			return lapacke.Sgesvd(jobu, jobvt, m, n, a, lda, ss, u, ldu, vt, ldvt, work, lwork)
		})
		if err == nil && info == 0 {
			widenF32(s, ss)
		}
		return info, err
	},

	lange: func(norm lapack.NormKind, m, n int, a []float32, lda int) float64 {
		var work []float32
		if norm == lapack.NormInf {
			work = make([]float32, m)
		}
		return float64(lapacke.Slange(norm, m, n, a, lda, work))
	},
}
