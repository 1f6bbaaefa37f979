// SPDX-License-Identifier: MIT

// Package lapacke: cgo wrappers over the LAPACKE *_work entry points.
//
// Links are provided to the NETLIB fortran documentation for each
// routine family. Wrappers convert Go slices/flags to the C calling
// convention and return the raw info code; they perform no validation
// and no workspace management of their own.

package lapacke

/*
#cgo CFLAGS: -g -O2
#include <lapacke.h>
*/
import "C"

import (
	"unsafe"

	"github.com/elsuizo/ndarray-linalg/lapack"
)

// colMajor is the LAPACKE storage-order code for column-major data.
// With *_work entry points this makes every call a direct pass-through
// to the Fortran routine, with no hidden transposition buffer.
const colMajor = C.int(102)

// Pointer helpers. LAPACKE never dereferences buffers whose dimension
// arguments are zero or whose job flags are 'N', so nil is the safe
// representation of an empty slice.

func ps(s []float32) *C.float {
	if len(s) == 0 {
		return nil
	}
	return (*C.float)(&s[0])
}

func pd(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(&s[0])
}

func pc(s []complex64) *C.lapack_complex_float {
	if len(s) == 0 {
		return nil
	}
	return (*C.lapack_complex_float)(unsafe.Pointer(&s[0]))
}

func pz(s []complex128) *C.lapack_complex_double {
	if len(s) == 0 {
		return nil
	}
	return (*C.lapack_complex_double)(unsafe.Pointer(&s[0]))
}

func pi(s []int32) *C.lapack_int {
	if len(s) == 0 {
		return nil
	}
	return (*C.lapack_int)(unsafe.Pointer(&s[0]))
}

func li(n int) C.lapack_int { return C.lapack_int(n) }

// ---------- Cholesky: potrf / potrs / potri ----------

// See https://netlib.org/lapack/explore-html/ for spotrf.
func Spotrf(ul lapack.UPLO, n int, a []float32, lda int) int {
	return int(C.LAPACKE_spotrf_work(colMajor, C.char(ul), li(n), ps(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for dpotrf.
func Dpotrf(ul lapack.UPLO, n int, a []float64, lda int) int {
	return int(C.LAPACKE_dpotrf_work(colMajor, C.char(ul), li(n), pd(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for cpotrf.
func Cpotrf(ul lapack.UPLO, n int, a []complex64, lda int) int {
	return int(C.LAPACKE_cpotrf_work(colMajor, C.char(ul), li(n), pc(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for zpotrf.
func Zpotrf(ul lapack.UPLO, n int, a []complex128, lda int) int {
	return int(C.LAPACKE_zpotrf_work(colMajor, C.char(ul), li(n), pz(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for spotrs.
func Spotrs(ul lapack.UPLO, n, nrhs int, a []float32, lda int, b []float32, ldb int) int {
	return int(C.LAPACKE_spotrs_work(colMajor, C.char(ul), li(n), li(nrhs), ps(a), li(lda), ps(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for dpotrs.
func Dpotrs(ul lapack.UPLO, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	return int(C.LAPACKE_dpotrs_work(colMajor, C.char(ul), li(n), li(nrhs), pd(a), li(lda), pd(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for cpotrs.
func Cpotrs(ul lapack.UPLO, n, nrhs int, a []complex64, lda int, b []complex64, ldb int) int {
	return int(C.LAPACKE_cpotrs_work(colMajor, C.char(ul), li(n), li(nrhs), pc(a), li(lda), pc(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for zpotrs.
func Zpotrs(ul lapack.UPLO, n, nrhs int, a []complex128, lda int, b []complex128, ldb int) int {
	return int(C.LAPACKE_zpotrs_work(colMajor, C.char(ul), li(n), li(nrhs), pz(a), li(lda), pz(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for spotri.
func Spotri(ul lapack.UPLO, n int, a []float32, lda int) int {
	return int(C.LAPACKE_spotri_work(colMajor, C.char(ul), li(n), ps(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for dpotri.
func Dpotri(ul lapack.UPLO, n int, a []float64, lda int) int {
	return int(C.LAPACKE_dpotri_work(colMajor, C.char(ul), li(n), pd(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for cpotri.
func Cpotri(ul lapack.UPLO, n int, a []complex64, lda int) int {
	return int(C.LAPACKE_cpotri_work(colMajor, C.char(ul), li(n), pc(a), li(lda)))
}

// See https://netlib.org/lapack/explore-html/ for zpotri.
func Zpotri(ul lapack.UPLO, n int, a []complex128, lda int) int {
	return int(C.LAPACKE_zpotri_work(colMajor, C.char(ul), li(n), pz(a), li(lda)))
}

// ---------- LU: getrf / getrs / getri ----------

// See https://netlib.org/lapack/explore-html/ for sgetrf.
func Sgetrf(m, n int, a []float32, lda int, ipiv []int32) int {
	return int(C.LAPACKE_sgetrf_work(colMajor, li(m), li(n), ps(a), li(lda), pi(ipiv)))
}

// See https://netlib.org/lapack/explore-html/ for dgetrf.
func Dgetrf(m, n int, a []float64, lda int, ipiv []int32) int {
	return int(C.LAPACKE_dgetrf_work(colMajor, li(m), li(n), pd(a), li(lda), pi(ipiv)))
}

// See https://netlib.org/lapack/explore-html/ for cgetrf.
func Cgetrf(m, n int, a []complex64, lda int, ipiv []int32) int {
	return int(C.LAPACKE_cgetrf_work(colMajor, li(m), li(n), pc(a), li(lda), pi(ipiv)))
}

// See https://netlib.org/lapack/explore-html/ for zgetrf.
func Zgetrf(m, n int, a []complex128, lda int, ipiv []int32) int {
	return int(C.LAPACKE_zgetrf_work(colMajor, li(m), li(n), pz(a), li(lda), pi(ipiv)))
}

// See https://netlib.org/lapack/explore-html/ for sgetrs.
func Sgetrs(trans byte, n, nrhs int, a []float32, lda int, ipiv []int32, b []float32, ldb int) int {
	return int(C.LAPACKE_sgetrs_work(colMajor, C.char(trans), li(n), li(nrhs), ps(a), li(lda), pi(ipiv), ps(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for dgetrs.
func Dgetrs(trans byte, n, nrhs int, a []float64, lda int, ipiv []int32, b []float64, ldb int) int {
	return int(C.LAPACKE_dgetrs_work(colMajor, C.char(trans), li(n), li(nrhs), pd(a), li(lda), pi(ipiv), pd(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for cgetrs.
func Cgetrs(trans byte, n, nrhs int, a []complex64, lda int, ipiv []int32, b []complex64, ldb int) int {
	return int(C.LAPACKE_cgetrs_work(colMajor, C.char(trans), li(n), li(nrhs), pc(a), li(lda), pi(ipiv), pc(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for zgetrs.
func Zgetrs(trans byte, n, nrhs int, a []complex128, lda int, ipiv []int32, b []complex128, ldb int) int {
	return int(C.LAPACKE_zgetrs_work(colMajor, C.char(trans), li(n), li(nrhs), pz(a), li(lda), pi(ipiv), pz(b), li(ldb)))
}

// See https://netlib.org/lapack/explore-html/ for sgetri.
func Sgetri(n int, a []float32, lda int, ipiv []int32, work []float32, lwork int) int {
	return int(C.LAPACKE_sgetri_work(colMajor, li(n), ps(a), li(lda), pi(ipiv), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dgetri.
func Dgetri(n int, a []float64, lda int, ipiv []int32, work []float64, lwork int) int {
	return int(C.LAPACKE_dgetri_work(colMajor, li(n), pd(a), li(lda), pi(ipiv), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cgetri.
func Cgetri(n int, a []complex64, lda int, ipiv []int32, work []complex64, lwork int) int {
	return int(C.LAPACKE_cgetri_work(colMajor, li(n), pc(a), li(lda), pi(ipiv), pc(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for zgetri.
func Zgetri(n int, a []complex128, lda int, ipiv []int32, work []complex128, lwork int) int {
	return int(C.LAPACKE_zgetri_work(colMajor, li(n), pz(a), li(lda), pi(ipiv), pz(work), li(lwork)))
}

// ---------- QR: geqrf / orgqr / ungqr ----------

// See https://netlib.org/lapack/explore-html/ for sgeqrf.
func Sgeqrf(m, n int, a []float32, lda int, tau, work []float32, lwork int) int {
	return int(C.LAPACKE_sgeqrf_work(colMajor, li(m), li(n), ps(a), li(lda), ps(tau), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dgeqrf.
func Dgeqrf(m, n int, a []float64, lda int, tau, work []float64, lwork int) int {
	return int(C.LAPACKE_dgeqrf_work(colMajor, li(m), li(n), pd(a), li(lda), pd(tau), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cgeqrf.
func Cgeqrf(m, n int, a []complex64, lda int, tau, work []complex64, lwork int) int {
	return int(C.LAPACKE_cgeqrf_work(colMajor, li(m), li(n), pc(a), li(lda), pc(tau), pc(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for zgeqrf.
func Zgeqrf(m, n int, a []complex128, lda int, tau, work []complex128, lwork int) int {
	return int(C.LAPACKE_zgeqrf_work(colMajor, li(m), li(n), pz(a), li(lda), pz(tau), pz(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for sorgqr.
func Sorgqr(m, n, k int, a []float32, lda int, tau, work []float32, lwork int) int {
	return int(C.LAPACKE_sorgqr_work(colMajor, li(m), li(n), li(k), ps(a), li(lda), ps(tau), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dorgqr.
func Dorgqr(m, n, k int, a []float64, lda int, tau, work []float64, lwork int) int {
	return int(C.LAPACKE_dorgqr_work(colMajor, li(m), li(n), li(k), pd(a), li(lda), pd(tau), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cungqr.
func Cungqr(m, n, k int, a []complex64, lda int, tau, work []complex64, lwork int) int {
	return int(C.LAPACKE_cungqr_work(colMajor, li(m), li(n), li(k), pc(a), li(lda), pc(tau), pc(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for zungqr.
func Zungqr(m, n, k int, a []complex128, lda int, tau, work []complex128, lwork int) int {
	return int(C.LAPACKE_zungqr_work(colMajor, li(m), li(n), li(k), pz(a), li(lda), pz(tau), pz(work), li(lwork)))
}

// ---------- General eigen: geev ----------

// See https://netlib.org/lapack/explore-html/ for sgeev.
func Sgeev(jobvl, jobvr lapack.EVJob, n int, a []float32, lda int, wr, wi []float32, vl []float32, ldvl int, vr []float32, ldvr int, work []float32, lwork int) int {
	return int(C.LAPACKE_sgeev_work(colMajor, C.char(jobvl), C.char(jobvr), li(n), ps(a), li(lda), ps(wr), ps(wi), ps(vl), li(ldvl), ps(vr), li(ldvr), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dgeev.
func Dgeev(jobvl, jobvr lapack.EVJob, n int, a []float64, lda int, wr, wi []float64, vl []float64, ldvl int, vr []float64, ldvr int, work []float64, lwork int) int {
	return int(C.LAPACKE_dgeev_work(colMajor, C.char(jobvl), C.char(jobvr), li(n), pd(a), li(lda), pd(wr), pd(wi), pd(vl), li(ldvl), pd(vr), li(ldvr), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cgeev.
func Cgeev(jobvl, jobvr lapack.EVJob, n int, a []complex64, lda int, w []complex64, vl []complex64, ldvl int, vr []complex64, ldvr int, work []complex64, lwork int, rwork []float32) int {
	return int(C.LAPACKE_cgeev_work(colMajor, C.char(jobvl), C.char(jobvr), li(n), pc(a), li(lda), pc(w), pc(vl), li(ldvl), pc(vr), li(ldvr), pc(work), li(lwork), ps(rwork)))
}

// See https://netlib.org/lapack/explore-html/ for zgeev.
func Zgeev(jobvl, jobvr lapack.EVJob, n int, a []complex128, lda int, w []complex128, vl []complex128, ldvl int, vr []complex128, ldvr int, work []complex128, lwork int, rwork []float64) int {
	return int(C.LAPACKE_zgeev_work(colMajor, C.char(jobvl), C.char(jobvr), li(n), pz(a), li(lda), pz(w), pz(vl), li(ldvl), pz(vr), li(ldvr), pz(work), li(lwork), pd(rwork)))
}

// ---------- Symmetric/Hermitian eigen: syev / heev ----------

// See https://netlib.org/lapack/explore-html/ for ssyev.
func Ssyev(jobz lapack.EVJob, ul lapack.UPLO, n int, a []float32, lda int, w []float32, work []float32, lwork int) int {
	return int(C.LAPACKE_ssyev_work(colMajor, C.char(jobz), C.char(ul), li(n), ps(a), li(lda), ps(w), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dsyev.
func Dsyev(jobz lapack.EVJob, ul lapack.UPLO, n int, a []float64, lda int, w []float64, work []float64, lwork int) int {
	return int(C.LAPACKE_dsyev_work(colMajor, C.char(jobz), C.char(ul), li(n), pd(a), li(lda), pd(w), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cheev.
func Cheev(jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex64, lda int, w []float32, work []complex64, lwork int, rwork []float32) int {
	return int(C.LAPACKE_cheev_work(colMajor, C.char(jobz), C.char(ul), li(n), pc(a), li(lda), ps(w), pc(work), li(lwork), ps(rwork)))
}

// See https://netlib.org/lapack/explore-html/ for zheev.
func Zheev(jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex128, lda int, w []float64, work []complex128, lwork int, rwork []float64) int {
	return int(C.LAPACKE_zheev_work(colMajor, C.char(jobz), C.char(ul), li(n), pz(a), li(lda), pd(w), pz(work), li(lwork), pd(rwork)))
}

// ---------- Generalized symmetric-definite eigen: sygv / hegv ----------

// See https://netlib.org/lapack/explore-html/ for ssygv.
func Ssygv(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []float32, lda int, b []float32, ldb int, w []float32, work []float32, lwork int) int {
	return int(C.LAPACKE_ssygv_work(colMajor, li(int(itype)), C.char(jobz), C.char(ul), li(n), ps(a), li(lda), ps(b), li(ldb), ps(w), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dsygv.
func Dsygv(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []float64, lda int, b []float64, ldb int, w []float64, work []float64, lwork int) int {
	return int(C.LAPACKE_dsygv_work(colMajor, li(int(itype)), C.char(jobz), C.char(ul), li(n), pd(a), li(lda), pd(b), li(ldb), pd(w), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for chegv.
func Chegv(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex64, lda int, b []complex64, ldb int, w []float32, work []complex64, lwork int, rwork []float32) int {
	return int(C.LAPACKE_chegv_work(colMajor, li(int(itype)), C.char(jobz), C.char(ul), li(n), pc(a), li(lda), pc(b), li(ldb), ps(w), pc(work), li(lwork), ps(rwork)))
}

// See https://netlib.org/lapack/explore-html/ for zhegv.
func Zhegv(itype lapack.GenEigType, jobz lapack.EVJob, ul lapack.UPLO, n int, a []complex128, lda int, b []complex128, ldb int, w []float64, work []complex128, lwork int, rwork []float64) int {
	return int(C.LAPACKE_zhegv_work(colMajor, li(int(itype)), C.char(jobz), C.char(ul), li(n), pz(a), li(lda), pz(b), li(ldb), pd(w), pz(work), li(lwork), pd(rwork)))
}

// ---------- SVD: gesvd ----------

// See https://netlib.org/lapack/explore-html/ for sgesvd.
func Sgesvd(jobu, jobvt lapack.SVDJob, m, n int, a []float32, lda int, s []float32, u []float32, ldu int, vt []float32, ldvt int, work []float32, lwork int) int {
	return int(C.LAPACKE_sgesvd_work(colMajor, C.char(jobu), C.char(jobvt), li(m), li(n), ps(a), li(lda), ps(s), ps(u), li(ldu), ps(vt), li(ldvt), ps(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for dgesvd.
func Dgesvd(jobu, jobvt lapack.SVDJob, m, n int, a []float64, lda int, s []float64, u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int) int {
	return int(C.LAPACKE_dgesvd_work(colMajor, C.char(jobu), C.char(jobvt), li(m), li(n), pd(a), li(lda), pd(s), pd(u), li(ldu), pd(vt), li(ldvt), pd(work), li(lwork)))
}

// See https://netlib.org/lapack/explore-html/ for cgesvd.
func Cgesvd(jobu, jobvt lapack.SVDJob, m, n int, a []complex64, lda int, s []float32, u []complex64, ldu int, vt []complex64, ldvt int, work []complex64, lwork int, rwork []float32) int {
	return int(C.LAPACKE_cgesvd_work(colMajor, C.char(jobu), C.char(jobvt), li(m), li(n), pc(a), li(lda), ps(s), pc(u), li(ldu), pc(vt), li(ldvt), pc(work), li(lwork), ps(rwork)))
}

// See https://netlib.org/lapack/explore-html/ for zgesvd.
func Zgesvd(jobu, jobvt lapack.SVDJob, m, n int, a []complex128, lda int, s []float64, u []complex128, ldu int, vt []complex128, ldvt int, work []complex128, lwork int, rwork []float64) int {
	return int(C.LAPACKE_zgesvd_work(colMajor, C.char(jobu), C.char(jobvt), li(m), li(n), pz(a), li(lda), pd(s), pz(u), li(ldu), pz(vt), li(ldvt), pz(work), li(lwork), pd(rwork)))
}

// ---------- Norms: lange ----------
//
// The lange family returns the norm value, not an info code; the work
// buffer (length m) is referenced only for the infinity norm.

// See https://netlib.org/lapack/explore-html/ for slange.
func Slange(norm lapack.NormKind, m, n int, a []float32, lda int, work []float32) float32 {
	return float32(C.LAPACKE_slange_work(colMajor, C.char(norm), li(m), li(n), ps(a), li(lda), ps(work)))
}

// See https://netlib.org/lapack/explore-html/ for dlange.
func Dlange(norm lapack.NormKind, m, n int, a []float64, lda int, work []float64) float64 {
	return float64(C.LAPACKE_dlange_work(colMajor, C.char(norm), li(m), li(n), pd(a), li(lda), pd(work)))
}

// See https://netlib.org/lapack/explore-html/ for clange.
func Clange(norm lapack.NormKind, m, n int, a []complex64, lda int, work []float32) float32 {
	return float32(C.LAPACKE_clange_work(colMajor, C.char(norm), li(m), li(n), pc(a), li(lda), ps(work)))
}

// See https://netlib.org/lapack/explore-html/ for zlange.
func Zlange(norm lapack.NormKind, m, n int, a []complex128, lda int, work []float64) float64 {
	return float64(C.LAPACKE_zlange_work(colMajor, C.char(norm), li(m), li(n), pz(a), li(lda), pd(work)))
}
