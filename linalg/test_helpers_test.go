// SPDX-License-Identifier: MIT

// Shared fixtures and numeric helpers for the linalg test suite.

package linalg_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/linalg"
)

// layouts drives the table tests that must behave identically for
// both storage orders.
var layouts = []linalg.Layout{linalg.RowMajor, linalg.ColMajor}

// mustMatrix builds a matrix from row-by-row data in the given
// layout, failing the test on a shape error.
func mustMatrix[T linalg.Scalar](t *testing.T, rows, cols int, layout linalg.Layout, rowData []T) *linalg.Matrix[T] {
	t.Helper()
	m, err := linalg.NewMatrixLayout[T](rows, cols, layout)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, rowData[i*cols+j]))
		}
	}
	return m
}

// absOf returns |v| as float64 for any scalar.
func absOf[T linalg.Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return cmplx.Abs(complex(float64(x), 0))
	case float64:
		return cmplx.Abs(complex(x, 0))
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// conjOf returns the complex conjugate of v (identity for reals).
func conjOf[T linalg.Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}
	return v
}

// matMul returns the naive product a·b, used as the oracle for
// reconstruction checks.
func matMul[T linalg.Scalar](t *testing.T, a, b *linalg.Matrix[T]) *linalg.Matrix[T] {
	t.Helper()
	m, k := a.Dims()
	k2, n := b.Dims()
	require.Equal(t, k, k2, "inner dimensions must agree")
	out, err := linalg.NewMatrixLayout[T](m, n, a.Layout())
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for l := 0; l < k; l++ {
				av, _ := a.At(i, l)
				bv, _ := b.At(l, j)
				sum += av * bv
			}
			require.NoError(t, out.Set(i, j, sum))
		}
	}
	return out
}

// conjTransposed returns aᴴ.
func conjTransposed[T linalg.Scalar](t *testing.T, a *linalg.Matrix[T]) *linalg.Matrix[T] {
	t.Helper()
	m, n := a.Dims()
	out, err := linalg.NewMatrixLayout[T](n, m, a.Layout())
	require.NoError(t, err)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j)
			require.NoError(t, out.Set(j, i, conjOf(v)))
		}
	}
	return out
}

// requireMatrixClose asserts element-wise agreement within an
// absolute tolerance.
func requireMatrixClose[T linalg.Scalar](t *testing.T, want, got *linalg.Matrix[T], tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "column count")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			wv, _ := want.At(i, j)
			gv, _ := got.At(i, j)
			require.InDelta(t, 0, absOf(wv-gv), tol, "element (%d,%d): want %v, got %v", i, j, wv, gv)
		}
	}
}

// requireIdentity asserts that got is the n×n identity within tol.
func requireIdentity[T linalg.Scalar](t *testing.T, got *linalg.Matrix[T], tol float64) {
	t.Helper()
	n, c := got.Dims()
	require.Equal(t, n, c, "identity must be square")
	id, err := linalg.Identity[T](n)
	require.NoError(t, err)
	requireMatrixClose(t, id, got, tol)
}

// tolFor returns a reconstruction tolerance appropriate for the
// scalar's precision.
func tolFor[T linalg.Scalar]() float64 {
	return 1e6 * linalg.Eps[T]()
}
