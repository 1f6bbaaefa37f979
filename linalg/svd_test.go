// SPDX-License-Identifier: MIT

package linalg_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/lapack"
	"github.com/elsuizo/ndarray-linalg/linalg"
)

// diagOf embeds s on the main diagonal of a rows×cols matrix of T,
// building the Σ factor for reconstruction checks.
func diagOf[T linalg.Scalar](t *testing.T, rows, cols int, layout linalg.Layout, s []float64) *linalg.Matrix[T] {
	t.Helper()
	m, err := linalg.NewMatrixLayout[T](rows, cols, layout)
	require.NoError(t, err)
	for i := 0; i < len(s) && i < rows && i < cols; i++ {
		require.NoError(t, m.Set(i, i, scalarFrom[T](s[i])))
	}
	return m
}

func scalarFrom[T linalg.Scalar](v float64) T {
	switch any(*new(T)).(type) {
	case complex64:
		return any(complex64(complex(v, 0))).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	case float32:
		return any(float32(v)).(T)
	default:
		return any(v).(T)
	}
}

// TestSVD_Reconstruction verifies A = U·Σ·Vᴴ in both job modes for
// tall, wide and square inputs.
func TestSVD_Reconstruction(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		data       []float64
	}{
		{"square", 3, 3, []float64{
			2, 0, 1,
			-1, 3, 0,
			0, 1, 4,
		}},
		{"tall", 4, 2, []float64{
			1, 0,
			0, 2,
			3, 0,
			0, 4,
		}},
		{"wide", 2, 3, []float64{
			1, 2, 0,
			0, 1, -1,
		}},
	}
	jobs := []struct {
		name string
		job  lapack.SVDJob
	}{
		{"all", lapack.SVDAll},
		{"economy", lapack.SVDEconomy},
	}
	for _, tc := range tests {
		for _, jb := range jobs {
			for _, layout := range layouts {
				t.Run(tc.name+"/"+jb.name+"/"+layout.String(), func(t *testing.T) {
					a := mustMatrix(t, tc.rows, tc.cols, layout, tc.data)
					res, err := linalg.SVD(a, jb.job)
					require.NoError(t, err)

					k := min(tc.rows, tc.cols)
					require.Len(t, res.S, k)
					require.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(res.S))), "singular values descend: %v", res.S)
					for _, s := range res.S {
						require.GreaterOrEqual(t, s, 0.0)
					}

					ur, uc := res.U.Dims()
					vr, vc := res.VT.Dims()
					require.Equal(t, tc.rows, ur)
					require.Equal(t, tc.cols, vc)
					if jb.job == lapack.SVDAll {
						require.Equal(t, tc.rows, uc)
						require.Equal(t, tc.cols, vr)
					} else {
						require.Equal(t, k, uc)
						require.Equal(t, k, vr)
					}

					sigma := diagOf[float64](t, uc, vr, layout, res.S)
					requireMatrixClose(t, a, matMul(t, res.U, matMul(t, sigma, res.VT)), tolFor[float64]())
					requireIdentity(t, matMul(t, conjTransposed(t, res.U), res.U), tolFor[float64]())
				})
			}
		}
	}
}

// TestSVD_ComplexReconstruction verifies the complex path, whose
// singular values stay real float64.
func TestSVD_ComplexReconstruction(t *testing.T) {
	a := mustMatrix(t, 2, 2, linalg.RowMajor, []complex128{
		complex(1, 1), 0,
		complex(0, -2), 3,
	})
	res, err := linalg.SVD(a, lapack.SVDEconomy)
	require.NoError(t, err)
	require.Len(t, res.S, 2)

	sigma := diagOf[complex128](t, 2, 2, linalg.RowMajor, res.S)
	requireMatrixClose(t, a, matMul(t, res.U, matMul(t, sigma, res.VT)), tolFor[complex128]())
	requireIdentity(t, matMul(t, conjTransposed(t, res.U), res.U), tolFor[complex128]())
	requireIdentity(t, matMul(t, res.VT, conjTransposed(t, res.VT)), tolFor[complex128]())
}

// TestSVD_KnownValues pins the singular values of a diagonal fixture.
func TestSVD_KnownValues(t *testing.T) {
	a := mustMatrix(t, 3, 2, linalg.RowMajor, []float64{
		3, 0,
		0, -5,
		0, 0,
	})
	s, err := linalg.SingularValues(a)
	require.NoError(t, err)
	require.InDelta(t, 5, s[0], 1e-12)
	require.InDelta(t, 3, s[1], 1e-12)
}

// TestSVD_NoneJob verifies the values-only mode allocates no vector
// matrices.
func TestSVD_NoneJob(t *testing.T) {
	a := mustMatrix(t, 2, 2, linalg.RowMajor, []float64{1, 0, 0, 2})
	res, err := linalg.SVD(a, lapack.SVDNone)
	require.NoError(t, err)
	require.Nil(t, res.U)
	require.Nil(t, res.VT)
	require.Len(t, res.S, 2)
}

// TestSVD_Guards covers the job flag validation, nil input and the
// empty short-circuit.
func TestSVD_Guards(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, err := linalg.SVD[float64](nil, lapack.SVDAll)
		require.ErrorIs(t, err, linalg.ErrNilMatrix)
	})
	t.Run("unknown job", func(t *testing.T) {
		a := mustMatrix(t, 2, 2, linalg.RowMajor, make([]float64, 4))
		_, err := linalg.SVD(a, lapack.SVDJob('Q'))
		require.ErrorIs(t, err, linalg.ErrInvalidArgument)
	})
	t.Run("empty", func(t *testing.T) {
		a, err := linalg.NewMatrix[float64](0, 3)
		require.NoError(t, err)
		res, err := linalg.SVD(a, lapack.SVDEconomy)
		require.NoError(t, err)
		require.Empty(t, res.S)
		require.True(t, res.U.IsEmpty())
		require.True(t, res.VT.IsEmpty())
	})
}
