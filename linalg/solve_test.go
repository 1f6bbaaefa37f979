// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/linalg"
)

// TestSolve verifies the one-shot facade across scalar types and
// layouts via the residual A·X - B.
func TestSolve(t *testing.T) {
	t.Run("float64", func(t *testing.T) { solveRoundTrip[float64](t) })
	t.Run("float32", func(t *testing.T) { solveRoundTrip[float32](t) })
	t.Run("complex128", func(t *testing.T) { solveRoundTrip[complex128](t) })
	t.Run("complex64", func(t *testing.T) { solveRoundTrip[complex64](t) })
}

func solveRoundTrip[T linalg.Scalar](t *testing.T) {
	for _, layout := range layouts {
		t.Run(layout.String(), func(t *testing.T) {
			a := mustMatrix(t, 3, 3, layout, []T{
				3, 1, 0,
				1, 4, 1,
				0, 1, 5,
			})
			b := mustMatrix(t, 3, 2, layout, []T{
				1, 2,
				0, 1,
				-1, 0,
			})
			x, err := linalg.Solve(a, b)
			require.NoError(t, err)
			requireMatrixClose(t, b, matMul(t, a, x), tolFor[T]())
		})
	}
}

// TestSolve_Guards covers the facade's validation and singular paths.
func TestSolve_Guards(t *testing.T) {
	t.Run("non-square coefficient", func(t *testing.T) {
		a := mustMatrix(t, 2, 3, linalg.RowMajor, make([]float64, 6))
		b := mustMatrix(t, 2, 1, linalg.RowMajor, make([]float64, 2))
		_, err := linalg.Solve(a, b)
		require.ErrorIs(t, err, linalg.ErrNotSquare)
	})
	t.Run("rhs mismatch", func(t *testing.T) {
		a := mustMatrix(t, 3, 3, linalg.RowMajor, make([]float64, 9))
		b := mustMatrix(t, 2, 1, linalg.RowMajor, make([]float64, 2))
		_, err := linalg.Solve(a, b)
		require.ErrorIs(t, err, linalg.ErrShapeMismatch)
	})
	t.Run("singular coefficient", func(t *testing.T) {
		a := mustMatrix(t, 2, 2, linalg.RowMajor, []float64{1, 2, 2, 4})
		b := mustMatrix(t, 2, 1, linalg.RowMajor, []float64{1, 1})
		_, err := linalg.Solve(a, b)
		require.ErrorIs(t, err, linalg.ErrSingular)
	})
}

// TestInverse verifies A·A⁻¹ = I through the facade and the singular
// failure.
func TestInverse(t *testing.T) {
	a := mustMatrix(t, 2, 2, linalg.RowMajor, []complex128{
		complex(1, 1), 2,
		0, complex(0, -3),
	})
	inv, err := linalg.Inverse(a)
	require.NoError(t, err)
	requireIdentity(t, matMul(t, a, inv), tolFor[complex128]())

	sing := mustMatrix(t, 2, 2, linalg.RowMajor, []float64{1, 1, 1, 1})
	_, err = linalg.Inverse(sing)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

// TestDet verifies the determinant facade, including the contract
// that a singular matrix reports det 0 with no error.
func TestDet(t *testing.T) {
	t.Run("regular", func(t *testing.T) {
		a := mustMatrix(t, 2, 2, linalg.RowMajor, []float64{1, 2, 3, 4})
		det, err := linalg.Det(a)
		require.NoError(t, err)
		require.InDelta(t, -2.0, det, 1e-12)
	})
	t.Run("singular is zero, not an error", func(t *testing.T) {
		a := mustMatrix(t, 3, 3, linalg.RowMajor, []float64{
			1, 2, 3,
			2, 4, 6,
			1, 0, 1,
		})
		det, err := linalg.Det(a)
		require.NoError(t, err)
		require.Equal(t, 0.0, det)
	})
	t.Run("not square", func(t *testing.T) {
		a := mustMatrix(t, 2, 3, linalg.RowMajor, make([]float64, 6))
		_, err := linalg.Det(a)
		require.ErrorIs(t, err, linalg.ErrNotSquare)
	})
	t.Run("empty", func(t *testing.T) {
		a, err := linalg.NewMatrix[float64](0, 0)
		require.NoError(t, err)
		det, err := linalg.Det(a)
		require.NoError(t, err)
		require.Equal(t, 1.0, det)
	})
}
