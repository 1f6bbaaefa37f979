// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elsuizo/ndarray-linalg/linalg"
)

// TestNewMatrix_Shapes verifies the constructor contract for legal,
// empty and invalid shapes.
func TestNewMatrix_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"square", 3, 3, nil},
		{"rectangular", 2, 5, nil},
		{"zero rows", 0, 4, nil},
		{"zero cols", 4, 0, nil},
		{"both zero", 0, 0, nil},
		{"negative rows", -1, 2, linalg.ErrBadShape},
		{"negative cols", 2, -3, linalg.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := linalg.NewMatrix[float64](tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, linalg.ErrInvalidArgument)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			r, c := m.Dims()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			require.Equal(t, tc.rows == 0 || tc.cols == 0, m.IsEmpty())
			require.Equal(t, linalg.RowMajor, m.Layout())
		})
	}
}

// TestNewMatrixLayout_UnknownLayout verifies that an undefined layout
// value is rejected rather than silently treated as one of the two.
func TestNewMatrixLayout_UnknownLayout(t *testing.T) {
	_, err := linalg.NewMatrixLayout[float32](2, 2, linalg.Layout(9))
	require.ErrorIs(t, err, linalg.ErrBadShape)
}

// TestFromSlice verifies the copy semantics and the exact-length
// requirement.
func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := linalg.FromSlice(2, 3, linalg.RowMajor, data)
	require.NoError(t, err)

	// The matrix owns a copy; mutating the source is invisible.
	data[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = linalg.FromSlice(2, 3, linalg.RowMajor, []float64{1, 2})
	require.ErrorIs(t, err, linalg.ErrBadShape)
}

// TestLayoutAddressing verifies that the same logical element maps to
// the layout-appropriate flat position.
func TestLayoutAddressing(t *testing.T) {
	// Logical matrix: [[1,2,3],[4,5,6]].
	rowMajor, err := linalg.FromSlice(2, 3, linalg.RowMajor, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	colMajor, err := linalg.FromSlice(2, 3, linalg.ColMajor, []float64{1, 4, 2, 5, 3, 6})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			rv, err := rowMajor.At(i, j)
			require.NoError(t, err)
			cv, err := colMajor.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rv, cv, "(%d,%d)", i, j)
		}
	}
	require.Equal(t, 3, rowMajor.Stride())
	require.Equal(t, 2, colMajor.Stride())
}

// TestAtSet_Bounds verifies the out-of-range contract on both
// accessors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := linalg.NewMatrix[complex128](2, 2)
	require.NoError(t, err)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, linalg.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
		err = m.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, linalg.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}

	require.NoError(t, m.Set(1, 1, complex(2, -3)))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, complex(2, -3), v)
}

// TestClone_IsDeep verifies that Clone detaches the storage.
func TestClone_IsDeep(t *testing.T) {
	m := mustMatrix(t, 2, 2, linalg.ColMajor, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, m.Layout(), c.Layout())
}

// TestTransposed verifies the materialized transpose for a
// rectangular matrix.
func TestTransposed(t *testing.T) {
	m := mustMatrix(t, 2, 3, linalg.RowMajor, []float64{1, 2, 3, 4, 5, 6})
	tr := m.Transposed()

	r, c := tr.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			orig, _ := m.At(i, j)
			flip, _ := tr.At(j, i)
			require.Equal(t, orig, flip)
		}
	}
}

// TestIdentity verifies ones on the diagonal and zeros elsewhere.
func TestIdentity(t *testing.T) {
	id, err := linalg.Identity[complex64](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, complex64(1), v)
			} else {
				require.Equal(t, complex64(0), v)
			}
		}
	}
}

// TestOptionValidation pins the panic contract of the option
// constructors: misconfiguration is a programmer error.
func TestOptionValidation(t *testing.T) {
	require.Panics(t, func() { linalg.WithHermitianTolerance(-1) })
	require.NotPanics(t, func() { linalg.WithHermitianTolerance(0) })
	require.NotPanics(t, func() { linalg.WithHermitianTolerance(1e-9) })
}
