// SPDX-License-Identifier: MIT

package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBackendView_ZeroCopy verifies that a packed column-major matrix
// is handed to the backend without copying: the returned buffer
// aliases the matrix storage.
func TestBackendView_ZeroCopy(t *testing.T) {
	m, err := FromSlice(2, 3, ColMajor, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	buf, lda, copied := backendView(m)
	require.False(t, copied)
	require.Equal(t, 2, lda)
	require.Equal(t, m.data, buf)

	buf[0] = 42
	require.Equal(t, 42.0, m.data[0], "zero-copy view must alias the matrix storage")
}

// TestBackendView_RowMajorCopies verifies that a row-major matrix is
// transposed into a private column-major buffer and that
// backendWriteBack reverses the transpose.
func TestBackendView_RowMajorCopies(t *testing.T) {
	// 2x3 row-major: rows (1,2,3) and (4,5,6).
	m, err := FromSlice(2, 3, RowMajor, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	buf, lda, copied := backendView(m)
	require.True(t, copied)
	require.Equal(t, 2, lda)
	// Column-major order walks columns: (1,4),(2,5),(3,6).
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, buf)

	// Mutations are invisible until written back.
	buf[1] = -4
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	backendWriteBack(m, buf, copied)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -4.0, v)
}

// TestBackendClone_NeverAliases verifies that backendClone always
// returns private storage, even for an already column-major matrix.
func TestBackendClone_NeverAliases(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"col-major", ColMajor},
		{"row-major", RowMajor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := FromSlice(2, 2, tc.layout, []float64{1, 2, 3, 4})
			require.NoError(t, err)

			buf, lda := backendClone(m)
			require.Equal(t, 2, lda)
			buf[0] = 99
			require.NotEqual(t, 99.0, m.data[0], "clone must not alias the matrix storage")
		})
	}
}

// TestFromColMajor_RoundTrip verifies that fromColMajor inverts
// transposeCopy for both layouts and adopts the buffer when no
// conversion is needed.
func TestFromColMajor_RoundTrip(t *testing.T) {
	for _, layout := range []Layout{RowMajor, ColMajor} {
		t.Run(layout.String(), func(t *testing.T) {
			src, err := FromSlice(3, 2, layout, []complex128{1, 2, 3, 4, 5, 6})
			require.NoError(t, err)

			got := fromColMajor(transposeCopy(src), 3, 2, layout)
			require.Equal(t, layout, got.Layout())
			for i := 0; i < 3; i++ {
				for j := 0; j < 2; j++ {
					want, _ := src.At(i, j)
					have, _ := got.At(i, j)
					require.Equal(t, want, have, "(%d,%d)", i, j)
				}
			}
		})
	}
}

// TestLdOf pins the leading-dimension floor of 1 for degenerate rows.
func TestLdOf(t *testing.T) {
	require.Equal(t, 1, ldOf(0))
	require.Equal(t, 1, ldOf(1))
	require.Equal(t, 7, ldOf(7))
}
