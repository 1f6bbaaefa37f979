// SPDX-License-Identifier: MIT

// Package linalg: scalar constraint, storage layouts, and the Matrix
// view type. This file intentionally contains ONLY the data model;
// operations live in dedicated files and the backend boundary lives in
// lapack/lapacke.

package linalg

// Scalar is the closed set of element types the LAPACK routine
// families exist for. The set is exact (no ~ approximation): each type
// maps to exactly one routine prefix (s/d/c/z), and the trait resolver
// relies on that one-to-one correspondence.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Layout declares how a Matrix linearizes its two dimensions into the
// flat backing slice.
type Layout uint8

const (
	// RowMajor stores each row contiguously (C convention). Element
	// (i,j) lives at data[i*stride+j].
	RowMajor Layout = iota
	// ColMajor stores each column contiguously (Fortran convention).
	// Element (i,j) lives at data[i+j*stride].
	ColMajor
)

// String returns the conventional name of the layout.
func (l Layout) String() string {
	if l == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Matrix is a dense 2D view over a flat slice of one of the four
// LAPACK scalar types. It is the unit every operation in this package
// consumes and produces.
//
// Invariants (established by the constructors, assumed everywhere):
//   - rows ≥ 0, cols ≥ 0
//   - stride ≥ the minor dimension (cols for RowMajor, rows for ColMajor)
//   - the last addressable element index is < len(data)
//
// A Matrix is not safe for concurrent use when any concurrent caller
// mutates it; synchronization is the caller's responsibility.
type Matrix[T Scalar] struct {
	rows, cols int
	stride     int
	layout     Layout
	data       []T
}

// NewMatrix creates a zero-initialized rows×cols matrix in row-major
// layout. Zero dimensions are legal and produce a well-defined empty
// matrix; negative dimensions return ErrBadShape.
// Complexity: O(rows·cols).
func NewMatrix[T Scalar](rows, cols int) (*Matrix[T], error) {
	return NewMatrixLayout[T](rows, cols, RowMajor)
}

// NewMatrixLayout creates a zero-initialized rows×cols matrix in the
// given layout.
func NewMatrixLayout[T Scalar](rows, cols int, layout Layout) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewMatrix", "dimensions %dx%d: %w", rows, cols, ErrBadShape)
	}
	if layout != RowMajor && layout != ColMajor {
		return nil, shapeErrorf("NewMatrix", "unknown layout %d: %w", layout, ErrBadShape)
	}
	stride := cols
	if layout == ColMajor {
		stride = rows
	}
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		stride: stride,
		layout: layout,
		data:   make([]T, rows*cols),
	}, nil
}

// FromSlice creates a rows×cols matrix by copying data, interpreted in
// the given layout. len(data) must be exactly rows·cols.
func FromSlice[T Scalar](rows, cols int, layout Layout, data []T) (*Matrix[T], error) {
	m, err := NewMatrixLayout[T](rows, cols, layout)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, shapeErrorf("FromSlice", "have %d elements, need %d: %w", len(data), rows*cols, ErrBadShape)
	}
	copy(m.data, data)
	return m, nil
}

// Identity creates the n×n identity matrix in row-major layout.
func Identity[T Scalar](n int) (*Matrix[T], error) {
	m, err := NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = 1
	}
	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns (rows, cols). Complexity: O(1).
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Layout returns the declared storage order. Complexity: O(1).
func (m *Matrix[T]) Layout() Layout { return m.layout }

// Stride returns the leading-dimension stride of the backing slice.
func (m *Matrix[T]) Stride() int { return m.stride }

// Data returns the backing slice itself, not a copy. Mutating it
// mutates the matrix; the length/stride invariants must be preserved
// by the caller.
func (m *Matrix[T]) Data() []T { return m.data }

// IsEmpty reports whether the matrix has no elements (0 rows or cols).
func (m *Matrix[T]) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// index computes the flat index of (i,j) without bounds checking.
func (m *Matrix[T]) index(i, j int) int {
	if m.layout == ColMajor {
		return i + j*m.stride
	}
	return i*m.stride + j
}

// At retrieves the element at (i, j).
// Returns ErrOutOfRange for indices outside [0,rows)×[0,cols).
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, shapeErrorf("At", "(%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	return m.data[m.index(i, j)], nil
}

// Set assigns v at (i, j).
// Returns ErrOutOfRange for indices outside [0,rows)×[0,cols).
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return shapeErrorf("Set", "(%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	m.data[m.index(i, j)] = v
	return nil
}

// at is the unchecked accessor used internally after validation.
func (m *Matrix[T]) at(i, j int) T { return m.data[m.index(i, j)] }

// Clone returns a deep copy with the same layout.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		stride: m.stride,
		layout: m.layout,
		data:   make([]T, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}

// Transposed returns a materialized transpose (cols×rows) in the same
// layout as the receiver. The receiver is not modified.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Transposed() *Matrix[T] {
	out, _ := NewMatrixLayout[T](m.cols, m.rows, m.layout)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[out.index(j, i)] = m.data[m.index(i, j)]
		}
	}
	return out
}
