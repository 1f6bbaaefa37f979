// SPDX-License-Identifier: MIT

// Package linalg: the layout adapter.
//
// Every operation in this package is written against "contiguous
// column-major with leading dimension ≥ rows" — the convention of the
// routine boundary — and never reasons about the caller's layout
// itself. This file is the only place the two storage orders meet.
//
// Three contracts:
//   - backendView: zero-copy pass-through when the caller's storage
//     already satisfies the routine convention, transpose copy
//     otherwise; pair with backendWriteBack for consume-and-overwrite
//     operations.
//   - backendClone: always a private copy, for non-destructive
//     operations (the routines overwrite their input in place).
//   - fromColMajor: reconstitute a routine-owned column-major result
//     buffer into the caller's layout.

package linalg

// ldOf returns the LAPACK leading dimension for a rows-tall
// column-major buffer (lda ≥ max(1, rows)).
func ldOf(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}

// isBackendReady reports whether a's storage can be handed to a
// routine as-is: declared column-major with the packed stride.
func isBackendReady[T Scalar](a *Matrix[T]) bool {
	return a.layout == ColMajor && a.stride == ldOf(a.rows)
}

// backendView returns a column-major buffer for a, avoiding the copy
// when a already satisfies the routine convention. copied reports
// whether buf is a private transpose copy; if so, mutations by the
// routine are invisible to the caller until backendWriteBack.
func backendView[T Scalar](a *Matrix[T]) (buf []T, lda int, copied bool) {
	if isBackendReady(a) {
		return a.data, a.stride, false
	}
	return transposeCopy(a), ldOf(a.rows), true
}

// backendClone always returns a private column-major copy of a, so the
// routine may overwrite it freely without the caller observing.
func backendClone[T Scalar](a *Matrix[T]) (buf []T, lda int) {
	if isBackendReady(a) {
		buf = make([]T, len(a.data))
		copy(buf, a.data)
		return buf, a.stride
	}
	return transposeCopy(a), ldOf(a.rows)
}

// transposeCopy materializes a as a packed column-major buffer.
// Fixed j→i loop order: writes are sequential in the destination.
func transposeCopy[T Scalar](a *Matrix[T]) []T {
	buf := make([]T, a.rows*a.cols)
	for j := 0; j < a.cols; j++ {
		col := buf[j*a.rows:]
		for i := 0; i < a.rows; i++ {
			col[i] = a.data[a.index(i, j)]
		}
	}
	return buf
}

// backendWriteBack copies a mutated private buffer back into the
// caller's storage, reversing the transpose. No-op when the view was
// zero-copy (the routine already mutated a.data directly).
func backendWriteBack[T Scalar](a *Matrix[T], buf []T, copied bool) {
	if !copied {
		return
	}
	for j := 0; j < a.cols; j++ {
		col := buf[j*a.rows:]
		for i := 0; i < a.rows; i++ {
			a.data[a.index(i, j)] = col[i]
		}
	}
}

// fromColMajor reconstitutes a packed column-major result buffer of
// shape rows×cols as a Matrix in the requested layout. For ColMajor
// the buffer is adopted without copying; ownership transfers to the
// returned Matrix.
func fromColMajor[T Scalar](buf []T, rows, cols int, layout Layout) *Matrix[T] {
	if layout == ColMajor {
		return &Matrix[T]{
			rows:   rows,
			cols:   cols,
			stride: ldOf(rows),
			layout: ColMajor,
			data:   buf,
		}
	}
	out, _ := NewMatrixLayout[T](rows, cols, RowMajor)
	for j := 0; j < cols; j++ {
		col := buf[j*rows:]
		for i := 0; i < rows; i++ {
			out.data[i*out.stride+j] = col[i]
		}
	}
	return out
}

// emptyLike returns a well-defined empty rows×cols result (one of the
// dimensions is zero) in the given layout, used by the short-circuit
// paths that never invoke the backend.
func emptyLike[T Scalar](rows, cols int, layout Layout) *Matrix[T] {
	out, _ := NewMatrixLayout[T](rows, cols, layout)
	return out
}
