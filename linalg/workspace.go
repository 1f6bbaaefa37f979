// SPDX-License-Identifier: MIT

// Package linalg: the two-phase workspace protocol driver.
//
// Most factorization routines want scratch memory whose size only the
// backend knows. The protocol is: call once with lwork == -1 (query
// mode) so the routine writes its optimal size into work[0], allocate
// exactly that, call again in execute mode. The driver below owns the
// buffer for the duration of one call; nothing is cached or reused
// across calls, so concurrent operations never share scratch state.
//
// Routines without a query mode (rwork of the complex eigen/SVD
// families) use closed-form sizes computed from the matrix dimensions
// per the routine's documented formula; those are allocated directly
// by the scalar bindings.

package linalg

import "fmt"

// workSize decodes the size a query call reported in work[0].
// The routines store the size in the real part of the first element.
func workSize[T Scalar](v T) int {
	switch x := any(v).(type) {
	case float32:
		return int(x)
	case float64:
		return int(x)
	case complex64:
		return int(real(x))
	case complex128:
		return int(real(x))
	}
	return 0
}

// queryWork runs call in query mode and validates the reported size.
//
// A negative info from the query phase means an argument was invalid;
// the driver surfaces a typed ArgumentError and the execute phase is
// never attempted. A positive info or a size below 1 means the backend
// violated the query contract, surfaced as ErrWorkspace.
func queryWork[T Scalar](routine string, call func(work []T, lwork int) int) (int, error) {
	probe := make([]T, 1)
	if info := call(probe, -1); info != 0 {
		if info < 0 {
			return 0, &ArgumentError{Routine: routine, Index: -info}
		}
		return 0, fmt.Errorf("%s: query returned info %d: %w", routine, info, ErrWorkspace)
	}
	lwork := workSize(probe[0])
	if lwork < 1 {
		return 0, fmt.Errorf("%s: query reported size %d: %w", routine, lwork, ErrWorkspace)
	}
	return lwork, nil
}

// runWork executes the full query/allocate/execute cycle.
// Exactly one allocation happens per call; the buffer goes out of
// scope when runWork returns, on every exit path.
func runWork[T Scalar](routine string, call func(work []T, lwork int) int) (info int, err error) {
	lwork, err := queryWork(routine, call)
	if err != nil {
		return 0, err
	}
	work := make([]T, lwork)
	return call(work, lwork), nil
}
