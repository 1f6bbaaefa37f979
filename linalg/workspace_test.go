// SPDX-License-Identifier: MIT

package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestQueryWork_ReportsSize verifies the query handshake: the probe
// call sees lwork == -1 and the reported size is decoded from the
// real part of work[0].
func TestQueryWork_ReportsSize(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		lwork, err := queryWork("fake", func(work []float64, lwork int) int {
			require.Equal(t, -1, lwork)
			work[0] = 64
			return 0
		})
		require.NoError(t, err)
		require.Equal(t, 64, lwork)
	})
	t.Run("complex128", func(t *testing.T) {
		lwork, err := queryWork("fake", func(work []complex128, lwork int) int {
			work[0] = complex(33, -7) // imaginary part is noise
			return 0
		})
		require.NoError(t, err)
		require.Equal(t, 33, lwork)
	})
}

// TestQueryWork_NegativeInfo verifies that an argument rejection in
// query mode surfaces as a typed ArgumentError.
func TestQueryWork_NegativeInfo(t *testing.T) {
	_, err := queryWork("dgeqrf", func(work []float64, lwork int) int {
		return -2
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	var arg *ArgumentError
	require.ErrorAs(t, err, &arg)
	require.Equal(t, "dgeqrf", arg.Routine)
	require.Equal(t, 2, arg.Index)
}

// TestQueryWork_ContractViolations verifies that a positive info or a
// nonsensical reported size maps to ErrWorkspace.
func TestQueryWork_ContractViolations(t *testing.T) {
	t.Run("positive info", func(t *testing.T) {
		_, err := queryWork("fake", func(work []float64, lwork int) int {
			return 1
		})
		require.ErrorIs(t, err, ErrWorkspace)
	})
	t.Run("size below one", func(t *testing.T) {
		_, err := queryWork("fake", func(work []float64, lwork int) int {
			work[0] = 0
			return 0
		})
		require.ErrorIs(t, err, ErrWorkspace)
	})
}

// TestRunWork_QueryThenExecute verifies the full cycle: exactly one
// query call, then one execute call with a buffer of the reported
// size, whose info is passed through untouched.
func TestRunWork_QueryThenExecute(t *testing.T) {
	calls := 0
	info, err := runWork("fake", func(work []float64, lwork int) int {
		calls++
		if lwork == -1 {
			work[0] = 16
			return 0
		}
		require.Len(t, work, 16)
		return 5
	})
	require.NoError(t, err)
	require.Equal(t, 5, info, "execute-phase info is the caller's to translate")
	require.Equal(t, 2, calls)
}

// TestRunWork_QueryFailureShortCircuits verifies the execute phase is
// never attempted after a failed query.
func TestRunWork_QueryFailureShortCircuits(t *testing.T) {
	calls := 0
	_, err := runWork("fake", func(work []float64, lwork int) int {
		calls++
		return -1
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, 1, calls)
}

// TestClosedFormSizes pins the documented rwork formulas, including
// their floor of 1.
func TestClosedFormSizes(t *testing.T) {
	require.Equal(t, 1, rworkLen3n(0))
	require.Equal(t, 1, rworkLen3n(1))
	require.Equal(t, 10, rworkLen3n(4))

	require.Equal(t, 1, rworkLen5min(0, 3))
	require.Equal(t, 5, rworkLen5min(1, 3))
	require.Equal(t, 15, rworkLen5min(4, 3))
}
