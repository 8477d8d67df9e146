package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
)

// RequirePanicsWithError asserts that f panics with an error that wraps target.
func RequirePanicsWithError(t testing.TB, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, isError := recovered.(error)
		require.True(t, isError, "expected the panic value to be an error")
		require.True(t, ierrors.Is(err, target), "expected %v to wrap %v", err, target)
	}()

	f()
}
