package filter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTestCause = errors.New("test: cause")

func TestErrorMatchesOperationFailed(t *testing.T) {
	err := error(New("no space left"))
	require.ErrorIs(t, err, ErrOperationFailed)
	require.Equal(t, "filter: no space left", err.Error())

	var fe *Error
	require.ErrorAs(t, err, &fe)
	require.Nil(t, fe.Err)
}

func TestWrapKeepsCause(t *testing.T) {
	err := error(Wrap(errTestCause, "capacity %d", 0))
	require.ErrorIs(t, err, ErrOperationFailed)
	require.ErrorIs(t, err, errTestCause)
	require.Equal(t, "filter: capacity 0: test: cause", err.Error())

	// Still reachable through further wrapping.
	outer := fmt.Errorf("building index: %w", err)
	require.ErrorIs(t, outer, errTestCause)

	var fe *Error
	require.ErrorAs(t, outer, &fe)
	require.Equal(t, "capacity 0", fe.Message)
}
