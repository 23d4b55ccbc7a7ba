package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	err := New(AlreadyJoined, "You have already joined %s", "game-1")
	require.Equal(t, "You have already joined game-1", err.Error())
	require.True(t, Is(err, AlreadyJoined))
	require.True(t, Is(fmt.Errorf("wrapped: %w", err), AlreadyJoined))
	require.False(t, Is(err, AlreadyEndorsed))
	require.False(t, Is(errors.New("plain"), AlreadyJoined))
}
