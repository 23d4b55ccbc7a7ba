package idutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	before := time.Now().Add(-time.Second)

	var last int64
	for i := 0; i < 100; i++ {
		id := Generate()
		n, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err)
		require.Greater(t, n, last)
		last = n

		generatedAt, err := TimeOf(id)
		require.NoError(t, err)
		require.True(t, generatedAt.After(before))
		require.False(t, generatedAt.After(time.Now().Add(time.Second)))
	}

	_, err := TimeOf("not-an-id")
	require.Error(t, err)
}
