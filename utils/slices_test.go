package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 1, Min(2, 1))
	require.Equal(t, -3.5, Min(-3.5, 0.0))
}

func TestMinSlice(t *testing.T) {
	require.Equal(t, 2, MinSlice([]int{7, 2, 5}))
	require.Equal(t, uint64(1), MinSlice([]uint64{1}))
	require.Panics(t, func() { MinSlice([]int{}) })
}
