package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxAbs(t *testing.T) {
	require.Equal(t, 3.0, MaxAbs([]float64{1, -3, 2}))
	require.Equal(t, 0.0, MaxAbs([]float64{}))
	require.Equal(t, 0.5, MaxAbs([]float64{0.5}))
}
