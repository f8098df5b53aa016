package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/types"
)

func TestTimestampZero(t *testing.T) {
	require.True(t, types.ZeroTimestamp.IsZero())
	require.False(t, types.Timestamp(1).IsZero())
}

func TestCalculateBlockDelay(t *testing.T) {
	cases := []struct {
		name       string
		delayNanos uint64
		blockNanos uint64
		want       uint64
	}{
		{"no delay", 0, 1000, 0},
		{"exact multiple", 6000, 2000, 3},
		{"rounds up", 6001, 2000, 4},
		{"unknown block time disables delay", 6000, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, types.CalculateBlockDelay(tc.delayNanos, tc.blockNanos))
		})
	}
}
