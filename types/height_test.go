package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/types"
)

func TestHeightOrdering(t *testing.T) {
	h1 := types.NewHeight(1, 10)
	h2 := types.NewHeight(1, 11)
	h3 := types.NewHeight(2, 5)

	require.True(t, h1.LT(h2))
	require.True(t, h2.GT(h1))
	require.True(t, h1.LTE(h1))
	require.True(t, h1.GTE(h1))

	// Different revisions are never ordered against each other.
	require.False(t, h1.LT(h3))
	require.False(t, h1.GT(h3))
	require.False(t, h1.EQ(h3))
}

func TestHeightZero(t *testing.T) {
	require.True(t, types.ZeroHeight().IsZero())
	require.False(t, types.NewHeight(0, 1).IsZero())
	require.False(t, types.NewHeight(1, 0).IsZero())
}

func TestHeightString(t *testing.T) {
	require.Equal(t, "1-10", types.NewHeight(1, 10).String())
}
