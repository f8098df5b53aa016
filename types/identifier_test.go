package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/types"
)

func TestValidateIdentifier(t *testing.T) {
	require.NoError(t, types.ValidateIdentifier("channel-0"))
	require.NoError(t, types.ValidateIdentifier("transfer"))
	require.Error(t, types.ValidateIdentifier(""))
	require.Error(t, types.ValidateIdentifier(strings.Repeat("a", 65)))
	require.Error(t, types.ValidateIdentifier("bad id with spaces"))
}

func TestFormatAndValidateGeneratedIDs(t *testing.T) {
	require.Equal(t, "connection-0", types.FormatConnectionIdentifier(0))
	require.Equal(t, "channel-7", types.FormatChannelIdentifier(7))

	require.True(t, types.IsValidConnectionID("connection-0"))
	require.False(t, types.IsValidConnectionID("channel-0"))
	require.True(t, types.IsValidChannelID("channel-7"))
	require.False(t, types.IsValidChannelID("connection-7"))
}
