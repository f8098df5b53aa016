package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/modules/transfer/types"
)

func TestParseDenomNative(t *testing.T) {
	d := types.ParseDenom("uatom")
	require.Equal(t, "uatom", d.Base)
	require.Empty(t, d.Trace)
	require.Equal(t, "uatom", d.Path())
	require.Equal(t, "uatom", d.IBCDenom())
}

func TestParseDenomSingleHop(t *testing.T) {
	d := types.ParseDenom("transfer/channel-0/uatom")
	require.Equal(t, "uatom", d.Base)
	require.Equal(t, []types.Hop{{PortID: "transfer", ChannelID: "channel-0"}}, d.Trace)
	require.Equal(t, "transfer/channel-0/uatom", d.Path())
	require.Contains(t, d.IBCDenom(), "ibc/")
}

func TestParseDenomMultiHop(t *testing.T) {
	d := types.ParseDenom("transfer/channel-0/transfer/channel-1/uatom")
	require.Equal(t, []types.Hop{
		{PortID: "transfer", ChannelID: "channel-0"},
		{PortID: "transfer", ChannelID: "channel-1"},
	}, d.Trace)
	require.Equal(t, "uatom", d.Base)
	require.Equal(t, "transfer/channel-0/transfer/channel-1/uatom", d.Path())
}

func TestHasPrefixIsWholeSegment(t *testing.T) {
	d := types.ParseDenom("transfer/channel-0/uatom")
	require.True(t, d.HasPrefix("transfer", "channel-0"))
	require.False(t, d.HasPrefix("transfer", "channel-0-extra"))
	require.False(t, d.HasPrefix("transfer", "channel-1"))

	native := types.NewDenom("uatom")
	require.False(t, native.HasPrefix("transfer", "channel-0"))
}

func TestIsSenderChainSource(t *testing.T) {
	native := types.NewDenom("uatom")
	require.True(t, native.IsSenderChainSource("transfer", "channel-0"))

	voucher := types.ParseDenom("transfer/channel-0/uatom")
	require.False(t, voucher.IsSenderChainSource("transfer", "channel-0"))
	require.True(t, voucher.IsSenderChainSource("transfer", "channel-7"))
}

func TestWithPrefixAndWithoutLeadingHop(t *testing.T) {
	native := types.NewDenom("uatom")
	prefixed := native.WithPrefix("transfer", "channel-0")
	require.Equal(t, "transfer/channel-0/uatom", prefixed.Path())

	roundTripped := prefixed.WithoutLeadingHop()
	require.Equal(t, native, roundTripped)
}

func TestIBCDenomIsStableAndUppercaseHex(t *testing.T) {
	d := types.ParseDenom("transfer/channel-0/uatom")
	first := d.IBCDenom()
	second := d.IBCDenom()
	require.Equal(t, first, second)
	require.Equal(t, "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", first)
}
