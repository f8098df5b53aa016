package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/26-routing"
)

func TestNewEnvelopeInfersKind(t *testing.T) {
	cases := []struct {
		name string
		msg  any
		kind routing.Kind
	}{
		{"ConnOpenInit", connectiontypes.MsgConnectionOpenInit{}, routing.KindConnOpenInit},
		{"ConnOpenTry", connectiontypes.MsgConnectionOpenTry{}, routing.KindConnOpenTry},
		{"ConnOpenAck", connectiontypes.MsgConnectionOpenAck{}, routing.KindConnOpenAck},
		{"ConnOpenConfirm", connectiontypes.MsgConnectionOpenConfirm{}, routing.KindConnOpenConfirm},
		{"ChanOpenInit", channeltypes.MsgChannelOpenInit{}, routing.KindChanOpenInit},
		{"ChanOpenTry", channeltypes.MsgChannelOpenTry{}, routing.KindChanOpenTry},
		{"ChanOpenAck", channeltypes.MsgChannelOpenAck{}, routing.KindChanOpenAck},
		{"ChanOpenConfirm", channeltypes.MsgChannelOpenConfirm{}, routing.KindChanOpenConfirm},
		{"ChanCloseInit", channeltypes.MsgChannelCloseInit{}, routing.KindChanCloseInit},
		{"ChanCloseConfirm", channeltypes.MsgChannelCloseConfirm{}, routing.KindChanCloseConfirm},
		{"RecvPacket", channeltypes.MsgRecvPacket{}, routing.KindRecvPacket},
		{"Acknowledgement", channeltypes.MsgAcknowledgement{}, routing.KindAcknowledgePacket},
		{"Timeout", channeltypes.MsgTimeout{}, routing.KindTimeoutPacket},
		{"TimeoutOnClose", channeltypes.MsgTimeoutOnClose{}, routing.KindTimeoutOnClose},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := routing.NewEnvelope(tc.msg)
			require.Equal(t, tc.kind, env.Kind)
			require.Equal(t, tc.msg, env.Message)
		})
	}
}

func TestNewEnvelopePanicsOnUnknownType(t *testing.T) {
	require.Panics(t, func() {
		routing.NewEnvelope(struct{ Foo string }{Foo: "bar"})
	})
}

func TestKindStringCoversEveryConstant(t *testing.T) {
	kinds := []routing.Kind{
		routing.KindConnOpenInit,
		routing.KindConnOpenTry,
		routing.KindConnOpenAck,
		routing.KindConnOpenConfirm,
		routing.KindChanOpenInit,
		routing.KindChanOpenTry,
		routing.KindChanOpenAck,
		routing.KindChanOpenConfirm,
		routing.KindChanCloseInit,
		routing.KindChanCloseConfirm,
		routing.KindRecvPacket,
		routing.KindAcknowledgePacket,
		routing.KindTimeoutPacket,
		routing.KindTimeoutOnClose,
	}
	for _, k := range kinds {
		require.NotEqual(t, "Unknown", k.String())
	}
	require.Equal(t, "Unknown", routing.Kind(999).String())
}
