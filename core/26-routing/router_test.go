package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	port "github.com/tokenize-x/ibc-core/core/05-port"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/26-routing"
)

// stubModule is the minimal port.IBCModule a router test needs; none of its
// methods are ever invoked by these tests.
type stubModule struct{}

func (stubModule) OnChanOpenInit(context.Context, channeltypes.Order, []string, string, string, channeltypes.Counterparty, string) (string, error) {
	return "", nil
}
func (stubModule) OnChanOpenTry(context.Context, channeltypes.Order, []string, string, string, channeltypes.Counterparty, string) (string, error) {
	return "", nil
}
func (stubModule) OnChanOpenAck(context.Context, string, string, string) error      { return nil }
func (stubModule) OnChanOpenConfirm(context.Context, string, string) error          { return nil }
func (stubModule) OnChanCloseInit(context.Context, string, string) error            { return nil }
func (stubModule) OnChanCloseConfirm(context.Context, string, string) error         { return nil }
func (stubModule) OnRecvPacket(context.Context, channeltypes.Packet, string) channeltypes.Acknowledgement {
	return channeltypes.Acknowledgement{}
}
func (stubModule) OnAcknowledgementPacket(context.Context, channeltypes.Packet, channeltypes.Acknowledgement, string) error {
	return nil
}
func (stubModule) OnTimeoutPacket(context.Context, channeltypes.Packet, string) error { return nil }

var _ port.IBCModule = stubModule{}

func TestRouterAddAndLookupRoute(t *testing.T) {
	r := routing.NewRouter()
	require.False(t, r.HasRoute("transfer"))

	r.AddRoute("transfer", stubModule{})
	require.True(t, r.HasRoute("transfer"))

	m, ok := r.LookupModule("transfer")
	require.True(t, ok)
	require.Equal(t, stubModule{}, m)

	_, ok = r.LookupModule("unknown")
	require.False(t, ok)
}

func TestRouterAddRoutePanicsOnDuplicate(t *testing.T) {
	r := routing.NewRouter()
	r.AddRoute("transfer", stubModule{})
	require.Panics(t, func() {
		r.AddRoute("transfer", stubModule{})
	})
}

func TestRouterPortsAreSorted(t *testing.T) {
	r := routing.NewRouter()
	r.AddRoute("zeta", stubModule{})
	r.AddRoute("alpha", stubModule{})
	r.AddRoute("mid", stubModule{})

	require.Equal(t, []string{"alpha", "mid", "zeta"}, r.Ports())
}
