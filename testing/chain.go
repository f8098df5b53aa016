package testing

import (
	"cosmossdk.io/log"

	connectionkeeper "github.com/tokenize-x/ibc-core/core/03-connection/keeper"
	channelkeeper "github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	"github.com/tokenize-x/ibc-core/core/26-routing"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// Chain bundles one simulated chain's host context and the three keepers
// every handshake/packet test drives, wired together the same way a real
// application would wire them (spec §4.6: router holds the connection and
// channel keepers' port-bound application modules).
type Chain struct {
	Host       *Host
	Clients    *FakeClientKeeper
	Router     *routing.Router
	Connection connectionkeeper.Keeper
	Channel    channelkeeper.Keeper
}

// NewChain builds a Chain at the given starting height/timestamp. Callers
// register port-bound applications on Router before exercising handshakes.
func NewChain(height ibctypes.Height, timestamp ibctypes.Timestamp) *Chain {
	h := NewHost(height, timestamp)
	clients := NewFakeClientKeeper()
	router := routing.NewRouter()

	logger := log.NewNopLogger()
	connKeeper := connectionkeeper.NewKeeper(h, clients, logger)
	chanKeeper := channelkeeper.NewKeeper(h, clients, connKeeper, router, logger)

	return &Chain{
		Host:       h,
		Clients:    clients,
		Router:     router,
		Connection: connKeeper,
		Channel:    chanKeeper,
	}
}

// Link registers a fake client on each chain pointed at the other's store,
// standing in for the out-of-scope light-client update flow (spec §1) so a
// handshake/packet test can drive both sides of a connection.
func Link(a *Chain, clientIDOnA string, b *Chain, clientIDOnB string) {
	a.Clients.RegisterClient(clientIDOnA, b.Host.RawStore(), b.Host.CurrentHeight(), b.Host.CurrentTimestamp())
	b.Clients.RegisterClient(clientIDOnB, a.Host.RawStore(), a.Host.CurrentHeight(), a.Host.CurrentTimestamp())
}

// Sync re-registers both sides' latest height/timestamp after advancing a
// chain's Host, so proofs at the new height verify.
func Sync(a *Chain, clientIDOnA string, b *Chain, clientIDOnB string) {
	a.Clients.UpdateClient(clientIDOnA, b.Host.CurrentHeight(), b.Host.CurrentTimestamp())
	b.Clients.UpdateClient(clientIDOnB, a.Host.CurrentHeight(), a.Host.CurrentTimestamp())
}

// ProofAt returns the exact bytes committed at path in the chain's store,
// standing in for a real relayer's membership proof: this fake client
// verifies a proof by comparing it to the value committed at the same path
// (testing/fakeclient.go).
func (c *Chain) ProofAt(path string) []byte {
	bz, _ := c.Host.RawStore().Get(path)
	return bz
}

// ExistenceProof returns a non-empty sentinel proof for the client/consensus
// "existence only" VerifyMembership calls the handshake issues, which this
// engine never mirrors into the generic provable store.
func ExistenceProof() []byte {
	return []byte{0x01}
}
