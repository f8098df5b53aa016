package testing

import (
	"bytes"
	"fmt"

	clienttypes "github.com/tokenize-x/ibc-core/core/02-client/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// FakeClientState is the deterministic fake client's ClientState handle. It
// carries no cryptographic material, only the latest height the test
// harness has advanced the client to.
type FakeClientState struct {
	latestHeight ibctypes.Height
}

func (c FakeClientState) ClientType() string { return "99-fake" }

func (c FakeClientState) LatestHeight() ibctypes.Height { return c.latestHeight }

// FakeConsensusState is the deterministic fake client's ConsensusState
// handle, carrying only the counterparty timestamp a test injected.
type FakeConsensusState struct {
	timestamp ibctypes.Timestamp
}

func (c FakeConsensusState) Timestamp() ibctypes.Timestamp { return c.timestamp }

type registeredClient struct {
	counterparty    *Store
	clientState     FakeClientState
	consensusStates map[string]FakeConsensusState
}

// FakeClientKeeper implements core/02-client/types.Keeper purely in terms of
// injected membership facts: a registered client's "counterparty state
// root" is just a direct reference to the counterparty chain's Store, and a
// membership proof is simply the expected value itself. This stands in for
// the real light-client layer (Tendermint, mock, ...), which spec §1 scopes
// out of this engine, so the handshake and packet pipeline can be tested
// end to end without one (original_source's `mock::context::MockContext`,
// a supplemental feature spec.md's distillation dropped).
type FakeClientKeeper struct {
	clients map[string]*registeredClient
}

var _ clienttypes.Keeper = (*FakeClientKeeper)(nil)

// NewFakeClientKeeper builds an empty registry of fake clients.
func NewFakeClientKeeper() *FakeClientKeeper {
	return &FakeClientKeeper{clients: make(map[string]*registeredClient)}
}

// RegisterClient creates a fake client identified by clientID that reports
// the counterparty chain's committed state by reading counterparty directly,
// initialised at height observing timestamp.
func (k *FakeClientKeeper) RegisterClient(clientID string, counterparty *Store, height ibctypes.Height, timestamp ibctypes.Timestamp) {
	k.clients[clientID] = &registeredClient{
		counterparty: counterparty,
		clientState:  FakeClientState{latestHeight: height},
		consensusStates: map[string]FakeConsensusState{
			height.String(): {timestamp: timestamp},
		},
	}
}

// UpdateClient records a newly observed counterparty height/timestamp,
// standing in for a relayer's MsgUpdateClient.
func (k *FakeClientKeeper) UpdateClient(clientID string, height ibctypes.Height, timestamp ibctypes.Timestamp) {
	c, ok := k.clients[clientID]
	if !ok {
		return
	}
	c.consensusStates[height.String()] = FakeConsensusState{timestamp: timestamp}
	if height.GT(c.clientState.latestHeight) {
		c.clientState.latestHeight = height
	}
}

func (k *FakeClientKeeper) GetClientState(clientID string) (clienttypes.ClientState, bool) {
	c, ok := k.clients[clientID]
	if !ok {
		return nil, false
	}
	return c.clientState, true
}

func (k *FakeClientKeeper) GetConsensusState(clientID string, height ibctypes.Height) (clienttypes.ConsensusState, bool) {
	c, ok := k.clients[clientID]
	if !ok {
		return nil, false
	}
	cs, ok := c.consensusStates[height.String()]
	if !ok {
		return nil, false
	}
	return cs, true
}

// VerifyMembership checks that value is the exact byte string committed at
// path in the counterparty's store, and that proof matches it: this fake
// client has no cryptography, so the "proof" a test constructs is simply
// the expected committed value.
func (k *FakeClientKeeper) VerifyMembership(
	clientID string,
	_ ibctypes.Height,
	_, _ uint64,
	proof []byte,
	path string,
	value []byte,
) error {
	c, ok := k.clients[clientID]
	if !ok {
		return fmt.Errorf("fake client: unknown client %s", clientID)
	}

	// A nil value means the caller is proving existence only (e.g. of a
	// client/consensus state, which this engine never mirrors into the
	// generic provable store -- that belongs to the client layer itself).
	// A non-empty proof stands in for that existence proof.
	if value == nil {
		if len(proof) == 0 {
			return fmt.Errorf("fake client: empty existence proof for %s", path)
		}
		return nil
	}

	stored, ok := c.counterparty.Get(path)
	if !ok {
		return fmt.Errorf("fake client: no value committed at %s", path)
	}
	if !bytes.Equal(stored, value) {
		return fmt.Errorf("fake client: value %x does not match committed %x at %s", value, stored, path)
	}
	if !bytes.Equal(proof, value) {
		return fmt.Errorf("fake client: proof does not match value at %s", path)
	}
	return nil
}

// VerifyNonMembership checks that path has no value committed in the
// counterparty's store.
func (k *FakeClientKeeper) VerifyNonMembership(
	clientID string,
	_ ibctypes.Height,
	_, _ uint64,
	_ []byte,
	path string,
) error {
	c, ok := k.clients[clientID]
	if !ok {
		return fmt.Errorf("fake client: unknown client %s", clientID)
	}
	if c.counterparty.Has(path) {
		return fmt.Errorf("fake client: value unexpectedly committed at %s", path)
	}
	return nil
}
