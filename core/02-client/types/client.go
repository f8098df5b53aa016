// Package types defines the narrow capability surface this engine consumes
// from the light-client layer (ICS-2). ICS-2 itself -- concrete Tendermint,
// mock, or any other client implementation -- is an external collaborator
// out of scope for this engine (spec §1); only the interface it must
// satisfy lives here.
package types

import (
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ClientState is an opaque handle to a registered light client's latest
// state. Concrete fields (trust level, unbonding period, chain-id, ...) are
// owned by the client implementation; the engine never inspects them.
type ClientState interface {
	ClientType() string
	LatestHeight() ibctypes.Height
}

// ConsensusState is an opaque handle to a light client's state at a
// particular height, used only to read the counterparty's committed
// timestamp for timeout checks.
type ConsensusState interface {
	Timestamp() ibctypes.Timestamp
}

// Keeper is the capability the connection and channel layers consume from
// the client layer: client/consensus-state lookup and membership proof
// verification. The source's ibc-rs separates "ClientReader" (queries) from
// a validation-context trait per client type; this engine collapses that
// down to one interface, per the Design Notes' "tagged variants + narrow
// interfaces" guidance -- the tag (which concrete client type answers a
// given ClientId) is the client keeper's implementation detail, not this
// engine's concern.
type Keeper interface {
	// GetClientState returns the registered client's latest state.
	GetClientState(clientID string) (ClientState, bool)

	// GetConsensusState returns the client's consensus state at height.
	GetConsensusState(clientID string, height ibctypes.Height) (ConsensusState, bool)

	// VerifyMembership verifies that `value` is committed at `path` in the
	// counterparty's state root at `height`, as observed through the
	// client identified by clientID. delayTimePeriod/delayBlockPeriod
	// implement the connection's delay_period (spec §4.2).
	VerifyMembership(
		clientID string,
		height ibctypes.Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte,
		path string,
		value []byte,
	) error

	// VerifyNonMembership verifies the absence of any value committed at
	// `path`, used by TimeoutPacket to prove the counterparty never wrote
	// a receipt for the timed-out sequence.
	VerifyNonMembership(
		clientID string,
		height ibctypes.Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte,
		path string,
	) error
}
