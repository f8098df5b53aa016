package types

import ibctypes "github.com/tokenize-x/ibc-core/types"

// MsgConnectionOpenInit is the first handshake step: the initiating chain
// proposes a client, a counterparty, and the versions it supports.
type MsgConnectionOpenInit struct {
	ClientID     string
	Counterparty Counterparty
	Versions     []Version
	DelayPeriod  uint64
	Signer       string
}

// MsgConnectionOpenTry is submitted on the counterparty chain in response to
// OpenInit. It carries proof of the counterparty's Init-state
// ConnectionEnd, ClientState, and ConsensusState.
type MsgConnectionOpenTry struct {
	ClientID             string
	Counterparty         Counterparty
	DelayPeriod          uint64
	CounterpartyVersions []Version

	ProofHeight             ibctypes.Height
	ProofInit               []byte // proof of counterparty ConnectionEnd in Init
	ProofClient             []byte // proof of counterparty ClientState
	ProofConsensus          []byte // proof of counterparty ConsensusState
	ConsensusHeight         ibctypes.Height
	Signer                  string
}

// MsgConnectionOpenAck is submitted back on the initiating chain once
// OpenTry succeeded on the counterparty. It locks in the negotiated
// version and carries proof of the counterparty's TryOpen-state
// ConnectionEnd, ClientState, and ConsensusState.
type MsgConnectionOpenAck struct {
	ConnectionID             string
	CounterpartyConnectionID string
	Version                  Version

	ProofHeight     ibctypes.Height
	ProofTry        []byte
	ProofClient     []byte
	ProofConsensus  []byte
	ConsensusHeight ibctypes.Height
	Signer          string
}

// MsgConnectionOpenConfirm is the final handshake step, submitted on the
// chain that processed OpenTry, proving the counterparty observed OpenAck.
type MsgConnectionOpenConfirm struct {
	ConnectionID string

	ProofHeight ibctypes.Height
	ProofAck    []byte
	Signer      string
}
