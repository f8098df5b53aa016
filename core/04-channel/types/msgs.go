package types

import ibctypes "github.com/tokenize-x/ibc-core/types"

// MsgChannelOpenInit proposes a new channel over an existing (open)
// connection. PortID is owned by the application the engine will delegate
// version negotiation to.
type MsgChannelOpenInit struct {
	PortID         string
	Ordering       Order
	ConnectionHops []string
	Counterparty   Counterparty
	Version        string
	Signer         string
}

// MsgChannelOpenTry is submitted on the counterparty chain in response to
// OpenInit.
type MsgChannelOpenTry struct {
	PortID              string
	Ordering            Order
	ConnectionHops      []string
	Counterparty        Counterparty
	CounterpartyVersion string

	ProofHeight ibctypes.Height
	ProofInit   []byte
	Signer      string
}

// MsgChannelOpenAck is submitted back on the initiating chain.
type MsgChannelOpenAck struct {
	PortID                string
	ChannelID             string
	CounterpartyChannelID string
	CounterpartyVersion   string

	ProofHeight ibctypes.Height
	ProofTry    []byte
	Signer      string
}

// MsgChannelOpenConfirm is the final handshake step.
type MsgChannelOpenConfirm struct {
	PortID    string
	ChannelID string

	ProofHeight ibctypes.Height
	ProofAck    []byte
	Signer      string
}

// MsgChannelCloseInit begins the 2-step closing handshake.
type MsgChannelCloseInit struct {
	PortID    string
	ChannelID string
	Signer    string
}

// MsgChannelCloseConfirm completes the closing handshake.
type MsgChannelCloseConfirm struct {
	PortID    string
	ChannelID string

	ProofHeight ibctypes.Height
	ProofInit   []byte
	Signer      string
}

// MsgRecvPacket carries an inbound packet plus proof of its commitment on
// the sending chain.
type MsgRecvPacket struct {
	Packet      Packet
	Proof       []byte
	ProofHeight ibctypes.Height
	Signer      string
}

// MsgAcknowledgement carries the acknowledgement the receiving chain wrote
// for a packet this chain previously sent.
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement Acknowledgement
	Proof           []byte
	ProofHeight     ibctypes.Height
	Signer          string
}

// MsgTimeout carries proof that a sent packet was never received before its
// timeout elapsed.
type MsgTimeout struct {
	Packet           Packet
	Proof            []byte
	ProofHeight      ibctypes.Height
	NextSequenceRecv uint64
	Signer           string
}

// MsgTimeoutOnClose carries proof that the counterparty channel closed
// before a sent packet was received.
type MsgTimeoutOnClose struct {
	Packet           Packet
	Proof            []byte
	ProofClosed      []byte
	ProofHeight      ibctypes.Height
	NextSequenceRecv uint64
	Signer           string
}
