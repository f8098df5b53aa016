// Package host builds the provable-store key paths named in spec §6. The
// keepers read and write their own store entries through these functions;
// the counterparty paths passed to proof verification are formatted inline
// in the handlers, using the same layouts.
package host

import "fmt"

// ClientStateKey returns the path for a client's ClientState.
func ClientStateKey(clientID string) string {
	return fmt.Sprintf("clients/%s/clientState", clientID)
}

// ConsensusStateKey returns the path for a client's ConsensusState at height.
func ConsensusStateKey(clientID string, height fmt.Stringer) string {
	return fmt.Sprintf("clients/%s/consensusStates/%s", clientID, height.String())
}

// ConnectionKey returns the path for a ConnectionEnd.
func ConnectionKey(connectionID string) string {
	return fmt.Sprintf("connections/%s", connectionID)
}

// ChannelKey returns the path for a ChannelEnd.
func ChannelKey(portID, channelID string) string {
	return fmt.Sprintf("channelEnds/ports/%s/channels/%s", portID, channelID)
}

// ChannelPrefix returns the store-iteration prefix for all channels bound to a port.
func ChannelPrefix(portID string) string {
	return fmt.Sprintf("channelEnds/ports/%s/channels/", portID)
}

// NextSequenceSendKey returns the path for a channel's next-send counter.
func NextSequenceSendKey(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceSend/ports/%s/channels/%s", portID, channelID)
}

// NextSequenceRecvKey returns the path for a channel's next-recv counter.
func NextSequenceRecvKey(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", portID, channelID)
}

// NextSequenceAckKey returns the path for a channel's next-ack counter.
func NextSequenceAckKey(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceAck/ports/%s/channels/%s", portID, channelID)
}

// PacketCommitmentKey returns the path for a packet commitment.
func PacketCommitmentKey(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// PacketCommitmentPrefix returns the store-iteration prefix for all commitments on a channel.
func PacketCommitmentPrefix(portID, channelID string) string {
	return fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/", portID, channelID)
}

// PacketReceiptKey returns the path for an unordered-channel receipt.
func PacketReceiptKey(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// PacketAcknowledgementKey returns the path for a stored acknowledgement commitment.
func PacketAcknowledgementKey(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// NextConnectionSequenceKey is the global counter backing "connection-{n}" allocation.
func NextConnectionSequenceKey() string {
	return "nextConnectionSequence"
}

// NextChannelSequenceKey is the global counter backing "channel-{n}" allocation.
func NextChannelSequenceKey() string {
	return "nextChannelSequence"
}

// TransferDenomKey returns the path under which a transfer module registers
// the full trace of a voucher denom, keyed by its IBC denom hash.
func TransferDenomKey(denomHash string) string {
	return fmt.Sprintf("transfer/denoms/%s", denomHash)
}

// TransferEscrowTotalKey returns the path tracking the running total escrowed
// for a given bank denom, used to cross-check I7 (total supply preservation).
func TransferEscrowTotalKey(denom string) string {
	return fmt.Sprintf("transfer/escrowTotal/%s", denom)
}
