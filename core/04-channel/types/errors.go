package types

import errorsmod "cosmossdk.io/errors"

// Codespace is the registered error codespace for the channel handshake and
// packet pipeline.
const Codespace = "ibcchannel"

var (
	ErrChannelNotFound           = errorsmod.Register(Codespace, 2, "channel not found")
	ErrInvalidChannelState       = errorsmod.Register(Codespace, 3, "invalid channel state")
	ErrInvalidConnectionHops     = errorsmod.Register(Codespace, 4, "connection hops must have length 1")
	ErrConnectionNotOpen         = errorsmod.Register(Codespace, 5, "connection end is not in OPEN state")
	ErrInvalidPacketTimeout      = errorsmod.Register(Codespace, 6, "at least one of timeout height or timeout timestamp must be set")
	ErrPacketTimeoutNotReached   = errorsmod.Register(Codespace, 7, "packet timeout not yet reached")
	ErrPacketAlreadyTimedOut     = errorsmod.Register(Codespace, 8, "packet has already timed out")
	ErrPacketCommitmentNotFound  = errorsmod.Register(Codespace, 9, "packet commitment not found")
	ErrPacketCommitmentMismatch  = errorsmod.Register(Codespace, 10, "packet commitment bytes do not match")
	ErrAcknowledgementNotFound   = errorsmod.Register(Codespace, 11, "acknowledgement commitment not found")
	ErrAcknowledgementExists     = errorsmod.Register(Codespace, 12, "acknowledgement already exists for packet")
	ErrPacketReceived            = errorsmod.Register(Codespace, 13, "packet sequence already received")
	ErrUnexpectedPacketSequence  = errorsmod.Register(Codespace, 14, "unexpected packet sequence")
	ErrProofVerification         = errorsmod.Register(Codespace, 15, "proof verification failed")
	ErrInvalidOrdering           = errorsmod.Register(Codespace, 16, "invalid channel ordering")
	ErrInvalidVersion            = errorsmod.Register(Codespace, 17, "invalid channel version")
	ErrInvalidCounterparty       = errorsmod.Register(Codespace, 18, "invalid channel counterparty")
	ErrChannelClosed             = errorsmod.Register(Codespace, 19, "channel is closed")
	ErrChannelExists             = errorsmod.Register(Codespace, 20, "channel already exists")
	ErrCounterpartyNotClosed     = errorsmod.Register(Codespace, 21, "counterparty channel is not CLOSED")
)
