package types

import (
	errorsmod "cosmossdk.io/errors"
)

// CoreCodespace is the registered error codespace for cross-cutting core
// types (height, timestamp, identifiers). Domain-specific codespaces live
// alongside their packages (connection, channel, port, routing, transfer).
const CoreCodespace = "ibccore"

var (
	// ErrInvalidIdentifier is returned when an identifier fails the
	// charset/length grammar of spec §3.
	ErrInvalidIdentifier = errorsmod.Register(CoreCodespace, 2, "invalid identifier")
	// ErrInvalidHeight is registered for a malformed or incomparable Height;
	// no handler in this module returns it.
	ErrInvalidHeight = errorsmod.Register(CoreCodespace, 3, "invalid height")
	// ErrInvalidLengthTimeout is registered for a packet with neither
	// timeout field set; the channel layer reports that case with its own
	// ErrInvalidPacketTimeout.
	ErrInvalidLengthTimeout = errorsmod.Register(CoreCodespace, 4, "invalid timeout: at least one of height or timestamp must be set")
	// ErrProofVerificationFailure is registered for light-client
	// verification failures; the connection and channel handlers wrap those
	// failures in their own codespace's proof-verification errors.
	ErrProofVerificationFailure = errorsmod.Register(CoreCodespace, 5, "proof verification failed")
)
