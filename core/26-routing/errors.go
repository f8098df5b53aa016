// Package routing implements ICS-26: PortId -> module dispatch and the
// top-level envelope that fans incoming messages out to the 03-connection
// and 04-channel keepers (spec §4.6).
package routing

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the registered error codespace for the router.
const Codespace = "ibcrouting"

var (
	// ErrModuleExists is returned when two modules attempt to bind the same
	// port.
	ErrModuleExists = errorsmod.Register(Codespace, 2, "module already bound to port")
	// ErrUnknownMessageType is returned for an Envelope whose Kind does not
	// match a registered message family, mirroring the source's
	// RouterError::UnknownMessageTypeUrl.
	ErrUnknownMessageType = errorsmod.Register(Codespace, 3, "unknown message type")
	// ErrMalformedMessage is returned when an Envelope's Kind and its
	// concrete payload disagree, mirroring RouterError::MalformedMessageBytes.
	ErrMalformedMessage = errorsmod.Register(Codespace, 4, "malformed message payload")
)
