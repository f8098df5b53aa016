package types

import errorsmod "cosmossdk.io/errors"

// Codespace is the registered error codespace for the connection handshake.
const Codespace = "ibcconnection"

var (
	ErrConnectionNotFound        = errorsmod.Register(Codespace, 2, "connection not found")
	ErrConnectionExists          = errorsmod.Register(Codespace, 3, "connection already exists")
	ErrInvalidConnectionState    = errorsmod.Register(Codespace, 4, "invalid connection state")
	ErrNoCommonVersion           = errorsmod.Register(Codespace, 5, "no common version between proposed and supported versions")
	ErrInvalidVersion            = errorsmod.Register(Codespace, 6, "invalid version")
	ErrInvalidCounterparty       = errorsmod.Register(Codespace, 7, "invalid counterparty connection")
	ErrClientNotFound            = errorsmod.Register(Codespace, 8, "client not found")
	ErrConnectionProofVerification = errorsmod.Register(Codespace, 9, "connection proof verification failed")
	ErrClientProofVerification   = errorsmod.Register(Codespace, 10, "client state proof verification failed")
	ErrConsensusProofVerification = errorsmod.Register(Codespace, 11, "consensus state proof verification failed")
	ErrInvalidIdentifier         = errorsmod.Register(Codespace, 12, "invalid connection identifier")
	ErrInvalidParam              = errorsmod.Register(Codespace, 13, "invalid connection param")
)
