package types

import errorsmod "cosmossdk.io/errors"

// Codespace is the registered error codespace for the transfer application.
const Codespace = "ibctransfer"

var (
	ErrInvalidDenomForTransfer = errorsmod.Register(Codespace, 2, "invalid denomination for cross-chain transfer")
	ErrInvalidAmount           = errorsmod.Register(Codespace, 3, "invalid token amount")
	ErrInvalidPacketData       = errorsmod.Register(Codespace, 4, "invalid packet data")
	ErrSendDisabled            = errorsmod.Register(Codespace, 5, "fungible token transfers from this chain are disabled")
	ErrReceiveDisabled         = errorsmod.Register(Codespace, 6, "fungible token transfers to this chain are disabled")
	ErrMaxTransferChannels     = errorsmod.Register(Codespace, 7, "max transfer channels")
	ErrUnauthorized            = errorsmod.Register(Codespace, 8, "address is blocked from sending or receiving funds")
	ErrInvalidVersion          = errorsmod.Register(Codespace, 9, "invalid ICS-20 channel version")
)
