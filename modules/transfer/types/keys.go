// Package types implements the ICS-20 fungible token transfer application's
// data model: denom traces, packet data, params, and the narrow bank/account
// capability this module consumes from the host chain (spec §4.5).
package types

const (
	// ModuleName is this application's name, used as its escrow/mint module
	// account and as the key prefix for its own store section.
	ModuleName = "transfer"
	// PortID is the port this application is permanently bound to.
	PortID = "transfer"
	// Version is the only channel version this application's OnChanOpenInit
	// and OnChanOpenTry accept (spec §4.5).
	Version = "ics20-1"
	// DenomPrefix marks a bank denom as an IBC voucher.
	DenomPrefix = "ibc"
)
