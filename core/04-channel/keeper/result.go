package keeper

import "github.com/tokenize-x/ibc-core/core/04-channel/types"

// Result is what every channel handshake handler produces.
type Result struct {
	PortID          string
	ChannelID       string
	IdentifierState types.IdentifierState
	ChannelEnd      types.ChannelEnd
}

// RecvResultKind distinguishes a genuine first-time receive from a
// harmless duplicate on an unordered channel (spec §9 Design Notes open
// question: NoOp must be a no-op, never a panic).
type RecvResultKind int32

const (
	RecvSuccess RecvResultKind = iota
	RecvNoOp
)

// RecvResult is returned by RecvPacket.
type RecvResult struct {
	Kind            RecvResultKind
	Acknowledgement *types.Acknowledgement // nil for RecvNoOp; the module always answers synchronously
}

// SendResult is returned by SendPacket.
type SendResult struct {
	Packet types.Packet
}

// AckResult is returned by AcknowledgePacket.
type AckResult struct {
	Packet          types.Packet
	Acknowledgement types.Acknowledgement
}

// TimeoutResult is returned by TimeoutPacket/TimeoutOnClose.
type TimeoutResult struct {
	Packet types.Packet
}
