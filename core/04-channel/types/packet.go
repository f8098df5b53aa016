package types

import ibctypes "github.com/tokenize-x/ibc-core/types"

// Packet is a unit of application data crossing a channel (spec §3).
type Packet struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestPort           string
	DestChannel        string
	Data               []byte
	TimeoutHeight      ibctypes.Height    // zero value means "unset"
	TimeoutTimestamp   ibctypes.Timestamp // zero value means "unset"
}

// HasTimeoutHeight reports whether a timeout height was set.
func (p Packet) HasTimeoutHeight() bool { return !p.TimeoutHeight.IsZero() }

// HasTimeoutTimestamp reports whether a timeout timestamp was set.
func (p Packet) HasTimeoutTimestamp() bool { return !p.TimeoutTimestamp.IsZero() }

// ValidateBasic checks the packet's timeout invariant (spec §3: "at least
// one of timeout_height / timeout_timestamp must be set").
func (p Packet) ValidateBasic() error {
	if !p.HasTimeoutHeight() && !p.HasTimeoutTimestamp() {
		return ErrInvalidPacketTimeout
	}
	if err := ibctypes.ValidateIdentifier(p.SourcePort); err != nil {
		return err
	}
	if err := ibctypes.ValidateIdentifier(p.SourceChannel); err != nil {
		return err
	}
	if err := ibctypes.ValidateIdentifier(p.DestPort); err != nil {
		return err
	}
	if err := ibctypes.ValidateIdentifier(p.DestChannel); err != nil {
		return err
	}
	return nil
}

// IsTimedOut reports whether the packet has expired as observed at the
// given height/timestamp on the receiving chain, per spec §4.4 RecvPacket:
// a set timeout height that is <= the recv height, or a set timeout
// timestamp that is <= the recv timestamp, means expired.
func (p Packet) IsTimedOut(recvHeight ibctypes.Height, recvTimestamp ibctypes.Timestamp) bool {
	if p.HasTimeoutHeight() && recvHeight.GTE(p.TimeoutHeight) {
		return true
	}
	if p.HasTimeoutTimestamp() && recvTimestamp.GTE(p.TimeoutTimestamp) {
		return true
	}
	return false
}
