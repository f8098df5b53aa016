package types

import (
	"encoding/binary"
)

// HashFunc is the host-injected hash function used for commitment
// construction (spec §6: canonical binding is SHA-256).
type HashFunc func([]byte) []byte

// CommitPacket computes the packet commitment bytes per spec §6:
//
//	H( timeout_timestamp_be64 || timeout_revision_number_be64 ||
//	   timeout_revision_height_be64 || H(packet_data) )
//
// An unset timeout height encodes as (0,0); an unset timeout timestamp
// encodes as 0. This is a pure function of (timeout_height,
// timeout_timestamp, data) (property P3).
func CommitPacket(h HashFunc, p Packet) []byte {
	buf := make([]byte, 0, 8+8+8+len(h(p.Data)))
	buf = appendUint64(buf, uint64(p.TimeoutTimestamp))
	buf = appendUint64(buf, p.TimeoutHeight.RevisionNumber)
	buf = appendUint64(buf, p.TimeoutHeight.RevisionHeight)
	buf = append(buf, h(p.Data)...)
	return h(buf)
}

// CommitAcknowledgement computes the stored acknowledgement commitment:
// H(ack_bytes).
func CommitAcknowledgement(h HashFunc, ackBytes []byte) []byte {
	return h(ackBytes)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// ReceiptSentinel is the presence-token value written for an unordered
// channel's receipt (spec §3: "no payload").
var ReceiptSentinel = []byte{0x01}
