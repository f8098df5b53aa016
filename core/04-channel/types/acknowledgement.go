package types

import "encoding/json"

// Acknowledgement is the protocol-level success/failure envelope a module
// callback returns from OnRecvPacket (spec §4.4). The packet is always
// consumed; failure here is an application-level outcome, not a protocol
// error (spec §7).
type Acknowledgement struct {
	Success bool
	// Result carries the success payload (opaque to the channel layer).
	Result []byte
	// Error carries a human-readable failure reason.
	Error string
}

// ackJSON is the wire shape: exactly one of "result"/"error" is present,
// matching the convention ibc-go's channel types use for default acks.
type ackJSON struct {
	Result []byte `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewResultAcknowledgement builds a success acknowledgement.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{Success: true, Result: result}
}

// NewErrorAcknowledgement builds a failure acknowledgement. The reason is
// intentionally terse: detailed errors must not leak nondeterministic
// or host-internal detail into a value that becomes part of on-chain state.
func NewErrorAcknowledgement(reason string) Acknowledgement {
	return Acknowledgement{Success: false, Error: reason}
}

// Bytes returns the canonical wire encoding of the acknowledgement.
func (a Acknowledgement) Bytes() []byte {
	j := ackJSON{Result: a.Result, Error: a.Error}
	bz, err := json.Marshal(j)
	if err != nil {
		panic(err)
	}
	return bz
}
