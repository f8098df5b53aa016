package routing

import (
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
)

// Kind tags which message family an Envelope carries (spec §4.1). Dispatch
// uses it to pick the concrete handler without a type-assertion chain.
type Kind int32

const (
	KindConnOpenInit Kind = iota
	KindConnOpenTry
	KindConnOpenAck
	KindConnOpenConfirm
	KindChanOpenInit
	KindChanOpenTry
	KindChanOpenAck
	KindChanOpenConfirm
	KindChanCloseInit
	KindChanCloseConfirm
	KindRecvPacket
	KindAcknowledgePacket
	KindTimeoutPacket
	KindTimeoutOnClose
)

func (k Kind) String() string {
	switch k {
	case KindConnOpenInit:
		return "ConnOpenInit"
	case KindConnOpenTry:
		return "ConnOpenTry"
	case KindConnOpenAck:
		return "ConnOpenAck"
	case KindConnOpenConfirm:
		return "ConnOpenConfirm"
	case KindChanOpenInit:
		return "ChanOpenInit"
	case KindChanOpenTry:
		return "ChanOpenTry"
	case KindChanOpenAck:
		return "ChanOpenAck"
	case KindChanOpenConfirm:
		return "ChanOpenConfirm"
	case KindChanCloseInit:
		return "ChanCloseInit"
	case KindChanCloseConfirm:
		return "ChanCloseConfirm"
	case KindRecvPacket:
		return "RecvPacket"
	case KindAcknowledgePacket:
		return "AcknowledgePacket"
	case KindTimeoutPacket:
		return "TimeoutPacket"
	case KindTimeoutOnClose:
		return "TimeoutOnClose"
	default:
		return "Unknown"
	}
}

// Envelope is the uniform wrapper every inbound message passes through
// Dispatch as. Message must hold the concrete Msg struct matching Kind; a
// mismatch is reported as ErrMalformedMessage rather than a panic, since
// Envelopes usually arrive already deserialized off the wire by the host.
type Envelope struct {
	Kind    Kind
	Message any
}

// NewEnvelope constructs an Envelope, inferring Kind from the concrete
// message type. It panics on an unsupported type: this is a programmer
// error (forgot to add a case here for a new message), not a runtime
// condition.
func NewEnvelope(msg any) Envelope {
	switch msg.(type) {
	case connectiontypes.MsgConnectionOpenInit:
		return Envelope{Kind: KindConnOpenInit, Message: msg}
	case connectiontypes.MsgConnectionOpenTry:
		return Envelope{Kind: KindConnOpenTry, Message: msg}
	case connectiontypes.MsgConnectionOpenAck:
		return Envelope{Kind: KindConnOpenAck, Message: msg}
	case connectiontypes.MsgConnectionOpenConfirm:
		return Envelope{Kind: KindConnOpenConfirm, Message: msg}
	case channeltypes.MsgChannelOpenInit:
		return Envelope{Kind: KindChanOpenInit, Message: msg}
	case channeltypes.MsgChannelOpenTry:
		return Envelope{Kind: KindChanOpenTry, Message: msg}
	case channeltypes.MsgChannelOpenAck:
		return Envelope{Kind: KindChanOpenAck, Message: msg}
	case channeltypes.MsgChannelOpenConfirm:
		return Envelope{Kind: KindChanOpenConfirm, Message: msg}
	case channeltypes.MsgChannelCloseInit:
		return Envelope{Kind: KindChanCloseInit, Message: msg}
	case channeltypes.MsgChannelCloseConfirm:
		return Envelope{Kind: KindChanCloseConfirm, Message: msg}
	case channeltypes.MsgRecvPacket:
		return Envelope{Kind: KindRecvPacket, Message: msg}
	case channeltypes.MsgAcknowledgement:
		return Envelope{Kind: KindAcknowledgePacket, Message: msg}
	case channeltypes.MsgTimeout:
		return Envelope{Kind: KindTimeoutPacket, Message: msg}
	case channeltypes.MsgTimeoutOnClose:
		return Envelope{Kind: KindTimeoutOnClose, Message: msg}
	default:
		panic(ErrUnknownMessageType.Wrapf("%T", msg))
	}
}
