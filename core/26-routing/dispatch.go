package routing

import (
	"context"
	"fmt"

	connectionkeeper "github.com/tokenize-x/ibc-core/core/03-connection/keeper"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channelkeeper "github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
)

// RouterError wraps a handler failure with the Envelope Kind that produced
// it, mirroring the source's RouterError::ContextError variant, which
// tags an underlying ClientError/ConnectionError/ChannelError/PacketError
// with the processing step it occurred in.
type RouterError struct {
	Kind  Kind
	Cause error
}

func (e *RouterError) Error() string {
	return fmt.Sprintf("dispatch %s: %v", e.Kind, e.Cause)
}

func (e *RouterError) Unwrap() error { return e.Cause }

// Dispatch is the ICS-26 entry point: every inbound message passes through
// here exactly once, in the two-phase validate/execute style every handler
// below it already implements (spec §5, §4.6). The concrete result value's
// type depends on Kind (keeper.Result, keeper.RecvResult, ...); callers that
// need it type-assert on the returned any.
func Dispatch(ctx context.Context, connKeeper connectionkeeper.Keeper, chanKeeper channelkeeper.Keeper, env Envelope) (any, error) {
	switch env.Kind {
	case KindConnOpenInit:
		msg, ok := env.Message.(connectiontypes.MsgConnectionOpenInit)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgConnectionOpenInit, got %T", env.Message)
		}
		out, err := connectionkeeper.ConnOpenInit(ctx, connKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindConnOpenTry:
		msg, ok := env.Message.(connectiontypes.MsgConnectionOpenTry)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgConnectionOpenTry, got %T", env.Message)
		}
		out, err := connectionkeeper.ConnOpenTry(ctx, connKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindConnOpenAck:
		msg, ok := env.Message.(connectiontypes.MsgConnectionOpenAck)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgConnectionOpenAck, got %T", env.Message)
		}
		out, err := connectionkeeper.ConnOpenAck(ctx, connKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindConnOpenConfirm:
		msg, ok := env.Message.(connectiontypes.MsgConnectionOpenConfirm)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgConnectionOpenConfirm, got %T", env.Message)
		}
		out, err := connectionkeeper.ConnOpenConfirm(ctx, connKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanOpenInit:
		msg, ok := env.Message.(channeltypes.MsgChannelOpenInit)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelOpenInit, got %T", env.Message)
		}
		out, err := channelkeeper.ChanOpenInit(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanOpenTry:
		msg, ok := env.Message.(channeltypes.MsgChannelOpenTry)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelOpenTry, got %T", env.Message)
		}
		out, err := channelkeeper.ChanOpenTry(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanOpenAck:
		msg, ok := env.Message.(channeltypes.MsgChannelOpenAck)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelOpenAck, got %T", env.Message)
		}
		out, err := channelkeeper.ChanOpenAck(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanOpenConfirm:
		msg, ok := env.Message.(channeltypes.MsgChannelOpenConfirm)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelOpenConfirm, got %T", env.Message)
		}
		out, err := channelkeeper.ChanOpenConfirm(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanCloseInit:
		msg, ok := env.Message.(channeltypes.MsgChannelCloseInit)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelCloseInit, got %T", env.Message)
		}
		out, err := channelkeeper.ChanCloseInit(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindChanCloseConfirm:
		msg, ok := env.Message.(channeltypes.MsgChannelCloseConfirm)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgChannelCloseConfirm, got %T", env.Message)
		}
		out, err := channelkeeper.ChanCloseConfirm(ctx, chanKeeper, msg)
		return wrap(env.Kind, out, err)

	case KindRecvPacket:
		msg, ok := env.Message.(channeltypes.MsgRecvPacket)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgRecvPacket, got %T", env.Message)
		}
		out, err := channelkeeper.RecvPacket(ctx, chanKeeper, msg.Packet, msg.Proof, msg.ProofHeight, msg.Signer)
		return wrap(env.Kind, out, err)

	case KindAcknowledgePacket:
		msg, ok := env.Message.(channeltypes.MsgAcknowledgement)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgAcknowledgement, got %T", env.Message)
		}
		out, err := channelkeeper.AcknowledgePacket(ctx, chanKeeper, msg.Packet, msg.Acknowledgement, msg.Proof, msg.ProofHeight, msg.Signer)
		return wrap(env.Kind, out, err)

	case KindTimeoutPacket:
		msg, ok := env.Message.(channeltypes.MsgTimeout)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgTimeout, got %T", env.Message)
		}
		out, err := channelkeeper.TimeoutPacket(ctx, chanKeeper, msg.Packet, msg.Proof, msg.ProofHeight, msg.NextSequenceRecv, msg.Signer)
		return wrap(env.Kind, out, err)

	case KindTimeoutOnClose:
		msg, ok := env.Message.(channeltypes.MsgTimeoutOnClose)
		if !ok {
			return nil, ErrMalformedMessage.Wrapf("expected MsgTimeoutOnClose, got %T", env.Message)
		}
		out, err := channelkeeper.TimeoutOnClose(ctx, chanKeeper, msg.Packet, msg.Proof, msg.ProofClosed, msg.ProofHeight, msg.NextSequenceRecv, msg.Signer)
		return wrap(env.Kind, out, err)

	default:
		return nil, ErrUnknownMessageType.Wrapf("kind %s", env.Kind)
	}
}

func wrap[T any](kind Kind, out T, err error) (any, error) {
	if err != nil {
		return nil, &RouterError{Kind: kind, Cause: err}
	}
	return out, nil
}
