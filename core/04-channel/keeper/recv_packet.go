package keeper

import (
	"context"
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	port "github.com/tokenize-x/ibc-core/core/05-port"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// RecvPacket processes an inbound packet (spec §4.4 RecvPacket): anti-replay
// first, then the module callback, then the ack commitment is stored. The
// module callback always returns its acknowledgement synchronously; there
// is no deferred-ack path.
func RecvPacket(ctx context.Context, k Keeper, packet types.Packet, proof []byte, proofHeight ibctypes.Height, relayer string) (ibctypes.HandlerOutput[RecvResult], error) {
	end, conn, err := validateRecvPacket(k, packet, proof, proofHeight)
	if err != nil {
		return ibctypes.HandlerOutput[RecvResult]{}, err
	}

	module, ok := k.Router().LookupModule(packet.DestPort)
	if !ok {
		return ibctypes.HandlerOutput[RecvResult]{}, errorsmod.Wrapf(port.ErrPortNotBound, "port %s", packet.DestPort)
	}

	return executeRecvPacket(ctx, k, module, packet, end, conn, relayer), nil
}

func validateRecvPacket(k Reader, packet types.Packet, proof []byte, proofHeight ibctypes.Height) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	if err := packet.ValidateBasic(); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}

	end, ok := k.GetChannel(packet.DestPort, packet.DestChannel)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", packet.DestPort, packet.DestChannel)
	}
	if end.State != types.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState,
			"channel %s/%s is in state %s, expected OPEN", packet.DestPort, packet.DestChannel, end.State)
	}
	if end.Counterparty.PortID != packet.SourcePort || end.Counterparty.ChannelID != packet.SourceChannel {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrInvalidCounterparty
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	if packet.IsTimedOut(k.Host().CurrentHeight(), k.Host().CurrentTimestamp()) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketAlreadyTimedOut
	}

	commitment := types.CommitPacket(k.Host().Hash, packet)
	path := fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d", packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if err := k.Client().VerifyMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proof, path, commitment); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	switch end.Ordering {
	case types.Ordered:
		next, _ := k.GetNextSequenceRecv(packet.DestPort, packet.DestChannel)
		if packet.Sequence != next {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrUnexpectedPacketSequence,
				"expected %d, got %d", next, packet.Sequence)
		}
	case types.Unordered:
		// handled by execute via HasPacketReceipt; duplicate == NoOp, not an error.
	}

	return end, conn, nil
}

func executeRecvPacket(ctx context.Context, k Keeper, module port.IBCModule, packet types.Packet, end types.ChannelEnd, _ connectiontypes.ConnectionEnd, relayer string) ibctypes.HandlerOutput[RecvResult] {
	if end.Ordering == types.Unordered && k.HasPacketReceipt(packet.DestPort, packet.DestChannel, packet.Sequence) {
		return ibctypes.NewHandlerOutput(RecvResult{Kind: RecvNoOp}, nil, "packet already received on unordered channel: no-op")
	}
	if end.Ordering == types.Ordered {
		next, _ := k.GetNextSequenceRecv(packet.DestPort, packet.DestChannel)
		if packet.Sequence < next {
			return ibctypes.NewHandlerOutput(RecvResult{Kind: RecvNoOp}, nil, "packet already received on ordered channel: no-op")
		}
	}

	ack := module.OnRecvPacket(ctx, packet, relayer)

	switch end.Ordering {
	case types.Unordered:
		k.SetPacketReceipt(packet.DestPort, packet.DestChannel, packet.Sequence)
	case types.Ordered:
		k.setNextSequenceRecv(packet.DestPort, packet.DestChannel, packet.Sequence+1)
	}

	events := []ibctypes.Event{
		ibctypes.NewEvent("recv_packet",
			ibctypes.NewAttribute("packet_sequence", strconv.FormatUint(packet.Sequence, 10)),
			ibctypes.NewAttribute("packet_src_port", packet.SourcePort),
			ibctypes.NewAttribute("packet_src_channel", packet.SourceChannel),
			ibctypes.NewAttribute("packet_dst_port", packet.DestPort),
			ibctypes.NewAttribute("packet_dst_channel", packet.DestChannel),
		),
	}

	ackCommitment := types.CommitAcknowledgement(k.Host().Hash, ack.Bytes())
	k.SetPacketAcknowledgement(packet.DestPort, packet.DestChannel, packet.Sequence, ackCommitment)
	events = append(events, ibctypes.NewEvent("write_acknowledgement",
		ibctypes.NewAttribute("packet_sequence", strconv.FormatUint(packet.Sequence, 10)),
		ibctypes.NewAttribute("packet_ack_hex", fmt.Sprintf("%x", ack.Bytes())),
	))

	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(RecvResult{Kind: RecvSuccess, Acknowledgement: &ack}, events)
}
