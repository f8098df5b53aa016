package keeper

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	port "github.com/tokenize-x/ibc-core/core/05-port"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// TimeoutPacket processes a proof that a packet was never received before
// its timeout elapsed (spec §4.4 TimeoutPacket). For ordered channels the
// channel transitions to CLOSED on success.
func TimeoutPacket(
	ctx context.Context,
	k Keeper,
	packet types.Packet,
	proof []byte,
	proofHeight ibctypes.Height,
	nextSequenceRecv uint64,
	relayer string,
) (ibctypes.HandlerOutput[TimeoutResult], error) {
	end, conn, err := validateTimeoutPacket(k, packet, proof, proofHeight, nextSequenceRecv)
	if err != nil {
		return ibctypes.HandlerOutput[TimeoutResult]{}, err
	}

	module, ok := k.Router().LookupModule(packet.SourcePort)
	if !ok {
		return ibctypes.HandlerOutput[TimeoutResult]{}, errorsmod.Wrapf(port.ErrPortNotBound, "port %s", packet.SourcePort)
	}
	if err := module.OnTimeoutPacket(ctx, packet, relayer); err != nil {
		return ibctypes.HandlerOutput[TimeoutResult]{}, err
	}

	return executeTimeoutPacket(k, packet, end, conn), nil
}

func validateTimeoutPacket(k Reader, packet types.Packet, proof []byte, proofHeight ibctypes.Height, nextSequenceRecv uint64) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := k.GetChannel(packet.SourcePort, packet.SourceChannel)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", packet.SourcePort, packet.SourceChannel)
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	storedCommitment, ok := k.GetPacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketCommitmentNotFound
	}
	recomputed := types.CommitPacket(k.Host().Hash, packet)
	if !bytes.Equal(storedCommitment, recomputed) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketCommitmentMismatch
	}

	expired, err := packetExpiredAtProofHeight(k, conn.ClientID, packet, proofHeight)
	if err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	if !expired {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketTimeoutNotReached
	}

	switch end.Ordering {
	case types.Unordered:
		path := fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", packet.DestPort, packet.DestChannel, packet.Sequence)
		if err := k.Client().VerifyNonMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proof, path); err != nil {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
		}
	case types.Ordered:
		if nextSequenceRecv > packet.Sequence {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrPacketReceived, "counterparty already received this sequence")
		}
		path := fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", packet.DestPort, packet.DestChannel)
		if err := k.Client().VerifyMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proof, path, encodeUint64(nextSequenceRecv)); err != nil {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
		}
	}

	return end, conn, nil
}

// packetExpiredAtProofHeight reports whether the packet's timeout has
// elapsed as observed at the counterparty height the proof was taken at: a
// timeout_height crossed by proofHeight itself, or a timeout_timestamp
// crossed by the counterparty consensus state's timestamp at proofHeight.
func packetExpiredAtProofHeight(k Reader, clientID string, packet types.Packet, proofHeight ibctypes.Height) (bool, error) {
	if packet.HasTimeoutHeight() && proofHeight.GTE(packet.TimeoutHeight) {
		return true, nil
	}
	if packet.HasTimeoutTimestamp() {
		consensusState, ok := k.Client().GetConsensusState(clientID, proofHeight)
		if !ok {
			return false, errorsmod.Wrapf(connectiontypes.ErrClientNotFound, "consensus state for client %s at height %s", clientID, proofHeight)
		}
		if consensusState.Timestamp().GTE(packet.TimeoutTimestamp) {
			return true, nil
		}
	}
	return false, nil
}

func executeTimeoutPacket(k Keeper, packet types.Packet, end types.ChannelEnd, _ connectiontypes.ConnectionEnd) ibctypes.HandlerOutput[TimeoutResult] {
	k.DeletePacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)

	events := []ibctypes.Event{
		ibctypes.NewEvent("timeout_packet",
			ibctypes.NewAttribute("packet_sequence", strconv.FormatUint(packet.Sequence, 10)),
			ibctypes.NewAttribute("packet_src_port", packet.SourcePort),
			ibctypes.NewAttribute("packet_src_channel", packet.SourceChannel),
		),
	}

	if end.Ordering == types.Ordered && end.State != types.ClosedState {
		end.State = types.ClosedState
		k.SetChannel(packet.SourcePort, packet.SourceChannel, end)
		events = append(events, ibctypes.NewEvent("channel_closed",
			ibctypes.NewAttribute("port_id", packet.SourcePort),
			ibctypes.NewAttribute("channel_id", packet.SourceChannel),
		))
	}

	k.EmitEvents(events...)
	return ibctypes.NewHandlerOutput(TimeoutResult{Packet: packet}, events)
}

// TimeoutOnClose processes a timeout submitted because the counterparty
// channel already closed, rather than because of an elapsed height/time
// timeout (spec §4.4 TimeoutOnClose). It additionally requires proof the
// counterparty channel is in the CLOSED state.
func TimeoutOnClose(
	ctx context.Context,
	k Keeper,
	packet types.Packet,
	proof []byte,
	proofClosed []byte,
	proofHeight ibctypes.Height,
	nextSequenceRecv uint64,
	relayer string,
) (ibctypes.HandlerOutput[TimeoutResult], error) {
	end, conn, err := validateTimeoutOnClose(k, packet, proof, proofClosed, proofHeight, nextSequenceRecv)
	if err != nil {
		return ibctypes.HandlerOutput[TimeoutResult]{}, err
	}

	module, ok := k.Router().LookupModule(packet.SourcePort)
	if !ok {
		return ibctypes.HandlerOutput[TimeoutResult]{}, errorsmod.Wrapf(port.ErrPortNotBound, "port %s", packet.SourcePort)
	}
	if err := module.OnTimeoutPacket(ctx, packet, relayer); err != nil {
		return ibctypes.HandlerOutput[TimeoutResult]{}, err
	}

	return executeTimeoutPacket(k, packet, end, conn), nil
}

func validateTimeoutOnClose(k Reader, packet types.Packet, proof, proofClosed []byte, proofHeight ibctypes.Height, nextSequenceRecv uint64) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := k.GetChannel(packet.SourcePort, packet.SourceChannel)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", packet.SourcePort, packet.SourceChannel)
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, connectiontypes.ErrConnectionNotFound
	}

	storedCommitment, ok := k.GetPacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketCommitmentNotFound
	}
	recomputed := types.CommitPacket(k.Host().Hash, packet)
	if !bytes.Equal(storedCommitment, recomputed) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketCommitmentMismatch
	}

	expectedCounterpartyEnd := types.ChannelEnd{
		State:          types.ClosedState,
		Ordering:       end.Ordering,
		Counterparty:   types.Counterparty{PortID: packet.SourcePort, ChannelID: packet.SourceChannel},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        end.Version,
	}
	closedPath := fmt.Sprintf("channelEnds/ports/%s/channels/%s", packet.DestPort, packet.DestChannel)
	if err := k.Client().VerifyMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proofClosed, closedPath, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	switch end.Ordering {
	case types.Unordered:
		path := fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", packet.DestPort, packet.DestChannel, packet.Sequence)
		if err := k.Client().VerifyNonMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proof, path); err != nil {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
		}
	case types.Ordered:
		if nextSequenceRecv > packet.Sequence {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrPacketReceived, "counterparty already received this sequence")
		}
	}

	return end, conn, nil
}
