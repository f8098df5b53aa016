package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// SendPacket processes an outbound application packet (spec §4.4
// SendPacket). It is not wrapped in a Msg because it is invoked directly by
// an application module (e.g. ICS-20's SendTransfer), not by the dispatch
// router.
func SendPacket(
	ctx context.Context,
	k Keeper,
	sourcePort, sourceChannel string,
	timeoutHeight ibctypes.Height,
	timeoutTimestamp ibctypes.Timestamp,
	data []byte,
) (ibctypes.HandlerOutput[SendResult], error) {
	end, conn, err := validateSendPacket(k, sourcePort, sourceChannel, timeoutHeight, timeoutTimestamp)
	if err != nil {
		return ibctypes.HandlerOutput[SendResult]{}, err
	}
	return executeSendPacket(k, sourcePort, sourceChannel, end, conn, timeoutHeight, timeoutTimestamp, data), nil
}

func validateSendPacket(
	k Reader,
	sourcePort, sourceChannel string,
	timeoutHeight ibctypes.Height,
	timeoutTimestamp ibctypes.Timestamp,
) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := k.GetChannel(sourcePort, sourceChannel)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", sourcePort, sourceChannel)
	}
	if end.State == types.ClosedState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrChannelClosed
	}
	if end.State != types.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState,
			"channel %s/%s is in state %s, expected OPEN", sourcePort, sourceChannel, end.State)
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	if timeoutHeight.IsZero() && timeoutTimestamp.IsZero() {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrInvalidPacketTimeout
	}

	clientState, ok := k.Client().GetClientState(conn.ClientID)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrClientNotFound, "client %s", conn.ClientID)
	}
	latestHeight := clientState.LatestHeight()
	if !timeoutHeight.IsZero() && !latestHeight.LT(timeoutHeight) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrPacketAlreadyTimedOut,
			"timeout height %s is not greater than counterparty client's latest height %s", timeoutHeight, latestHeight)
	}

	if !timeoutTimestamp.IsZero() {
		consensusState, ok := k.Client().GetConsensusState(conn.ClientID, latestHeight)
		if !ok {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrClientNotFound,
				"consensus state for client %s at height %s", conn.ClientID, latestHeight)
		}
		if !consensusState.Timestamp().LT(timeoutTimestamp) {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrPacketAlreadyTimedOut,
				"timeout timestamp %d is not greater than counterparty consensus timestamp %d", timeoutTimestamp, consensusState.Timestamp())
		}
	}

	return end, conn, nil
}

func executeSendPacket(
	k Keeper,
	sourcePort, sourceChannel string,
	end types.ChannelEnd,
	_ connectiontypes.ConnectionEnd,
	timeoutHeight ibctypes.Height,
	timeoutTimestamp ibctypes.Timestamp,
	data []byte,
) ibctypes.HandlerOutput[SendResult] {
	sequence, _ := k.GetNextSequenceSend(sourcePort, sourceChannel)
	k.setNextSequenceSend(sourcePort, sourceChannel, sequence+1)

	packet := types.Packet{
		Sequence:         sequence,
		SourcePort:       sourcePort,
		SourceChannel:    sourceChannel,
		DestPort:         end.Counterparty.PortID,
		DestChannel:      end.Counterparty.ChannelID,
		Data:             data,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: timeoutTimestamp,
	}

	commitment := types.CommitPacket(k.Host().Hash, packet)
	k.SetPacketCommitment(sourcePort, sourceChannel, sequence, commitment)

	events := []ibctypes.Event{
		ibctypes.NewEvent("send_packet",
			ibctypes.NewAttribute("packet_sequence", strconv.FormatUint(sequence, 10)),
			ibctypes.NewAttribute("packet_src_port", sourcePort),
			ibctypes.NewAttribute("packet_src_channel", sourceChannel),
			ibctypes.NewAttribute("packet_dst_port", packet.DestPort),
			ibctypes.NewAttribute("packet_dst_channel", packet.DestChannel),
			ibctypes.NewAttribute("packet_timeout_height", timeoutHeight.String()),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(SendResult{Packet: packet}, events)
}
