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

// AcknowledgePacket processes an inbound acknowledgement for a packet this
// chain previously sent (spec §4.4 AcknowledgePacket). A module-callback
// failure here propagates and aborts the transaction (spec §7): by this
// point protocol-level consumption already happened on the receiving
// chain, so a failure here would indicate state corruption, not an
// ordinary application error.
func AcknowledgePacket(ctx context.Context, k Keeper, packet types.Packet, ack types.Acknowledgement, proof []byte, proofHeight ibctypes.Height, relayer string) (ibctypes.HandlerOutput[AckResult], error) {
	end, conn, err := validateAcknowledgePacket(k, packet, ack, proof, proofHeight)
	if err != nil {
		return ibctypes.HandlerOutput[AckResult]{}, err
	}

	module, ok := k.Router().LookupModule(packet.SourcePort)
	if !ok {
		return ibctypes.HandlerOutput[AckResult]{}, errorsmod.Wrapf(port.ErrPortNotBound, "port %s", packet.SourcePort)
	}
	if err := module.OnAcknowledgementPacket(ctx, packet, ack, relayer); err != nil {
		return ibctypes.HandlerOutput[AckResult]{}, err
	}

	return executeAcknowledgePacket(k, packet, ack, end, conn), nil
}

func validateAcknowledgePacket(k Reader, packet types.Packet, ack types.Acknowledgement, proof []byte, proofHeight ibctypes.Height) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := k.GetChannel(packet.SourcePort, packet.SourceChannel)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", packet.SourcePort, packet.SourceChannel)
	}
	if end.State != types.OpenState && end.State != types.ClosedState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState,
			"channel %s/%s is in state %s", packet.SourcePort, packet.SourceChannel, end.State)
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	storedCommitment, ok := k.GetPacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		// No commitment means this packet was already acknowledged (or never
		// sent): unlike RecvPacket's receipt-based NoOp, the ack side has no
		// replay-detection state left to consult once the commitment is
		// deleted, so a second ack is rejected outright rather than
		// silently accepted.
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrAcknowledgementExists
	}
	recomputed := types.CommitPacket(k.Host().Hash, packet)
	if !bytes.Equal(storedCommitment, recomputed) {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrPacketCommitmentMismatch
	}

	if end.Ordering == types.Ordered {
		next, _ := k.GetNextSequenceAck(packet.SourcePort, packet.SourceChannel)
		if packet.Sequence != next {
			return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrUnexpectedPacketSequence,
				"expected %d, got %d", next, packet.Sequence)
		}
	}

	ackCommitment := types.CommitAcknowledgement(k.Host().Hash, ack.Bytes())
	path := fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d", packet.DestPort, packet.DestChannel, packet.Sequence)
	if err := k.Client().VerifyMembership(conn.ClientID, proofHeight, conn.DelayPeriod, 0, proof, path, ackCommitment); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	return end, conn, nil
}

func executeAcknowledgePacket(k Keeper, packet types.Packet, ack types.Acknowledgement, end types.ChannelEnd, _ connectiontypes.ConnectionEnd) ibctypes.HandlerOutput[AckResult] {
	k.DeletePacketCommitment(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if end.Ordering == types.Ordered {
		k.setNextSequenceAck(packet.SourcePort, packet.SourceChannel, packet.Sequence+1)
	}

	events := []ibctypes.Event{
		ibctypes.NewEvent("acknowledge_packet",
			ibctypes.NewAttribute("packet_sequence", strconv.FormatUint(packet.Sequence, 10)),
			ibctypes.NewAttribute("packet_src_port", packet.SourcePort),
			ibctypes.NewAttribute("packet_src_channel", packet.SourceChannel),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(AckResult{Packet: packet, Acknowledgement: ack}, events)
}
