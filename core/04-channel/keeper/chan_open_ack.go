package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ChanOpenAck processes MsgChannelOpenAck (spec §4.3).
func ChanOpenAck(ctx context.Context, k Keeper, msg types.MsgChannelOpenAck) (ibctypes.HandlerOutput[Result], error) {
	end, conn, err := validateChanOpenAck(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}
	if err := module.OnChanOpenAck(ctx, msg.PortID, msg.ChannelID, msg.CounterpartyVersion); err != nil {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrap(types.ErrInvalidVersion, err.Error())
	}

	return executeChanOpenAck(k, msg, end, conn), nil
}

func validateChanOpenAck(k Reader, msg types.MsgChannelOpenAck) (types.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := k.GetChannel(msg.PortID, msg.ChannelID)
	if !ok {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", msg.PortID, msg.ChannelID)
	}
	if end.State != types.InitState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState,
			"channel %s/%s is in state %s, expected INIT", msg.PortID, msg.ChannelID, end.State)
	}
	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	expectedCounterpartyEnd := types.ChannelEnd{
		State:    types.TryOpenState,
		Ordering: end.Ordering,
		Counterparty: types.Counterparty{
			PortID:    msg.PortID,
			ChannelID: msg.ChannelID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        msg.CounterpartyVersion,
	}
	path := fmt.Sprintf("channelEnds/ports/%s/channels/%s", end.Counterparty.PortID, msg.CounterpartyChannelID)
	if err := k.Client().VerifyMembership(conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0,
		msg.ProofTry, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ChannelEnd{}, connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	return end, conn, nil
}

func executeChanOpenAck(k Keeper, msg types.MsgChannelOpenAck, end types.ChannelEnd, _ connectiontypes.ConnectionEnd) ibctypes.HandlerOutput[Result] {
	end.State = types.OpenState
	end.Version = msg.CounterpartyVersion
	end.Counterparty.ChannelID = msg.CounterpartyChannelID
	k.SetChannel(msg.PortID, msg.ChannelID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_open_ack",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", msg.ChannelID),
			ibctypes.NewAttribute("counterparty_channel_id", msg.CounterpartyChannelID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		PortID:          msg.PortID,
		ChannelID:       msg.ChannelID,
		IdentifierState: types.Reused,
		ChannelEnd:      end,
	}, events)
}
