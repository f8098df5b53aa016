package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ChanOpenConfirm processes MsgChannelOpenConfirm (spec §4.3).
func ChanOpenConfirm(ctx context.Context, k Keeper, msg types.MsgChannelOpenConfirm) (ibctypes.HandlerOutput[Result], error) {
	end, err := validateChanOpenConfirm(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}
	if err := module.OnChanOpenConfirm(ctx, msg.PortID, msg.ChannelID); err != nil {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrap(types.ErrInvalidVersion, err.Error())
	}

	return executeChanOpenConfirm(k, msg, end), nil
}

func validateChanOpenConfirm(k Reader, msg types.MsgChannelOpenConfirm) (types.ChannelEnd, error) {
	end, ok := k.GetChannel(msg.PortID, msg.ChannelID)
	if !ok {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", msg.PortID, msg.ChannelID)
	}
	if end.State != types.TryOpenState {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState,
			"channel %s/%s is in state %s, expected TRYOPEN", msg.PortID, msg.ChannelID, end.State)
	}
	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, types.ErrConnectionNotOpen
	}

	expectedCounterpartyEnd := types.ChannelEnd{
		State:    types.OpenState,
		Ordering: end.Ordering,
		Counterparty: types.Counterparty{
			PortID:    msg.PortID,
			ChannelID: msg.ChannelID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        end.Version,
	}
	path := fmt.Sprintf("channelEnds/ports/%s/channels/%s", end.Counterparty.PortID, end.Counterparty.ChannelID)
	if err := k.Client().VerifyMembership(conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0,
		msg.ProofAck, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	return end, nil
}

func executeChanOpenConfirm(k Keeper, msg types.MsgChannelOpenConfirm, end types.ChannelEnd) ibctypes.HandlerOutput[Result] {
	end.State = types.OpenState
	k.SetChannel(msg.PortID, msg.ChannelID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_open_confirm",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", msg.ChannelID),
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
