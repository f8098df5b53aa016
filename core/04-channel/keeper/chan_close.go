package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ChanCloseInit processes MsgChannelCloseInit: the first step of the
// 2-step closing handshake (spec §4.3). A CLOSED channel accepts no new
// sends (spec §3 I5); in-flight packets may still be timed out.
func ChanCloseInit(ctx context.Context, k Keeper, msg types.MsgChannelCloseInit) (ibctypes.HandlerOutput[Result], error) {
	end, err := validateChanCloseInit(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}
	if err := module.OnChanCloseInit(ctx, msg.PortID, msg.ChannelID); err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	end.State = types.ClosedState
	k.SetChannel(msg.PortID, msg.ChannelID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_close_init",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", msg.ChannelID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{PortID: msg.PortID, ChannelID: msg.ChannelID, ChannelEnd: end}, events), nil
}

func validateChanCloseInit(k Reader, msg types.MsgChannelCloseInit) (types.ChannelEnd, error) {
	end, ok := k.GetChannel(msg.PortID, msg.ChannelID)
	if !ok {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", msg.PortID, msg.ChannelID)
	}
	if end.State == types.ClosedState {
		return types.ChannelEnd{}, types.ErrChannelClosed
	}
	if end.State == types.UninitializedState {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrInvalidChannelState, "channel %s/%s is not initialized", msg.PortID, msg.ChannelID)
	}
	return end, nil
}

// ChanCloseConfirm processes MsgChannelCloseConfirm: the final closing step,
// proving the counterparty already observed CloseInit.
func ChanCloseConfirm(ctx context.Context, k Keeper, msg types.MsgChannelCloseConfirm) (ibctypes.HandlerOutput[Result], error) {
	end, err := validateChanCloseConfirm(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}
	if err := module.OnChanCloseConfirm(ctx, msg.PortID, msg.ChannelID); err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	end.State = types.ClosedState
	k.SetChannel(msg.PortID, msg.ChannelID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_close_confirm",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", msg.ChannelID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{PortID: msg.PortID, ChannelID: msg.ChannelID, ChannelEnd: end}, events), nil
}

func validateChanCloseConfirm(k Reader, msg types.MsgChannelCloseConfirm) (types.ChannelEnd, error) {
	end, ok := k.GetChannel(msg.PortID, msg.ChannelID)
	if !ok {
		return types.ChannelEnd{}, errorsmod.Wrapf(types.ErrChannelNotFound, "%s/%s", msg.PortID, msg.ChannelID)
	}
	if end.State == types.ClosedState {
		return types.ChannelEnd{}, types.ErrChannelClosed
	}

	conn, ok := k.Connection().GetConnection(end.ConnectionHops[0])
	if !ok || conn.State != connectiontypes.OpenState {
		return types.ChannelEnd{}, types.ErrConnectionNotOpen
	}

	expectedCounterpartyEnd := types.ChannelEnd{
		State:    types.ClosedState,
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
		msg.ProofInit, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ChannelEnd{}, errorsmod.Wrap(types.ErrCounterpartyNotClosed, err.Error())
	}

	return end, nil
}
