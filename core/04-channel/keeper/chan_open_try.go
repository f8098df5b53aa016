package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ChanOpenTry processes MsgChannelOpenTry (spec §4.3).
func ChanOpenTry(ctx context.Context, k Keeper, msg types.MsgChannelOpenTry) (ibctypes.HandlerOutput[Result], error) {
	conn, err := validateChanOpenTry(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}

	channelID := k.PeekNextChannelIdentifier(ctx)

	negotiatedVersion, err := module.OnChanOpenTry(ctx, msg.Ordering, msg.ConnectionHops, msg.PortID, channelID, msg.Counterparty, msg.CounterpartyVersion)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrap(types.ErrInvalidVersion, err.Error())
	}

	// Only now, with the module's acceptance in hand, actually burn the
	// sequence number: this produces the same id just peeked, since nothing
	// else mutates the counter between the two calls.
	channelID = k.GenerateChannelIdentifier(ctx)

	return executeChanOpenTry(k, msg, conn, channelID, negotiatedVersion), nil
}

func validateChanOpenTry(k Reader, msg types.MsgChannelOpenTry) (connectiontypes.ConnectionEnd, error) {
	if len(msg.ConnectionHops) != 1 {
		return connectiontypes.ConnectionEnd{}, types.ErrInvalidConnectionHops
	}
	conn, ok := k.Connection().GetConnection(msg.ConnectionHops[0])
	if !ok {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection %s", msg.ConnectionHops[0])
	}
	if conn.State != connectiontypes.OpenState {
		return connectiontypes.ConnectionEnd{}, types.ErrConnectionNotOpen
	}

	expectedCounterpartyEnd := types.ChannelEnd{
		State:    types.InitState,
		Ordering: msg.Ordering,
		Counterparty: types.Counterparty{
			PortID: msg.PortID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        msg.CounterpartyVersion,
	}
	path := fmt.Sprintf("channelEnds/ports/%s/channels/%s", msg.Counterparty.PortID, msg.Counterparty.ChannelID)
	if err := k.Client().VerifyMembership(conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0,
		msg.ProofInit, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrap(types.ErrProofVerification, err.Error())
	}

	return conn, nil
}

func executeChanOpenTry(k Keeper, msg types.MsgChannelOpenTry, conn connectiontypes.ConnectionEnd, channelID, version string) ibctypes.HandlerOutput[Result] {
	end := types.ChannelEnd{
		State:          types.TryOpenState,
		Ordering:       msg.Ordering,
		Counterparty:   msg.Counterparty,
		ConnectionHops: msg.ConnectionHops,
		Version:        version,
	}
	k.SetChannel(msg.PortID, channelID, end)
	k.InitializeSequences(msg.PortID, channelID)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_open_try",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", channelID),
			ibctypes.NewAttribute("counterparty_port_id", msg.Counterparty.PortID),
			ibctypes.NewAttribute("counterparty_channel_id", msg.Counterparty.ChannelID),
			ibctypes.NewAttribute("version", version),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		PortID:          msg.PortID,
		ChannelID:       channelID,
		IdentifierState: types.Generated,
		ChannelEnd:      end,
	}, events)
}
