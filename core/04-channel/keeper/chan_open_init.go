package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ChanOpenInit processes MsgChannelOpenInit (spec §4.3).
func ChanOpenInit(ctx context.Context, k Keeper, msg types.MsgChannelOpenInit) (ibctypes.HandlerOutput[Result], error) {
	conn, err := validateChanOpenInit(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}

	module, ok := k.Router().LookupModule(msg.PortID)
	if !ok {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrapf(types.ErrChannelNotFound, "no module bound to port %s", msg.PortID)
	}

	channelID := k.PeekNextChannelIdentifier(ctx)

	negotiatedVersion, err := module.OnChanOpenInit(ctx, msg.Ordering, msg.ConnectionHops, msg.PortID, channelID, msg.Counterparty, msg.Version)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, errorsmod.Wrap(types.ErrInvalidVersion, err.Error())
	}

	// Only now, with the module's acceptance in hand, actually burn the
	// sequence number: this produces the same id just peeked, since nothing
	// else mutates the counter between the two calls.
	channelID = k.GenerateChannelIdentifier(ctx)

	return executeChanOpenInit(k, msg, conn, channelID, negotiatedVersion), nil
}

func validateChanOpenInit(k Reader, msg types.MsgChannelOpenInit) (connectiontypes.ConnectionEnd, error) {
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
	return conn, nil
}

func executeChanOpenInit(k Keeper, msg types.MsgChannelOpenInit, conn connectiontypes.ConnectionEnd, channelID, version string) ibctypes.HandlerOutput[Result] {
	end := types.ChannelEnd{
		State:          types.InitState,
		Ordering:       msg.Ordering,
		Counterparty:   msg.Counterparty,
		ConnectionHops: msg.ConnectionHops,
		Version:        version,
	}
	k.SetChannel(msg.PortID, channelID, end)
	k.InitializeSequences(msg.PortID, channelID)

	events := []ibctypes.Event{
		ibctypes.NewEvent("channel_open_init",
			ibctypes.NewAttribute("port_id", msg.PortID),
			ibctypes.NewAttribute("channel_id", channelID),
			ibctypes.NewAttribute("counterparty_port_id", msg.Counterparty.PortID),
			ibctypes.NewAttribute("connection_id", msg.ConnectionHops[0]),
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
