package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/core/03-connection/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ConnOpenInit processes MsgConnectionOpenInit: the first step of the
// connection handshake (spec §4.2, row "(none) -> Init").
func ConnOpenInit(ctx context.Context, k Keeper, msg types.MsgConnectionOpenInit) (ibctypes.HandlerOutput[Result], error) {
	if err := validateConnOpenInit(k, msg); err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}
	return executeConnOpenInit(ctx, k, msg), nil
}

func validateConnOpenInit(k Reader, msg types.MsgConnectionOpenInit) error {
	if _, ok := k.Client().GetClientState(msg.ClientID); !ok {
		return errorsmod.Wrapf(types.ErrClientNotFound, "client %s", msg.ClientID)
	}
	if len(msg.Versions) == 0 {
		return errorsmod.Wrap(types.ErrInvalidVersion, "must propose at least one version")
	}
	if msg.Counterparty.ClientID == "" {
		return errorsmod.Wrap(types.ErrInvalidCounterparty, "counterparty client id cannot be empty")
	}
	return nil
}

func executeConnOpenInit(ctx context.Context, k Keeper, msg types.MsgConnectionOpenInit) ibctypes.HandlerOutput[Result] {
	connectionID := k.GenerateConnectionIdentifier(ctx)

	end := types.ConnectionEnd{
		State:        types.InitState,
		ClientID:     msg.ClientID,
		Counterparty: msg.Counterparty,
		Versions:     msg.Versions,
		DelayPeriod:  msg.DelayPeriod,
	}
	k.SetConnection(connectionID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("connection_open_init",
			ibctypes.NewAttribute("connection_id", connectionID),
			ibctypes.NewAttribute("client_id", msg.ClientID),
			ibctypes.NewAttribute("counterparty_client_id", msg.Counterparty.ClientID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		ConnectionID:    connectionID,
		IdentifierState: types.Generated,
		ConnectionEnd:   end,
	}, events)
}
