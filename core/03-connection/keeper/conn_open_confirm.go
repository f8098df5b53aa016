package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/core/03-connection/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ConnOpenConfirm processes MsgConnectionOpenConfirm: spec §4.2, row
// "TryOpen -> Open", requiring the counterparty to be observed in Open.
func ConnOpenConfirm(ctx context.Context, k Keeper, msg types.MsgConnectionOpenConfirm) (ibctypes.HandlerOutput[Result], error) {
	end, err := validateConnOpenConfirm(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}
	return executeConnOpenConfirm(ctx, k, msg, end), nil
}

func validateConnOpenConfirm(k Reader, msg types.MsgConnectionOpenConfirm) (types.ConnectionEnd, error) {
	end, ok := k.GetConnection(msg.ConnectionID)
	if !ok {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrConnectionNotFound, "connection %s", msg.ConnectionID)
	}
	if end.State != types.TryOpenState {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidConnectionState,
			"connection %s is in state %s, expected TRYOPEN", msg.ConnectionID, end.State)
	}

	expectedCounterpartyEnd := types.ConnectionEnd{
		State:    types.OpenState,
		ClientID: end.Counterparty.ClientID,
		Counterparty: types.Counterparty{
			ClientID:     end.ClientID,
			ConnectionID: msg.ConnectionID,
		},
		Versions:    end.Versions,
		DelayPeriod: end.DelayPeriod,
	}
	path := fmt.Sprintf("connections/%s", end.Counterparty.ConnectionID)
	if err := k.Client().VerifyMembership(end.ClientID, msg.ProofHeight, end.DelayPeriod, 0,
		msg.ProofAck, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ConnectionEnd{}, errorsmod.Wrap(types.ErrConnectionProofVerification, err.Error())
	}

	return end, nil
}

func executeConnOpenConfirm(ctx context.Context, k Keeper, msg types.MsgConnectionOpenConfirm, end types.ConnectionEnd) ibctypes.HandlerOutput[Result] {
	end.State = types.OpenState
	k.SetConnection(msg.ConnectionID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("connection_open_confirm",
			ibctypes.NewAttribute("connection_id", msg.ConnectionID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		ConnectionID:    msg.ConnectionID,
		IdentifierState: types.Reused,
		ConnectionEnd:   end,
	}, events)
}
