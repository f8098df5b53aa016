package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/core/03-connection/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ConnOpenAck processes MsgConnectionOpenAck: spec §4.2, row "Init -> Open",
// requiring the counterparty to be observed in TryOpen.
func ConnOpenAck(ctx context.Context, k Keeper, msg types.MsgConnectionOpenAck) (ibctypes.HandlerOutput[Result], error) {
	end, err := validateConnOpenAck(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}
	return executeConnOpenAck(ctx, k, msg, end), nil
}

func validateConnOpenAck(k Reader, msg types.MsgConnectionOpenAck) (types.ConnectionEnd, error) {
	end, ok := k.GetConnection(msg.ConnectionID)
	if !ok {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrConnectionNotFound, "connection %s", msg.ConnectionID)
	}
	if end.State != types.InitState {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidConnectionState,
			"connection %s is in state %s, expected INIT", msg.ConnectionID, end.State)
	}

	found := false
	for _, v := range end.Versions {
		if v.Identifier == msg.Version.Identifier {
			found = true
			break
		}
	}
	if !found {
		return types.ConnectionEnd{}, errorsmod.Wrapf(types.ErrInvalidVersion,
			"version %v was not proposed in OpenInit", msg.Version)
	}

	expectedCounterpartyEnd := types.ConnectionEnd{
		State:    types.TryOpenState,
		ClientID: end.Counterparty.ClientID,
		Counterparty: types.Counterparty{
			ClientID:     end.ClientID,
			ConnectionID: msg.ConnectionID,
		},
		Versions:    []types.Version{msg.Version},
		DelayPeriod: end.DelayPeriod,
	}
	path := fmt.Sprintf("connections/%s", msg.CounterpartyConnectionID)
	if err := k.Client().VerifyMembership(end.ClientID, msg.ProofHeight, end.DelayPeriod, 0,
		msg.ProofTry, path, expectedCounterpartyEnd.Marshal()); err != nil {
		return types.ConnectionEnd{}, errorsmod.Wrap(types.ErrConnectionProofVerification, err.Error())
	}

	if err := verifyClientAndConsensusState(k, end.ClientID, msg.ProofHeight, msg.ProofClient,
		msg.ProofConsensus, msg.ConsensusHeight); err != nil {
		return types.ConnectionEnd{}, err
	}

	return end, nil
}

func executeConnOpenAck(ctx context.Context, k Keeper, msg types.MsgConnectionOpenAck, end types.ConnectionEnd) ibctypes.HandlerOutput[Result] {
	end.State = types.OpenState
	end.Versions = []types.Version{msg.Version}
	end.Counterparty.ConnectionID = msg.CounterpartyConnectionID
	k.SetConnection(msg.ConnectionID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("connection_open_ack",
			ibctypes.NewAttribute("connection_id", msg.ConnectionID),
			ibctypes.NewAttribute("counterparty_connection_id", msg.CounterpartyConnectionID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		ConnectionID:    msg.ConnectionID,
		IdentifierState: types.Reused,
		ConnectionEnd:   end,
	}, events)
}
