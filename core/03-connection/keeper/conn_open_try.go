package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tokenize-x/ibc-core/core/03-connection/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ConnOpenTry processes MsgConnectionOpenTry: the counterparty chain's
// response to OpenInit (spec §4.2, row "(none) -> TryOpen", counterparty
// state INIT).
func ConnOpenTry(ctx context.Context, k Keeper, msg types.MsgConnectionOpenTry) (ibctypes.HandlerOutput[Result], error) {
	version, err := validateConnOpenTry(k, msg)
	if err != nil {
		return ibctypes.HandlerOutput[Result]{}, err
	}
	return executeConnOpenTry(ctx, k, msg, version), nil
}

func validateConnOpenTry(k Reader, msg types.MsgConnectionOpenTry) (types.Version, error) {
	if _, ok := k.Client().GetClientState(msg.ClientID); !ok {
		return types.Version{}, errorsmod.Wrapf(types.ErrClientNotFound, "client %s", msg.ClientID)
	}

	version, ok := types.PickVersion(msg.CounterpartyVersions, types.SupportedVersions())
	if !ok {
		return types.Version{}, errorsmod.Wrapf(types.ErrNoCommonVersion,
			"no version in %v is supported by %v", msg.CounterpartyVersions, types.SupportedVersions())
	}

	// Proof of the counterparty's ConnectionEnd in Init state, referencing
	// this chain as its counterparty.
	expectedCounterpartyEnd := types.ConnectionEnd{
		State:    types.InitState,
		ClientID: msg.Counterparty.ClientID,
		Counterparty: types.Counterparty{
			ClientID: msg.ClientID,
			// Our own connection id is not yet known to the counterparty.
		},
		Versions:    msg.CounterpartyVersions,
		DelayPeriod: msg.DelayPeriod,
	}
	if err := verifyConnectionState(k, msg.ClientID, msg.ProofHeight, msg.ProofInit,
		msg.Counterparty.ConnectionID, expectedCounterpartyEnd); err != nil {
		return types.Version{}, err
	}

	if err := verifyClientAndConsensusState(k, msg.ClientID, msg.ProofHeight, msg.ProofClient,
		msg.ProofConsensus, msg.ConsensusHeight); err != nil {
		return types.Version{}, err
	}

	return version, nil
}

func executeConnOpenTry(ctx context.Context, k Keeper, msg types.MsgConnectionOpenTry, version types.Version) ibctypes.HandlerOutput[Result] {
	connectionID := k.GenerateConnectionIdentifier(ctx)

	end := types.ConnectionEnd{
		State:        types.TryOpenState,
		ClientID:     msg.ClientID,
		Counterparty: msg.Counterparty,
		Versions:     []types.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	k.SetConnection(connectionID, end)

	events := []ibctypes.Event{
		ibctypes.NewEvent("connection_open_try",
			ibctypes.NewAttribute("connection_id", connectionID),
			ibctypes.NewAttribute("client_id", msg.ClientID),
			ibctypes.NewAttribute("counterparty_client_id", msg.Counterparty.ClientID),
			ibctypes.NewAttribute("counterparty_connection_id", msg.Counterparty.ConnectionID),
		),
	}
	k.EmitEvents(events...)

	return ibctypes.NewHandlerOutput(Result{
		ConnectionID:    connectionID,
		IdentifierState: types.Generated,
		ConnectionEnd:   end,
	}, events)
}

// verifyConnectionState verifies that the counterparty's connection end
// matches `expected`, as committed at the given proof height.
func verifyConnectionState(
	k Reader,
	clientID string,
	height ibctypes.Height,
	proof []byte,
	counterpartyConnectionID string,
	expected types.ConnectionEnd,
) error {
	path := fmt.Sprintf("connections/%s", counterpartyConnectionID)
	if counterpartyConnectionID == "" {
		// Identifier not yet assigned on the counterparty (OpenInit side);
		// the path is keyed by OUR client id on their chain in that case.
		// No keeper in this module writes this path, and the fake client
		// (testing/fakeclient.go) reads paths literally, so against it this
		// verification fails.
		path = fmt.Sprintf("connections/by-counterparty-client/%s", expected.Counterparty.ClientID)
	}
	if err := k.Client().VerifyMembership(clientID, height, expected.DelayPeriod, 0,
		proof, path, expected.Marshal()); err != nil {
		return errorsmod.Wrap(types.ErrConnectionProofVerification, err.Error())
	}
	return nil
}

func verifyClientAndConsensusState(
	k Reader,
	clientID string,
	height ibctypes.Height,
	proofClient, proofConsensus []byte,
	consensusHeight ibctypes.Height,
) error {
	clientPath := fmt.Sprintf("clients/%s/clientState", clientID)
	if err := k.Client().VerifyMembership(clientID, height, 0, 0, proofClient, clientPath, nil); err != nil {
		return errorsmod.Wrap(types.ErrClientProofVerification, err.Error())
	}

	consensusPath := fmt.Sprintf("clients/%s/consensusStates/%s", clientID, consensusHeight.String())
	if err := k.Client().VerifyMembership(clientID, height, 0, 0, proofConsensus, consensusPath, nil); err != nil {
		return errorsmod.Wrap(types.ErrConsensusProofVerification, err.Error())
	}
	return nil
}
