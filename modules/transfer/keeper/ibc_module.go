package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	port "github.com/tokenize-x/ibc-core/core/05-port"
	"github.com/tokenize-x/ibc-core/modules/transfer/types"
)

var _ port.IBCModule = IBCModule{}

// IBCModule adapts Keeper to the channel layer's callback surface
// (port.IBCModule), pinning the channel version to ics20-1 and rejecting
// any other proposal (spec §4.5).
type IBCModule struct {
	keeper Keeper
}

// NewIBCModule wraps a Keeper as a port.IBCModule.
func NewIBCModule(k Keeper) IBCModule {
	return IBCModule{keeper: k}
}

func (m IBCModule) OnChanOpenInit(
	_ context.Context,
	order channeltypes.Order,
	_ []string,
	_, _ string,
	_ channeltypes.Counterparty,
	version string,
) (string, error) {
	if order != channeltypes.Unordered {
		return "", errorsmod.Wrap(channeltypes.ErrInvalidOrdering, "transfer channels must be unordered")
	}
	if version != "" && version != types.Version {
		return "", errorsmod.Wrapf(types.ErrInvalidVersion, "got %s, expected %s", version, types.Version)
	}
	return types.Version, nil
}

func (m IBCModule) OnChanOpenTry(
	_ context.Context,
	order channeltypes.Order,
	_ []string,
	_, _ string,
	_ channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if order != channeltypes.Unordered {
		return "", errorsmod.Wrap(channeltypes.ErrInvalidOrdering, "transfer channels must be unordered")
	}
	if counterpartyVersion != types.Version {
		return "", errorsmod.Wrapf(types.ErrInvalidVersion, "got %s, expected %s", counterpartyVersion, types.Version)
	}
	return types.Version, nil
}

func (m IBCModule) OnChanOpenAck(_ context.Context, _, _, counterpartyVersion string) error {
	if counterpartyVersion != types.Version {
		return errorsmod.Wrapf(types.ErrInvalidVersion, "got %s, expected %s", counterpartyVersion, types.Version)
	}
	return nil
}

func (m IBCModule) OnChanOpenConfirm(_ context.Context, _, _ string) error { return nil }

func (m IBCModule) OnChanCloseInit(_ context.Context, _, _ string) error { return nil }

func (m IBCModule) OnChanCloseConfirm(_ context.Context, _, _ string) error { return nil }

func (m IBCModule) OnRecvPacket(ctx context.Context, packet channeltypes.Packet, _ string) channeltypes.Acknowledgement {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}
	if _, err := m.keeper.OnRecvPacket(ctx, data, packet.SourcePort, packet.SourceChannel, packet.DestPort, packet.DestChannel); err != nil {
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}
	return channeltypes.NewResultAcknowledgement([]byte{1})
}

func (m IBCModule) OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, ack channeltypes.Acknowledgement, _ string) error {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return err
	}
	return m.keeper.OnAcknowledgement(ctx, packet.SourcePort, packet.SourceChannel, data, ack.Success)
}

func (m IBCModule) OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet, _ string) error {
	data, err := types.UnmarshalPacketData(packet.Data)
	if err != nil {
		return err
	}
	return m.keeper.OnTimeout(ctx, packet.SourcePort, packet.SourceChannel, data)
}
