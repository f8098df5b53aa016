package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channelkeeper "github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	"github.com/tokenize-x/ibc-core/modules/transfer/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// SendTransfer escrows or burns the sender's token and sends a transfer
// packet over the channel (spec §4.5 SendTransfer).
func (k Keeper) SendTransfer(
	ctx context.Context,
	sourcePort, sourceChannel string,
	denom types.Denom,
	amount sdkmath.Int,
	sender, receiver sdk.AccAddress,
	memo string,
	timeoutHeight ibctypes.Height,
	timeoutTimestamp ibctypes.Timestamp,
) (uint64, error) {
	if !k.params.SendEnabled {
		return 0, types.ErrSendDisabled
	}
	if k.bank.BlockedAddr(sender) {
		return 0, errorsmod.Wrapf(types.ErrUnauthorized, "%s", sender)
	}

	coin := types.NewCoin(denom.IBCDenom(), amount)
	if err := k.bank.IsSendEnabledCoins(ctx, coin); err != nil {
		return 0, errorsmod.Wrap(types.ErrSendDisabled, err.Error())
	}

	if denom.IsSenderChainSource(sourcePort, sourceChannel) {
		escrowAddress := k.EscrowAddress(sourcePort, sourceChannel)
		if err := k.EscrowCoin(ctx, sender, escrowAddress, coin); err != nil {
			return 0, err
		}
	} else {
		if err := k.bank.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, sdk.NewCoins(coin)); err != nil {
			return 0, err
		}
		if err := k.bank.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
			return 0, errorsmod.Wrap(err, "failed to burn coins after moving them to the module account")
		}
	}

	data := types.NewPacketData(denom.Path(), amount.String(), sender.String(), receiver.String(), memo)
	out, err := channelkeeper.SendPacket(ctx, k.channel, sourcePort, sourceChannel, timeoutHeight, timeoutTimestamp, data.GetBytes())
	if err != nil {
		return 0, err
	}
	return out.Result.Packet.Sequence, nil
}

// OnRecvPacket applies a received transfer: unescrow if this chain is
// un-prefixing its own voucher, otherwise mint a freshly prefixed voucher
// (spec §4.5 OnRecvPacket).
func (k Keeper) OnRecvPacket(ctx context.Context, data types.PacketData, sourcePort, sourceChannel, destPort, destChannel string) (types.Coin, error) {
	if err := data.ValidateBasic(); err != nil {
		return types.Coin{}, err
	}
	if !k.params.ReceiveEnabled {
		return types.Coin{}, types.ErrReceiveDisabled
	}

	receiver, err := sdk.AccAddressFromBech32(data.Receiver)
	if err != nil {
		return types.Coin{}, errorsmod.Wrap(types.ErrInvalidPacketData, err.Error())
	}
	if k.bank.BlockedAddr(receiver) {
		return types.Coin{}, errorsmod.Wrapf(types.ErrUnauthorized, "%s", receiver)
	}

	amount := data.GetAmount()
	denom := types.ParseDenom(data.Denom)

	// The prefix the counterparty would have added if and only if this
	// token originated on this chain: SourcePort/SourceChannel, because the
	// counterparty prefixes with *its* dest port/channel when it first
	// receives a token, which is this chain's source port/channel on the
	// return trip (spec §3 I6, spec §9 Design Notes whole-segment match).
	if denom.HasPrefix(sourcePort, sourceChannel) {
		unescrowed := denom.WithoutLeadingHop()
		coin := types.NewCoin(unescrowed.IBCDenom(), amount)
		escrowAddress := k.EscrowAddress(destPort, destChannel)
		if err := k.UnescrowCoin(ctx, escrowAddress, receiver, coin); err != nil {
			return types.Coin{}, err
		}
		return coin, nil
	}

	prefixed := denom.WithPrefix(destPort, destChannel)
	if !k.HasDenom(prefixed.Hash()) {
		k.SetDenom(prefixed)
		k.bank.SetDenomMetaData(ctx, types.NewVoucherMetadata(prefixed))
	}

	voucher := types.NewCoin(prefixed.IBCDenom(), amount)
	if err := k.bank.MintCoins(ctx, types.ModuleName, sdk.NewCoins(voucher)); err != nil {
		return types.Coin{}, errorsmod.Wrap(err, "failed to mint voucher")
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, sdk.NewCoins(voucher)); err != nil {
		return types.Coin{}, errorsmod.Wrap(err, "failed to send voucher to receiver")
	}
	return voucher, nil
}

// OnAcknowledgement refunds the sender on a failure ack; a success ack needs
// no further action (spec §4.4 AcknowledgePacket, spec §4.5).
func (k Keeper) OnAcknowledgement(ctx context.Context, sourcePort, sourceChannel string, data types.PacketData, success bool) error {
	if success {
		return nil
	}
	return k.refundPacketTokens(ctx, sourcePort, sourceChannel, data)
}

// OnTimeout fully refunds the sender, mirroring a failure ack (spec §4.5
// OnTimeout).
func (k Keeper) OnTimeout(ctx context.Context, sourcePort, sourceChannel string, data types.PacketData) error {
	return k.refundPacketTokens(ctx, sourcePort, sourceChannel, data)
}

func (k Keeper) refundPacketTokens(ctx context.Context, sourcePort, sourceChannel string, data types.PacketData) error {
	sender, err := sdk.AccAddressFromBech32(data.Sender)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidPacketData, err.Error())
	}

	amount := data.GetAmount()
	denom := types.ParseDenom(data.Denom)
	coin := types.NewCoin(denom.IBCDenom(), amount)

	if denom.IsSenderChainSource(sourcePort, sourceChannel) {
		escrowAddress := k.EscrowAddress(sourcePort, sourceChannel)
		return k.UnescrowCoin(ctx, escrowAddress, sender, coin)
	}

	if err := k.bank.MintCoins(ctx, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return errorsmod.Wrap(err, "failed to re-mint refunded voucher")
	}
	return k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sender, sdk.NewCoins(coin))
}

// EscrowCoin moves a coin from sender into the channel's escrow account and
// tracks the running total escrowed for that denom.
func (k Keeper) EscrowCoin(ctx context.Context, sender, escrowAddress sdk.AccAddress, coin sdk.Coin) error {
	if err := k.bank.SendCoins(ctx, sender, escrowAddress, sdk.NewCoins(coin)); err != nil {
		return err
	}
	k.setTotalEscrowForDenom(coin.Denom, k.GetTotalEscrowForDenom(coin.Denom).Add(coin.Amount))
	return nil
}

// UnescrowCoin moves a coin from the channel's escrow account to receiver.
func (k Keeper) UnescrowCoin(ctx context.Context, escrowAddress, receiver sdk.AccAddress, coin sdk.Coin) error {
	if err := k.bank.SendCoins(ctx, escrowAddress, receiver, sdk.NewCoins(coin)); err != nil {
		return errorsmod.Wrap(err, "unable to unescrow tokens, this may indicate a bug or a malicious counterparty module")
	}
	k.setTotalEscrowForDenom(coin.Denom, k.GetTotalEscrowForDenom(coin.Denom).Sub(coin.Amount))
	return nil
}
