package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// AccountKeeper is the narrow slice of x/auth this module needs: resolving
// its own module account address for escrow/mint/burn operations.
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// BankKeeper is the narrow slice of x/bank this module needs, mirroring
// ibc-go transfer's expected BankKeeper (escrow is plain sends between
// accounts; minting/burning is module-permissioned).
type BankKeeper interface {
	IsSendEnabledCoins(ctx context.Context, coins ...sdk.Coin) error
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BlockedAddr(addr sdk.AccAddress) bool
	SetDenomMetaData(ctx context.Context, denomMetadata banktypes.Metadata)
	HasDenomMetaData(ctx context.Context, denom string) bool
}

// Coin mirrors sdk.Coin's shape for amounts this module builds internally
// before handing them to BankKeeper; kept as a thin alias so call sites read
// naturally as "a coin", not "an sdk.Coin".
type Coin = sdk.Coin

// NewCoin constructs a Coin from an IBC denom string and an arbitrary
// precision amount.
func NewCoin(denom string, amount sdkmath.Int) Coin {
	return sdk.NewCoin(denom, amount)
}
