package types

import (
	"fmt"

	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// NewVoucherMetadata builds the x/bank denom metadata registered for a
// newly minted voucher denom the first time it is seen, the same as
// ibc-go transfer's SetDenomMetadata: the display denom is the full trace
// path, the base denom is the chain-local "ibc/{hash}" name.
func NewVoucherMetadata(denom Denom) banktypes.Metadata {
	path := denom.Path()
	return banktypes.Metadata{
		Description: fmt.Sprintf("IBC voucher for %s", path),
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom.IBCDenom(), Exponent: 0},
		},
		Base:    denom.IBCDenom(),
		Display: path,
		Name:    fmt.Sprintf("%s IBC voucher", path),
		Symbol:  path,
	}
}
