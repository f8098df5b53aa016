package types

import (
	"encoding/json"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// PacketData is the ICS-20 transfer packet payload, canonical wire shape
// per spec §6: {"denom","amount","sender","receiver","memo"}. Amount is
// carried as a decimal string so it round-trips through JSON without a
// float, and is parsed into an arbitrary-precision cosmossdk.io/math.Int
// wherever it is used arithmetically.
type PacketData struct {
	Denom    string `json:"denom"`
	Amount   string `json:"amount"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Memo     string `json:"memo,omitempty"`
}

// NewPacketData builds a PacketData.
func NewPacketData(denom, amount, sender, receiver, memo string) PacketData {
	return PacketData{Denom: denom, Amount: amount, Sender: sender, Receiver: receiver, Memo: memo}
}

// ValidateBasic checks the packet data's shape, independent of any
// application or bank state.
func (d PacketData) ValidateBasic() error {
	amount, ok := sdkmath.NewIntFromString(d.Amount)
	if !ok || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("amount must be a positive integer: %s", d.Amount)
	}
	if strings.TrimSpace(d.Denom) == "" {
		return ErrInvalidDenomForTransfer.Wrap("denom cannot be blank")
	}
	if strings.TrimSpace(d.Sender) == "" {
		return ErrInvalidPacketData.Wrap("sender cannot be blank")
	}
	if strings.TrimSpace(d.Receiver) == "" {
		return ErrInvalidPacketData.Wrap("receiver cannot be blank")
	}
	return nil
}

// GetAmount parses Amount. ValidateBasic must have already succeeded.
func (d PacketData) GetAmount() sdkmath.Int {
	amount, _ := sdkmath.NewIntFromString(d.Amount)
	return amount
}

// GetBytes returns the canonical JSON encoding sent as the packet's Data.
func (d PacketData) GetBytes() []byte {
	bz, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalPacketData decodes a packet's Data field.
func UnmarshalPacketData(bz []byte) (PacketData, error) {
	var d PacketData
	if err := json.Unmarshal(bz, &d); err != nil {
		return PacketData{}, ErrInvalidPacketData.Wrap(err.Error())
	}
	return d, nil
}
