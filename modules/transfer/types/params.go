package types

// Params governs whether this chain accepts outbound/inbound transfers,
// mirroring ibc-go transfer's SendEnabled/ReceiveEnabled params.
type Params struct {
	SendEnabled    bool
	ReceiveEnabled bool
}

// DefaultParams enables both directions, matching ibc-go's default.
func DefaultParams() Params {
	return Params{SendEnabled: true, ReceiveEnabled: true}
}

// ValidateBasic exists so Params follows the same contract as every other
// domain module's Params (x/pse/types/params.go); SendEnabled/ReceiveEnabled
// are plain bools with no invalid combination.
func (Params) ValidateBasic() error {
	return nil
}
