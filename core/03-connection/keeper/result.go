package keeper

import "github.com/tokenize-x/ibc-core/core/03-connection/types"

// Result is what every connection handshake handler produces: the
// connection identifier it operated on, whether that identifier was freshly
// generated, and the resulting ConnectionEnd -- mirroring the source's
// ConnectionResult (spec §9 Design Notes).
type Result struct {
	ConnectionID    string
	IdentifierState types.IdentifierState
	ConnectionEnd   types.ConnectionEnd
}
