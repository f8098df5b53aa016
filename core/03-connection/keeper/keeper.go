// Package keeper implements the ICS-3 connection handshake state machine
// (spec §4.2): the four OpenInit/OpenTry/OpenAck/OpenConfirm transitions,
// each split into a pure validate pass and a mutating execute pass.
package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/log"

	clienttypes "github.com/tokenize-x/ibc-core/core/02-client/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/03-connection/types"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// Reader is the read-only capability the validate phase of every handshake
// step is restricted to: it can observe connections and consult the client
// layer, but cannot write anything.
type Reader interface {
	GetConnection(connectionID string) (types.ConnectionEnd, bool)
	Client() clienttypes.Keeper
	Host() ibctypes.Reader
}

// Keeper is the mutation capability the execute phase of every handshake
// step uses, in addition to everything Reader offers.
type Keeper struct {
	host         ibctypes.Keeper
	clientKeeper clienttypes.Keeper
	logger       log.Logger
}

var _ Reader = Keeper{}

// NewKeeper builds a connection Keeper over a host store/event capability
// and the injected client-layer capability.
func NewKeeper(host ibctypes.Keeper, clientKeeper clienttypes.Keeper, logger log.Logger) Keeper {
	return Keeper{
		host:         host,
		clientKeeper: clientKeeper,
		logger:       logger.With("submodule", "x/ibc/03-connection"),
	}
}

// Host returns the underlying host store/event capability.
func (k Keeper) Host() ibctypes.Reader { return k.host }

// Client returns the injected client-layer capability.
func (k Keeper) Client() clienttypes.Keeper { return k.clientKeeper }

// Logger returns the keeper's sub-logger.
func (k Keeper) Logger() log.Logger { return k.logger }

// EmitEvents forwards events to the host's event emitter.
func (k Keeper) EmitEvents(events ...ibctypes.Event) {
	k.host.EmitEvents(events...)
}

// GetConnection reads a ConnectionEnd, if one has been written.
func (k Keeper) GetConnection(connectionID string) (types.ConnectionEnd, bool) {
	bz, ok := k.host.Store().Get(host.ConnectionKey(connectionID))
	if !ok {
		return types.ConnectionEnd{}, false
	}
	return types.UnmarshalConnectionEnd(bz), true
}

// SetConnection writes a ConnectionEnd.
func (k Keeper) SetConnection(connectionID string, end types.ConnectionEnd) {
	k.host.Store().Set(host.ConnectionKey(connectionID), end.Marshal())
}

// GenerateConnectionIdentifier allocates a fresh "connection-{n}" id and
// bumps the global connection counter. Per spec §5, this must be called
// exactly once per Generated outcome -- callers must never call it twice
// for the same handshake message.
func (k Keeper) GenerateConnectionIdentifier(_ context.Context) string {
	seq := k.getNextConnectionSequence()
	k.host.Store().Set(host.NextConnectionSequenceKey(), encodeUint64(seq+1))
	return ibctypes.FormatConnectionIdentifier(seq)
}

func (k Keeper) getNextConnectionSequence() uint64 {
	bz, ok := k.host.Store().Get(host.NextConnectionSequenceKey())
	if !ok {
		return 0
	}
	return decodeUint64(bz)
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeUint64(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
