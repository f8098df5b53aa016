// Package keeper implements the ICS-4 channel handshake and packet
// pipeline (spec §4.3, §4.4): channel open/close handshakes, SendPacket,
// RecvPacket, AcknowledgePacket, TimeoutPacket, and TimeoutOnClose.
package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/log"

	clienttypes "github.com/tokenize-x/ibc-core/core/02-client/types"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/04-channel/types"
	port "github.com/tokenize-x/ibc-core/core/05-port"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// ConnectionReader is the narrow slice of the connection keeper the channel
// layer needs: looking up the ConnectionEnd a channel hops over.
type ConnectionReader interface {
	GetConnection(connectionID string) (connectiontypes.ConnectionEnd, bool)
}

// Reader is the read-only capability the validate phase of every channel
// and packet handler is restricted to.
type Reader interface {
	GetChannel(portID, channelID string) (types.ChannelEnd, bool)
	GetNextSequenceSend(portID, channelID string) (uint64, bool)
	GetNextSequenceRecv(portID, channelID string) (uint64, bool)
	GetNextSequenceAck(portID, channelID string) (uint64, bool)
	GetPacketCommitment(portID, channelID string, sequence uint64) ([]byte, bool)
	HasPacketReceipt(portID, channelID string, sequence uint64) bool
	GetPacketAcknowledgement(portID, channelID string, sequence uint64) ([]byte, bool)
	Connection() ConnectionReader
	Client() clienttypes.Keeper
	Host() ibctypes.Reader
}

// Keeper is the mutation capability the execute phase of every channel and
// packet handler uses.
type Keeper struct {
	host             ibctypes.Keeper
	clientKeeper     clienttypes.Keeper
	connectionKeeper ConnectionReader
	router           ModuleLookup
	logger           log.Logger
}

// ModuleLookup resolves the application bound to a port (ICS-5/ICS-26
// routing, spec §4.6). The 26-routing package implements this; it is
// consumed here only to invoke handshake-version-negotiation callbacks,
// never to route full messages (that remains the router's job).
type ModuleLookup interface {
	LookupModule(portID string) (port.IBCModule, bool)
}

var _ Reader = Keeper{}

// NewKeeper builds a channel Keeper.
func NewKeeper(host ibctypes.Keeper, clientKeeper clienttypes.Keeper, connectionKeeper ConnectionReader, router ModuleLookup, logger log.Logger) Keeper {
	return Keeper{
		host:             host,
		clientKeeper:     clientKeeper,
		connectionKeeper: connectionKeeper,
		router:           router,
		logger:           logger.With("submodule", "x/ibc/04-channel"),
	}
}

func (k Keeper) Host() ibctypes.Reader               { return k.host }
func (k Keeper) Client() clienttypes.Keeper          { return k.clientKeeper }
func (k Keeper) Connection() ConnectionReader        { return k.connectionKeeper }
func (k Keeper) Logger() log.Logger                  { return k.logger }
func (k Keeper) Router() ModuleLookup                { return k.router }

func (k Keeper) EmitEvents(events ...ibctypes.Event) {
	k.host.EmitEvents(events...)
}

// GetChannel reads a ChannelEnd.
func (k Keeper) GetChannel(portID, channelID string) (types.ChannelEnd, bool) {
	bz, ok := k.host.Store().Get(host.ChannelKey(portID, channelID))
	if !ok {
		return types.ChannelEnd{}, false
	}
	return types.UnmarshalChannelEnd(bz), true
}

// SetChannel writes a ChannelEnd.
func (k Keeper) SetChannel(portID, channelID string, end types.ChannelEnd) {
	k.host.Store().Set(host.ChannelKey(portID, channelID), end.Marshal())
}

// GenerateChannelIdentifier allocates a fresh "channel-{n}" id and bumps the
// global channel counter exactly once (spec §5). Callers whose handshake
// step can still fail after the id is handed out (a module version
// callback) must use PeekNextChannelIdentifier instead and only call this
// once that callback has succeeded, so a rejected handshake never burns a
// sequence number.
func (k Keeper) GenerateChannelIdentifier(_ context.Context) string {
	seq := k.getNextChannelSequence()
	k.host.Store().Set(host.NextChannelSequenceKey(), encodeUint64(seq+1))
	return ibctypes.FormatChannelIdentifier(seq)
}

// PeekNextChannelIdentifier previews the id GenerateChannelIdentifier would
// next allocate, without bumping the counter. ChanOpenInit/ChanOpenTry use
// this to hand the module callback a channel id to negotiate a version
// against before committing to it.
func (k Keeper) PeekNextChannelIdentifier(_ context.Context) string {
	return ibctypes.FormatChannelIdentifier(k.getNextChannelSequence())
}

func (k Keeper) getNextChannelSequence() uint64 {
	bz, ok := k.host.Store().Get(host.NextChannelSequenceKey())
	if !ok {
		return 0
	}
	return decodeUint64(bz)
}

// InitializeSequences sets next_send/next_recv/next_ack to 1, as required
// when a channel transitions out of Uninitialized (spec §3).
func (k Keeper) InitializeSequences(portID, channelID string) {
	k.setNextSequenceSend(portID, channelID, 1)
	k.setNextSequenceRecv(portID, channelID, 1)
	k.setNextSequenceAck(portID, channelID, 1)
}

func (k Keeper) GetNextSequenceSend(portID, channelID string) (uint64, bool) {
	return k.getSequence(host.NextSequenceSendKey(portID, channelID))
}
func (k Keeper) GetNextSequenceRecv(portID, channelID string) (uint64, bool) {
	return k.getSequence(host.NextSequenceRecvKey(portID, channelID))
}
func (k Keeper) GetNextSequenceAck(portID, channelID string) (uint64, bool) {
	return k.getSequence(host.NextSequenceAckKey(portID, channelID))
}

func (k Keeper) setNextSequenceSend(portID, channelID string, seq uint64) {
	k.host.Store().Set(host.NextSequenceSendKey(portID, channelID), encodeUint64(seq))
}
func (k Keeper) setNextSequenceRecv(portID, channelID string, seq uint64) {
	k.host.Store().Set(host.NextSequenceRecvKey(portID, channelID), encodeUint64(seq))
}
func (k Keeper) setNextSequenceAck(portID, channelID string, seq uint64) {
	k.host.Store().Set(host.NextSequenceAckKey(portID, channelID), encodeUint64(seq))
}

func (k Keeper) getSequence(key string) (uint64, bool) {
	bz, ok := k.host.Store().Get(key)
	if !ok {
		return 0, false
	}
	return decodeUint64(bz), true
}

// GetPacketCommitment reads the stored commitment bytes for a sent packet.
func (k Keeper) GetPacketCommitment(portID, channelID string, sequence uint64) ([]byte, bool) {
	return k.host.Store().Get(host.PacketCommitmentKey(portID, channelID, sequence))
}

// SetPacketCommitment writes the commitment bytes for a sent packet.
func (k Keeper) SetPacketCommitment(portID, channelID string, sequence uint64, commitment []byte) {
	k.host.Store().Set(host.PacketCommitmentKey(portID, channelID, sequence), commitment)
}

// DeletePacketCommitment removes a commitment (spec §3 I2: a commitment
// exists iff the sender has not yet observed a matching ack or timeout).
func (k Keeper) DeletePacketCommitment(portID, channelID string, sequence uint64) {
	k.host.Store().Delete(host.PacketCommitmentKey(portID, channelID, sequence))
}

// HasPacketReceipt reports whether a receipt exists at sequence (spec §3 I3).
func (k Keeper) HasPacketReceipt(portID, channelID string, sequence uint64) bool {
	return k.host.Store().Has(host.PacketReceiptKey(portID, channelID, sequence))
}

// SetPacketReceipt writes the presence-token receipt for an unordered recv.
func (k Keeper) SetPacketReceipt(portID, channelID string, sequence uint64) {
	k.host.Store().Set(host.PacketReceiptKey(portID, channelID, sequence), types.ReceiptSentinel)
}

// GetPacketAcknowledgement reads a stored ack commitment.
func (k Keeper) GetPacketAcknowledgement(portID, channelID string, sequence uint64) ([]byte, bool) {
	return k.host.Store().Get(host.PacketAcknowledgementKey(portID, channelID, sequence))
}

// SetPacketAcknowledgement writes an ack commitment.
func (k Keeper) SetPacketAcknowledgement(portID, channelID string, sequence uint64, commitment []byte) {
	k.host.Store().Set(host.PacketAcknowledgementKey(portID, channelID, sequence), commitment)
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
