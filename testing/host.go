package testing

import (
	"crypto/sha256"

	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// Host is a mock host context implementing ibctypes.Keeper: a Store, a
// settable current height/timestamp, SHA-256 as the commitment hash (spec
// §6's canonical binding), and an Events sink a test can assert against.
type Host struct {
	store     *Store
	height    ibctypes.Height
	timestamp ibctypes.Timestamp
	Events    []ibctypes.Event
}

var _ ibctypes.Keeper = (*Host)(nil)

// NewHost builds a Host at the given starting height/timestamp over a fresh
// Store.
func NewHost(height ibctypes.Height, timestamp ibctypes.Timestamp) *Host {
	return &Host{
		store:     NewStore(),
		height:    height,
		timestamp: timestamp,
	}
}

func (h *Host) Store() ibctypes.KVStore { return h.store }

func (h *Host) CurrentHeight() ibctypes.Height { return h.height }

func (h *Host) CurrentTimestamp() ibctypes.Timestamp { return h.timestamp }

func (h *Host) Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (h *Host) EmitEvent(e ibctypes.Event) { h.Events = append(h.Events, e) }

func (h *Host) EmitEvents(es ...ibctypes.Event) { h.Events = append(h.Events, es...) }

// SetHeight advances the mock chain's own height, e.g. between simulated
// blocks in a packet-timeout test.
func (h *Host) SetHeight(height ibctypes.Height) { h.height = height }

// SetTimestamp advances the mock chain's own consensus timestamp.
func (h *Host) SetTimestamp(timestamp ibctypes.Timestamp) { h.timestamp = timestamp }

// RawStore exposes the underlying Store, e.g. so a FakeClient can be
// registered against this chain as another chain's counterparty store.
func (h *Host) RawStore() *Store { return h.store }
