package types

import (
	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/tokenize-x/ibc-core/types"
)

// State is the lifecycle state of a ConnectionEnd (spec §3).
type State int32

const (
	// UninitializedState means no ConnectionEnd exists for this identifier yet.
	UninitializedState State = iota
	// InitState is set by ConnOpenInit.
	InitState
	// TryOpenState is set by ConnOpenTry.
	TryOpenState
	// OpenState is set by ConnOpenAck (on the initiator) and ConnOpenConfirm
	// (on the counterparty).
	OpenState
)

func (s State) String() string {
	switch s {
	case UninitializedState:
		return "UNINITIALIZED"
	case InitState:
		return "INIT"
	case TryOpenState:
		return "TRYOPEN"
	case OpenState:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}

// Counterparty holds the identifiers and path prefix through which this
// connection's remote chain is known.
type Counterparty struct {
	ClientID     string
	ConnectionID string // empty until the counterparty's connection id is known
	Prefix       string // commitment path prefix on the counterparty, e.g. "ibc"
}

// Version is a (identifier, features) pair negotiated during the handshake.
// Features is an allow-list of ordering modes the version supports; an
// empty Features means "all features supported".
type Version struct {
	Identifier string
	Features   []string
}

// ConnectionEnd is the per-connection record held at §3 "connections/{id}".
type ConnectionEnd struct {
	State        State
	ClientID     string
	Counterparty Counterparty
	Versions     []Version
	DelayPeriod  uint64 // nanoseconds
}

// IdentifierState tags whether a handler allocated a fresh identifier or
// reused an existing one, mirroring the source's ConnectionIdState (spec
// §4.2, §5). The tag only reports what happened: a handler that generates an
// identifier has already bumped the global counter through
// GenerateConnectionIdentifier.
type IdentifierState int32

const (
	// Generated means the handler minted a brand-new identifier, bumping the
	// counter exactly once in doing so.
	Generated IdentifierState = iota
	// Reused means the identifier already existed (e.g. OpenAck/OpenConfirm
	// operate on a connection id created by an earlier OpenInit/OpenTry).
	Reused
)

// SupportedVersions is the full, fixed feature set this engine offers: one
// version, identifier "1", supporting both channel orderings. Handshakes
// negotiate a subset of this list against the counterparty's proposal.
func SupportedVersions() []Version {
	return []Version{
		{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}},
	}
}

// pickVersion returns the earliest-by-list-order version present in both
// proposed and supported, per spec §4.2 ("preferring the earliest match by
// list order").
func pickVersion(proposed, supported []Version) (Version, bool) {
	for _, p := range proposed {
		for _, s := range supported {
			if versionsCompatible(p, s) {
				return mergeFeatures(p, s), true
			}
		}
	}
	return Version{}, false
}

func versionsCompatible(a, b Version) bool {
	return a.Identifier == b.Identifier
}

// mergeFeatures intersects the two sides' feature lists if both are
// non-empty, preserving `a`'s (the proposer's) ordering; an empty feature
// list on either side means "no restriction" and the other side's list wins.
func mergeFeatures(a, b Version) Version {
	if len(a.Features) == 0 {
		return b
	}
	if len(b.Features) == 0 {
		return a
	}
	bSet := make(map[string]bool, len(b.Features))
	for _, f := range b.Features {
		bSet[f] = true
	}
	var out []string
	for _, f := range a.Features {
		if bSet[f] {
			out = append(out, f)
		}
	}
	return Version{Identifier: a.Identifier, Features: out}
}

// PickVersion is the exported form of pickVersion used by ConnOpenTry.
func PickVersion(proposed, supported []Version) (Version, bool) {
	return pickVersion(proposed, supported)
}

// HasOrdering reports whether v's feature list permits the given ordering
// name ("ORDER_ORDERED" / "ORDER_UNORDERED"). An empty Features means any
// ordering is permitted.
func (v Version) HasOrdering(ordering string) bool {
	if len(v.Features) == 0 {
		return true
	}
	for _, f := range v.Features {
		if f == ordering {
			return true
		}
	}
	return false
}

// Params holds connection-handshake-wide configuration (spec §4.3).
type Params struct {
	// MaxExpectedTimePerBlock is the maximum expected time, in nanoseconds,
	// between two consecutive blocks of any chain this engine connects to.
	// GetBlockDelay divides a connection's DelayPeriod by this to produce a
	// block-count delay (per ibc-go's own connection Params).
	MaxExpectedTimePerBlock uint64
}

// DefaultParams returns the default connection Params (30s, matching
// ibc-go's connection module default).
func DefaultParams() Params {
	return Params{MaxExpectedTimePerBlock: 30 * uint64(1e9)}
}

// ValidateBasic rejects a zero MaxExpectedTimePerBlock, which would make
// GetBlockDelay divide by zero.
func (p Params) ValidateBasic() error {
	if p.MaxExpectedTimePerBlock == 0 {
		return errorsmod.Wrap(ErrInvalidParam, "max_expected_time_per_block cannot be zero")
	}
	return nil
}

// GetBlockDelay converts DelayPeriod into a block count using the chain's
// expected time-per-block, per the Design Notes' integer-only
// CalculateBlockDelay.
func (c ConnectionEnd) GetBlockDelay(params Params) uint64 {
	return ibctypes.CalculateBlockDelay(c.DelayPeriod, params.MaxExpectedTimePerBlock)
}
