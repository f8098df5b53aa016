package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/samber/lo"
)

// Hop is one (port, channel) segment a token's denom trace has crossed,
// prefixed in the order the token traveled: Trace[0] is the most recent
// hop. is_sender_chain_source compares the leading Hop's port and channel
// ids exactly, so a channel id that merely starts with the same characters
// ("channel-0-extra" against "channel-0") never matches, as it would under
// a raw string-prefix check on "transfer/channel-0" (spec §9 Design Notes).
// ParseDenom splits on every "/", so an id containing "/" (which
// ValidateIdentifier rejects) does not parse into a single Hop.
type Hop struct {
	PortID    string
	ChannelID string
}

// String renders a hop as "port/channel".
func (h Hop) String() string {
	return h.PortID + "/" + h.ChannelID
}

// Denom is a token denomination together with the trace of hops it has
// crossed. Trace is empty for a token native to the chain it is currently
// on.
type Denom struct {
	Base  string
	Trace []Hop
}

// NewDenom builds a Denom for a chain-native token with no trace.
func NewDenom(base string) Denom {
	return Denom{Base: base}
}

// ParseDenom splits a transfer packet's wire denom ("port/channel/.../base")
// into a Hop trace and a base denom. A denom with no "/" is already native.
func ParseDenom(raw string) Denom {
	parts := strings.Split(raw, "/")
	if len(parts) < 3 {
		return Denom{Base: raw}
	}
	var trace []Hop
	i := 0
	for i+1 < len(parts)-1 {
		trace = append(trace, Hop{PortID: parts[i], ChannelID: parts[i+1]})
		i += 2
	}
	// An odd leftover segment (not paired into a hop) is folded back into
	// the base denom, the same way ibc-go's ExtractDenomFromPath resolves a
	// malformed or partially-hop-shaped remainder.
	return Denom{Base: strings.Join(parts[i:], "/"), Trace: trace}
}

// HasPrefix reports whether the leading hop of the trace is exactly
// (portID, channelID) -- a whole-segment comparison, never a raw string
// HasPrefix on the rendered path.
func (d Denom) HasPrefix(portID, channelID string) bool {
	if len(d.Trace) == 0 {
		return false
	}
	return d.Trace[0].PortID == portID && d.Trace[0].ChannelID == channelID
}

// IsSenderChainSource reports whether the sending chain is the source of
// this denom for a send over (sourcePort, sourceChannel): true unless the
// denom's leading hop is exactly this channel, i.e. unless this chain is
// un-prefixing a voucher it previously minted (spec §3 I6).
func (d Denom) IsSenderChainSource(sourcePort, sourceChannel string) bool {
	return !d.HasPrefix(sourcePort, sourceChannel)
}

// WithPrefix returns a new Denom with (portID, channelID) pushed onto the
// front of the trace, used when minting a voucher for a token arriving from
// elsewhere.
func (d Denom) WithPrefix(portID, channelID string) Denom {
	trace := make([]Hop, 0, len(d.Trace)+1)
	trace = append(trace, Hop{PortID: portID, ChannelID: channelID})
	trace = append(trace, d.Trace...)
	return Denom{Base: d.Base, Trace: trace}
}

// WithoutLeadingHop returns a new Denom with the leading hop stripped,
// used when unescrowing a token returning to the chain that originally
// escrowed it.
func (d Denom) WithoutLeadingHop() Denom {
	if len(d.Trace) == 0 {
		return d
	}
	if len(d.Trace) == 1 {
		return NewDenom(d.Base)
	}
	return Denom{Base: d.Base, Trace: d.Trace[1:]}
}

// Path renders the full wire-format denom: every hop, most recent first,
// followed by the base denom.
func (d Denom) Path() string {
	if len(d.Trace) == 0 {
		return d.Base
	}
	segments := lo.Map(d.Trace, func(h Hop, _ int) string { return h.String() })
	return strings.Join(segments, "/") + "/" + d.Base
}

// Hash returns the sha256 of the full trace path, the preimage of the
// chain-local bank denom for any non-native token.
func (d Denom) Hash() [32]byte {
	return sha256.Sum256([]byte(d.Path()))
}

// IBCDenom returns the bank-module denom this token is held under locally:
// the base denom unchanged if native, or "ibc/{HEX(hash(path))}" otherwise.
func (d Denom) IBCDenom() string {
	if len(d.Trace) == 0 {
		return d.Base
	}
	hash := d.Hash()
	return DenomPrefix + "/" + strings.ToUpper(hex.EncodeToString(hash[:]))
}
