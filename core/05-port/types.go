// Package port defines the module-callback surface the channel and packet
// pipeline invoke on the application bound to a given PortId (ICS-5),
// and the errors around port binding.
package port

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
)

// Codespace is the registered error codespace for port binding.
const Codespace = "ibcport"

var (
	// ErrPortNotBound is the spec §4.1 ContextError for an application
	// message whose PortId has no bound module.
	ErrPortNotBound = errorsmod.Register(Codespace, 2, "port is not bound to any module")
	// ErrInvalidPort is returned for a malformed PortId.
	ErrInvalidPort = errorsmod.Register(Codespace, 3, "invalid port identifier")
)

// ModuleId is an opaque key owned by the host identifying a bound
// application module. Allocation and port<->module binding happen at chain
// genesis or via governance, outside this engine's scope (spec §4.6).
type ModuleId string

// IBCModule is the callback surface a channel/packet-bound application must
// implement. Every method follows the engine's validate/execute split only
// implicitly: by the time IBCModule is invoked, the core layer has already
// validated the surrounding handshake/packet preconditions, so these
// callbacks need only validate and apply application-specific semantics.
type IBCModule interface {
	// OnChanOpenInit lets the module negotiate (and possibly rewrite) the
	// proposed version, or reject the channel outright.
	OnChanOpenInit(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID, channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) (negotiatedVersion string, err error)

	// OnChanOpenTry mirrors OnChanOpenInit on the Try side; it must
	// negotiate to a version compatible with the counterparty's proposal.
	OnChanOpenTry(
		ctx context.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID, channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) (negotiatedVersion string, err error)

	// OnChanOpenAck notifies the module its channel finished its side of
	// the handshake, with the counterparty's final negotiated version.
	OnChanOpenAck(ctx context.Context, portID, channelID, counterpartyVersion string) error

	// OnChanOpenConfirm notifies the module the channel is now OPEN.
	OnChanOpenConfirm(ctx context.Context, portID, channelID string) error

	// OnChanCloseInit notifies the module its channel is closing locally.
	OnChanCloseInit(ctx context.Context, portID, channelID string) error

	// OnChanCloseConfirm notifies the module the counterparty's channel
	// closed.
	OnChanCloseConfirm(ctx context.Context, portID, channelID string) error

	// OnRecvPacket applies application semantics to an inbound packet and
	// returns the acknowledgement to commit. A nil Acknowledgement.Result
	// and non-empty Error means an application-level failure: the packet
	// is still consumed (spec §7).
	OnRecvPacket(ctx context.Context, packet channeltypes.Packet, relayer string) channeltypes.Acknowledgement

	// OnAcknowledgementPacket applies the ack payload to application state
	// (e.g. ICS-20 keeps funds on success, refunds on failure).
	OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, ack channeltypes.Acknowledgement, relayer string) error

	// OnTimeoutPacket refunds/compensates application state for a packet
	// that never reached its destination.
	OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet, relayer string) error
}
