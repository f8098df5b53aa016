package keeper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	connectionkeeper "github.com/tokenize-x/ibc-core/core/03-connection/keeper"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channelkeeper "github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	ibctesting "github.com/tokenize-x/ibc-core/testing"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

const testPort = "transfer"
const testVersion = "ics20-1"

// echoModule is a minimal port.IBCModule that accepts every proposed
// version unchanged and echoes a packet's data back as a successful
// acknowledgement, standing in for a real application so these tests
// exercise the channel/packet state machine itself rather than any
// particular module's semantics.
type echoModule struct{}

func (echoModule) OnChanOpenInit(_ context.Context, _ channeltypes.Order, _ []string, _, _ string, _ channeltypes.Counterparty, version string) (string, error) {
	return version, nil
}

func (echoModule) OnChanOpenTry(_ context.Context, _ channeltypes.Order, _ []string, _, _ string, _ channeltypes.Counterparty, counterpartyVersion string) (string, error) {
	return counterpartyVersion, nil
}

func (echoModule) OnChanOpenAck(context.Context, string, string, string) error      { return nil }
func (echoModule) OnChanOpenConfirm(context.Context, string, string) error          { return nil }
func (echoModule) OnChanCloseInit(context.Context, string, string) error            { return nil }
func (echoModule) OnChanCloseConfirm(context.Context, string, string) error         { return nil }

func (echoModule) OnRecvPacket(_ context.Context, packet channeltypes.Packet, _ string) channeltypes.Acknowledgement {
	return channeltypes.NewResultAcknowledgement(packet.Data)
}

func (echoModule) OnAcknowledgementPacket(context.Context, channeltypes.Packet, channeltypes.Acknowledgement, string) error {
	return nil
}

func (echoModule) OnTimeoutPacket(context.Context, channeltypes.Packet, string) error { return nil }

// linkedPair is one fully OPEN connection + channel between two simulated
// chains, built by driving the real OpenInit/OpenTry/OpenAck/OpenConfirm
// handlers on each side exactly as a relayer would.
type linkedPair struct {
	chainA, chainB           *ibctesting.Chain
	connA, connB             string
	chanA, chanB             string
}

func buildOpenChannel(t *testing.T, ordering channeltypes.Order) linkedPair {
	t.Helper()
	ctx := context.Background()

	chainA := ibctesting.NewChain(ibctypes.NewHeight(1, 1), ibctypes.Timestamp(1000))
	chainB := ibctesting.NewChain(ibctypes.NewHeight(1, 500), ibctypes.Timestamp(2000))

	const clientOnA = "07-fake-a"
	const clientOnB = "07-fake-b"
	ibctesting.Link(chainA, clientOnA, chainB, clientOnB)

	chainA.Router.AddRoute(testPort, echoModule{})
	chainB.Router.AddRoute(testPort, echoModule{})

	// --- connection handshake ---
	initOut, err := connectionkeeper.ConnOpenInit(ctx, chainA.Connection, connectiontypes.MsgConnectionOpenInit{
		ClientID:     clientOnA,
		Counterparty: connectiontypes.Counterparty{ClientID: clientOnB},
		Versions:     connectiontypes.SupportedVersions(),
		Signer:       "alice",
	})
	require.NoError(t, err)
	connA := initOut.Result.ConnectionID

	tryOut, err := connectionkeeper.ConnOpenTry(ctx, chainB.Connection, connectiontypes.MsgConnectionOpenTry{
		ClientID:             clientOnB,
		Counterparty:         connectiontypes.Counterparty{ClientID: clientOnA, ConnectionID: connA},
		CounterpartyVersions: connectiontypes.SupportedVersions(),
		ProofHeight:          ibctypes.NewHeight(1, 1),
		ProofInit:            chainA.ProofAt(host.ConnectionKey(connA)),
		ProofClient:          ibctesting.ExistenceProof(),
		ProofConsensus:       ibctesting.ExistenceProof(),
		ConsensusHeight:      ibctypes.NewHeight(1, 1),
		Signer:               "bob",
	})
	require.NoError(t, err)
	connB := tryOut.Result.ConnectionID
	negotiatedConnVersion := tryOut.Result.ConnectionEnd.Versions[0]

	_, err = connectionkeeper.ConnOpenAck(ctx, chainA.Connection, connectiontypes.MsgConnectionOpenAck{
		ConnectionID:             connA,
		CounterpartyConnectionID: connB,
		Version:                  negotiatedConnVersion,
		ProofHeight:              ibctypes.NewHeight(1, 1),
		ProofTry:                 chainB.ProofAt(host.ConnectionKey(connB)),
		ProofClient:              ibctesting.ExistenceProof(),
		ProofConsensus:           ibctesting.ExistenceProof(),
		ConsensusHeight:          ibctypes.NewHeight(1, 1),
		Signer:                   "alice",
	})
	require.NoError(t, err)

	_, err = connectionkeeper.ConnOpenConfirm(ctx, chainB.Connection, connectiontypes.MsgConnectionOpenConfirm{
		ConnectionID: connB,
		ProofHeight:  ibctypes.NewHeight(1, 1),
		ProofAck:     chainA.ProofAt(host.ConnectionKey(connA)),
		Signer:       "bob",
	})
	require.NoError(t, err)

	// --- channel handshake ---
	chanInitOut, err := channelkeeper.ChanOpenInit(ctx, chainA.Channel, channeltypes.MsgChannelOpenInit{
		PortID:         testPort,
		Ordering:       ordering,
		ConnectionHops: []string{connA},
		Counterparty:   channeltypes.Counterparty{PortID: testPort},
		Version:        testVersion,
		Signer:         "alice",
	})
	require.NoError(t, err)
	chanA := chanInitOut.Result.ChannelID

	chanTryOut, err := channelkeeper.ChanOpenTry(ctx, chainB.Channel, channeltypes.MsgChannelOpenTry{
		PortID:              testPort,
		Ordering:            ordering,
		ConnectionHops:      []string{connB},
		Counterparty:        channeltypes.Counterparty{PortID: testPort, ChannelID: chanA},
		CounterpartyVersion: testVersion,
		ProofHeight:         ibctypes.NewHeight(1, 1),
		ProofInit:           chainA.ProofAt(host.ChannelKey(testPort, chanA)),
		Signer:              "bob",
	})
	require.NoError(t, err)
	chanB := chanTryOut.Result.ChannelID
	negotiatedChanVersion := chanTryOut.Result.ChannelEnd.Version

	_, err = channelkeeper.ChanOpenAck(ctx, chainA.Channel, channeltypes.MsgChannelOpenAck{
		PortID:                testPort,
		ChannelID:             chanA,
		CounterpartyChannelID: chanB,
		CounterpartyVersion:   negotiatedChanVersion,
		ProofHeight:           ibctypes.NewHeight(1, 1),
		ProofTry:              chainB.ProofAt(host.ChannelKey(testPort, chanB)),
		Signer:                "alice",
	})
	require.NoError(t, err)

	_, err = channelkeeper.ChanOpenConfirm(ctx, chainB.Channel, channeltypes.MsgChannelOpenConfirm{
		PortID:    testPort,
		ChannelID: chanB,
		ProofHeight: ibctypes.NewHeight(1, 1),
		ProofAck:    chainA.ProofAt(host.ChannelKey(testPort, chanA)),
		Signer:      "bob",
	})
	require.NoError(t, err)

	return linkedPair{chainA: chainA, chainB: chainB, connA: connA, connB: connB, chanA: chanA, chanB: chanB}
}

// TestSendThenRecvUnordered drives spec scenario S1: a packet sent on an
// unordered channel is received on the first try, stores a receipt, and
// commits a success acknowledgement; the sender's commitment remains until
// acknowledged.
func TestSendThenRecvUnordered(t *testing.T) {
	ctx := context.Background()
	pair := buildOpenChannel(t, channeltypes.Unordered)

	sendOut, err := channelkeeper.SendPacket(ctx, pair.chainA.Channel, testPort, pair.chanA,
		ibctypes.NewHeight(1, 1000), ibctypes.ZeroTimestamp, []byte("100uatom"))
	require.NoError(t, err)
	packet := sendOut.Result.Packet
	require.Equal(t, uint64(1), packet.Sequence)

	commitment, ok := pair.chainA.Channel.GetPacketCommitment(testPort, pair.chanA, packet.Sequence)
	require.True(t, ok)
	require.NotEmpty(t, commitment)

	proof := pair.chainA.ProofAt(host.PacketCommitmentKey(testPort, pair.chanA, packet.Sequence))
	recvOut, err := channelkeeper.RecvPacket(ctx, pair.chainB.Channel, packet, proof, ibctypes.NewHeight(1, 1), "relayer")
	require.NoError(t, err)
	require.Equal(t, channelkeeper.RecvSuccess, recvOut.Result.Kind)
	require.NotNil(t, recvOut.Result.Acknowledgement)
	require.True(t, recvOut.Result.Acknowledgement.Success)
	require.Equal(t, []byte("100uatom"), recvOut.Result.Acknowledgement.Result)

	require.True(t, pair.chainB.Channel.HasPacketReceipt(testPort, pair.chanB, packet.Sequence))
	ackCommitment, ok := pair.chainB.Channel.GetPacketAcknowledgement(testPort, pair.chanB, packet.Sequence)
	require.True(t, ok)
	require.NotEmpty(t, ackCommitment)

	// The sender's commitment is untouched by receipt; only AcknowledgePacket
	// clears it (spec S2), so it must still be present here.
	commitmentAfterRecv, ok := pair.chainA.Channel.GetPacketCommitment(testPort, pair.chanA, packet.Sequence)
	require.True(t, ok)
	require.Equal(t, commitment, commitmentAfterRecv)
}

// TestRecvUnorderedDuplicateIsNoOp drives S1's replay edge case on an
// unordered channel: redelivering the same sequence after it was already
// received must be a no-op, never an error or a second ack write.
func TestRecvUnorderedDuplicateIsNoOp(t *testing.T) {
	ctx := context.Background()
	pair := buildOpenChannel(t, channeltypes.Unordered)

	sendOut, err := channelkeeper.SendPacket(ctx, pair.chainA.Channel, testPort, pair.chanA,
		ibctypes.NewHeight(1, 1000), ibctypes.ZeroTimestamp, []byte("payload"))
	require.NoError(t, err)
	packet := sendOut.Result.Packet

	proof := pair.chainA.ProofAt(host.PacketCommitmentKey(testPort, pair.chanA, packet.Sequence))
	_, err = channelkeeper.RecvPacket(ctx, pair.chainB.Channel, packet, proof, ibctypes.NewHeight(1, 1), "relayer")
	require.NoError(t, err)

	recvOut, err := channelkeeper.RecvPacket(ctx, pair.chainB.Channel, packet, proof, ibctypes.NewHeight(1, 1), "relayer")
	require.NoError(t, err)
	require.Equal(t, channelkeeper.RecvNoOp, recvOut.Result.Kind)
	require.Nil(t, recvOut.Result.Acknowledgement)
}

// TestOrderedReplayRejected drives spec scenario S4: two packets are sent
// on an ordered channel, and submitting sequence 2 before sequence 1 is
// rejected with no state change.
func TestOrderedReplayRejected(t *testing.T) {
	ctx := context.Background()
	pair := buildOpenChannel(t, channeltypes.Ordered)

	firstOut, err := channelkeeper.SendPacket(ctx, pair.chainA.Channel, testPort, pair.chanA,
		ibctypes.NewHeight(1, 1000), ibctypes.ZeroTimestamp, []byte("first"))
	require.NoError(t, err)
	secondOut, err := channelkeeper.SendPacket(ctx, pair.chainA.Channel, testPort, pair.chanA,
		ibctypes.NewHeight(1, 1000), ibctypes.ZeroTimestamp, []byte("second"))
	require.NoError(t, err)

	require.Equal(t, uint64(1), firstOut.Result.Packet.Sequence)
	require.Equal(t, uint64(2), secondOut.Result.Packet.Sequence)

	secondProof := pair.chainA.ProofAt(host.PacketCommitmentKey(testPort, pair.chanA, secondOut.Result.Packet.Sequence))
	_, err = channelkeeper.RecvPacket(ctx, pair.chainB.Channel, secondOut.Result.Packet, secondProof, ibctypes.NewHeight(1, 1), "relayer")
	require.ErrorIs(t, err, channeltypes.ErrUnexpectedPacketSequence)

	next, ok := pair.chainB.Channel.GetNextSequenceRecv(testPort, pair.chanB)
	require.True(t, ok)
	require.Equal(t, uint64(1), next)

	firstProof := pair.chainA.ProofAt(host.PacketCommitmentKey(testPort, pair.chanA, firstOut.Result.Packet.Sequence))
	recvOut, err := channelkeeper.RecvPacket(ctx, pair.chainB.Channel, firstOut.Result.Packet, firstProof, ibctypes.NewHeight(1, 1), "relayer")
	require.NoError(t, err)
	require.Equal(t, channelkeeper.RecvSuccess, recvOut.Result.Kind)
}
