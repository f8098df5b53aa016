package testing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ibctesting "github.com/tokenize-x/ibc-core/testing"
	ibctypes "github.com/tokenize-x/ibc-core/types"
)

func TestStoreGetSetDelete(t *testing.T) {
	s := ibctesting.NewStore()

	_, ok := s.Get("a")
	require.False(t, ok)
	require.False(t, s.Has("a"))

	s.Set("a", []byte("1"))
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, []byte("1"), v)
	require.True(t, s.Has("a"))

	s.Delete("a")
	require.False(t, s.Has("a"))
}

func TestStoreIteratePrefixIsLexicographic(t *testing.T) {
	s := ibctesting.NewStore()
	s.Set("connections/connection-2", []byte("b"))
	s.Set("connections/connection-0", []byte("a"))
	s.Set("connections/connection-1", []byte("c"))
	s.Set("clients/07-tendermint-0", []byte("x"))

	var seen []string
	s.Iterate("connections/", func(key string, value []byte) bool {
		seen = append(seen, key)
		return true
	})

	require.Equal(t, []string{
		"connections/connection-0",
		"connections/connection-1",
		"connections/connection-2",
	}, seen)
}

func TestStoreIterateStopsEarly(t *testing.T) {
	s := ibctesting.NewStore()
	s.Set("a/1", []byte("1"))
	s.Set("a/2", []byte("2"))
	s.Set("a/3", []byte("3"))

	var visited int
	s.Iterate("a/", func(key string, value []byte) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}

func TestHostTracksHeightTimestampAndEvents(t *testing.T) {
	h := ibctesting.NewHost(ibctypes.NewHeight(1, 10), ibctypes.Timestamp(100))
	require.Equal(t, ibctypes.NewHeight(1, 10), h.CurrentHeight())
	require.Equal(t, ibctypes.Timestamp(100), h.CurrentTimestamp())

	h.SetHeight(ibctypes.NewHeight(1, 11))
	h.SetTimestamp(ibctypes.Timestamp(200))
	require.Equal(t, ibctypes.NewHeight(1, 11), h.CurrentHeight())
	require.Equal(t, ibctypes.Timestamp(200), h.CurrentTimestamp())

	h.EmitEvent(ibctypes.Event{Type: "foo"})
	h.EmitEvents(ibctypes.Event{Type: "bar"}, ibctypes.Event{Type: "baz"})
	require.Len(t, h.Events, 3)
}

func TestHostHashIsDeterministic(t *testing.T) {
	h := ibctesting.NewHost(ibctypes.ZeroHeight(), ibctypes.ZeroTimestamp)
	a := h.Hash([]byte("payload"))
	b := h.Hash([]byte("payload"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, h.Hash([]byte("other")))
}

func TestFakeClientVerifyMembership(t *testing.T) {
	counterparty := ibctesting.NewStore()
	counterparty.Set("commitments/ports/transfer/channels/channel-0/sequences/1", []byte("committed"))

	clients := ibctesting.NewFakeClientKeeper()
	clients.RegisterClient("07-fake-0", counterparty, ibctypes.NewHeight(1, 5), ibctypes.Timestamp(42))

	err := clients.VerifyMembership(
		"07-fake-0",
		ibctypes.NewHeight(1, 5),
		0, 0,
		[]byte("committed"),
		"commitments/ports/transfer/channels/channel-0/sequences/1",
		[]byte("committed"),
	)
	require.NoError(t, err)

	err = clients.VerifyMembership(
		"07-fake-0",
		ibctypes.NewHeight(1, 5),
		0, 0,
		[]byte("wrong"),
		"commitments/ports/transfer/channels/channel-0/sequences/1",
		[]byte("committed"),
	)
	require.Error(t, err)

	err = clients.VerifyNonMembership(
		"07-fake-0",
		ibctypes.NewHeight(1, 5),
		0, 0,
		nil,
		"commitments/ports/transfer/channels/channel-0/sequences/2",
	)
	require.NoError(t, err)
}
