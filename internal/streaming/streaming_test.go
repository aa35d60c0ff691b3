package streaming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	require := require.New(t)

	var m Mux
	sub := m.Subscribe(false)
	m.Publish("selection", 42)
	got := <-sub.C
	require.Equal("selection", got.Event)
	require.Equal(42, got.Data)
}

func TestLateSubscriberReplay(t *testing.T) {
	require := require.New(t)

	var m Mux
	m.Publish("selection", "spot-17")

	sub := m.Subscribe(true)
	got := <-sub.C
	require.Equal("spot-17", got.Data)

	// without replay, nothing is pending
	require.Empty(m.Subscribe(false).C)
}

func TestCancelIsIdempotent(t *testing.T) {
	var m Mux
	sub := m.Subscribe(false)
	sub.Cancel()
	sub.Cancel()
	m.Publish("selection", nil) // must not panic on a closed channel
}

func TestSlowSubscriberDropped(t *testing.T) {
	require := require.New(t)

	var m Mux
	sub := m.Subscribe(false)
	m.Publish("filter", 1)
	m.Publish("filter", 2) // buffer full, subscriber is cancelled

	_, ok := <-sub.C
	require.True(ok)
	_, ok = <-sub.C
	require.False(ok)
}
