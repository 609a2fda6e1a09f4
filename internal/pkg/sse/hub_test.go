package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesTopicSubscribersOnly(t *testing.T) {
	h := NewHub()
	leaves, stopLeaves := h.Subscribe(TopicLeave)
	defer stopLeaves()
	assets, stopAssets := h.Subscribe(TopicAsset)
	defer stopAssets()

	h.Publish(Event{Topic: TopicLeave, Event: "leave.approved", Data: 1})

	select {
	case ev := <-leaves:
		assert.Equal(t, "leave.approved", ev.Event)
	default:
		t.Fatal("leave subscriber did not receive the event")
	}
	assert.Len(t, assets, 0)
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	ch, stop := h.Subscribe(TopicMaintenance)
	defer stop()

	for i := 0; i < 100; i++ {
		h.Publish(Event{Topic: TopicMaintenance, Event: "maintenance.reminder"})
	}
	assert.Len(t, ch, 10)

	h.Publish(Event{Topic: "nobody-listens"})
}

func TestCleanupIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, stop := h.Subscribe(TopicTraining)
	_, stop2 := h.Subscribe(TopicTraining)
	require.Equal(t, 2, h.SubscriberCount(TopicTraining))

	stop()
	stop()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 1, h.SubscriberCount(TopicTraining))

	stop2()
	assert.Zero(t, h.TotalSubscribers())
}
