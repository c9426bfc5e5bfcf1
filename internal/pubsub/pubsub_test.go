package pubsub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/console-core/internal/pubsub"
)

func TestPublishDeliversToMatchingSubscribers(t *testing.T) {
	p := pubsub.New()
	sub := p.Subscribe(pubsub.TopicShowChanged, nil, 1)

	p.Publish(pubsub.TopicShowChanged, "patch add 1 1.1 x y")

	select {
	case msg := <-sub.Channel:
		assert.Equal(t, "patch add 1 1.1 x y", msg)
	case <-time.After(time.Second):
		t.Fatal("expected a message")
	}
}

func TestPublishRespectsFilter(t *testing.T) {
	p := pubsub.New()
	sub := p.Subscribe(pubsub.TopicShowChanged, func(msg interface{}) bool {
		s, ok := msg.(string)
		return ok && s == "keep"
	}, 2)

	p.Publish(pubsub.TopicShowChanged, "drop")
	p.Publish(pubsub.TopicShowChanged, "keep")

	select {
	case msg := <-sub.Channel:
		assert.Equal(t, "keep", msg)
	case <-time.After(time.Second):
		t.Fatal("expected the filtered message")
	}

	select {
	case msg := <-sub.Channel:
		t.Fatalf("unexpected second message: %v", msg)
	default:
	}
}

func TestPublishNonBlockingOnFullChannel(t *testing.T) {
	p := pubsub.New()
	sub := p.Subscribe(pubsub.TopicDMXOutput, nil, 1)

	done := make(chan struct{})
	go func() {
		p.Publish(pubsub.TopicDMXOutput, 1)
		p.Publish(pubsub.TopicDMXOutput, 2) // channel already full, must not block
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber channel")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	p := pubsub.New()
	sub := p.Subscribe(pubsub.TopicShowChanged, nil, 1)
	require.Equal(t, 1, p.SubscriberCount(pubsub.TopicShowChanged))

	p.Unsubscribe(sub)
	assert.Equal(t, 0, p.SubscriberCount(pubsub.TopicShowChanged))

	_, ok := <-sub.Channel
	assert.False(t, ok, "channel should be closed after unsubscribe")
}
