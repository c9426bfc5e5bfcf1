// Package pubsub is an in-process, topic-based fan-out used to push
// show-changed and DMX-output events out to HTTP/websocket subscribers
// without coupling the engine to the transport layer (§4.13).
package pubsub

import "sync"

// Topic names a stream of events.
type Topic string

const (
	// TopicShowChanged fires after every successfully executed
	// command (§4.12); resolves publish only on TopicDMXOutput.
	TopicShowChanged Topic = "show.changed"
	// TopicDMXOutput fires once per resolved frame, carrying the
	// multiverse snapshot that was (or would be) sent to Art-Net.
	TopicDMXOutput Topic = "dmx.output"
)

// Subscriber receives messages published to Topic, each delivered on
// Channel. A Filter, when non-nil, drops messages it returns false
// for before they reach Channel.
type Subscriber struct {
	ID      uint64
	Topic   Topic
	Filter  func(message interface{}) bool
	Channel chan interface{}
}

// PubSub is a registry of subscribers keyed by topic. All methods are
// safe for concurrent use.
type PubSub struct {
	mu          sync.RWMutex
	subscribers map[Topic][]*Subscriber
	nextID      uint64
}

// New constructs an empty registry.
func New() *PubSub {
	return &PubSub{subscribers: make(map[Topic][]*Subscriber)}
}

// Subscribe registers a new subscriber to topic with the given buffer
// size, returning the Subscriber whose Channel the caller should
// range over. filter may be nil to receive every message on topic.
func (p *PubSub) Subscribe(topic Topic, filter func(message interface{}) bool, bufferSize int) *Subscriber {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	sub := &Subscriber{
		ID:      p.nextID,
		Topic:   topic,
		Filter:  filter,
		Channel: make(chan interface{}, bufferSize),
	}
	p.subscribers[topic] = append(p.subscribers[topic], sub)
	return sub
}

// Unsubscribe removes sub from its topic's subscriber list and closes
// its channel. Safe to call more than once.
func (p *PubSub) Unsubscribe(sub *Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	subs := p.subscribers[sub.Topic]
	for i, s := range subs {
		if s == sub {
			p.subscribers[sub.Topic] = append(subs[:i], subs[i+1:]...)
			close(sub.Channel)
			return
		}
	}
}

// Publish delivers message to every subscriber of topic whose filter
// (if any) accepts it. Delivery is non-blocking: a subscriber with a
// full channel drops the message rather than stalling the publisher.
func (p *PubSub) Publish(topic Topic, message interface{}) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, sub := range p.subscribers[topic] {
		if sub.Filter != nil && !sub.Filter(message) {
			continue
		}
		select {
		case sub.Channel <- message:
		default:
		}
	}
}

// SubscriberCount reports how many subscribers a topic currently has.
func (p *PubSub) SubscriberCount(topic Topic) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers[topic])
}
