package realtime

import (
	"context"
	"encoding/json"
	"sync"

	pkgLog "github.com/pKa1/loveSonia/pkg/log"
)

const defaultBufferSize = 16

// Message is one payload delivered to a subscriber.
type Message struct {
	Topic string
	Data  []byte
}

// Subscription is a registered listener on a single topic.
type Subscription struct {
	topic string
	ch    chan Message
}

// C returns the channel the hub delivers on. It is closed by Unsubscribe.
func (s *Subscription) C() <-chan Message { return s.ch }

// Topic returns the subscribed topic.
func (s *Subscription) Topic() string { return s.topic }

// Hub is an in-process pub/sub broker keyed by topic.
// A subscriber whose buffer is full misses the message; Publish never blocks.
type Hub struct {
	l          pkgLog.Logger
	bufferSize int

	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
}

// NewHub creates a Hub. bufferSize <= 0 uses the default of 16.
func NewHub(l pkgLog.Logger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Hub{
		l:          l,
		bufferSize: bufferSize,
		topics:     make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new listener on topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{topic: topic, ch: make(chan Message, h.bufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[sub.topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.topics, sub.topic)
	}
}

// Subscribers reports how many listeners topic has.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Publish marshals payload to JSON and fans it out to every subscriber of topic.
func (h *Hub) Publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.l.Errorf(context.Background(), "realtime.Hub.Publish: marshal %s payload: %v", topic, err)
		return
	}
	msg := Message{Topic: topic, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	dropped := 0
	for sub := range h.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.l.Warnf(context.Background(), "realtime.Hub.Publish: %d slow subscriber(s) on %s missed a message", dropped, topic)
	}
}
