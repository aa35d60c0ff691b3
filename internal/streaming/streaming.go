// Package streaming is a small in-process broadcast channel. It backs
// the cross-screen selection channels (map and date pickers hand their
// result back through one) and the feed's filter-change broadcast.
package streaming

import "sync"

type Payload struct {
	Event string
	Data  any
}

type Mux struct {
	mu            sync.Mutex
	subscriptions map[*Subscription]chan<- Payload
	last          *Payload
}

// Publish delivers the payload to every subscriber. Subscribers that
// are not keeping up are cancelled rather than blocking the publisher.
// The payload is retained so late subscribers can opt in to receiving
// the last published value.
func (m *Mux) Publish(event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := Payload{Event: event, Data: data}
	m.last = &p
	for sub, ch := range m.subscriptions {
		select {
		case ch <- p:
		default:
			// too slow, unsubscribe
			m.remove(sub)
		}
	}
}

// Subscribe registers a new subscriber. With replay set, the last
// published payload (if any) is delivered immediately, so a screen
// that mounts after a selection was made still sees it.
func (m *Mux) Subscribe(replay bool) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Payload, 1)
	sub := &Subscription{
		mux: m,
		C:   ch,
	}
	if m.subscriptions == nil {
		m.subscriptions = make(map[*Subscription]chan<- Payload)
	}
	m.subscriptions[sub] = ch
	if replay && m.last != nil {
		ch <- *m.last
	}
	return sub
}

// remove must be called with m.mu held.
func (m *Mux) remove(sub *Subscription) {
	ch, ok := m.subscriptions[sub]
	if ok {
		delete(m.subscriptions, sub)
		close(ch)
	}
}

type Subscription struct {
	mux *Mux
	// The channel to which events are received.
	C <-chan Payload
}

// Cancel unsubscribes. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	s.mux.mu.Lock()
	defer s.mux.mu.Unlock()
	s.mux.remove(s)
}
