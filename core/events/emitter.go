package events

import (
	"log/slog"
	"sync"
)

// Emitter is a minimal synchronous publish/subscribe facility for typed
// events. Callbacks run on the emitting goroutine in registration
// order; a panicking callback is recovered and logged so it can never
// abort the emitting call.
type Emitter struct {
	mu          sync.Mutex
	subscribers []*Subscription
	nextID      int
}

// Subscription is the handle to one registered callback.
type Subscription struct {
	id       int
	kind     Kind
	callback func(Event)
	emitter  *Emitter
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Subscribe registers a callback invoked for every emitted event.
func (e *Emitter) Subscribe(callback func(Event)) *Subscription {
	return e.subscribe("", callback)
}

// SubscribeKind registers a callback invoked only for events of the
// given kind.
func (e *Emitter) SubscribeKind(kind Kind, callback func(Event)) *Subscription {
	return e.subscribe(kind, callback)
}

func (e *Emitter) subscribe(kind Kind, callback func(Event)) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	subscription := &Subscription{id: e.nextID, kind: kind, callback: callback, emitter: e}
	e.subscribers = append(e.subscribers, subscription)
	return subscription
}

// Unsubscribe removes the subscription. Repeated calls are ignored.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.emitter == nil {
		return
	}

	emitter := s.emitter
	s.emitter = nil

	emitter.mu.Lock()
	defer emitter.mu.Unlock()
	for i, subscription := range emitter.subscribers {
		if subscription.id == s.id {
			emitter.subscribers = append(emitter.subscribers[:i], emitter.subscribers[i+1:]...)
			return
		}
	}
}

// Emit delivers the event synchronously to all matching subscribers in
// registration order.
func (e *Emitter) Emit(event Event) {
	if e == nil {
		return
	}

	e.mu.Lock()
	subscribers := make([]*Subscription, len(e.subscribers))
	copy(subscribers, e.subscribers)
	e.mu.Unlock()

	for _, subscription := range subscribers {
		if subscription.kind != "" && subscription.kind != event.Kind() {
			continue
		}
		invoke(subscription.callback, event)
	}
}

func invoke(callback func(Event), event Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("event subscriber panicked", "kind", string(event.Kind()), "panic", r)
		}
	}()

	callback(event)
}
