// Package event carries page-level notifications between components that
// otherwise share no state.
package event

import "sync"

// LanguageChanged is broadcast after the page switched language.
type LanguageChanged struct {
	Lang string
}

// Handler consumes a LanguageChanged notification.
type Handler func(LanguageChanged)

// Bus delivers notifications synchronously, in the publisher's turn, to every
// subscriber in subscription order.
type Bus struct {
	mu       sync.RWMutex
	next     int
	handlers map[int]Handler
	order    []int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns a func that removes it again.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.handlers[id] = h
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish hands ev to every current subscriber before returning.
func (b *Bus) Publish(ev LanguageChanged) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		hs = append(hs, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
}
