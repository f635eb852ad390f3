// Package events implements the SDK's synchronous publish/subscribe bus.
package events

import (
	"sync"

	"github.com/celopay/celopay-go/logger"
	"github.com/celopay/celopay-go/types"
)

// Bus fans lifecycle events out to subscribers. Delivery is synchronous and
// follows subscription order. There is no persistence or replay: a late
// subscriber never sees past events.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber
	log    logger.Logger
}

type subscriber struct {
	id uint64
	cb types.EventCallback
}

// NewBus creates an empty bus. A nil logger falls back to Noop.
func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Bus{log: log}
}

// Subscribe registers cb and returns a function that removes it. The
// returned function is idempotent.
func (b *Bus) Subscribe(cb types.EventCallback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, cb: cb})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every subscriber registered at the time of the
// call. A panicking subscriber is recovered and logged; it neither stops
// delivery to later subscribers nor reaches the publisher. Unsubscribing
// during delivery does not affect the in-flight event.
func (b *Bus) Publish(ev types.SDKEvent) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(s.cb, ev)
	}
}

func (b *Bus) deliver(cb types.EventCallback, ev types.SDKEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event subscriber panicked", map[string]any{
				"event": string(ev.Type),
				"panic": r,
			})
		}
	}()
	cb(ev)
}
