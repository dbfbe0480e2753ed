// Package notify provides the in-process publish/subscribe bus that
// keeps independently-mounted widgets consistent without polling.
// Events are ephemeral (name, detail) pairs: dispatch is synchronous,
// in subscriber registration order, and nothing is queued or
// persisted. A widget that mounts after a publish reconciles by
// reading the Preference Store instead.
package notify

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Handler receives the detail payload of a published event.
type Handler func(detail any)

// subscription is one live handler registration. active flips to false
// when the disposer runs; a publish already holding a snapshot checks
// it before each invocation, so disposal mid-dispatch is honored.
type subscription struct {
	handler Handler
	active  atomic.Bool
}

// Bus is a same-process event relay. The zero value is not usable;
// construct with NewBus. Safe for concurrent use, though homedeck
// drives it from the single Bubbletea update goroutine.
type Bus struct {
	mu     sync.Mutex
	subs   map[string][]*subscription
	logger *slog.Logger
}

// NewBus returns an empty bus. A nil logger falls back to slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string][]*subscription),
		logger: logger,
	}
}

// Subscribe registers handler for event and returns its disposer.
// After the disposer runs the handler is never invoked again, not even
// by a publish that snapshotted its subscriber list beforehand.
// Calling the disposer more than once is harmless.
func (b *Bus) Subscribe(event string, handler Handler) (unsubscribe func()) {
	sub := &subscription{handler: handler}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs[event] = append(b.subs[event], sub)
	b.mu.Unlock()

	return func() {
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[event]
		for i, s := range list {
			if s == sub {
				b.subs[event] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(b.subs[event]) == 0 {
			delete(b.subs, event)
		}
	}
}

// Publish invokes every handler currently subscribed to event, in
// registration order, passing detail. Handlers subscribed while the
// dispatch is running do not receive this event. A panicking handler
// is isolated and logged so one broken widget cannot block siblings.
func (b *Bus) Publish(event string, detail any) {
	b.mu.Lock()
	snapshot := make([]*subscription, len(b.subs[event]))
	copy(snapshot, b.subs[event])
	b.mu.Unlock()

	for _, sub := range snapshot {
		if !sub.active.Load() {
			continue
		}
		b.invoke(event, sub, detail)
	}
}

// SubscriberCount reports the number of live subscriptions for event.
func (b *Bus) SubscriberCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[event])
}

func (b *Bus) invoke(event string, sub *subscription, detail any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("notify: handler panicked", "event", event, "panic", r)
		}
	}()
	sub.handler(detail)
}
