package eventbus

import (
	"context"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/schema"
)

// EventType identifies the event payload.
type EventType string

const (
	// EventTab carries tab lifecycle updates.
	EventTab EventType = "tab"
	// EventNotify carries user-facing notifications.
	EventNotify EventType = "notify"
)

// Event represents a UI-facing event emitted by the core session.
type Event struct {
	Type   EventType
	Tab    schema.TabEvent
	Notify schema.NotifyEvent
}

// Bus fanouts session events to subscribers. Publishing never blocks; a
// subscriber that falls behind loses events.
type Bus struct {
	mu    sync.Mutex
	subs  map[chan Event]struct{}
	log   pslog.Logger
	depth int
}

// New constructs a Bus.
func New(logger pslog.Logger) *Bus {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Bus{
		subs:  make(map[chan Event]struct{}),
		log:   logger,
		depth: 256,
	}
}

// Subscribe registers a subscriber and returns its channel + cancel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	if b == nil {
		return nil, func() {}
	}
	ch := make(chan Event, b.depth)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()
	if b.log != nil {
		b.log.Debug("eventbus subscribe", "subs", count)
	}
	return ch, func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
		if b.log != nil {
			b.log.Debug("eventbus unsubscribe")
		}
	}
}

// OnTabEvent publishes a tab lifecycle event.
func (b *Bus) OnTabEvent(event schema.TabEvent) {
	b.publish(Event{Type: EventTab, Tab: event})
}

// OnNotify publishes a notification event.
func (b *Bus) OnNotify(event schema.NotifyEvent) {
	b.publish(Event{Type: EventNotify, Notify: event})
}

func (b *Bus) publish(event Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	subs := make([]chan Event, 0, len(b.subs))
	for sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()
	if len(subs) == 0 {
		return
	}
	dropped := 0
	for _, sub := range subs {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	if dropped > 0 && b.log != nil {
		b.log.Trace("eventbus dropped", "count", dropped)
	}
}
