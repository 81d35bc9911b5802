package notifymock

import (
	"context"
	"sync"

	"credit-engine/internal/domain/notify"
)

var _ notify.Notifier = (*Notifier)(nil)

// Event is one recorded notification.
type Event struct {
	Kind notify.EventKind
	ID   string
}

// Notifier records every event for later assertion. Safe for concurrent use.
type Notifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *Notifier) ApplicationEvent(_ context.Context, applicationID string, kind notify.EventKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, Event{Kind: kind, ID: applicationID})
}

func (n *Notifier) ContractEvent(_ context.Context, contractID string, kind notify.EventKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, Event{Kind: kind, ID: contractID})
}

// Events returns a copy of everything recorded so far.
func (n *Notifier) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Event, len(n.events))
	copy(out, n.events)
	return out
}

// Has reports whether an event of the given kind was recorded.
func (n *Notifier) Has(kind notify.EventKind) bool {
	for _, e := range n.Events() {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
