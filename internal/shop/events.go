package shop

import "sync"

// Event is a state-change notification pushed to subscribers so a client
// can re-render without polling. Data carries a snapshot of whatever
// changed; subscribers must treat it as read-only.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Event types published by the facade.
const (
	EventUserUpdated   = "user_updated"
	EventCartUpdated   = "cart_updated"
	EventOrderPlaced   = "order_placed"
	EventStatusUpdated = "status_updated"
	EventLoggedOut     = "logged_out"
)

// hub fans events out to subscriber channels. There is a single session,
// so there are no topics: every subscriber sees every event. Slow
// subscribers have events dropped rather than blocking the facade.
type hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func newHub() *hub {
	return &hub{subs: map[chan Event]struct{}{}}
}

func (h *hub) subscribe(buf int) (<-chan Event, func()) {
	if buf <= 0 {
		buf = 16
	}
	ch := make(chan Event, buf)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *hub) broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			// drop if slow consumer
		}
	}
}
