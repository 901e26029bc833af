package coordinator

import (
	"sync"

	model "agri-auction/internal/models"
	"agri-auction/utils"
)

const subscriberBuffer = 256

// Broker fans highest-bid events out to external subscribers (UI refresh,
// outbid notifications). Delivery is at-least-once and carries the ledger
// sequence number, so consumers can discard duplicates and stale events.
//
// A subscriber that cannot keep up is evicted (its channel closed) rather
// than allowed to delay the publisher: publishing happens after the per-lot
// lock is released, but the next submission's events queue behind it.
type Broker struct {
	mu     sync.Mutex
	subs   map[int]chan model.HighestBidEvent
	nextID int
	closed bool
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan model.HighestBidEvent)}
}

// Subscribe registers a consumer and returns its event channel plus a cancel
// function. The channel is closed on cancel, eviction, or broker shutdown.
func (b *Broker) Subscribe() (<-chan model.HighestBidEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan model.HighestBidEvent, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every live subscriber without blocking.
func (b *Broker) Publish(ev model.HighestBidEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// evict slow subscriber to keep event delivery moving
			delete(b.subs, id)
			close(ch)
			utils.Warn("event subscriber evicted", map[string]any{
				"lot_id": ev.LotID,
				"seq":    ev.Bid.Seq,
			})
		}
	}
}

// Close evicts all subscribers and rejects future ones.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.closed = true
}
