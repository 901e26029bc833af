package ledger

import (
	"fmt"
	"sync"

	"agri-auction/internal/auctionerrors"
	model "agri-auction/internal/models"
	"agri-auction/utils"
)

// Ledger is the authoritative, append-only bid history for one lot. Appends
// must be serialized by the owning session; the internal lock only makes
// reads safe against a concurrent append, it does not order appends.
type Ledger struct {
	mu            sync.RWMutex
	lotID         string
	startingPrice int64
	bids          []model.Bid
}

// New creates an empty ledger for a lot with the given starting price.
func New(lotID string, startingPrice int64) *Ledger {
	return &Ledger{
		lotID:         lotID,
		startingPrice: startingPrice,
	}
}

// CurrentHighest returns the current highest bid, or false if no bid has been
// accepted yet. By construction this is the last appended entry. O(1).
func (l *Ledger) CurrentHighest() (model.Bid, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.bids) == 0 {
		return model.Bid{}, false
	}
	return l.bids[len(l.bids)-1], true
}

// Append accepts a validated submission, assigns the next sequence number and
// returns the new bid together with the previous highest (nil if first).
//
// The caller is responsible for full validation; Append re-checks only the
// ledger's own invariant. A violation means two writers raced past the per-lot
// exclusion domain and is returned as ErrInvariantViolation, never as a
// normal rejection.
func (l *Ledger) Append(sub model.BidSubmission) (model.Bid, *model.Bid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var prev *model.Bid
	if n := len(l.bids); n > 0 {
		p := l.bids[n-1]
		if sub.Amount <= p.Amount {
			return model.Bid{}, nil, fmt.Errorf(
				"ledger: append %d for lot %s not above current highest %d (seq %d): %w",
				sub.Amount, l.lotID, p.Amount, p.Seq, auctionerrors.ErrInvariantViolation)
		}
		prev = &p
	} else if sub.Amount < l.startingPrice {
		return model.Bid{}, nil, fmt.Errorf(
			"ledger: first append %d for lot %s below starting price %d: %w",
			sub.Amount, l.lotID, l.startingPrice, auctionerrors.ErrInvariantViolation)
	}

	bid := model.Bid{
		BidID:    utils.GenerateID("bid"),
		LotID:    l.lotID,
		BidderID: sub.BidderID,
		Amount:   sub.Amount,
		Seq:      uint64(len(l.bids) + 1),
		Origin:   sub.Origin,
		PlacedAt: sub.At,
	}
	if prev != nil {
		bid.PrevAmount = prev.Amount
	}
	l.bids = append(l.bids, bid)

	return bid, prev, nil
}

// History returns the full accepted-bid sequence in order. The returned slice
// is a copy; callers can iterate it without holding any lock.
func (l *Ledger) History() []model.Bid {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.Bid(nil), l.bids...)
}

// Len returns the number of accepted bids.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.bids)
}

// StartingPrice returns the floor for the first accepted bid.
func (l *Ledger) StartingPrice() int64 {
	return l.startingPrice
}
