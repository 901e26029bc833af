package autobid

import (
	"sync"
	"time"

	model "agri-auction/internal/models"
)

// Reasons recorded when a policy is switched off.
const (
	ReasonCeiling = "ceiling_reached"
	ReasonCleared = "cleared_by_bidder"
)

// Agent executes one bidder's standing auto-bid policy for one lot. It only
// ever reads the ledger state carried by events and submits candidates back
// through the session; it never writes the ledger itself.
//
// Counter-bid evaluation happens inside the lot's exclusion domain; the
// internal lock exists so the owning bidder can read the policy snapshot for
// display without entering that domain.
type Agent struct {
	mu     sync.RWMutex
	policy model.AutoBidPolicy
}

// NewAgent creates an agent for an enabled policy.
func NewAgent(policy model.AutoBidPolicy) *Agent {
	return &Agent{policy: policy}
}

// Policy returns a snapshot of the agent's current policy.
func (a *Agent) Policy() model.AutoBidPolicy {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.policy
}

// Replace atomically swaps in a new policy for the same (bidder, lot) pair.
func (a *Agent) Replace(policy model.AutoBidPolicy) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.policy = policy
}

// Disable switches the policy off, keeping it queryable with the reason.
func (a *Agent) Disable(reason string, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.policy.Enabled = false
	a.policy.DisabledReason = reason
	a.policy.UpdatedAt = at
}

// React evaluates a highest-bid event and returns the counter-submission the
// policy calls for, or false when the agent stays quiet.
//
// The agent never reacts to its own bidder's success: the event's bid carries
// the identity of the submission that produced it, so an event caused by this
// agent's own counter-bid (or by its bidder raising manually) is ignored,
// which breaks self-bidding loops.
//
// When the next required amount would exceed the ceiling, the agent disables
// its own policy and emits nothing; the bidder sees the inert policy through
// the query interface.
func (a *Agent) React(ev model.HighestBidEvent, at time.Time) (model.BidSubmission, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.policy.Enabled {
		return model.BidSubmission{}, false
	}
	if ev.LotID != a.policy.LotID || ev.Bid.BidderID == a.policy.BidderID {
		return model.BidSubmission{}, false
	}

	candidate := ev.Bid.Amount + a.policy.Increment
	if a.policy.Ceiling > 0 && candidate > a.policy.Ceiling {
		a.policy.Enabled = false
		a.policy.DisabledReason = ReasonCeiling
		a.policy.UpdatedAt = at
		return model.BidSubmission{}, false
	}

	return model.BidSubmission{
		LotID:    a.policy.LotID,
		BidderID: a.policy.BidderID,
		Amount:   candidate,
		Origin:   model.OriginAuto,
		At:       at,
	}, true
}
