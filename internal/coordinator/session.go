package coordinator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"agri-auction/internal/auctionerrors"
	"agri-auction/internal/autobid"
	"agri-auction/internal/clock"
	"agri-auction/internal/ledger"
	model "agri-auction/internal/models"
	"agri-auction/internal/validator"
	"agri-auction/utils"
)

// maxReactionRounds caps one serialized turn's auto-bid chain. Ceilinged
// policies converge long before this; hitting the cap means two unbounded
// policies are duelling, which is logged and cut short rather than allowed
// to spin forever.
const maxReactionRounds = 10000

// Session is the per-lot serialization point: it admits one submission at a
// time, gates it through the clock and validator, appends to the ledger and
// feeds the resulting event to the lot's auto-bid agents within the same
// turn. Sessions for different lots share no state.
type Session struct {
	lot    model.Lot
	admit  chan struct{} // capacity-1 semaphore, the lot's exclusion domain
	ledger *ledger.Ledger
	broker *Broker
	now    func() time.Time

	agentMu sync.RWMutex
	agents  map[string]*autobid.Agent // keyed by bidder id
}

func newSession(lot model.Lot, now func() time.Time) *Session {
	return &Session{
		lot:    lot,
		admit:  make(chan struct{}, 1),
		ledger: ledger.New(lot.LotID, lot.StartingPrice),
		broker: NewBroker(),
		now:    now,
		agents: make(map[string]*autobid.Agent),
	}
}

// Lot returns the immutable lot metadata this session was created with.
func (s *Session) Lot() model.Lot {
	return s.lot
}

// Submit evaluates one candidate bid. The caller blocks only while waiting
// for the lot's exclusion domain, and may cancel via ctx during that wait;
// once admitted the outcome is final even if the caller has gone away,
// because an auto-bid chain may already depend on it.
//
// The returned result is that of this submission alone: counter-bids raised
// by auto-bid agents in the same turn surface as separate events on the
// subscriber feed, after the domain is released.
func (s *Session) Submit(ctx context.Context, sub model.BidSubmission) (model.Bid, error) {
	select {
	case s.admit <- struct{}{}:
	case <-ctx.Done():
		return model.Bid{}, fmt.Errorf("lot %s: %v: %w",
			sub.LotID, ctx.Err(), auctionerrors.ErrSubmissionCancelled)
	}

	bid, events, err := s.evaluate(sub)
	<-s.admit

	for _, ev := range events {
		s.broker.Publish(ev)
	}
	return bid, err
}

// evaluate runs inside the exclusion domain. Phase is read exactly once, at
// admission; an end-of-window tick during the turn does not re-gate work
// already admitted.
func (s *Session) evaluate(sub model.BidSubmission) (model.Bid, []model.HighestBidEvent, error) {
	now := sub.At
	if now.IsZero() {
		now = s.now()
	}
	sub.At = now

	phase := clock.PhaseAt(now, s.lot.StartsAt, s.lot.EndsAt)

	if err := validator.Validate(phase, s.ledger.StartingPrice(), s.currentPtr(), sub); err != nil {
		return model.Bid{}, nil, err
	}

	bid, prev, err := s.ledger.Append(sub)
	if err != nil {
		utils.Error("ledger invariant violation", map[string]any{
			"lot_id":    sub.LotID,
			"bidder_id": sub.BidderID,
			"amount":    sub.Amount,
			"origin":    sub.Origin,
			"error":     err.Error(),
		})
		return model.Bid{}, nil, err
	}

	ev := model.HighestBidEvent{LotID: s.lot.LotID, Bid: bid, Previous: prev, Phase: phase}
	events := append([]model.HighestBidEvent{ev},
		s.drainReactions([]model.HighestBidEvent{ev}, phase, now)...)

	return bid, events, nil
}

// drainReactions feeds queued highest-bid events to the lot's agents and
// appends every accepted counter-bid, breadth-first, until the round is
// quiescent. An explicit queue is used instead of recursion so the domain's
// hold time stays bounded by the chain length, not the call stack.
func (s *Session) drainReactions(queue []model.HighestBidEvent, phase model.Phase, now time.Time) []model.HighestBidEvent {
	var produced []model.HighestBidEvent
	rounds := 0

	for len(queue) > 0 {
		ev := queue[0]
		queue = queue[1:]

		for _, ag := range s.orderedAgents() {
			counter, ok := ag.React(ev, now)
			if !ok {
				continue
			}

			rounds++
			if rounds > maxReactionRounds {
				utils.Error("auto-bid reaction cap reached, cutting chain", map[string]any{
					"lot_id": s.lot.LotID,
					"rounds": rounds,
				})
				return produced
			}

			if err := validator.Validate(phase, s.ledger.StartingPrice(), s.currentPtr(), counter); err != nil {
				// Normal when another agent raised past this candidate
				// earlier in the turn.
				utils.Debug("auto-bid counter rejected", map[string]any{
					"lot_id":    s.lot.LotID,
					"bidder_id": counter.BidderID,
					"amount":    counter.Amount,
					"reason":    err.Error(),
				})
				continue
			}

			bid, prev, err := s.ledger.Append(counter)
			if err != nil {
				utils.Error("ledger invariant violation during auto-bid", map[string]any{
					"lot_id":    s.lot.LotID,
					"bidder_id": counter.BidderID,
					"amount":    counter.Amount,
					"error":     err.Error(),
				})
				return produced
			}

			nev := model.HighestBidEvent{LotID: s.lot.LotID, Bid: bid, Previous: prev, Phase: phase}
			produced = append(produced, nev)
			queue = append(queue, nev)
		}
	}
	return produced
}

// SetPolicy installs or atomically replaces the bidder's auto-bid policy.
// If the lot already has a highest bid held by someone else, the fresh agent
// is given the chance to counter it in the same serialized turn, exactly as
// if the standing highest bid had just been placed.
func (s *Session) SetPolicy(ctx context.Context, bidderID string, increment, ceiling int64) (model.AutoBidPolicy, error) {
	if increment <= 0 {
		return model.AutoBidPolicy{}, fmt.Errorf("increment %d must be positive: %w",
			increment, auctionerrors.ErrInvalidPolicy)
	}
	if ceiling < 0 {
		return model.AutoBidPolicy{}, fmt.Errorf("ceiling %d must not be negative: %w",
			ceiling, auctionerrors.ErrInvalidPolicy)
	}

	select {
	case s.admit <- struct{}{}:
	case <-ctx.Done():
		return model.AutoBidPolicy{}, fmt.Errorf("lot %s: %v: %w",
			s.lot.LotID, ctx.Err(), auctionerrors.ErrSubmissionCancelled)
	}

	policy, events, err := s.setPolicyAdmitted(bidderID, increment, ceiling)
	<-s.admit

	for _, ev := range events {
		s.broker.Publish(ev)
	}
	return policy, err
}

func (s *Session) setPolicyAdmitted(bidderID string, increment, ceiling int64) (model.AutoBidPolicy, []model.HighestBidEvent, error) {
	now := s.now()
	current := s.currentPtr()

	if ceiling > 0 {
		if current != nil && ceiling <= current.Amount {
			return model.AutoBidPolicy{}, nil, fmt.Errorf("ceiling %d not above current highest %d: %w",
				ceiling, current.Amount, auctionerrors.ErrCeilingTooLow)
		}
		if current == nil && ceiling < s.ledger.StartingPrice() {
			return model.AutoBidPolicy{}, nil, fmt.Errorf("ceiling %d below starting price %d: %w",
				ceiling, s.ledger.StartingPrice(), auctionerrors.ErrCeilingTooLow)
		}
	}

	policy := model.AutoBidPolicy{
		LotID:     s.lot.LotID,
		BidderID:  bidderID,
		Increment: increment,
		Ceiling:   ceiling,
		Enabled:   true,
		UpdatedAt: now,
	}

	s.agentMu.Lock()
	ag, ok := s.agents[bidderID]
	if ok {
		ag.Replace(policy)
	} else {
		ag = autobid.NewAgent(policy)
		s.agents[bidderID] = ag
	}
	s.agentMu.Unlock()

	var events []model.HighestBidEvent
	if current != nil {
		phase := clock.PhaseAt(now, s.lot.StartsAt, s.lot.EndsAt)
		if phase == model.PhaseActive {
			seed := model.HighestBidEvent{LotID: s.lot.LotID, Bid: *current, Phase: phase}
			events = s.drainReactions([]model.HighestBidEvent{seed}, phase, now)
		}
	}

	return ag.Policy(), events, nil
}

// ClearPolicy disables the bidder's policy without deleting it, so the
// bidder can still query why the agent stopped.
func (s *Session) ClearPolicy(ctx context.Context, bidderID string) error {
	select {
	case s.admit <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("lot %s: %v: %w",
			s.lot.LotID, ctx.Err(), auctionerrors.ErrSubmissionCancelled)
	}
	defer func() { <-s.admit }()

	s.agentMu.RLock()
	ag, ok := s.agents[bidderID]
	s.agentMu.RUnlock()
	if !ok {
		return fmt.Errorf("lot %s bidder %s: %w", s.lot.LotID, bidderID, auctionerrors.ErrNoPolicy)
	}

	ag.Disable(autobid.ReasonCleared, s.now())
	return nil
}

// Policy returns the bidder's policy snapshot. Read outside the exclusion
// domain; display-only.
func (s *Session) Policy(bidderID string) (model.AutoBidPolicy, error) {
	s.agentMu.RLock()
	ag, ok := s.agents[bidderID]
	s.agentMu.RUnlock()
	if !ok {
		return model.AutoBidPolicy{}, fmt.Errorf("lot %s bidder %s: %w",
			s.lot.LotID, bidderID, auctionerrors.ErrNoPolicy)
	}
	return ag.Policy(), nil
}

// CurrentHighest returns the lot's current highest bid.
func (s *Session) CurrentHighest() (model.Bid, error) {
	if bid, ok := s.ledger.CurrentHighest(); ok {
		return bid, nil
	}
	return model.Bid{}, fmt.Errorf("lot %s: %w", s.lot.LotID, auctionerrors.ErrNoBids)
}

// History returns the lot's full accepted-bid sequence.
func (s *Session) History() []model.Bid {
	return s.ledger.History()
}

// PhaseAt reports the lot's lifecycle phase at the given instant (the
// session clock when zero).
func (s *Session) PhaseAt(now time.Time) model.Phase {
	if now.IsZero() {
		now = s.now()
	}
	return clock.PhaseAt(clock.Normalize(now), s.lot.StartsAt, s.lot.EndsAt)
}

// Subscribe attaches a consumer to the lot's highest-bid event feed.
func (s *Session) Subscribe() (<-chan model.HighestBidEvent, func()) {
	return s.broker.Subscribe()
}

func (s *Session) currentPtr() *model.Bid {
	if bid, ok := s.ledger.CurrentHighest(); ok {
		return &bid
	}
	return nil
}

// orderedAgents returns the lot's agents in stable bidder-id order so a
// turn's evaluation order is deterministic.
func (s *Session) orderedAgents() []*autobid.Agent {
	s.agentMu.RLock()
	defer s.agentMu.RUnlock()

	ids := make([]string, 0, len(s.agents))
	for id := range s.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*autobid.Agent, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.agents[id])
	}
	return out
}
