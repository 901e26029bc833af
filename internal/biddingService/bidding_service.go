package bidding

import (
	"context"
	"fmt"
	"time"

	"agri-auction/internal/auctionerrors"
	"agri-auction/internal/clock"
	"agri-auction/internal/coordinator"
	model "agri-auction/internal/models"
	"agri-auction/internal/repository"
	"agri-auction/utils"
)

// BiddingService is the engine's boundary: it resolves lot ids to their
// per-lot sessions and applies the input checks the transport layer cannot.
// Authentication has already identified bidder ids by the time calls land
// here.
type BiddingService struct {
	catalog repository.Catalog
	coord   *coordinator.Coordinator
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(catalog repository.Catalog) *BiddingService {
	return &BiddingService{
		catalog: catalog,
		coord:   coordinator.New(),
	}
}

// WithNow injects a deterministic clock for tests.
func (s *BiddingService) WithNow(now func() time.Time) *BiddingService {
	s.coord.WithNow(now)
	return s
}

// RegisterLot ingests an approved lot from the catalog and opens its bidding
// session. The window instants are normalized once here; the lot is immutable
// afterwards except through its ledger.
func (s *BiddingService) RegisterLot(lot model.Lot) error {
	if lot.LotID == "" {
		return fmt.Errorf("service: %w - missing lot ID", auctionerrors.ErrInvalidBid)
	}

	lot.StartsAt = clock.Normalize(lot.StartsAt)
	lot.EndsAt = clock.Normalize(lot.EndsAt)

	if _, err := s.coord.Register(lot); err != nil {
		return fmt.Errorf("service: failed to register lot %s: %w", lot.LotID, err)
	}
	if err := s.catalog.AddLot(lot); err != nil {
		return fmt.Errorf("service: failed to store lot %s: %w", lot.LotID, err)
	}

	utils.Info("lot registered for bidding", map[string]any{
		"lot_id":         lot.LotID,
		"starting_price": lot.StartingPrice,
		"starts_at":      lot.StartsAt,
		"ends_at":        lot.EndsAt,
	})
	return nil
}

// SubmitManualBid validates and records a bidder's manual bid on a lot.
// The instant defaults to the current time when zero; either way it is
// normalized before the phase gate sees it.
func (s *BiddingService) SubmitManualBid(ctx context.Context, lotID, bidderID string, amount int64, at time.Time) (model.Bid, error) {
	if lotID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing lotID or bidderID", auctionerrors.ErrInvalidBid)
	}

	sess, ok := s.coord.Session(lotID)
	if !ok {
		return model.Bid{}, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}

	if !at.IsZero() {
		at = clock.Normalize(at)
	}

	bid, err := sess.Submit(ctx, model.BidSubmission{
		LotID:    lotID,
		BidderID: bidderID,
		Amount:   amount,
		Origin:   model.OriginManual,
		At:       at,
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: bid on lot %s by %s: %w", lotID, bidderID, err)
	}
	return bid, nil
}

// SetAutoBidPolicy installs or replaces the bidder's standing auto-bid
// instruction for a lot. A ceiling of 0 means unbounded.
func (s *BiddingService) SetAutoBidPolicy(ctx context.Context, lotID, bidderID string, increment, ceiling int64) (model.AutoBidPolicy, error) {
	if lotID == "" || bidderID == "" {
		return model.AutoBidPolicy{}, fmt.Errorf("service: %w - missing lotID or bidderID", auctionerrors.ErrInvalidPolicy)
	}

	sess, ok := s.coord.Session(lotID)
	if !ok {
		return model.AutoBidPolicy{}, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}

	policy, err := sess.SetPolicy(ctx, bidderID, increment, ceiling)
	if err != nil {
		return model.AutoBidPolicy{}, fmt.Errorf("service: auto-bid policy on lot %s for %s: %w", lotID, bidderID, err)
	}
	return policy, nil
}

// ClearAutoBidPolicy switches the bidder back to manual mode. The policy is
// disabled, not deleted, so it stays queryable.
func (s *BiddingService) ClearAutoBidPolicy(ctx context.Context, lotID, bidderID string) error {
	if lotID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing lotID or bidderID", auctionerrors.ErrInvalidPolicy)
	}

	sess, ok := s.coord.Session(lotID)
	if !ok {
		return fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}

	if err := sess.ClearPolicy(ctx, bidderID); err != nil {
		return fmt.Errorf("service: clear auto-bid on lot %s for %s: %w", lotID, bidderID, err)
	}
	return nil
}

// GetAutoBidPolicy returns the bidder's policy for a lot, including a
// disabled one and the reason it stopped.
func (s *BiddingService) GetAutoBidPolicy(lotID, bidderID string) (model.AutoBidPolicy, error) {
	sess, ok := s.coord.Session(lotID)
	if !ok {
		return model.AutoBidPolicy{}, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}
	return sess.Policy(bidderID)
}

// GetCurrentHighest returns the lot's current highest bid.
func (s *BiddingService) GetCurrentHighest(lotID string) (model.Bid, error) {
	sess, ok := s.coord.Session(lotID)
	if !ok {
		return model.Bid{}, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}
	return sess.CurrentHighest()
}

// GetBidHistory returns the lot's full ordered bid sequence.
func (s *BiddingService) GetBidHistory(lotID string) ([]model.Bid, error) {
	sess, ok := s.coord.Session(lotID)
	if !ok {
		return nil, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}
	return sess.History(), nil
}

// GetPhase reports the lot's lifecycle phase at the given instant (current
// time when zero), together with the lot metadata for display.
func (s *BiddingService) GetPhase(lotID string, at time.Time) (model.Phase, model.Lot, error) {
	sess, ok := s.coord.Session(lotID)
	if !ok {
		return "", model.Lot{}, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}
	return sess.PhaseAt(at), sess.Lot(), nil
}

// GetLot returns the catalog metadata for a lot.
func (s *BiddingService) GetLot(lotID string) (model.Lot, error) {
	lot, err := s.catalog.GetLot(lotID)
	if err != nil {
		return model.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// ListLots returns all lots open for bidding.
func (s *BiddingService) ListLots() ([]model.Lot, error) {
	lots, err := s.catalog.ListLots()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lots: %w", err)
	}
	return lots, nil
}

// Subscribe attaches a consumer to a lot's highest-bid event feed.
func (s *BiddingService) Subscribe(lotID string) (<-chan model.HighestBidEvent, func(), error) {
	sess, ok := s.coord.Session(lotID)
	if !ok {
		return nil, nil, fmt.Errorf("service: %w - lot %s", auctionerrors.ErrLotNotFound, lotID)
	}
	ch, cancel := sess.Subscribe()
	return ch, cancel, nil
}
