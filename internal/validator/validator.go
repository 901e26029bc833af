package validator

import (
	"fmt"

	"agri-auction/internal/auctionerrors"
	model "agri-auction/internal/models"
)

// Validate checks a candidate submission against the lot's current state and
// returns nil when the bid may be appended, or exactly one typed rejection.
// Rules are checked in order and short-circuit on first failure:
//
//  1. bidding must be in the ACTIVE phase
//  2. the amount must be a positive integer
//  3. the amount must beat the current highest bid, or meet the starting
//     price when there is none
//  4. a manual bidder must not already hold the highest bid; auto-bid
//     submissions are exempt, since an agent only ever counter-bids another
//     bidder's raise
//
// Pure: no side effects, same inputs always yield the same verdict.
func Validate(phase model.Phase, startingPrice int64, current *model.Bid, sub model.BidSubmission) error {
	if phase != model.PhaseActive {
		return fmt.Errorf("bidding for lot %s is %s: %w", sub.LotID, phase, auctionerrors.ErrNotActive)
	}

	if sub.Amount <= 0 {
		return fmt.Errorf("amount %d: %w", sub.Amount, auctionerrors.ErrInvalidAmount)
	}

	if current != nil {
		if sub.Amount <= current.Amount {
			return fmt.Errorf("amount %d does not beat current highest %d: %w",
				sub.Amount, current.Amount, auctionerrors.ErrTooLow)
		}
	} else if sub.Amount < startingPrice {
		return fmt.Errorf("amount %d below starting price %d: %w",
			sub.Amount, startingPrice, auctionerrors.ErrBelowStartingPrice)
	}

	if sub.Origin == model.OriginManual && current != nil && current.BidderID == sub.BidderID {
		return fmt.Errorf("bidder %s: %w", sub.BidderID, auctionerrors.ErrAlreadyHighest)
	}

	return nil
}
