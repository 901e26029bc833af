package auctionerrors

import "errors"

// Lookup errors
var (
	ErrLotNotFound = errors.New("lot not found")
	ErrNoBids      = errors.New("no bids recorded for lot")
	ErrNoPolicy    = errors.New("no auto-bid policy for bidder")
)

// Registration errors
var (
	ErrLotExists     = errors.New("lot already registered")
	ErrInvalidWindow = errors.New("auction window invalid")
)

// Submission rejections. Expected outcomes, returned to the caller and never
// logged as errors.
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrNotActive          = errors.New("bidding is not active")
	ErrInvalidAmount      = errors.New("bid amount must be a positive integer")
	ErrTooLow             = errors.New("bid amount too low")
	ErrBelowStartingPrice = errors.New("bid below starting price")
	ErrAlreadyHighest     = errors.New("bidder already holds the highest bid")
)

// Policy rejections
var (
	ErrInvalidPolicy = errors.New("invalid auto-bid policy")
	ErrCeilingTooLow = errors.New("auto-bid ceiling below current price")
)

// ErrInvariantViolation is a logic-error class failure: the ledger was asked
// to append an amount that does not beat the current highest. It means the
// per-lot serialization was broken and must never be downgraded to a normal
// rejection.
var ErrInvariantViolation = errors.New("ledger invariant violation")

// ErrSubmissionCancelled is returned when a submission's context is cancelled
// while it is still waiting to be admitted to the per-lot session.
var ErrSubmissionCancelled = errors.New("submission cancelled before admission")
