package models

import "time"

// Phase is the lifecycle state of a lot's auction window, always derived
// from the clock and never stored.
type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseActive     Phase = "ACTIVE"
	PhaseEnded      Phase = "ENDED"
)

// Origin marks how a bid submission was produced.
type Origin string

const (
	OriginManual Origin = "MANUAL"
	OriginAuto   Origin = "AUTO"
)

// Lot represents one produce lot offered for auction. The auction window is
// 1:1 with the lot, so the lot id doubles as the auction id. All amounts are
// minor currency units.
type Lot struct {
	LotID         string    `json:"lot_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartingPrice int64     `json:"starting_price"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}

// Bid is one accepted entry in a lot's ledger. Seq is assigned by the ledger,
// strictly increasing and gapless per lot; the bid with the highest Seq is the
// current highest bid.
type Bid struct {
	BidID      string    `json:"bid_id"`
	LotID      string    `json:"lot_id"`
	BidderID   string    `json:"bidder_id"`
	Amount     int64     `json:"amount"`
	Seq        uint64    `json:"seq"`
	Origin     Origin    `json:"origin"`
	PrevAmount int64     `json:"prev_amount"` // amount of the bid this one superseded; 0 if first
	PlacedAt   time.Time `json:"placed_at"`
}

// BidSubmission is a candidate bid before validation. Not persisted.
type BidSubmission struct {
	LotID    string
	BidderID string
	Amount   int64
	Origin   Origin
	At       time.Time
}

// AutoBidPolicy is a bidder's standing instruction for one lot: whenever
// outbid, raise by Increment, never exceeding Ceiling (0 means unbounded).
// A disabled policy is kept so the bidder can see why it stopped.
type AutoBidPolicy struct {
	LotID          string    `json:"lot_id"`
	BidderID       string    `json:"bidder_id"`
	Increment      int64     `json:"increment"`
	Ceiling        int64     `json:"ceiling,omitempty"`
	Enabled        bool      `json:"enabled"`
	DisabledReason string    `json:"disabled_reason,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HighestBidEvent is published whenever a lot's ledger accepts a bid.
// Subscribers use Bid.Seq to detect duplicates and out-of-order delivery.
type HighestBidEvent struct {
	LotID    string `json:"lot_id"`
	Bid      Bid    `json:"bid"`
	Previous *Bid   `json:"previous,omitempty"`
	Phase    Phase  `json:"phase"`
}
