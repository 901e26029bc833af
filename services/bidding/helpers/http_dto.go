package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	LotID    string `json:"lot_id" binding:"required"`
	BidderID string `json:"bidder_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type RegisterLotRequest struct {
	LotID         string    `json:"lot_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartingPrice int64     `json:"starting_price" binding:"required,gt=0"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
}

type SetAutoBidRequest struct {
	Increment int64 `json:"increment" binding:"required,gt=0"`
	Ceiling   int64 `json:"ceiling" binding:"omitempty,gt=0"`
}

type BidResponse struct {
	BidID      string `json:"bid_id"`
	LotID      string `json:"lot_id"`
	BidderID   string `json:"bidder_id"`
	Amount     int64  `json:"amount"`
	Seq        uint64 `json:"seq"`
	Origin     string `json:"origin"`
	PrevAmount int64  `json:"prev_amount"`
	PlacedAt   string `json:"placed_at"`
}

type PhaseResponse struct {
	LotID            string `json:"lot_id"`
	Phase            string `json:"phase"`
	StartingPrice    int64  `json:"starting_price"`
	StartsAt         string `json:"starts_at"`
	EndsAt           string `json:"ends_at"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	UntilStartSecs   int64  `json:"until_start_seconds"`
}
