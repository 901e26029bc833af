package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"agri-auction/internal/auctionerrors"
	"agri-auction/internal/clock"
	model "agri-auction/internal/models"
	"agri-auction/services/bidding/helpers"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	RegisterLot(lot model.Lot) error
	SubmitManualBid(ctx context.Context, lotID, bidderID string, amount int64, at time.Time) (model.Bid, error)
	SetAutoBidPolicy(ctx context.Context, lotID, bidderID string, increment, ceiling int64) (model.AutoBidPolicy, error)
	ClearAutoBidPolicy(ctx context.Context, lotID, bidderID string) error
	GetAutoBidPolicy(lotID, bidderID string) (model.AutoBidPolicy, error)
	GetCurrentHighest(lotID string) (model.Bid, error)
	GetBidHistory(lotID string) ([]model.Bid, error)
	GetPhase(lotID string, at time.Time) (model.Phase, model.Lot, error)
	GetLot(lotID string) (model.Lot, error)
	ListLots() ([]model.Lot, error)
	Subscribe(lotID string) (<-chan model.HighestBidEvent, func(), error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:      bid.BidID,
		LotID:      bid.LotID,
		BidderID:   bid.BidderID,
		Amount:     bid.Amount,
		Seq:        bid.Seq,
		Origin:     string(bid.Origin),
		PrevAmount: bid.PrevAmount,
		PlacedAt:   bid.PlacedAt.UTC().Format(time.RFC3339),
	}
}

// RegisterLotHandler handles POST /lots
func (h *BiddingHandler) RegisterLotHandler(c *gin.Context) {
	var req helpers.RegisterLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterLotHandler", err)
		return
	}

	lot := model.Lot{
		LotID:         req.LotID,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	}

	if err := h.service.RegisterLot(lot); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterLotHandler: failed to register lot", map[string]any{
			"lot_id": req.LotID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "lot registered successfully")
	helpers.LogSuccess("RegisterLotHandler", "lot registered successfully", map[string]any{
		"lot_id":         req.LotID,
		"starting_price": req.StartingPrice,
	})
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.SubmitManualBid(c.Request.Context(), req.LotID, req.BidderID, req.Amount, time.Time{})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		// Rejections are expected outcomes; only real faults get error level.
		if errors.Is(err, auctionerrors.ErrInvariantViolation) {
			utils.Error("PlaceBidHandler: ledger fault", map[string]any{
				"lot_id":    req.LotID,
				"bidder_id": req.BidderID,
				"error":     err.Error(),
			})
		} else {
			utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
				"lot_id":    req.LotID,
				"bidder_id": req.BidderID,
				"amount":    req.Amount,
				"error":     err.Error(),
			})
		}
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"bid_id":    bid.BidID,
		"lot_id":    bid.LotID,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
		"seq":       bid.Seq,
	})
}

// SetAutoBidHandler handles PUT /lots/:lot_id/autobid/:bidder_id
func (h *BiddingHandler) SetAutoBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bidderID := c.Param("bidder_id")

	var req helpers.SetAutoBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAutoBidHandler", err)
		return
	}

	policy, err := h.service.SetAutoBidPolicy(c.Request.Context(), lotID, bidderID, req.Increment, req.Ceiling)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetAutoBidHandler: policy rejected", map[string]any{
			"lot_id":    lotID,
			"bidder_id": bidderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, policy, "auto-bid policy set")
	helpers.LogSuccess("SetAutoBidHandler", "auto-bid policy set", map[string]any{
		"lot_id":    lotID,
		"bidder_id": bidderID,
		"increment": req.Increment,
		"ceiling":   req.Ceiling,
	})
}

// ClearAutoBidHandler handles DELETE /lots/:lot_id/autobid/:bidder_id
func (h *BiddingHandler) ClearAutoBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bidderID := c.Param("bidder_id")

	if err := h.service.ClearAutoBidPolicy(c.Request.Context(), lotID, bidderID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClearAutoBidHandler: clear failed", map[string]any{
			"lot_id":    lotID,
			"bidder_id": bidderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auto-bid policy cleared")
	helpers.LogSuccess("ClearAutoBidHandler", "auto-bid policy cleared", map[string]any{
		"lot_id":    lotID,
		"bidder_id": bidderID,
	})
}

// GetAutoBidHandler handles GET /lots/:lot_id/autobid/:bidder_id
func (h *BiddingHandler) GetAutoBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bidderID := c.Param("bidder_id")

	policy, err := h.service.GetAutoBidPolicy(lotID, bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, policy, "auto-bid policy retrieved")
}

// GetWinningBidHandler handles GET /lots/:lot_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bid, err := h.service.GetCurrentHighest(lotID)
	if err != nil {
		// A lot with no accepted bids has no current highest; that is not a
		// highest bid equal to the starting price.
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bids recorded for lot")
			utils.Info("GetWinningBidHandler: no bids yet", map[string]any{"lot_id": lotID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: lookup failed", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":    bid.BidID,
		"lot_id":    bid.LotID,
		"bidder_id": bid.BidderID,
		"amount":    bid.Amount,
	})
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *BiddingHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bids, err := h.service.GetBidHistory(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByLotHandler: error retrieving bids", map[string]any{"lot_id": lotID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(bids),
	})
}

// GetPhaseHandler handles GET /lots/:lot_id/phase
func (h *BiddingHandler) GetPhaseHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	phase, lot, err := h.service.GetPhase(lotID, time.Time{})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	now := time.Now().UTC()
	resp := helpers.PhaseResponse{
		LotID:            lotID,
		Phase:            string(phase),
		StartingPrice:    lot.StartingPrice,
		StartsAt:         lot.StartsAt.Format(time.RFC3339),
		EndsAt:           lot.EndsAt.Format(time.RFC3339),
		RemainingSeconds: int64(clock.Remaining(now, lot.EndsAt) / time.Second),
		UntilStartSecs:   int64(clock.UntilStart(now, lot.StartsAt) / time.Second),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "phase retrieved successfully")
}

// GetLotHandler handles GET /lots/:lot_id
func (h *BiddingHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")

	lot, err := h.service.GetLot(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot retrieved successfully")
}

// ListLotsHandler handles GET /lots
func (h *BiddingHandler) ListLotsHandler(c *gin.Context) {
	lots, err := h.service.ListLots()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	if lots == nil {
		lots = []model.Lot{}
	}

	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
}
