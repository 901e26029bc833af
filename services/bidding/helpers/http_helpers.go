package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"agri-auction/internal/auctionerrors"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Submission and policy rejections are expected outcomes and map to 409; only
// a ledger invariant violation is a server fault.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, auctionerrors.ErrNoPolicy):
		return http.StatusNotFound, "no auto-bid policy"
	case errors.Is(err, auctionerrors.ErrLotExists):
		return http.StatusConflict, "lot already registered"
	case errors.Is(err, auctionerrors.ErrInvalidWindow):
		return http.StatusBadRequest, "invalid auction window"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid bid amount"
	case errors.Is(err, auctionerrors.ErrInvalidPolicy):
		return http.StatusBadRequest, "invalid auto-bid policy"
	case errors.Is(err, auctionerrors.ErrNotActive):
		return http.StatusConflict, "bidding is not active"
	case errors.Is(err, auctionerrors.ErrTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrBelowStartingPrice):
		return http.StatusConflict, "bid below starting price"
	case errors.Is(err, auctionerrors.ErrAlreadyHighest):
		return http.StatusConflict, "bidder already holds the highest bid"
	case errors.Is(err, auctionerrors.ErrCeilingTooLow):
		return http.StatusConflict, "auto-bid ceiling too low"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids recorded for lot"
	case errors.Is(err, auctionerrors.ErrSubmissionCancelled):
		return http.StatusRequestTimeout, "submission cancelled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
