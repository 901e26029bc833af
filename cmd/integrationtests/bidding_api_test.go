package integrationtests

import (
	"net/http"
	"testing"

	"agri-auction/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

// The full auction walk-through over HTTP: manual bids, an auto-bid policy
// countering them, a stale bid rejection, and the policy hitting its ceiling.
func TestBiddingAPI_AuctionScenario(t *testing.T) {
	router := SetupTestRouterWithLots(t, openLot("lot1", 1000))

	// X opens at 1100.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "lot1", BidderID: "bidderX", Amount: 1100})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(1), data(t, resp)["seq"])

	// Y arms auto-bid +50 up to 1300; the standing 1100 is countered at 1150.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/lots/lot1/autobid/bidderY",
		helpers.SetAutoBidRequest{Increment: 50, Ceiling: 1300})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1/winning", nil)
	require.Equal(t, http.StatusOK, w.Code)
	winning := data(t, resp)
	require.Equal(t, "bidderY", winning["bidder_id"])
	require.Equal(t, float64(1150), winning["amount"])
	require.Equal(t, "AUTO", winning["origin"])
	require.Equal(t, float64(2), winning["seq"])

	// X tries 1120, now stale.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "lot1", BidderID: "bidderX", Amount: 1120})
	require.Equal(t, http.StatusConflict, w.Code)

	// X raises to 1200; Y counters at 1250.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "lot1", BidderID: "bidderX", Amount: 1200})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1/winning", nil)
	require.Equal(t, float64(1250), data(t, resp)["amount"])
	require.Equal(t, float64(4), data(t, resp)["seq"])

	// X raises to 1260; Y's next counter would exceed the ceiling, so the
	// policy goes inert and X holds the final highest bid.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "lot1", BidderID: "bidderX", Amount: 1260})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1/winning", nil)
	winning = data(t, resp)
	require.Equal(t, "bidderX", winning["bidder_id"])
	require.Equal(t, float64(1260), winning["amount"])
	require.Equal(t, float64(5), winning["seq"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1/autobid/bidderY", nil)
	require.Equal(t, http.StatusOK, w.Code)
	policy := data(t, resp)
	require.Equal(t, false, policy["enabled"])
	require.Equal(t, "ceiling_reached", policy["disabled_reason"])

	// Audit trail: five accepted bids, strictly increasing.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 5)
	last := float64(0)
	for _, raw := range bids {
		amount := raw.(map[string]any)["amount"].(float64)
		require.Greater(t, amount, last)
		last = amount
	}
}

// Test lifecycle endpoints
func TestBiddingAPI_Lifecycle(t *testing.T) {
	router := SetupTestRouterWithLots(t, openLot("open", 1000), closedLot("closed", 1000))

	// Bidding on an ended window is rejected regardless of amount.
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "closed", BidderID: "bidderX", Amount: 999999})
	require.Equal(t, http.StatusConflict, w.Code)

	// Phase endpoint reflects both windows.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/open/phase", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ACTIVE", data(t, resp)["phase"])

	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/closed/phase", nil)
	require.Equal(t, "ENDED", data(t, resp)["phase"])
	require.Equal(t, float64(0), data(t, resp)["remaining_seconds"])

	// Below the starting price, before anything else happens.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "open", BidderID: "bidderX", Amount: 500})
	require.Equal(t, http.StatusConflict, w.Code)

	// No winning bid before the first accepted one.
	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/open/winning", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Unknown lot everywhere.
	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/ghost/winning", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "ghost", BidderID: "bidderX", Amount: 1100})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Test lot registration endpoint
func TestBiddingAPI_RegisterLot(t *testing.T) {
	router := SetupTestRouter()

	lot := openLot("lot1", 1000)
	req := helpers.RegisterLotRequest{
		LotID:         lot.LotID,
		Title:         lot.Title,
		Description:   lot.Description,
		StartingPrice: lot.StartingPrice,
		StartsAt:      lot.StartsAt,
		EndsAt:        lot.EndsAt,
	}

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/lots", req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration is rejected; the lot is immutable once created.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/lots", req)
	require.Equal(t, http.StatusConflict, w.Code)

	// The registered lot is listed, fetchable by id, and biddable.
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/lots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/lot1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, lot.Title, data(t, resp)["title"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/lots/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{LotID: "lot1", BidderID: "bidderX", Amount: 1000})
	require.Equal(t, http.StatusCreated, w.Code)

	// A window that never opens is rejected up front.
	bad := req
	bad.LotID = "lot-bad"
	bad.EndsAt = bad.StartsAt
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/lots", bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
