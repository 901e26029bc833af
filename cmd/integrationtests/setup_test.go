package integrationtests

import (
	bidding "agri-auction/internal/biddingService"
	model "agri-auction/internal/models"
	"agri-auction/internal/repository"
	"agri-auction/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory catalog for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := repository.NewMemoryCatalog()
	service := bidding.NewBiddingService(catalog)
	return server.SetupRouter(service)
}

// SetupTestRouterWithLots initializes the router and registers the lots.
func SetupTestRouterWithLots(t *testing.T, lots ...model.Lot) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repository.NewMemoryCatalog()
	service := bidding.NewBiddingService(catalog)
	for _, lot := range lots {
		if err := service.RegisterLot(lot); err != nil {
			t.Fatalf("failed to register lot %s: %v", lot.LotID, err)
		}
	}
	return server.SetupRouter(service)
}

// openLot returns a lot whose bidding window is currently active.
func openLot(lotID string, startingPrice int64) model.Lot {
	now := time.Now().UTC()
	return model.Lot{
		LotID:         lotID,
		Title:         "Integration lot " + lotID,
		Description:   "integration test produce lot",
		StartingPrice: startingPrice,
		StartsAt:      now.Add(-time.Hour),
		EndsAt:        now.Add(time.Hour),
	}
}

// closedLot returns a lot whose bidding window already ended.
func closedLot(lotID string, startingPrice int64) model.Lot {
	now := time.Now().UTC()
	lot := openLot(lotID, startingPrice)
	lot.StartsAt = now.Add(-2 * time.Hour)
	lot.EndsAt = now.Add(-time.Hour)
	return lot
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the data envelope from a parsed response.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
