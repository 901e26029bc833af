package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"agri-auction/internal/auctionerrors"
	model "agri-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Lot
func newLot(lotID, title string, startingPrice int64) model.Lot {
	now := time.Now().UTC()
	return model.Lot{
		LotID:         lotID,
		Title:         title,
		Description:   fmt.Sprintf("%s description", title),
		StartingPrice: startingPrice,
		StartsAt:      now,
		EndsAt:        now.Add(time.Hour),
	}
}

// Test AddLot
func TestMemoryCatalog_AddLot(t *testing.T) {
	t.Parallel()

	catalog := NewMemoryCatalog()

	require.NoError(t, catalog.AddLot(newLot("lot1", "Lot 1", 5000)))

	// Lots are immutable once created; re-adding the same id is rejected.
	err := catalog.AddLot(newLot("lot1", "Lot 1 again", 9000))
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrLotExists))

	stored, err := catalog.GetLot("lot1")
	require.NoError(t, err)
	require.Equal(t, "Lot 1", stored.Title)
	require.Equal(t, int64(5000), stored.StartingPrice)
}

// Test GetLot
func TestMemoryCatalog_GetLot(t *testing.T) {
	t.Parallel()

	catalog := NewMemoryCatalog()
	require.NoError(t, catalog.AddLot(newLot("lot1", "Lot 1", 5000)))

	tests := []struct {
		name      string
		lotID     string
		wantError bool
	}{
		{name: "existing_lot", lotID: "lot1", wantError: false},
		{name: "missing_lot", lotID: "lotX", wantError: true},
		{name: "empty_id", lotID: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lot, err := catalog.GetLot(tc.lotID)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrLotNotFound))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.lotID, lot.LotID)
			}
		})
	}
}

// Test ListLots
func TestMemoryCatalog_ListLots(t *testing.T) {
	t.Parallel()

	catalog := NewMemoryCatalog()

	lots, err := catalog.ListLots()
	require.NoError(t, err)
	require.Empty(t, lots)

	for i := 1; i <= 3; i++ {
		require.NoError(t, catalog.AddLot(newLot(fmt.Sprintf("lot%d", i), fmt.Sprintf("Lot %d", i), int64(i*1000))))
	}

	lots, err = catalog.ListLots()
	require.NoError(t, err)
	require.Len(t, lots, 3)
}

// Concurrent access must be safe
func TestMemoryCatalog_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	catalog := NewMemoryCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = catalog.AddLot(newLot(fmt.Sprintf("lot%d", n), "Lot", 1000))
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _ = catalog.GetLot(fmt.Sprintf("lot%d", n))
			_, _ = catalog.ListLots()
		}(i)
	}
	wg.Wait()

	lots, err := catalog.ListLots()
	require.NoError(t, err)
	require.Len(t, lots, 50)
}
