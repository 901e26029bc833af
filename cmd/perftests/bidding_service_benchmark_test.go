package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	bidding "agri-auction/internal/biddingService"
	model "agri-auction/internal/models"
	repository "agri-auction/internal/repository"
)

func benchLot(lotID string, startingPrice int64) model.Lot {
	now := time.Now().UTC()
	return model.Lot{
		LotID:         lotID,
		Title:         "Benchmark lot",
		StartingPrice: startingPrice,
		StartsAt:      now.Add(-time.Hour),
		EndsAt:        now.Add(24 * time.Hour),
	}
}

// Benchmark 1: SubmitManualBid - Isolated Lots (Low Contention - Micro Benchmark)
func Benchmark_SubmitManualBid_Isolated(b *testing.B) {
	svc := bidding.NewBiddingService(repository.NewMemoryCatalog())
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		if err := svc.RegisterLot(benchLot(fmt.Sprintf("lot_%d", i), 50)); err != nil {
			b.Fatalf("failed to register lot: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lotID := fmt.Sprintf("lot_%d", i)
		bidderID := fmt.Sprintf("bidder_%d", i)
		if _, err := svc.SubmitManualBid(ctx, lotID, bidderID, 100, time.Time{}); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: SubmitManualBid - Shared Lot (High Contention - Concurrency Benchmark)
func Benchmark_SubmitManualBid_ConcurrentSharedLot(b *testing.B) {
	svc := bidding.NewBiddingService(repository.NewMemoryCatalog())
	ctx := context.Background()

	if err := svc.RegisterLot(benchLot("shared_lot_1", 50)); err != nil {
		b.Fatalf("failed to register lot: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50
	var worker int64

	b.RunParallel(func(pb *testing.PB) {
		id := atomic.AddInt64(&worker, 1)
		bidderID := fmt.Sprintf("bidder_parallel_%d", id)
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, 1)
			// Rejections under contention are expected; the benchmark
			// measures the serialized submit path either way.
			_, _ = svc.SubmitManualBid(ctx, "shared_lot_1", bidderID, nextBid, time.Time{})
		}
	})
}

// Benchmark 3: Submit with an armed auto-bid agent countering every bid
func Benchmark_SubmitManualBid_WithAutoBidCounter(b *testing.B) {
	svc := bidding.NewBiddingService(repository.NewMemoryCatalog())
	ctx := context.Background()

	if err := svc.RegisterLot(benchLot("auto_lot", 1)); err != nil {
		b.Fatalf("failed to register lot: %v", err)
	}
	if _, err := svc.SetAutoBidPolicy(ctx, "auto_lot", "agent_bidder", 1, 0); err != nil {
		b.Fatalf("failed to set policy: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	amount := int64(1)
	for i := 0; i < b.N; i++ {
		// Each accepted manual bid triggers one auto-bid counter, so the
		// price moves by increment+manual step per iteration.
		amount += 2
		if _, err := svc.SubmitManualBid(ctx, "auto_lot", "manual_bidder", amount, time.Time{}); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 4: GetCurrentHighest - Single-Threaded (Low Contention)
func Benchmark_GetCurrentHighest_SingleThreaded(b *testing.B) {
	svc := bidding.NewBiddingService(repository.NewMemoryCatalog())
	ctx := context.Background()

	if err := svc.RegisterLot(benchLot("lot_read", 50)); err != nil {
		b.Fatalf("failed to register lot: %v", err)
	}
	if _, err := svc.SubmitManualBid(ctx, "lot_read", "bidder1", 100, time.Time{}); err != nil {
		b.Fatalf("failed to place bid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetCurrentHighest("lot_read"); err != nil {
			b.Fatalf("failed to get current highest: %v", err)
		}
	}
}

// Benchmark 5: GetBidHistory over a deep ledger
func Benchmark_GetBidHistory(b *testing.B) {
	svc := bidding.NewBiddingService(repository.NewMemoryCatalog())
	ctx := context.Background()

	if err := svc.RegisterLot(benchLot("lot_history", 1)); err != nil {
		b.Fatalf("failed to register lot: %v", err)
	}
	for i := int64(1); i <= 500; i++ {
		bidderID := fmt.Sprintf("bidder_%d", i%7)
		if _, err := svc.SubmitManualBid(ctx, "lot_history", bidderID, i*10, time.Time{}); err != nil {
			b.Fatalf("failed to seed history: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetBidHistory("lot_history"); err != nil {
			b.Fatalf("failed to get history: %v", err)
		}
	}
}
