package main

import (
	bidding "agri-auction/internal/biddingService"
	model "agri-auction/internal/models"
	"agri-auction/internal/repository"
	"agri-auction/internal/server"
	"fmt"
	"os"
	"time"
)

func main() {

	catalog := repository.NewMemoryCatalog()

	biddingSvc := bidding.NewBiddingService(catalog)

	prepopulateLots(biddingSvc)

	router := server.SetupRouter(biddingSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateLots registers sample produce lots with open auction windows
func prepopulateLots(svc *bidding.BiddingService) {
	now := time.Now().UTC()
	lots := []model.Lot{
		{LotID: "lot1", Title: "Heirloom tomatoes, 50kg", Description: "Greenhouse grown, grade A", StartingPrice: 10000, StartsAt: now, EndsAt: now.Add(24 * time.Hour)},
		{LotID: "lot2", Title: "Sweet corn, 200 ears", Description: "Picked this morning", StartingPrice: 20000, StartsAt: now, EndsAt: now.Add(12 * time.Hour)},
		{LotID: "lot3", Title: "Raw honey, 30 jars", Description: "Wildflower, unfiltered", StartingPrice: 15000, StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour)},
	}

	for _, lot := range lots {
		if err := svc.RegisterLot(lot); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register lot %s: %v\n", lot.LotID, err)
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
