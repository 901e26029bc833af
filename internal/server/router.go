package server

import (
	bidding "agri-auction/internal/biddingService"
	handler "agri-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	lots := router.Group("/lots")
	{
		lots.POST("", biddingHandler.RegisterLotHandler)
		lots.GET("", biddingHandler.ListLotsHandler)
		lots.GET("/:lot_id", biddingHandler.GetLotHandler)
		lots.GET("/:lot_id/bids", biddingHandler.GetBidsByLotHandler)
		lots.GET("/:lot_id/winning", biddingHandler.GetWinningBidHandler)
		lots.GET("/:lot_id/phase", biddingHandler.GetPhaseHandler)
		lots.GET("/:lot_id/stream", biddingHandler.StreamHandler)
		lots.PUT("/:lot_id/autobid/:bidder_id", biddingHandler.SetAutoBidHandler)
		lots.GET("/:lot_id/autobid/:bidder_id", biddingHandler.GetAutoBidHandler)
		lots.DELETE("/:lot_id/autobid/:bidder_id", biddingHandler.ClearAutoBidHandler)
	}

	return router
}
