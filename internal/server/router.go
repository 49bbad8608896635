package server

import (
	auction "vehicle-auction/internal/auctionService"
	handler "vehicle-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", auctionHandler.ListVehiclesHandler)
		vehicles.GET("/active", auctionHandler.ListActiveVehiclesHandler)
		vehicles.GET("/:vehicle_id", auctionHandler.GetVehicleHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", auctionHandler.RegisterUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserHandler)
	}

	router.POST("/login", auctionHandler.LoginHandler)

	return router
}
