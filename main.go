package main

import (
	"fmt"
	"os"
	"time"

	auction "vehicle-auction/internal/auctionService"
	"vehicle-auction/internal/config"
	model "vehicle-auction/internal/models"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/server"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	utils.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	vehicleRepo := repository.NewMemoryVehicleRepo()
	userRepo := repository.NewMemoryUserRepo()

	prepopulateVehicles(vehicleRepo)

	auctionSvc := auction.NewAuctionService(vehicleRepo, userRepo)

	router := server.SetupRouter(auctionSvc)

	fmt.Printf("Starting vehicle auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateVehicles seeds the in-memory catalog. Auction end times are
// fixed at creation relative to process start.
func prepopulateVehicles(repo *repository.MemoryVehicleRepo) {
	now := time.Now().UTC()

	vehicles := []model.Vehicle{
		{
			VehicleID:      utils.GenerateID(),
			Make:           "Toyota",
			Model:          "Camry",
			Year:           2023,
			StartingPrice:  decimal.NewFromInt(15000),
			AuctionEndTime: now.Add(1 * time.Hour),
		},
		{
			VehicleID:      utils.GenerateID(),
			Make:           "Honda",
			Model:          "Civic",
			Year:           2021,
			StartingPrice:  decimal.NewFromInt(12000),
			AuctionEndTime: now.Add(30 * time.Minute),
		},
		{
			VehicleID:      utils.GenerateID(),
			Make:           "Yamaha",
			Model:          "R1",
			Year:           2022,
			StartingPrice:  decimal.NewFromInt(8000),
			AuctionEndTime: now.Add(2 * time.Hour),
		},
	}

	for _, v := range vehicles {
		repo.AddVehicle(v)
	}
}
