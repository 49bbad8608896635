package handler

import (
	"fmt"
	"net/http"
	"time"

	model "vehicle-auction/internal/models"
	"vehicle-auction/services/auction/helpers"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	PlaceBid(vehicleID, userID string, amount decimal.Decimal) (model.Bid, error)
	ListVehicles() []model.Vehicle
	ListActiveVehicles() []model.Vehicle
	GetVehicle(vehicleID string) (model.Vehicle, error)
	RegisterUser(name, email, password string) (model.User, error)
	AuthenticateUser(email, password string) (model.User, error)
	GetUser(userID string) (model.User, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListVehiclesHandler handles GET /vehicles
func (h *AuctionHandler) ListVehiclesHandler(c *gin.Context) {
	vehicles := h.service.ListVehicles()
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	utils.JSONResponse(c, http.StatusOK, vehicles, "vehicles retrieved successfully")
	helpers.LogSuccess("ListVehiclesHandler", "vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
	})
}

// ListActiveVehiclesHandler handles GET /vehicles/active
func (h *AuctionHandler) ListActiveVehiclesHandler(c *gin.Context) {
	vehicles := h.service.ListActiveVehicles()
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	utils.JSONResponse(c, http.StatusOK, vehicles, "active vehicles retrieved successfully")
	helpers.LogSuccess("ListActiveVehiclesHandler", "active vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
	})
}

// GetVehicleHandler handles GET /vehicles/:vehicle_id
func (h *AuctionHandler) GetVehicleHandler(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	vehicle, err := h.service.GetVehicle(vehicleID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetVehicleHandler: error retrieving vehicle", map[string]any{"vehicle_id": vehicleID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, vehicle, "vehicle retrieved successfully")
	helpers.LogSuccess("GetVehicleHandler", "vehicle retrieved successfully", map[string]any{
		"vehicle_id": vehicle.VehicleID,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.VehicleID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"vehicle_id": req.VehicleID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		VehicleID: bid.VehicleID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"vehicle_id": bid.VehicleID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.String(),
	})
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	user, err := h.service.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterUserHandler: registration failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, userResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterUserHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// LoginHandler handles POST /login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: authentication failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, userResponse(user), "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, userResponse(user), "user retrieved successfully")
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{
		"user_id": user.UserID,
	})
}

func userResponse(u model.User) helpers.UserResponse {
	return helpers.UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
