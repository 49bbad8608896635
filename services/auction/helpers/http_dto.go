package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs
type PlaceBidRequest struct {
	VehicleID string          `json:"vehicle_id" binding:"required"`
	UserID    string          `json:"user_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	VehicleID string          `json:"vehicle_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type UserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
