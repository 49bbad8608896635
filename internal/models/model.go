package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered bidder
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // argon2id verifier, never serialized
}

// Vehicle represents a vehicle up for auction
type Vehicle struct {
	VehicleID       string          `json:"vehicle_id"`
	Make            string          `json:"make"`
	Model           string          `json:"model"`
	Year            int             `json:"year"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	CurrentBid      decimal.Decimal `json:"current_bid"`
	CurrentBidderID string          `json:"current_bidder_id,omitempty"`
	AuctionEndTime  time.Time       `json:"auction_end_time"`
	BidHistory      []Bid           `json:"bid_history"`
}

// Bid represents a user's bid on a vehicle
type Bid struct {
	BidID     string          `json:"bid_id"`
	VehicleID string          `json:"vehicle_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Active reports whether the vehicle's auction is still open at the given time.
func (v Vehicle) Active(now time.Time) bool {
	return now.Before(v.AuctionEndTime)
}

// Snapshot returns a copy of the vehicle whose bid history does not alias
// the original slice, so callers can hold it without seeing later writes.
func (v Vehicle) Snapshot() Vehicle {
	out := v
	out.BidHistory = append([]Bid(nil), v.BidHistory...)
	return out
}
