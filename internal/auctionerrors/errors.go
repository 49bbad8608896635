package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAuctionEnded       = errors.New("auction has ended")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
