package auction

import (
	"errors"
	"fmt"
	"time"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/auth"
	"vehicle-auction/internal/models"
	"vehicle-auction/internal/repository"
	"vehicle-auction/utils"

	"github.com/shopspring/decimal"
)

// AuctionService wires the vehicle and user registries together and exposes
// the operations the transport layer consumes
type AuctionService struct {
	vehicles repository.VehicleStore
	users    repository.UserStore
	now      func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(vehicles repository.VehicleStore, users repository.UserStore) *AuctionService {
	return &AuctionService{
		vehicles: vehicles,
		users:    users,
		now:      time.Now,
	}
}

// PlaceBid validates and records a user's bid for a vehicle.
// Check order: vehicle exists, user exists, auction still open, amount
// strictly above the current bid. The last two are decided inside the
// store's ApplyBid, under the per-vehicle lock.
func (s *AuctionService) PlaceBid(vehicleID, userID string, amount decimal.Decimal) (models.Bid, error) {
	if vehicleID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing vehicleID or userID", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.vehicles.GetVehicle(vehicleID); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	if _, err := s.users.GetUser(userID); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		VehicleID: vehicleID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.vehicles.ApplyBid(bid, s.now()); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on vehicle %s by user %s: %w", vehicleID, userID, err)
	}

	return bid, nil
}

// ListVehicles returns the full vehicle catalog
func (s *AuctionService) ListVehicles() []models.Vehicle {
	return s.vehicles.ListVehicles()
}

// ListActiveVehicles returns vehicles whose auction has not yet ended
func (s *AuctionService) ListActiveVehicles() []models.Vehicle {
	return s.vehicles.ListActiveVehicles(s.now())
}

// GetVehicle returns a single vehicle by id
func (s *AuctionService) GetVehicle(vehicleID string) (models.Vehicle, error) {
	if vehicleID == "" {
		return models.Vehicle{}, fmt.Errorf("service: %w - empty vehicle ID", auctionerrors.ErrInvalidInput)
	}

	v, err := s.vehicles.GetVehicle(vehicleID)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("service: failed to get vehicle %s: %w", vehicleID, err)
	}
	return v, nil
}

// RegisterUser creates a new user with a freshly hashed password.
// The hash is computed before taking any lock; the store does the atomic
// email-uniqueness check on insert.
func (s *AuctionService) RegisterUser(name, email, password string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing name, email or password", auctionerrors.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	return scrub(user), nil
}

// AuthenticateUser checks the supplied credentials. An unknown email and a
// wrong password both come back as ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *AuctionService) AuthenticateUser(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing email or password", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
		}
		return models.User{}, fmt.Errorf("service: failed to authenticate: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to verify password: %w", err)
	}
	if !match {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}

	return scrub(user), nil
}

// GetUser returns a single user by id, without the password hash
func (s *AuctionService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return scrub(user), nil
}

// scrub strips the password hash from values handed back to callers.
func scrub(u models.User) models.User {
	u.PasswordHash = ""
	return u
}
