package repository

import (
	"fmt"
	"sync"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"
)

// UserStore defines the user registry interface
type UserStore interface {
	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
}

// MemoryUserRepo is a concurrency-safe in-memory implementation of UserStore
type MemoryUserRepo struct {
	mu      sync.RWMutex
	users   map[string]model.User // key: userID
	byEmail map[string]string     // key: email -> value: userID, exact match
}

// NewMemoryUserRepo creates a new in-memory user repository instance
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

// CreateUser inserts a new user. The email uniqueness check and the insert
// run under one write lock, so of two concurrent registrations for the same
// email exactly one succeeds.
func (r *MemoryUserRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
	}

	r.users[user.UserID] = user
	r.byEmail[user.Email] = user.UserID
	return nil
}

// GetUser returns the user with the given id
func (r *MemoryUserRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("lookup user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *MemoryUserRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("lookup user by email: %w", auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}
