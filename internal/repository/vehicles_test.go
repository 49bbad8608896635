package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a new Vehicle
func newVehicle(vehicleID, make string, startingPrice int64, endsIn time.Duration) model.Vehicle {
	return model.Vehicle{
		VehicleID:      vehicleID,
		Make:           make,
		Model:          fmt.Sprintf("%s model", make),
		Year:           2023,
		StartingPrice:  decimal.NewFromInt(startingPrice),
		AuctionEndTime: time.Now().UTC().Add(endsIn),
	}
}

// Helper to create a new Bid
func newBid(bidID, vehicleID, userID string, amount int64) model.Bid {
	return model.Bid{
		BidID:     bidID,
		VehicleID: vehicleID,
		UserID:    userID,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Now().UTC(),
	}
}

// Test ApplyBid
func TestMemoryVehicleRepo_ApplyBid(t *testing.T) {
	t.Parallel() // Allow running in parallel with other test functions

	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name      string
		bid       model.Bid
		wantError error
	}{
		{name: "valid_first_bid", bid: newBid("bid1", "vehicle1", "user1", 1500), wantError: nil},
		{name: "vehicle_not_found", bid: newBid("bid2", "vehicleX", "user1", 2000), wantError: auctionerrors.ErrVehicleNotFound},
		{name: "below_starting_price", bid: newBid("bid3", "vehicle2", "user1", 900), wantError: auctionerrors.ErrBidTooLow},
		{name: "equal_to_current_bid", bid: newBid("bid4", "vehicle2", "user1", 1000), wantError: auctionerrors.ErrBidTooLow},
		{name: "auction_ended", bid: newBid("bid5", "vehicle3", "user1", 99999), wantError: auctionerrors.ErrAuctionEnded},
	}

	repo := NewMemoryVehicleRepo()
	repo.AddVehicle(newVehicle("vehicle1", "Toyota", 1000, time.Hour))
	repo.AddVehicle(newVehicle("vehicle2", "Honda", 1000, time.Hour))
	repo.AddVehicle(newVehicle("vehicle3", "Yamaha", 1000, -time.Minute)) // already ended

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			updated, err := repo.ApplyBid(tc.bid, now)
			if tc.wantError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantError), "expected error: %v, got: %v", tc.wantError, err)
				return
			}

			require.NoError(t, err)
			require.True(t, updated.CurrentBid.Equal(tc.bid.Amount))
			require.Equal(t, tc.bid.UserID, updated.CurrentBidderID)
			require.Contains(t, updated.BidHistory, tc.bid)
		})
	}

	// A rejected bid must leave the vehicle untouched
	t.Run("rejected_bid_leaves_state_unchanged", func(t *testing.T) {
		before, err := repo.GetVehicle("vehicle2")
		require.NoError(t, err)

		_, err = repo.ApplyBid(newBid("bid-low", "vehicle2", "user9", 100), now)
		require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow))

		after, err := repo.GetVehicle("vehicle2")
		require.NoError(t, err)
		require.True(t, before.CurrentBid.Equal(after.CurrentBid))
		require.Equal(t, before.CurrentBidderID, after.CurrentBidderID)
		require.Len(t, after.BidHistory, len(before.BidHistory))
	})

	// concurrency test: distinct amounts racing on one vehicle
	t.Run("concurrent_bids_distinct_amounts", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryVehicleRepo()
		repo.AddVehicle(newVehicle("vehicle1", "Toyota", 50, time.Hour))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "vehicle1", fmt.Sprintf("user-%d", i), int64(100+i))
				_, err := repo.ApplyBid(b, time.Now().UTC())
				// Losing a race yields ErrBidTooLow, nothing else
				if err != nil {
					require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow), "unexpected error: %v", err)
				}
			}()
		}

		wg.Wait()

		v, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)
		require.True(t, v.CurrentBid.Equal(decimal.NewFromInt(int64(100+concurrentCount-1))),
			"final bid should be the maximum submitted, got %s", v.CurrentBid)
		require.Equal(t, fmt.Sprintf("user-%d", concurrentCount-1), v.CurrentBidderID)

		// History must be monotonically increasing: every accepted bid beat all before it
		prev := v.StartingPrice
		for _, b := range v.BidHistory {
			require.True(t, b.Amount.GreaterThan(prev), "history not monotonic: %s after %s", b.Amount, prev)
			prev = b.Amount
		}
	})

	// concurrency test: equal amounts racing on one vehicle, exactly one wins
	t.Run("concurrent_bids_equal_amounts", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryVehicleRepo()
		repo.AddVehicle(newVehicle("vehicle1", "Toyota", 50, time.Hour))

		var wg sync.WaitGroup
		concurrentCount := 20
		results := make([]error, concurrentCount)

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "vehicle1", fmt.Sprintf("user-%d", i), 100)
				_, results[i] = repo.ApplyBid(b, time.Now().UTC())
			}()
		}

		wg.Wait()

		winners := 0
		for _, err := range results {
			if err == nil {
				winners++
			} else {
				require.True(t, errors.Is(err, auctionerrors.ErrBidTooLow))
			}
		}
		require.Equal(t, 1, winners, "exactly one equal-amount bid should win")

		v, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)
		require.Len(t, v.BidHistory, 1)
	})
}

// Test ListVehicles / ListActiveVehicles
func TestMemoryVehicleRepo_Listing(t *testing.T) {
	t.Parallel()

	repo := NewMemoryVehicleRepo()
	repo.AddVehicle(newVehicle("vehicle3", "Yamaha", 8000, 2*time.Hour))
	repo.AddVehicle(newVehicle("vehicle1", "Toyota", 15000, time.Hour))
	repo.AddVehicle(newVehicle("vehicle2", "Honda", 12000, -time.Minute)) // ended

	t.Run("list_all_sorted_by_id", func(t *testing.T) {
		all := repo.ListVehicles()
		require.Len(t, all, 3)
		require.Equal(t, "vehicle1", all[0].VehicleID)
		require.Equal(t, "vehicle2", all[1].VehicleID)
		require.Equal(t, "vehicle3", all[2].VehicleID)
	})

	t.Run("current_bid_starts_at_starting_price", func(t *testing.T) {
		v, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)
		require.True(t, v.CurrentBid.Equal(v.StartingPrice))
		require.Empty(t, v.CurrentBidderID)
	})

	t.Run("list_active_excludes_ended", func(t *testing.T) {
		active := repo.ListActiveVehicles(time.Now().UTC())
		require.Len(t, active, 2)
		for _, v := range active {
			require.NotEqual(t, "vehicle2", v.VehicleID)
		}
	})

	t.Run("list_active_is_evaluated_at_call_time", func(t *testing.T) {
		farFuture := time.Now().UTC().Add(48 * time.Hour)
		require.Empty(t, repo.ListActiveVehicles(farFuture))
	})

	t.Run("snapshots_do_not_alias_internal_state", func(t *testing.T) {
		_, err := repo.ApplyBid(newBid("bid1", "vehicle1", "user1", 16000), time.Now().UTC())
		require.NoError(t, err)

		snap, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)

		// Mutating the snapshot must not leak into the repo
		snap.BidHistory[0].UserID = "tampered"
		snap.CurrentBid = decimal.NewFromInt(1)

		fresh, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)
		require.Equal(t, "user1", fresh.BidHistory[0].UserID)
		require.True(t, fresh.CurrentBid.Equal(decimal.NewFromInt(16000)))
	})
}

// Test GetVehicle
func TestMemoryVehicleRepo_GetVehicle(t *testing.T) {
	t.Parallel()

	repo := NewMemoryVehicleRepo()
	repo.AddVehicle(newVehicle("vehicle1", "Toyota", 15000, time.Hour))

	t.Run("existing_vehicle", func(t *testing.T) {
		v, err := repo.GetVehicle("vehicle1")
		require.NoError(t, err)
		require.Equal(t, "Toyota", v.Make)
	})

	t.Run("missing_vehicle", func(t *testing.T) {
		_, err := repo.GetVehicle("nope")
		require.True(t, errors.Is(err, auctionerrors.ErrVehicleNotFound))
	})
}
