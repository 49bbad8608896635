package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"
)

// VehicleStore defines the vehicle catalog and bid application interface
type VehicleStore interface {
	ListVehicles() []model.Vehicle
	ListActiveVehicles(now time.Time) []model.Vehicle
	GetVehicle(vehicleID string) (model.Vehicle, error)
	ApplyBid(bid model.Bid, now time.Time) (model.Vehicle, error)
}

// vehicleRecord pairs a vehicle with its own lock so that bids on one
// vehicle never serialize bids on another.
type vehicleRecord struct {
	mu      sync.Mutex
	vehicle model.Vehicle
}

// MemoryVehicleRepo is a concurrency-safe in-memory implementation of VehicleStore
type MemoryVehicleRepo struct {
	mu       sync.RWMutex // guards the map itself, not the records
	vehicles map[string]*vehicleRecord
}

// NewMemoryVehicleRepo creates a new in-memory vehicle repository instance
func NewMemoryVehicleRepo() *MemoryVehicleRepo {
	return &MemoryVehicleRepo{
		vehicles: make(map[string]*vehicleRecord),
	}
}

// AddVehicle registers a vehicle in the catalog. CurrentBid starts at the
// starting price when unset. Used for seeding at startup and in tests.
func (r *MemoryVehicleRepo) AddVehicle(v model.Vehicle) {
	if v.CurrentBid.IsZero() {
		v.CurrentBid = v.StartingPrice
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[v.VehicleID] = &vehicleRecord{vehicle: v.Snapshot()}
}

// ListVehicles returns snapshots of all vehicles ordered by id
func (r *MemoryVehicleRepo) ListVehicles() []model.Vehicle {
	return r.collect(func(model.Vehicle) bool { return true })
}

// ListActiveVehicles returns snapshots of vehicles whose auction end time
// is strictly after now, evaluated at call time
func (r *MemoryVehicleRepo) ListActiveVehicles(now time.Time) []model.Vehicle {
	return r.collect(func(v model.Vehicle) bool { return v.Active(now) })
}

func (r *MemoryVehicleRepo) collect(keep func(model.Vehicle) bool) []model.Vehicle {
	r.mu.RLock()
	records := make([]*vehicleRecord, 0, len(r.vehicles))
	for _, rec := range r.vehicles {
		records = append(records, rec)
	}
	r.mu.RUnlock()

	out := make([]model.Vehicle, 0, len(records))
	for _, rec := range records {
		rec.mu.Lock()
		v := rec.vehicle.Snapshot()
		rec.mu.Unlock()
		if keep(v) {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].VehicleID < out[j].VehicleID })
	return out
}

// GetVehicle returns a snapshot of a single vehicle
func (r *MemoryVehicleRepo) GetVehicle(vehicleID string) (model.Vehicle, error) {
	rec, err := r.record(vehicleID)
	if err != nil {
		return model.Vehicle{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.vehicle.Snapshot(), nil
}

// ApplyBid atomically validates and records a bid against a vehicle.
// The liveness and amount checks, the history append and the current-bid
// update all happen under the vehicle's lock, so two bids racing on the
// same vehicle are serialized and the loser of an equal-amount race fails
// the strictly-greater check.
func (r *MemoryVehicleRepo) ApplyBid(bid model.Bid, now time.Time) (model.Vehicle, error) {
	rec, err := r.record(bid.VehicleID)
	if err != nil {
		return model.Vehicle{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	v := &rec.vehicle
	if !v.Active(now) {
		return model.Vehicle{}, fmt.Errorf("apply bid for vehicle %s: %w", bid.VehicleID, auctionerrors.ErrAuctionEnded)
	}
	if !bid.Amount.GreaterThan(v.CurrentBid) {
		return model.Vehicle{}, fmt.Errorf("apply bid for vehicle %s: current bid is %s: %w",
			bid.VehicleID, v.CurrentBid.String(), auctionerrors.ErrBidTooLow)
	}

	v.BidHistory = append(v.BidHistory, bid)
	v.CurrentBid = bid.Amount
	v.CurrentBidderID = bid.UserID

	return v.Snapshot(), nil
}

func (r *MemoryVehicleRepo) record(vehicleID string) (*vehicleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.vehicles[vehicleID]
	if !ok {
		return nil, fmt.Errorf("lookup vehicle %s: %w", vehicleID, auctionerrors.ErrVehicleNotFound)
	}
	return rec, nil
}
