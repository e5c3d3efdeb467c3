// Package inventory holds the dealership catalog behind a repository seam so
// a durable implementation can be substituted without touching callers.
package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/autovoice/voice-showroom/internal/apperr"
	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/pkg/metrics"
)

// Query is a conjunction of optional predicates. A nil/empty field imposes no
// constraint. Make, Color and FuelType match by case-insensitive substring;
// price bounds are inclusive; Year is exact.
type Query struct {
	Make     string
	MinPrice *int
	MaxPrice *int
	Year     *int
	Color    string
	FuelType string
}

// Store is the read capability set over the catalog.
type Store interface {
	// GetAll returns every record. Order is not part of the contract.
	GetAll(ctx context.Context) ([]model.Car, error)
	// GetByID returns the record with the given identifier, or a not-found error.
	GetByID(ctx context.Context, id string) (model.Car, error)
	// ByMake returns records whose make equals make, case-insensitively.
	ByMake(ctx context.Context, make string) ([]model.Car, error)
	// Search returns every record satisfying all supplied predicates.
	// An empty result set is valid, not an error.
	Search(ctx context.Context, q Query) ([]model.Car, error)
}

// MemStore is an in-memory Store seeded once at construction. The catalog is
// read-only in normal operation; the mutex exists for future mutation.
type MemStore struct {
	mu   sync.RWMutex
	cars map[string]model.Car
}

// NewMemStore creates a store seeded with the sample catalog.
func NewMemStore() *MemStore {
	s := &MemStore{cars: make(map[string]model.Car)}
	for _, car := range seedCars() {
		s.cars[car.ID] = car
	}
	return s
}

func (s *MemStore) GetAll(ctx context.Context) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := make([]model.Car, 0, len(s.cars))
	for _, car := range s.cars {
		cars = append(cars, car)
	}
	return cars, nil
}

func (s *MemStore) GetByID(ctx context.Context, id string) (model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[id]
	if !ok {
		return model.Car{}, apperr.E(apperr.KindNotFound, "car not found", nil)
	}
	return car, nil
}

func (s *MemStore) ByMake(ctx context.Context, make string) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cars []model.Car
	for _, car := range s.cars {
		if strings.EqualFold(car.Make, make) {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func (s *MemStore) Search(ctx context.Context, q Query) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics.InventorySearchesTotal.Inc()

	cars := make([]model.Car, 0)
	for _, car := range s.cars {
		if matches(car, q) {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func matches(car model.Car, q Query) bool {
	if q.Make != "" && !containsFold(car.Make, q.Make) {
		return false
	}
	if q.MinPrice != nil && car.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && car.Price > *q.MaxPrice {
		return false
	}
	if q.Year != nil && car.Year != *q.Year {
		return false
	}
	if q.Color != "" && !containsFold(car.Color, q.Color) {
		return false
	}
	if q.FuelType != "" && !containsFold(car.FuelType, q.FuelType) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
