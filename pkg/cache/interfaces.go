package cache

import (
	"time"

	"workshop-backend/internal/models"
)

// CacheManager defines the interface for caching vehicle reads
type CacheManager interface {
	GetVehicle(vehicleID string) (*models.Vehicle, error)
	SetVehicle(vehicleID string, vehicle *models.Vehicle, ttl time.Duration) error
	InvalidateVehicle(vehicleID string) error

	GetVehicleList(key string) ([]*models.Vehicle, error)
	SetVehicleList(key string, vehicles []*models.Vehicle, ttl time.Duration) error
	InvalidateVehicleLists() error

	Close() error
}
