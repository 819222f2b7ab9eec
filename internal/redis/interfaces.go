package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for per-booking locking.
type LockStoreInterface interface {
	AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error)
	ReleaseBookingLock(ctx context.Context, bookingID string) error
}

// CacheStoreInterface defines the interface for car caching.
type CacheStoreInterface interface {
	GetCar(ctx context.Context, carID string) (*CachedCar, error)
	SetCar(ctx context.Context, car *CachedCar) error
	InvalidateCar(ctx context.Context, carID string) error
}

// TrackingStoreInterface defines the interface for live trip telemetry.
type TrackingStoreInterface interface {
	SetTelemetry(ctx context.Context, bookingID string, t *Telemetry) error
	GetTelemetry(ctx context.Context, bookingID string) (*Telemetry, error)
	SetKillSwitch(ctx context.Context, bookingID string, on bool) error
	GetKillSwitch(ctx context.Context, bookingID string) (bool, error)
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface     = (*LockStore)(nil)
	_ CacheStoreInterface    = (*CacheStore)(nil)
	_ TrackingStoreInterface = (*TrackingStore)(nil)
)
