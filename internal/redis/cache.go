package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// CarCacheTTL bounds staleness of car detail reads. Listings always hit
// the database; only by-ID lookups are cached.
const CarCacheTTL = 60 * time.Second

const carCachePrefix = "cache:car:"

// CachedCar is the cached projection of a car listing.
type CachedCar struct {
	ID           string   `json:"id"`
	HostID       string   `json:"host_id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Color        string   `json:"color"`
	PlateNumber  string   `json:"plate_number"`
	PricePerHour float64  `json:"price_per_hour"`
	PricePerDay  float64  `json:"price_per_day"`
	Seats        int      `json:"seats"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	DaysOfWeek   []int    `json:"days_of_week"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	IsAvailable  bool     `json:"is_available"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}

// GetCar retrieves a car from cache. Returns nil on a cache miss.
func (s *CacheStore) GetCar(ctx context.Context, carID string) (*CachedCar, error) {
	key := carCachePrefix + carID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var car CachedCar
	if err := json.Unmarshal(data, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// SetCar stores a car in cache.
func (s *CacheStore) SetCar(ctx context.Context, car *CachedCar) error {
	key := carCachePrefix + car.ID
	data, err := json.Marshal(car)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, CarCacheTTL).Err()
}

// InvalidateCar removes a car from cache.
func (s *CacheStore) InvalidateCar(ctx context.Context, carID string) error {
	key := carCachePrefix + carID
	return s.client.Del(ctx, key).Err()
}
