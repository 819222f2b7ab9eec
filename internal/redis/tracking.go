package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Telemetry is the most recent GPS fix for an active booking.
type Telemetry struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	SpeedKPH   float64   `json:"speed_kph"`
	Heading    float64   `json:"heading"`
	IgnitionOn bool      `json:"ignition_on"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TelemetryTTL expires stale fixes; the tracker treats an expired key
// as "no signal".
const TelemetryTTL = 5 * time.Minute

// killSwitchTTL keeps the flag alive for the longest plausible trip.
const killSwitchTTL = 24 * time.Hour

// TrackingStore keeps live trip telemetry and the kill-switch flag in Redis.
type TrackingStore struct {
	client *redis.Client
}

// NewTrackingStore creates a new TrackingStore.
func NewTrackingStore(client *redis.Client) *TrackingStore {
	return &TrackingStore{client: client}
}

// SetTelemetry stores the latest fix for a booking.
func (s *TrackingStore) SetTelemetry(ctx context.Context, bookingID string, t *Telemetry) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, telemetryKey(bookingID), data, TelemetryTTL).Err()
}

// GetTelemetry retrieves the latest fix for a booking. Returns nil when
// no fix has been reported or the last one expired.
func (s *TrackingStore) GetTelemetry(ctx context.Context, bookingID string) (*Telemetry, error) {
	data, err := s.client.Get(ctx, telemetryKey(bookingID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var t Telemetry
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SetKillSwitch flips the remote engine-disable flag for a booking.
func (s *TrackingStore) SetKillSwitch(ctx context.Context, bookingID string, on bool) error {
	key := killSwitchKey(bookingID)
	if !on {
		return s.client.Del(ctx, key).Err()
	}
	return s.client.Set(ctx, key, "1", killSwitchTTL).Err()
}

// GetKillSwitch reports whether the kill switch is active for a booking.
func (s *TrackingStore) GetKillSwitch(ctx context.Context, bookingID string) (bool, error) {
	n, err := s.client.Exists(ctx, killSwitchKey(bookingID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func telemetryKey(bookingID string) string {
	return fmt.Sprintf("telemetry:booking:%s", bookingID)
}

func killSwitchKey(bookingID string) string {
	return fmt.Sprintf("killswitch:booking:%s", bookingID)
}
