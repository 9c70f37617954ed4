package service

import (
	"context"
	"errors"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	depConnected    = "connected"
	depDisconnected = "disconnected"
	depDisabled     = "disabled"
)

var errNoStore = errors.New("store not configured")

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	UptimeSec int       `json:"uptime_sec"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthService struct {
	store     Pinger
	cache     ShareCache
	startedAt time.Time
}

func NewHealthService(store Pinger, cache ShareCache) *HealthService {
	return &HealthService{store: store, cache: cache, startedAt: time.Now()}
}

func (s *HealthService) PingStore(ctx context.Context) error {
	if s.store == nil {
		return errNoStore
	}
	return s.store.PingContext(ctx)
}

// Check reports the store and cache status. Only the store decides overall health;
// the cache is optional and a broken cache degrades to direct store reads.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	r := HealthReport{
		Status:    StatusHealthy,
		Database:  depConnected,
		Cache:     depDisabled,
		UptimeSec: int(time.Since(s.startedAt).Seconds()),
		Timestamp: time.Now().UTC(),
	}
	if err := s.PingStore(ctx); err != nil {
		r.Status = StatusUnhealthy
		r.Database = depDisconnected
	}
	if s.cache != nil {
		r.Cache = depConnected
		if err := s.cache.Ping(ctx); err != nil {
			r.Cache = depDisconnected
		}
	}
	return r
}
