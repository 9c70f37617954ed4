package service

import (
	"context"
	"testing"
)

func TestHealthService_Check(t *testing.T) {
	cases := []struct {
		name       string
		store      Pinger
		cache      ShareCache
		wantStatus string
		wantDB     string
		wantCache  string
	}{
		{"all good, no cache", stubPinger{}, nil, StatusHealthy, depConnected, depDisabled},
		{"all good with cache", stubPinger{}, newMemCache(), StatusHealthy, depConnected, depConnected},
		{"store down", stubPinger{err: errBoom}, nil, StatusUnhealthy, depDisconnected, depDisabled},
		{"cache down only", stubPinger{}, &memCache{pingErr: errBoom}, StatusHealthy, depConnected, depDisconnected},
		{"no store configured", nil, nil, StatusUnhealthy, depDisconnected, depDisabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewHealthService(tc.store, tc.cache).Check(context.Background())
			if got.Status != tc.wantStatus || got.Database != tc.wantDB || got.Cache != tc.wantCache {
				t.Fatalf("got %+v", got)
			}
		})
	}
}
