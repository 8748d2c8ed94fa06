// Package dashboard orchestrates the data the dashboard renders: backend
// fetches through a TTL cache, last-known-good fallback when the backend is
// down, and online-status tracking.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"airdash/internal/cache"
	"airdash/internal/location"
	"airdash/internal/metrics"
	"airdash/internal/providers/forecastapi"
	"airdash/internal/realtime"
	"airdash/internal/store"
	"airdash/internal/types"
)

// ErrOffline rejects manual refresh while the backend is unreachable
var ErrOffline = errors.New("dashboard: offline")

// DefaultHistoryDays bounds history requests when the caller gives no range
const DefaultHistoryDays = 7

type Service interface {
	Current(ctx context.Context, loc string) (*CurrentResult, error)
	Forecast(ctx context.Context, loc string) (*RowsResult, error)
	History(ctx context.Context, loc string, days int) (*RowsResult, error)
	GetOverview(ctx context.Context, loc string) (*Overview, error)
	Refresh(ctx context.Context, loc string) (*CurrentResult, error)
	Status() Status
	Online() bool
	SetOnline(online bool)
	StartProbe(ctx context.Context, interval time.Duration)
}

type dashboardService struct {
	provider  ForecastProvider
	cache     cache.Cache
	snapshots Snapshots
	realtime  RealtimeFeed
	locations location.Service
	ttl       time.Duration
	logger    *slog.Logger
	online    atomic.Bool
}

func NewService(
	provider ForecastProvider,
	responseCache cache.Cache,
	snapshots Snapshots,
	realtime RealtimeFeed,
	locations location.Service,
	ttl time.Duration,
	logger *slog.Logger,
) Service {
	s := &dashboardService{
		provider:  provider,
		cache:     responseCache,
		snapshots: snapshots,
		realtime:  realtime,
		locations: locations,
		ttl:       ttl,
		logger:    logger.With("component", "dashboard-service"),
	}
	s.online.Store(true)
	return s
}

// Retryable reports whether an upstream failure is worth retrying. Client
// mistakes (4xx) are not; everything else (5xx, network) is.
func Retryable(err error) bool {
	var apiErr *forecastapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}

func (s *dashboardService) Current(ctx context.Context, loc string) (*CurrentResult, error) {
	slug := types.Slugify(loc)
	key := "current:" + slug

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var current types.CurrentAQI
		if err := json.Unmarshal(cached, &current); err == nil {
			metrics.CacheHitsTotal.WithLabelValues(store.ResourceCurrent).Inc()
			return &CurrentResult{Current: &current, AsOf: current.Timestamp}, nil
		}
	}
	metrics.CacheMissesTotal.WithLabelValues(store.ResourceCurrent).Inc()

	current, err := s.provider.GetCurrent(ctx, slug)
	if err != nil {
		s.noteBackendFailure(err)
		return s.staleCurrent(ctx, slug, err)
	}
	s.noteBackendSuccess()

	s.cachePut(ctx, key, current)
	if err := s.snapshots.PutCurrent(ctx, slug, current); err != nil {
		s.logger.Warn("failed to store current snapshot", "location", slug, "error", err)
	}
	return &CurrentResult{Current: current, AsOf: current.Timestamp}, nil
}

func (s *dashboardService) Forecast(ctx context.Context, loc string) (*RowsResult, error) {
	return s.rows(ctx, loc, store.ResourceForecast, func(ctx context.Context, slug string) ([]types.ForecastRow, error) {
		return s.provider.GetForecast24h(ctx, slug)
	})
}

func (s *dashboardService) History(ctx context.Context, loc string, days int) (*RowsResult, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	return s.rows(ctx, loc, store.ResourceHistory, func(ctx context.Context, slug string) ([]types.ForecastRow, error) {
		return s.provider.GetHistory(ctx, slug, days)
	})
}

// cachedRows carries the fetch time with the cached payload so cache hits
// report the same freshness as the snapshot path
type cachedRows struct {
	Rows []types.ForecastRow `json:"rows"`
	AsOf time.Time           `json:"as_of"`
}

func (s *dashboardService) rows(
	ctx context.Context,
	loc, resource string,
	fetch func(ctx context.Context, slug string) ([]types.ForecastRow, error),
) (*RowsResult, error) {
	slug := types.Slugify(loc)
	key := resource + ":" + slug

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var entry cachedRows
		if err := json.Unmarshal(cached, &entry); err == nil {
			metrics.CacheHitsTotal.WithLabelValues(resource).Inc()
			return &RowsResult{Location: slug, Rows: entry.Rows, AsOf: entry.AsOf}, nil
		}
	}
	metrics.CacheMissesTotal.WithLabelValues(resource).Inc()

	rows, err := fetch(ctx, slug)
	if err != nil {
		s.noteBackendFailure(err)
		return s.staleRows(ctx, slug, resource, err)
	}
	s.noteBackendSuccess()

	fetchedAt := time.Now().UTC()
	s.cachePut(ctx, key, cachedRows{Rows: rows, AsOf: fetchedAt})
	if err := s.snapshots.PutRows(ctx, slug, resource, rows); err != nil {
		s.logger.Warn("failed to store rows snapshot", "location", slug, "resource", resource, "error", err)
	}
	return &RowsResult{Location: slug, Rows: rows, AsOf: fetchedAt}, nil
}

func (s *dashboardService) GetOverview(ctx context.Context, loc string) (*Overview, error) {
	resolved, err := s.locations.Resolve(loc)
	if err != nil {
		return nil, err
	}

	current, err := s.Current(ctx, resolved.Slug())
	if err != nil {
		return nil, err
	}
	forecast, err := s.Forecast(ctx, resolved.Slug())
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Location: *resolved,
		Current:  *current,
		Forecast: *forecast,
	}

	// Local time is display sugar; the overview is still useful without it
	if tz, err := s.locations.Timezone(*resolved); err == nil {
		overview.Timezone = tz
		if zone, err := time.LoadLocation(tz); err == nil {
			overview.LocalTime = time.Now().In(zone)
		}
	} else {
		s.logger.Warn("failed to resolve timezone", "location", resolved.Name, "error", err)
	}

	return overview, nil
}

// Refresh bypasses the cache and asks the realtime feed for an immediate
// update. Rejected while offline.
func (s *dashboardService) Refresh(ctx context.Context, loc string) (*CurrentResult, error) {
	if !s.Online() {
		return nil, ErrOffline
	}

	slug := types.Slugify(loc)
	for _, resource := range []string{store.ResourceCurrent, store.ResourceForecast, store.ResourceHistory} {
		if err := s.cache.Delete(ctx, resource+":"+slug); err != nil {
			s.logger.Warn("failed to invalidate cache", "key", resource+":"+slug, "error", err)
		}
	}

	if err := s.realtime.Refresh(); err != nil && !errors.Is(err, realtime.ErrNotConnected) {
		s.logger.Warn("realtime refresh failed", "location", slug, "error", err)
	}

	return s.Current(ctx, slug)
}

func (s *dashboardService) Status() Status {
	return Status{
		Online:            s.online.Load(),
		RealtimeConnected: s.realtime.Connected(),
	}
}

func (s *dashboardService) Online() bool {
	return s.online.Load()
}

// SetOnline is driven by realtime connect/disconnect events and the
// periodic backend probe
func (s *dashboardService) SetOnline(online bool) {
	if s.online.Swap(online) != online {
		s.logger.Info("online status changed", "online", online)
	}
}

// StartProbe pings the backend on the given interval until ctx is cancelled
func (s *dashboardService) StartProbe(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeCtx, cancel := context.WithTimeout(ctx, interval)
				err := s.provider.Ping(probeCtx)
				cancel()
				s.SetOnline(err == nil)
			}
		}
	}()
}

func (s *dashboardService) cachePut(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to marshal cache entry", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		s.logger.Warn("failed to write cache entry", "key", key, "error", err)
	}
}

// staleCurrent falls back to the last-known-good snapshot after a fetch error
func (s *dashboardService) staleCurrent(ctx context.Context, slug string, fetchErr error) (*CurrentResult, error) {
	current, updatedAt, err := s.snapshots.GetCurrent(ctx, slug)
	if err != nil {
		if !errors.Is(err, store.ErrNoSnapshot) {
			s.logger.Warn("failed to read current snapshot", "location", slug, "error", err)
		}
		return nil, fmt.Errorf("failed to get current aqi: %w", fetchErr)
	}
	s.logger.Warn("serving stale current data", "location", slug, "as_of", updatedAt, "error", fetchErr)
	return &CurrentResult{Current: current, Stale: true, AsOf: updatedAt}, nil
}

func (s *dashboardService) staleRows(ctx context.Context, slug, resource string, fetchErr error) (*RowsResult, error) {
	rows, updatedAt, err := s.snapshots.GetRows(ctx, slug, resource)
	if err != nil {
		if !errors.Is(err, store.ErrNoSnapshot) {
			s.logger.Warn("failed to read rows snapshot", "location", slug, "resource", resource, "error", err)
		}
		return nil, fmt.Errorf("failed to get %s: %w", resource, fetchErr)
	}
	s.logger.Warn("serving stale rows", "location", slug, "resource", resource, "as_of", updatedAt, "error", fetchErr)
	return &RowsResult{Location: slug, Rows: rows, Stale: true, AsOf: updatedAt}, nil
}

func (s *dashboardService) noteBackendSuccess() {
	s.SetOnline(true)
}

func (s *dashboardService) noteBackendFailure(err error) {
	// A 4xx means the backend answered; only transport-level failures and
	// 5xx flip the dashboard offline
	var apiErr *forecastapi.APIError
	if errors.As(err, &apiErr) && !apiErr.Retryable() {
		return
	}
	s.SetOnline(false)
}
