// Package location resolves the locations the dashboard can display.
package location

import (
	"fmt"
	"log/slog"

	"airdash/internal/timezone"
	"airdash/internal/types"
)

// Service resolves location slugs and enriches locations with their timezone
type Service interface {
	// Watchlist returns the monitored locations in display order
	Watchlist() []types.Location
	// Resolve finds a watchlist location by name or slug
	Resolve(name string) (*types.Location, error)
	// Timezone returns the IANA timezone for a location
	Timezone(loc types.Location) (string, error)
}

// defaultWatchlist is used when the config provides no locations
var defaultWatchlist = []types.Location{
	{Name: "New Delhi", City: "New Delhi", State: "Delhi", Country: "India", Coordinates: types.NewCoords(28.6139, 77.2090)},
	{Name: "Mumbai", City: "Mumbai", State: "Maharashtra", Country: "India", Coordinates: types.NewCoords(19.0760, 72.8777)},
	{Name: "Bangalore", City: "Bangalore", State: "Karnataka", Country: "India", Coordinates: types.NewCoords(12.9716, 77.5946)},
	{Name: "Kolkata", City: "Kolkata", State: "West Bengal", Country: "India", Coordinates: types.NewCoords(22.5726, 88.3639)},
	{Name: "Chennai", City: "Chennai", State: "Tamil Nadu", Country: "India", Coordinates: types.NewCoords(13.0827, 80.2707)},
}

type locationService struct {
	watchlist       []types.Location
	bySlug          map[string]types.Location
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewService creates a location service backed by the tzf timezone lookup
func NewService(watchlist []types.Location, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewServiceWithTimezone(watchlist, tzSvc, logger), nil
}

// NewServiceWithTimezone creates a location service with a custom timezone
// lookup. Useful for testing.
func NewServiceWithTimezone(watchlist []types.Location, tzSvc timezone.Service, logger *slog.Logger) Service {
	if len(watchlist) == 0 {
		watchlist = defaultWatchlist
	}

	bySlug := make(map[string]types.Location, len(watchlist))
	for _, loc := range watchlist {
		bySlug[loc.Slug()] = loc
	}

	return &locationService{
		watchlist:       watchlist,
		bySlug:          bySlug,
		timezoneService: tzSvc,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) Watchlist() []types.Location {
	out := make([]types.Location, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

func (s *locationService) Resolve(name string) (*types.Location, error) {
	loc, ok := s.bySlug[types.Slugify(name)]
	if !ok {
		return nil, fmt.Errorf("unknown location %q", name)
	}
	return &loc, nil
}

func (s *locationService) Timezone(loc types.Location) (string, error) {
	tz, err := s.timezoneService.GetTimezone(loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	if err != nil {
		return "", fmt.Errorf("failed to determine timezone: %w", err)
	}
	return tz, nil
}
