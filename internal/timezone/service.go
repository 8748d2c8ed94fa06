package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup for monitored locations
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instanceMu sync.Mutex
	instance   *service
)

// NewService creates or returns the shared timezone service. One copy is kept
// because tzf.Finder loads timezone polygon data into memory; a failed
// initialization is retried on the next call.
func NewService() (Service, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance, nil
	}
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	instance = &service{finder: finder}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// e.g. "Asia/Kolkata"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return timezone, nil
}
