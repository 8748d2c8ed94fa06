// Package alert validates and manages threshold alert rules, delegating
// persistence to the prediction backend.
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"airdash/internal/types"
)

// Threshold bounds follow the AQI scale
const (
	MinThreshold = 0
	MaxThreshold = 500
)

// Validation errors, mapped to 400 responses at the HTTP boundary
var (
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 500")
	ErrInvalidCondition = errors.New("condition must be \"above\" or \"below\"")
	ErrInvalidPollutant = errors.New("pollutant must be a known pollutant code or \"aqi\"")
	ErrNoChannels       = errors.New("at least one notification channel is required")
	ErrMissingLocation  = errors.New("location is required")
)

// ErrNotFound is returned when an alert ID does not exist
var ErrNotFound = errors.New("alert not found")

// Provider is the backend alert store
type Provider interface {
	ListAlerts(ctx context.Context) ([]types.Alert, error)
	CreateAlert(ctx context.Context, alert types.Alert) (*types.Alert, error)
	UpdateAlert(ctx context.Context, id string, alert types.Alert) (*types.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
}

type Service interface {
	List(ctx context.Context) ([]types.Alert, error)
	Create(ctx context.Context, alert types.Alert) (*types.Alert, error)
	Update(ctx context.Context, id string, alert types.Alert) (*types.Alert, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string, enabled bool) (*types.Alert, error)
}

type alertService struct {
	provider Provider
	logger   *slog.Logger
}

func NewService(provider Provider, logger *slog.Logger) Service {
	return &alertService{
		provider: provider,
		logger:   logger.With("component", "alert-service"),
	}
}

// Validate checks an alert rule before it is sent to the backend
func Validate(alert types.Alert) error {
	if alert.Location == "" {
		return ErrMissingLocation
	}
	if alert.Threshold < MinThreshold || alert.Threshold > MaxThreshold {
		return fmt.Errorf("%w: got %g", ErrInvalidThreshold, alert.Threshold)
	}
	if alert.Condition != types.ConditionAbove && alert.Condition != types.ConditionBelow {
		return fmt.Errorf("%w: got %q", ErrInvalidCondition, alert.Condition)
	}
	if alert.Pollutant != "aqi" && !types.IsValidPollutant(types.Pollutant(alert.Pollutant)) {
		return fmt.Errorf("%w: got %q", ErrInvalidPollutant, alert.Pollutant)
	}
	if len(alert.Channels) == 0 {
		return ErrNoChannels
	}
	return nil
}

func (s *alertService) List(ctx context.Context) ([]types.Alert, error) {
	alerts, err := s.provider.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *alertService) Create(ctx context.Context, alert types.Alert) (*types.Alert, error) {
	if err := Validate(alert); err != nil {
		return nil, err
	}

	created, err := s.provider.CreateAlert(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	s.logger.Info("alert created",
		"id", created.ID,
		"location", created.Location,
		"pollutant", created.Pollutant,
		"threshold", created.Threshold,
	)
	return created, nil
}

func (s *alertService) Update(ctx context.Context, id string, alert types.Alert) (*types.Alert, error) {
	if err := Validate(alert); err != nil {
		return nil, err
	}

	updated, err := s.provider.UpdateAlert(ctx, id, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	return updated, nil
}

func (s *alertService) Delete(ctx context.Context, id string) error {
	if err := s.provider.DeleteAlert(ctx, id); err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	s.logger.Info("alert deleted", "id", id)
	return nil
}

// Toggle flips the enabled flag of an existing alert without changing the rule
func (s *alertService) Toggle(ctx context.Context, id string, enabled bool) (*types.Alert, error) {
	alerts, err := s.provider.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	for _, a := range alerts {
		if a.ID == id {
			a.Enabled = enabled
			updated, err := s.provider.UpdateAlert(ctx, id, a)
			if err != nil {
				return nil, fmt.Errorf("failed to toggle alert: %w", err)
			}
			return updated, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
