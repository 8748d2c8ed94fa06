package alert

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"airdash/internal/types"
)

// Mock provider for testing

type mockProvider struct {
	alerts    []types.Alert
	created   *types.Alert
	updated   *types.Alert
	deletedID string
	err       error
}

func (m *mockProvider) ListAlerts(ctx context.Context) ([]types.Alert, error) {
	return m.alerts, m.err
}

func (m *mockProvider) CreateAlert(ctx context.Context, alert types.Alert) (*types.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	alert.ID = "alert-1"
	m.created = &alert
	return &alert, nil
}

func (m *mockProvider) UpdateAlert(ctx context.Context, id string, alert types.Alert) (*types.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	alert.ID = id
	m.updated = &alert
	return &alert, nil
}

func (m *mockProvider) DeleteAlert(ctx context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validAlert() types.Alert {
	return types.Alert{
		Location:  "new-delhi",
		Pollutant: "pm25",
		Threshold: 150,
		Condition: types.ConditionAbove,
		Enabled:   true,
		Channels:  []string{"email"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Alert)
		wantErr error
	}{
		{name: "valid alert", mutate: func(a *types.Alert) {}},
		{name: "composite aqi pollutant", mutate: func(a *types.Alert) { a.Pollutant = "aqi" }},
		{name: "threshold at lower bound", mutate: func(a *types.Alert) { a.Threshold = 0 }},
		{name: "threshold at upper bound", mutate: func(a *types.Alert) { a.Threshold = 500 }},
		{
			name:    "threshold below range",
			mutate:  func(a *types.Alert) { a.Threshold = -1 },
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "threshold above range",
			mutate:  func(a *types.Alert) { a.Threshold = 501 },
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "unknown condition",
			mutate:  func(a *types.Alert) { a.Condition = "equals" },
			wantErr: ErrInvalidCondition,
		},
		{
			name:    "unknown pollutant",
			mutate:  func(a *types.Alert) { a.Pollutant = "lead" },
			wantErr: ErrInvalidPollutant,
		},
		{
			name:    "no channels",
			mutate:  func(a *types.Alert) { a.Channels = nil },
			wantErr: ErrNoChannels,
		},
		{
			name:    "missing location",
			mutate:  func(a *types.Alert) { a.Location = "" },
			wantErr: ErrMissingLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAlert()
			tt.mutate(&a)
			err := Validate(a)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	provider := &mockProvider{}
	svc := NewService(provider, testLogger())

	created, err := svc.Create(context.Background(), validAlert())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.ID != "alert-1" {
		t.Errorf("created ID = %q, want alert-1", created.ID)
	}
	if provider.created == nil {
		t.Error("provider never received the alert")
	}
}

func TestService_Create_InvalidNeverReachesProvider(t *testing.T) {
	provider := &mockProvider{}
	svc := NewService(provider, testLogger())

	a := validAlert()
	a.Threshold = 900
	if _, err := svc.Create(context.Background(), a); !errors.Is(err, ErrInvalidThreshold) {
		t.Fatalf("Create() = %v, want ErrInvalidThreshold", err)
	}
	if provider.created != nil {
		t.Error("invalid alert was sent to the provider")
	}
}

func TestService_Create_ProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("backend unavailable")}
	svc := NewService(provider, testLogger())

	if _, err := svc.Create(context.Background(), validAlert()); err == nil {
		t.Error("Create() expected error when provider fails")
	}
}

func TestService_Toggle(t *testing.T) {
	existing := validAlert()
	existing.ID = "alert-7"
	provider := &mockProvider{alerts: []types.Alert{existing}}
	svc := NewService(provider, testLogger())

	updated, err := svc.Toggle(context.Background(), "alert-7", false)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if updated.Enabled {
		t.Error("Toggle() did not disable the alert")
	}

	if _, err := svc.Toggle(context.Background(), "missing", true); err == nil {
		t.Error("Toggle() expected error for unknown id")
	}
}

func TestService_Delete(t *testing.T) {
	provider := &mockProvider{}
	svc := NewService(provider, testLogger())

	if err := svc.Delete(context.Background(), "alert-3"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if provider.deletedID != "alert-3" {
		t.Errorf("provider deleted %q, want alert-3", provider.deletedID)
	}
}
