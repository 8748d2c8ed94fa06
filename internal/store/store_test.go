package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"airdash/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CurrentRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	current := &types.CurrentAQI{
		Location:  types.Location{Name: "New Delhi", Country: "India"},
		Timestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		AQI:       182,
		Category:  "Unhealthy",
		Color:     "#ff0000",
		Pollutants: map[types.Pollutant]types.PollutantReading{
			types.PollutantPM25: {Concentration: 112.4, Unit: "µg/m³", SubIndex: 182},
		},
	}

	if err := s.PutCurrent(ctx, "new-delhi", current); err != nil {
		t.Fatalf("PutCurrent() failed: %v", err)
	}

	got, updatedAt, err := s.GetCurrent(ctx, "new-delhi")
	if err != nil {
		t.Fatalf("GetCurrent() failed: %v", err)
	}
	if got.AQI != 182 || got.Category != "Unhealthy" {
		t.Errorf("GetCurrent() = %+v", got)
	}
	if got.Pollutants[types.PollutantPM25].SubIndex != 182 {
		t.Errorf("pollutant sub-index lost in round trip: %+v", got.Pollutants)
	}
	if updatedAt.IsZero() {
		t.Error("updatedAt is zero")
	}
}

func TestStore_OverwriteKeepsLatest(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.PutCurrent(ctx, "mumbai", &types.CurrentAQI{AQI: 60}); err != nil {
		t.Fatalf("PutCurrent() failed: %v", err)
	}
	if err := s.PutCurrent(ctx, "mumbai", &types.CurrentAQI{AQI: 75}); err != nil {
		t.Fatalf("second PutCurrent() failed: %v", err)
	}

	got, _, err := s.GetCurrent(ctx, "mumbai")
	if err != nil {
		t.Fatalf("GetCurrent() failed: %v", err)
	}
	if got.AQI != 75 {
		t.Errorf("GetCurrent().AQI = %d, want 75", got.AQI)
	}
}

func TestStore_RowsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	rows := []types.ForecastRow{
		{Timestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC), AQI: 120, Category: "Unhealthy for Sensitive Groups"},
		{Timestamp: time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC), AQI: 130, Category: "Unhealthy for Sensitive Groups"},
	}
	if err := s.PutRows(ctx, "new-delhi", ResourceForecast, rows); err != nil {
		t.Fatalf("PutRows() failed: %v", err)
	}

	got, _, err := s.GetRows(ctx, "new-delhi", ResourceForecast)
	if err != nil {
		t.Fatalf("GetRows() failed: %v", err)
	}
	if len(got) != 2 || got[1].AQI != 130 {
		t.Errorf("GetRows() = %+v", got)
	}

	// Forecast and history are independent resources
	if _, _, err := s.GetRows(ctx, "new-delhi", ResourceHistory); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("GetRows(history) = %v, want ErrNoSnapshot", err)
	}
}

func TestStore_MissingSnapshot(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.GetCurrent(context.Background(), "nowhere"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("GetCurrent() = %v, want ErrNoSnapshot", err)
	}
}
