package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "New Delhi",
			latitude:  28.6139,
			longitude: 77.2090,
			want:      "Asia/Kolkata",
		},
		{
			name:      "Mumbai",
			latitude:  19.0760,
			longitude: 72.8777,
			want:      "Asia/Kolkata",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_ReturnsSharedInstance(t *testing.T) {
	first, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	second, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service on second call: %v", err)
	}
	if first == nil || second == nil {
		t.Fatal("NewService() returned a nil service without an error")
	}
	if first != second {
		t.Error("NewService() returned distinct instances")
	}
}
