package types

import "strings"

// Location identifies a monitored place as known to the prediction backend
type Location struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Coordinates Coords `json:"coordinates"`
}

// Slug returns the URL-safe identifier used in API paths and realtime
// subscriptions, e.g. "New Delhi" -> "new-delhi"
func (l Location) Slug() string {
	return Slugify(l.Name)
}

// Slugify normalizes a location name into its backend identifier
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(s), "-")
}
