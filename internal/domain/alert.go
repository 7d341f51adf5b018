package domain

import (
	"fmt"
	"time"
)

// Alert is a logged emergency event. Alerts are append-only: once written
// they are never mutated or removed.
type Alert struct {
	ID        string    `json:"id"`
	Username  string    `json:"user"`
	Phone     string    `json:"phone"`
	Latitude  string    `json:"latitude"`
	Longitude string    `json:"longitude"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"time"`
}

// MapsLink builds the shareable Google Maps URL for a coordinate pair.
func MapsLink(lat, lon string) string {
	return fmt.Sprintf("https://maps.google.com/?q=%s,%s", lat, lon)
}
