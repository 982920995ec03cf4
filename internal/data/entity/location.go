package entity

import (
	"time"
)

// Location is the device's last known (or fallback) position. It is
// client-local and ephemeral, never sent to or persisted by the server.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
