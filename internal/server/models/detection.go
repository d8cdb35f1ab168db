package models

import "time"

// Detection is one wireless-signal sighting reported by a BluStick device.
// Created only through the batch ingestion pipeline; immutable thereafter.
type Detection struct {
	ID                string    `json:"blustick_id"`
	EventID           *string   `json:"event_id"`
	MACAddress        *string   `json:"mac_address"`
	SignalType        *string   `json:"signal_type"`
	RSSI              *float64  `json:"rssi"`
	EstimatedDistance *float64  `json:"estimated_distance"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	DetectedAt        time.Time `json:"detected_at"`
}

// NewDetection is a validated, normalized detection candidate ready for
// insertion: every optional field is an explicit pointer (nil meaning SQL
// NULL) and DetectedAt is always set, so the multi-row insert binds a fixed
// eight values per record.
type NewDetection struct {
	EventID           *string
	MACAddress        *string
	SignalType        *string
	RSSI              *float64
	EstimatedDistance *float64
	Latitude          *float64
	Longitude         *float64
	DetectedAt        time.Time
}
