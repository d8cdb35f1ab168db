package models

import "time"

// Device is the current position record of one deployed sensor.
type Device struct {
	DeviceID string    `json:"device_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	LastSeen time.Time `json:"last_seen"`
	SensorID *string   `json:"sensor_id"`
}
