// Package model defines the persisted records for Actual Alarm.
package model

// Model is the interface that all database records must implement.
type Model interface {
	// SetKey sets the database key for this record.
	SetKey(key string)
	// GetKey returns the database key for this record.
	GetKey() string
}

// Database keys. The store holds exactly one alarm record.
const (
	KeyAlarm = "alarm"
)
