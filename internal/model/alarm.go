package model

import (
	"strings"
	"time"
)

// Default values for a fresh alarm record.
const (
	DefaultAlarmTime          = "07:00"
	DefaultTriggerURL         = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	DefaultConfirmationPhrase = "I am awake and ready."
	DefaultInitialWaitSecs    = 300
	DefaultConfirmTimeoutSecs = 60
)

// AlarmConfig holds the alarm configuration (singleton record).
// It is only ever read or written as one whole record.
type AlarmConfig struct {
	Key                string `json:"key"`
	Enabled            bool   `json:"enabled"`
	AlarmTime          string `json:"alarm_time"`
	TriggerURL         string `json:"trigger_url"`
	ConfirmationPhrase string `json:"confirmation_phrase"`
	InitialWaitSecs    int    `json:"initial_wait_seconds"`
	ConfirmTimeoutSecs int    `json:"confirmation_timeout_seconds"`
}

// SetKey sets the database key for this record.
func (c *AlarmConfig) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this record.
func (c *AlarmConfig) GetKey() string {
	return c.Key
}

// NewAlarmConfig creates an alarm record with default settings.
// The alarm starts disabled so a fresh install never fires unprompted.
func NewAlarmConfig() *AlarmConfig {
	return &AlarmConfig{
		Key:                KeyAlarm,
		Enabled:            false,
		AlarmTime:          DefaultAlarmTime,
		TriggerURL:         DefaultTriggerURL,
		ConfirmationPhrase: DefaultConfirmationPhrase,
		InitialWaitSecs:    DefaultInitialWaitSecs,
		ConfirmTimeoutSecs: DefaultConfirmTimeoutSecs,
	}
}

// Phrase returns the confirmation phrase with surrounding whitespace
// removed. Responses are compared against this, case-sensitively.
func (c *AlarmConfig) Phrase() string {
	return strings.TrimSpace(c.ConfirmationPhrase)
}

// InitialWait returns the pre-challenge wait as a duration, clamped to
// non-negative.
func (c *AlarmConfig) InitialWait() time.Duration {
	if c.InitialWaitSecs < 0 {
		return 0
	}
	return time.Duration(c.InitialWaitSecs) * time.Second
}

// ConfirmTimeout returns the challenge time limit as a duration,
// clamped to at least one second.
func (c *AlarmConfig) ConfirmTimeout() time.Duration {
	if c.ConfirmTimeoutSecs < 1 {
		return time.Second
	}
	return time.Duration(c.ConfirmTimeoutSecs) * time.Second
}

// MatchesPhrase reports whether a typed response dismisses the alarm.
// Both sides are trimmed of surrounding whitespace; the comparison is
// case-sensitive.
func (c *AlarmConfig) MatchesPhrase(response string) bool {
	return strings.TrimSpace(response) == c.Phrase()
}
