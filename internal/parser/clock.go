// Package parser provides input parsing for the Actual Alarm CLI.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Clock is a wall-clock time of day (hour and minute, local time).
type Clock struct {
	Hour   int
	Minute int
}

// ClockResult holds the parsed clock time and any error.
type ClockResult struct {
	Clock Clock
	Error error
}

// clockLayouts are the accepted textual clock formats, tried in order.
// time.Parse is case-sensitive about the meridiem, so both cases are
// listed.
var clockLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
	"3:04pm",
}

// ParseClock parses a wall-clock time like "07:30", "7:30 AM" or
// "7:30am". Strict layouts are tried first; anything else falls through
// to natural language parsing ("noon", "half past seven"), accepted
// only when it resolves to a time of day rather than a date.
func ParseClock(input string) ClockResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ClockResult{Error: fmt.Errorf("alarm time is required")}
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return ClockResult{Clock: Clock{Hour: t.Hour(), Minute: t.Minute()}}
		}
	}

	return parseNaturalClock(trimmed, time.Now())
}

// parseNaturalClock resolves natural language clock expressions with
// go-dateparser. The result must land on the reference day: a value
// that moved the date is a date expression, not a time of day.
func parseNaturalClock(input string, now time.Time) ClockResult {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return ClockResult{Error: fmt.Errorf("could not understand time %q, try formats like 07:30 or 7:30 AM", input)}
	}

	y, m, d := result.Time.Date()
	ny, nm, nd := now.Date()
	if y != ny || m != nm || d != nd {
		return ClockResult{Error: fmt.Errorf("%q is not a time of day", input)}
	}

	return ClockResult{Clock: Clock{Hour: result.Time.Hour(), Minute: result.Time.Minute()}}
}

// String formats the clock in 24-hour form, e.g. "07:30".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Format12 formats the clock in 12-hour form, e.g. "7:30 AM".
func (c Clock) Format12() string {
	t := time.Date(0, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// At combines the clock with the date of ref, in ref's location.
func (c Clock) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}
