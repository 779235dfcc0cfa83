// Package timer provides the pre-challenge countdown for Actual Alarm.
package timer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the countdown line.
var (
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// FormatDuration formats a duration as MM:SS or HH:MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Countdown renders a live countdown on a single line, updating once a
// second until the duration elapses.
type Countdown struct {
	Writer   io.Writer
	UseColor bool

	// now and sleep are injectable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewCountdown creates a countdown writing to stdout.
func NewCountdown() *Countdown {
	return &Countdown{
		Writer:   os.Stdout,
		UseColor: true,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Run displays label, then counts down for d at one-second resolution,
// rewriting the same line. It returns early if ctx is canceled.
func (c *Countdown) Run(ctx context.Context, d time.Duration, label string) error {
	if d <= 0 {
		return nil
	}

	if c.UseColor {
		fmt.Fprintln(c.Writer, labelStyle.Render(label))
	} else {
		fmt.Fprintln(c.Writer, label)
	}

	end := c.now().Add(d)
	for {
		remaining := end.Sub(c.now())
		if remaining <= 0 {
			break
		}

		line := "  Time remaining: " + FormatDuration(remaining)
		if c.UseColor {
			line = "  Time remaining: " + timerStyle.Render(FormatDuration(remaining))
		}
		fmt.Fprintf(c.Writer, "%s\r", line)

		if err := ctx.Err(); err != nil {
			return err
		}

		tick := time.Second
		if remaining < tick {
			tick = remaining
		}
		c.sleep(tick)
	}

	// Wipe the countdown line
	fmt.Fprintf(c.Writer, "%s\r", "                                        ")
	return nil
}
