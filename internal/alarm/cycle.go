// Package alarm implements the alarm cycle state machine and the
// service loop around it.
package alarm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loganlabb-arch/Actual-alarm/internal/console"
	"github.com/loganlabb-arch/Actual-alarm/internal/logging"
	"github.com/loganlabb-arch/Actual-alarm/internal/model"
	"github.com/loganlabb-arch/Actual-alarm/internal/output"
	"github.com/loganlabb-arch/Actual-alarm/internal/timer"
	"github.com/loganlabb-arch/Actual-alarm/internal/trigger"
)

// State represents a phase of one alarm cycle.
type State int

const (
	StateTriggered State = iota
	StateAckWait
	StateCountdown
	StateChallenge
	StateDismissed
	StateReplay
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateTriggered:
		return "TRIGGERED"
	case StateAckWait:
		return "ACK_WAIT"
	case StateCountdown:
		return "COUNTDOWN"
	case StateChallenge:
		return "CHALLENGE"
	case StateDismissed:
		return "DISMISSED"
	case StateReplay:
		return "REPLAY"
	default:
		return "UNKNOWN"
	}
}

// LineReader collects lines of user input, with or without a deadline.
// *console.Console satisfies it.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	ReadLineWithDeadline(prompt string, timeout time.Duration) (console.Result, error)
}

// Outcome summarizes one dismissed alarm cycle.
type Outcome struct {
	Replays     int
	DismissedAt time.Time
}

// Cycle runs one full alarm event: trigger, acknowledgment wait,
// countdown, confirmation challenge, and replay on failure. It never
// gives up on its own; the only exits are a correct phrase or an
// interrupt.
type Cycle struct {
	cfg       *model.AlarmConfig
	opener    trigger.Opener
	reader    LineReader
	cli       *output.CLIFormatter
	countdown *timer.Countdown
	log       *slog.Logger
	now       func() time.Time
}

// NewCycle creates a cycle for one alarm occurrence.
func NewCycle(cfg *model.AlarmConfig, opener trigger.Opener, reader LineReader, cli *output.CLIFormatter) *Cycle {
	countdown := timer.NewCountdown()
	countdown.Writer = cli.Writer
	countdown.UseColor = cli.IsColorEnabled()

	return &Cycle{
		cfg:       cfg,
		opener:    opener,
		reader:    reader,
		cli:       cli,
		countdown: countdown,
		log:       logging.With(logging.KeyCycleID, uuid.New().String()),
		now:       time.Now,
	}
}

// Run drives the cycle to completion. It returns only when the user
// types the exact confirmation phrase (DISMISSED) or input is
// interrupted. A wrong or timed-out response replays the whole
// sequence.
func (c *Cycle) Run(ctx context.Context) (Outcome, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		c.log.Info("alarm triggered",
			logging.KeyState, StateTriggered.String(),
			logging.KeyAttempt, attempt,
			logging.KeyURL, c.cfg.TriggerURL)
		c.cli.Println()
		c.cli.Title("Opening alarm...")
		if err := c.opener.Open(c.cfg.TriggerURL); err != nil {
			// The phrase challenge is the sole gate; a viewer that
			// cannot be opened does not stop the cycle.
			c.log.Warn("could not open trigger URL",
				logging.KeyURL, c.cfg.TriggerURL,
				logging.KeyError, err.Error())
		}

		// ACK_WAIT gates progression on a deliberate user action, so
		// there is no deadline here.
		c.log.DebugContext(ctx, "waiting for acknowledgment", logging.KeyState, StateAckWait.String())
		if _, err := c.reader.ReadLine("Press Enter once you are up and ready (or type anything then Enter): "); err != nil {
			return Outcome{}, err
		}

		if wait := c.cfg.InitialWait(); wait > 0 {
			c.log.DebugContext(ctx, "countdown started",
				logging.KeyState, StateCountdown.String(),
				logging.KeyTimeout, wait.String())
			label := fmt.Sprintf("Waiting %s before confirmation...", timer.FormatDuration(wait))
			if err := c.countdown.Run(ctx, wait, label); err != nil {
				return Outcome{}, err
			}
		}

		c.log.DebugContext(ctx, "challenge presented",
			logging.KeyState, StateChallenge.String(),
			logging.KeyTimeout, c.cfg.ConfirmTimeout().String())
		c.cli.Println()
		c.cli.Println("Type this phrase exactly within the time limit to silence the alarm:")
		c.cli.Phrase(c.cfg.Phrase())

		res, err := c.reader.ReadLineWithDeadline("Your input: ", c.cfg.ConfirmTimeout())
		if err != nil {
			return Outcome{}, err
		}

		if !res.TimedOut && c.cfg.MatchesPhrase(res.Line) {
			c.log.Info("alarm dismissed",
				logging.KeyState, StateDismissed.String(),
				logging.KeyAttempt, attempt)
			c.cli.Success("Alarm dismissed. Have a great day!")
			return Outcome{Replays: attempt - 1, DismissedAt: c.now()}, nil
		}

		c.log.Info("confirmation failed, replaying",
			logging.KeyState, StateReplay.String(),
			logging.KeyAttempt, attempt,
			"timed_out", res.TimedOut)
		c.cli.Warning("Confirmation failed or timed out. Replaying alarm.")
	}
}
