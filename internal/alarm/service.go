package alarm

import (
	"context"
	"log/slog"
	"time"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
	"github.com/loganlabb-arch/Actual-alarm/internal/logging"
	"github.com/loganlabb-arch/Actual-alarm/internal/model"
	"github.com/loganlabb-arch/Actual-alarm/internal/output"
	"github.com/loganlabb-arch/Actual-alarm/internal/parser"
	"github.com/loganlabb-arch/Actual-alarm/internal/scheduler"
	"github.com/loganlabb-arch/Actual-alarm/internal/trigger"
)

// ConfigSource supplies a fresh alarm record on demand.
// *storage.AlarmRepo satisfies it.
type ConfigSource interface {
	Get() (*model.AlarmConfig, error)
}

// Service schedules alarm occurrences and runs cycles until the alarm
// is externally disabled. Configuration is re-read at two checkpoints
// per iteration — after the scheduled wait and after a completed
// cycle — so a disable from the settings menu takes effect without
// killing the process.
type Service struct {
	store ConfigSource
	cli   *output.CLIFormatter
	log   *slog.Logger

	// Collaborators, injectable for tests.
	wait     func(ctx context.Context, target time.Time) error
	runCycle func(ctx context.Context, cfg *model.AlarmConfig) (Outcome, error)
	now      func() time.Time
}

// NewService creates the alarm service.
func NewService(store ConfigSource, opener trigger.Opener, reader LineReader, cli *output.CLIFormatter) *Service {
	return &Service{
		store: store,
		cli:   cli,
		log:   logging.Logger(),
		wait:  scheduler.WaitUntil,
		now:   time.Now,
		runCycle: func(ctx context.Context, cfg *model.AlarmConfig) (Outcome, error) {
			return NewCycle(cfg, opener, reader, cli).Run(ctx)
		},
	}
}

// Run starts the service loop against the given configuration. A
// disabled alarm is reported and returns immediately; an unparsable
// stored alarm time is fatal and must be fixed from the settings menu.
func (s *Service) Run(ctx context.Context, cfg *model.AlarmConfig) error {
	if !cfg.Enabled {
		s.cli.Warning("Alarm is currently disabled. Enable it from the menu before starting the service.")
		return nil
	}

	res := parser.ParseClock(cfg.AlarmTime)
	if res.Error != nil {
		return errors.NewUserErrorWithField("alarm_time", cfg.AlarmTime,
			"Stored alarm time is unreadable",
			"Fix the alarm time from the settings menu, e.g. 07:30 or 7:30 AM")
	}
	clock := res.Clock

	s.cli.Printf("Alarm set for %s. Waiting...\n", clock.Format12())

	for {
		target := scheduler.NextOccurrence(clock, s.now())
		s.cli.Muted("Next alarm: " + output.FormatTime12(target))
		s.log.Info("next occurrence scheduled", logging.KeyTarget, target.Format(time.RFC3339))

		if err := s.wait(ctx, target); err != nil {
			return err
		}

		// Checkpoint one: the alarm may have been disabled while we
		// were waiting for the trigger time.
		fresh, err := s.store.Get()
		if err != nil {
			return errors.Wrap(err, "reloading configuration")
		}
		if !fresh.Enabled {
			s.cli.Muted("Alarm disabled while waiting. Exiting service loop.")
			return nil
		}

		if _, err := s.runCycle(ctx, fresh); err != nil {
			return err
		}

		// Checkpoint two: disabled after the cycle, before the next
		// one is scheduled.
		fresh, err = s.store.Get()
		if err != nil {
			return errors.Wrap(err, "reloading configuration")
		}
		if !fresh.Enabled {
			s.cli.Muted("Alarm disabled after completion. Exiting service loop.")
			return nil
		}

		s.cli.Muted("Alarm cycle complete. Scheduling the next occurrence...")
		s.cli.Println()
	}
}
