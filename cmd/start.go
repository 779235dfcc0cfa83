package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loganlabb-arch/Actual-alarm/internal/alarm"
	"github.com/loganlabb-arch/Actual-alarm/internal/console"
	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
	"github.com/loganlabb-arch/Actual-alarm/internal/trigger"
)

// startCmd runs the alarm service directly, skipping the menu.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the alarm service",
	Long: `Run the alarm service against the stored configuration.

The service waits for the next occurrence of the configured alarm time,
opens the trigger URL, and challenges you for the confirmation phrase.
It keeps scheduling occurrences until the alarm is disabled (from the
menu or 'actual-alarm config disable') or the process is terminated.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := ctx.AlarmRepo.Get()
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := ctx.CLIFormatter()
	reader := console.New(os.Stdin, ctx.Formatter.Writer)
	svc := alarm.NewService(ctx.AlarmRepo, trigger.NewBrowserOpener(), reader, cli)

	if err := svc.Run(sigCtx, cfg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, errors.ErrInterrupted) {
			cli.Println()
			cli.Muted("Interrupted. See you next time!")
			return nil
		}
		return err
	}
	return nil
}
