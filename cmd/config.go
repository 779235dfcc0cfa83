package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loganlabb-arch/Actual-alarm/internal/parser"
	"github.com/loganlabb-arch/Actual-alarm/internal/validate"
)

// configCmd groups the scriptable settings commands. The interactive
// menu covers the same fields; this surface exists for scripts and for
// disabling a running alarm from another terminal.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "View and change alarm settings",
	Long: `View and change alarm settings without the interactive menu.

Examples:
  actual-alarm config show
  actual-alarm config set time "7:30 AM"
  actual-alarm config set url https://example.com/video
  actual-alarm config set phrase "I am awake and ready."
  actual-alarm config set wait 300
  actual-alarm config set timeout 60
  actual-alarm config enable
  actual-alarm config disable`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current alarm settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set an alarm setting",
	Long: `Set one alarm setting and write the record back.

Fields: time, url, phrase, wait, timeout`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConfigSet,
}

var configEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the alarm",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(true)
	},
}

var configDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the alarm",
	Long: `Disable the alarm.

A running service notices the change at its next checkpoint: right
after the scheduled wait completes, or right after a cycle finishes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(false)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEnableCmd)
	configCmd.AddCommand(configDisableCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := ctx.AlarmRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(cfg)
	}

	ctx.CLIFormatter().PrintAlarmSettings(cfg)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	field := strings.ToLower(args[0])
	value := strings.TrimSpace(strings.Join(args[1:], " "))

	cfg, err := ctx.AlarmRepo.Get()
	if err != nil {
		return err
	}

	switch field {
	case "time":
		if res := parser.ParseClock(value); res.Error != nil {
			return res.Error
		}
		cfg.AlarmTime = value

	case "url":
		if err := validate.TriggerURL(value); err != nil {
			return err
		}
		cfg.TriggerURL = value

	case "phrase":
		if err := validate.Phrase(value); err != nil {
			return err
		}
		cfg.ConfirmationPhrase = value

	case "wait":
		seconds, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("wait must be a whole number of seconds")
		}
		if err := validate.WaitSeconds(seconds); err != nil {
			return err
		}
		cfg.InitialWaitSecs = seconds

	case "timeout":
		seconds, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("timeout must be a whole number of seconds")
		}
		if err := validate.TimeoutSeconds(seconds); err != nil {
			return err
		}
		cfg.ConfirmTimeoutSecs = seconds

	default:
		return fmt.Errorf("unknown field %q (use time, url, phrase, wait, or timeout)", field)
	}

	if err := ctx.AlarmRepo.Update(cfg); err != nil {
		return err
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Updated %s.", field))
	return nil
}

func setEnabled(enabled bool) error {
	cfg, err := ctx.AlarmRepo.Get()
	if err != nil {
		return err
	}

	cfg.Enabled = enabled
	if err := ctx.AlarmRepo.Update(cfg); err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if enabled {
		cli.Success("Alarm enabled.")
	} else {
		cli.Success("Alarm disabled.")
	}
	return nil
}
