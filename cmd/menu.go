package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loganlabb-arch/Actual-alarm/internal/console"
	"github.com/loganlabb-arch/Actual-alarm/internal/parser"
	"github.com/loganlabb-arch/Actual-alarm/internal/validate"
)

// menuReader returns a console for the menu's unbounded prompts.
func menuReader() *console.Console {
	return console.New(os.Stdin, ctx.Formatter.Writer)
}

// runMenu drives the interactive settings menu. Each change is
// validated, then written back as one whole record; invalid input is
// reported and the stored record left untouched.
func runMenu(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()
	reader := menuReader()

	cfg, err := ctx.AlarmRepo.Get()
	if err != nil {
		return err
	}

	for {
		cli.Println()
		cli.Title("Alarm Menu:")
		cli.Println("  1) View alarm settings")
		cli.Println("  2) Set alarm time")
		cli.Println("  3) Set trigger URL")
		cli.Println("  4) Set confirmation phrase")
		cli.Println("  5) Set seconds to wait before phrase")
		cli.Println("  6) Set phrase timeout seconds")
		cli.Println("  7) Toggle enabled/disabled")
		cli.Println("  8) Start alarm service")
		cli.Println("  9) Exit")

		choice, err := reader.ReadLine("Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			cli.Println()
			cli.PrintAlarmSettings(cfg)

		case "2":
			input, err := reader.ReadLine("Enter alarm time (e.g. 07:30 or 7:30 AM): ")
			if err != nil {
				return err
			}
			res := parser.ParseClock(input)
			if res.Error != nil {
				cli.Error(res.Error.Error())
				continue
			}
			cfg.AlarmTime = strings.TrimSpace(input)
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			cli.Success("Alarm time updated.")

		case "3":
			input, err := reader.ReadLine("Enter the URL to open: ")
			if err != nil {
				return err
			}
			url := strings.TrimSpace(input)
			if err := validate.TriggerURL(url); err != nil {
				cli.Error(err.Error())
				continue
			}
			cfg.TriggerURL = url
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			cli.Success("Trigger URL updated.")

		case "4":
			input, err := reader.ReadLine("Enter the confirmation phrase: ")
			if err != nil {
				return err
			}
			phrase := strings.TrimSpace(input)
			if err := validate.Phrase(phrase); err != nil {
				cli.Error(err.Error())
				continue
			}
			cfg.ConfirmationPhrase = phrase
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			cli.Success("Confirmation phrase updated.")

		case "5":
			input, err := reader.ReadLine("Seconds to wait before showing the phrase: ")
			if err != nil {
				return err
			}
			seconds, convErr := strconv.Atoi(strings.TrimSpace(input))
			if convErr != nil || validate.WaitSeconds(seconds) != nil {
				cli.Error("Please enter a whole number of seconds (0 or more).")
				continue
			}
			cfg.InitialWaitSecs = seconds
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			cli.Success("Wait seconds updated.")

		case "6":
			input, err := reader.ReadLine("Seconds allowed to type the phrase: ")
			if err != nil {
				return err
			}
			seconds, convErr := strconv.Atoi(strings.TrimSpace(input))
			if convErr != nil || validate.TimeoutSeconds(seconds) != nil {
				cli.Error("Please enter a positive number of seconds.")
				continue
			}
			cfg.ConfirmTimeoutSecs = seconds
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			cli.Success("Timeout updated.")

		case "7":
			cfg.Enabled = !cfg.Enabled
			if err := ctx.AlarmRepo.Update(cfg); err != nil {
				return err
			}
			if cfg.Enabled {
				cli.Success("Alarm enabled.")
			} else {
				cli.Success("Alarm disabled.")
			}

		case "8":
			cli.Println()
			if err := runStart(cmd, nil); err != nil {
				return err
			}
			// The service may have run for a long time; re-read in case
			// the record changed underneath the menu.
			cfg, err = ctx.AlarmRepo.Get()
			if err != nil {
				return err
			}

		case "9":
			cli.Println("Goodbye!")
			return nil

		default:
			cli.Warning("Unknown choice, please try again.")
		}
	}
}
