package cmd

import (
	"github.com/spf13/cobra"

	"github.com/loganlabb-arch/Actual-alarm/internal/autostart"
)

var installFlagForce bool

// installCmd installs the alarm as a login service.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the alarm as a login service",
	Long: `Install the alarm service so it starts automatically at login.

On macOS this creates a launchd agent in ~/Library/LaunchAgents.
On Linux this creates a systemd user service.

Examples:
  actual-alarm install
  actual-alarm install --force   # reinstall if already installed`,
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the alarm login service",
	RunE:  runUninstall,
}

func init() {
	installCmd.Flags().BoolVar(&installFlagForce, "force", false,
		"Reinstall even if already installed")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	mgr, err := autostart.NewManager()
	if err != nil {
		return err
	}
	mgr.SetDebug(ctx.Debug)

	cli := ctx.CLIFormatter()

	if mgr.IsInstalled() && !installFlagForce {
		cli.Warning("Already installed. Use --force to reinstall.")
		return nil
	}
	if mgr.IsInstalled() {
		if err := mgr.Uninstall(); err != nil {
			return err
		}
	}

	if err := mgr.Install(); err != nil {
		return err
	}

	cli.Success("Alarm service installed. It will start at login.")
	cli.Muted("Logs: " + autostart.LogPath())
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	mgr, err := autostart.NewManager()
	if err != nil {
		return err
	}
	mgr.SetDebug(ctx.Debug)

	if !mgr.IsInstalled() {
		ctx.CLIFormatter().Warning("Alarm service is not installed.")
		return nil
	}

	if err := mgr.Uninstall(); err != nil {
		return err
	}

	ctx.CLIFormatter().Success("Alarm service uninstalled.")
	return nil
}
