// Package autostart installs the alarm service as a login service so
// it starts without a manual 'actual-alarm start'.
package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/adrg/xdg"
)

// Manager handles login-service installation for the alarm.
type Manager struct {
	executablePath string
	debug          bool
}

// NewManager creates a new autostart manager.
func NewManager() (*Manager, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	return &Manager{
		executablePath: execPath,
	}, nil
}

// SetDebug enables debug output.
func (m *Manager) SetDebug(debug bool) {
	m.debug = debug
}

// LogPath returns the path the installed service logs to.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "actual-alarm", "alarm.log")
}

// Install installs the alarm as a login service.
func (m *Manager) Install() error {
	if err := os.MkdirAll(filepath.Dir(LogPath()), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return m.installLaunchd()
	case "linux":
		return m.installSystemd()
	default:
		return fmt.Errorf("autostart installation not supported on %s", runtime.GOOS)
	}
}

// Uninstall removes the alarm login service.
func (m *Manager) Uninstall() error {
	switch runtime.GOOS {
	case "darwin":
		return m.uninstallLaunchd()
	case "linux":
		return m.uninstallSystemd()
	default:
		return fmt.Errorf("autostart installation not supported on %s", runtime.GOOS)
	}
}

// IsInstalled checks if the login service is installed.
func (m *Manager) IsInstalled() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := os.Stat(m.launchdPath())
		return err == nil
	case "linux":
		_, err := os.Stat(m.systemdPath())
		return err == nil
	default:
		return false
	}
}

// macOS launchd support

const launchdPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.actual-alarm.service</string>
    <key>ProgramArguments</key>
    <array>
        <string>{{.ExecutablePath}}</string>
        <string>start</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
    <key>StandardOutPath</key>
    <string>{{.LogPath}}</string>
    <key>StandardErrorPath</key>
    <string>{{.LogPath}}</string>
</dict>
</plist>
`

func (m *Manager) launchdPath() string {
	return filepath.Join(os.Getenv("HOME"), "Library", "LaunchAgents", "com.actual-alarm.service.plist")
}

func (m *Manager) installLaunchd() error {
	plistPath := m.launchdPath()

	if err := os.MkdirAll(filepath.Dir(plistPath), 0755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}

	tmpl, err := template.New("plist").Parse(launchdPlist)
	if err != nil {
		return fmt.Errorf("failed to parse plist template: %w", err)
	}

	data := struct {
		ExecutablePath string
		LogPath        string
	}{
		ExecutablePath: m.executablePath,
		LogPath:        LogPath(),
	}

	file, err := os.Create(plistPath)
	if err != nil {
		return fmt.Errorf("failed to create plist file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to write plist: %w", err)
	}

	cmd := exec.Command("launchctl", "load", plistPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to load service: %w: %s", err, string(out))
	}

	if m.debug {
		fmt.Printf("[DEBUG] Installed launchd service at %s\n", plistPath)
	}

	return nil
}

func (m *Manager) uninstallLaunchd() error {
	plistPath := m.launchdPath()

	// Unload first; ignore error if it was never loaded
	exec.Command("launchctl", "unload", plistPath).Run()

	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove plist file: %w", err)
	}

	if m.debug {
		fmt.Printf("[DEBUG] Uninstalled launchd service from %s\n", plistPath)
	}

	return nil
}

// Linux systemd support

const systemdUnit = `[Unit]
Description=Actual Alarm wake-up service
After=graphical-session.target

[Service]
Type=simple
ExecStart={{.ExecutablePath}} start
Restart=on-failure
RestartSec=5
StandardOutput=append:{{.LogPath}}
StandardError=append:{{.LogPath}}

[Install]
WantedBy=default.target
`

func (m *Manager) systemdPath() string {
	return filepath.Join(xdg.ConfigHome, "systemd", "user", "actual-alarm.service")
}

func (m *Manager) installSystemd() error {
	unitPath := m.systemdPath()

	if err := os.MkdirAll(filepath.Dir(unitPath), 0755); err != nil {
		return fmt.Errorf("failed to create systemd user directory: %w", err)
	}

	tmpl, err := template.New("unit").Parse(systemdUnit)
	if err != nil {
		return fmt.Errorf("failed to parse unit template: %w", err)
	}

	data := struct {
		ExecutablePath string
		LogPath        string
	}{
		ExecutablePath: m.executablePath,
		LogPath:        LogPath(),
	}

	file, err := os.Create(unitPath)
	if err != nil {
		return fmt.Errorf("failed to create unit file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to write unit: %w", err)
	}

	cmd := exec.Command("systemctl", "--user", "enable", "--now", "actual-alarm.service")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to enable service: %w: %s", err, string(out))
	}

	if m.debug {
		fmt.Printf("[DEBUG] Installed systemd user service at %s\n", unitPath)
	}

	return nil
}

func (m *Manager) uninstallSystemd() error {
	unitPath := m.systemdPath()

	exec.Command("systemctl", "--user", "disable", "--now", "actual-alarm.service").Run()

	if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove unit file: %w", err)
	}

	if m.debug {
		fmt.Printf("[DEBUG] Uninstalled systemd user service from %s\n", unitPath)
	}

	return nil
}
