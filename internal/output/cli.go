package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loganlabb-arch/Actual-alarm/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	stylePhrase = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Phrase prints the confirmation phrase the user has to type.
func (c *CLIFormatter) Phrase(text string) {
	if c.IsColorEnabled() {
		c.Println("  >>> " + stylePhrase.Render(text))
	} else {
		c.Println("  >>> " + text)
	}
}

// PrintAlarmSettings prints the current alarm settings.
func (c *CLIFormatter) PrintAlarmSettings(cfg *model.AlarmConfig) {
	c.Title("Current alarm settings:")

	state := "disabled"
	if cfg.Enabled {
		state = "enabled"
	}
	c.Printf("  Enabled:              %s\n", state)
	c.Printf("  Alarm time:           %s\n", cfg.AlarmTime)
	c.Printf("  Trigger URL:          %s\n", cfg.TriggerURL)
	c.Printf("  Confirmation phrase:  %s\n", cfg.ConfirmationPhrase)
	c.Printf("  Initial wait:         %d seconds\n", cfg.InitialWaitSecs)
	c.Printf("  Confirmation timeout: %d seconds\n", cfg.ConfirmTimeoutSecs)
}
