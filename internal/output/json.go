package output

import (
	"github.com/loganlabb-arch/Actual-alarm/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SettingsResponse represents the alarm settings in JSON output.
type SettingsResponse struct {
	Status string             `json:"status"`
	Alarm  *model.AlarmConfig `json:"alarm"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintSettings prints the alarm settings as JSON.
func (j *JSONFormatter) PrintSettings(cfg *model.AlarmConfig) error {
	return j.JSON(&SettingsResponse{
		Status: "ok",
		Alarm:  cfg,
	})
}

// PrintError prints an error as JSON.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(&ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}
