package runtime

import (
	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if ue, ok := errors.AsUserError(err); ok {
		return ue.Suggestion
	}

	switch {
	case errors.Is(err, errors.ErrInvalidAlarmTime):
		return "Try formats like '07:30' or '7:30 AM'."
	case errors.Is(err, errors.ErrEmptyURL):
		return "Provide the URL the alarm should open."
	case errors.Is(err, errors.ErrEmptyPhrase):
		return "Provide the phrase you will type to dismiss the alarm."
	case errors.Is(err, errors.ErrAlarmDisabled):
		return "Enable the alarm with 'actual-alarm config enable'."
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
