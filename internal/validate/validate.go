// Package validate provides input validation helpers for the Actual Alarm CLI.
package validate

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
)

const (
	// MaxURLLength is the maximum length for the trigger URL.
	MaxURLLength = 2048
	// MaxPhraseLength is the maximum length for the confirmation phrase.
	MaxPhraseLength = 256
)

// TriggerURL validates the URL the alarm opens. The value is handed to
// the system URL opener, so only web schemes are accepted.
func TriggerURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return errors.NewUserError("Trigger URL cannot be empty", "Provide the URL the alarm should open")
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserErrorWithField("url", rawURL,
			"URL too long",
			"URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL",
			"Provide a valid URL like 'https://www.youtube.com/watch?v=...'")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Unsupported URL scheme",
			"Only http and https URLs can be opened")
	}
	if parsed.Host == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"URL is missing a host",
			"Provide a full URL including the site name")
	}
	return nil
}

// Phrase validates the confirmation phrase.
func Phrase(phrase string) error {
	if strings.TrimSpace(phrase) == "" {
		return errors.NewUserError("Confirmation phrase cannot be empty",
			"Provide the phrase you will type to dismiss the alarm")
	}
	if utf8.RuneCountInString(phrase) > MaxPhraseLength {
		return errors.NewUserError("Confirmation phrase too long",
			"Phrases must be 256 characters or fewer")
	}
	return nil
}

// WaitSeconds validates the pre-challenge wait duration.
func WaitSeconds(seconds int) error {
	if seconds < 0 {
		return errors.NewUserError("Wait seconds cannot be negative",
			"Use 0 to skip the countdown entirely")
	}
	return nil
}

// TimeoutSeconds validates the confirmation time limit.
func TimeoutSeconds(seconds int) error {
	if seconds <= 0 {
		return errors.NewUserError("Timeout must be a positive number of seconds",
			"Allow at least a few seconds to type the phrase")
	}
	return nil
}
