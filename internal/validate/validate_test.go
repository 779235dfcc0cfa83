package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
)

func TestTriggerURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"http", "http://example.com/clip", false},
		{"with query and fragment", "https://example.com/a?b=c#d", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"no scheme", "www.example.com", true},
		{"file scheme", "file:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"missing host", "https://", true},
		{"too long", "https://example.com/" + strings.Repeat("x", MaxURLLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TriggerURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsUserError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhrase(t *testing.T) {
	assert.NoError(t, Phrase("I am awake and ready."))
	assert.NoError(t, Phrase(strings.Repeat("a", MaxPhraseLength)))

	assert.Error(t, Phrase(""))
	assert.Error(t, Phrase("   \t "))
	assert.Error(t, Phrase(strings.Repeat("a", MaxPhraseLength+1)))
}

func TestWaitSeconds(t *testing.T) {
	assert.NoError(t, WaitSeconds(0))
	assert.NoError(t, WaitSeconds(300))
	assert.Error(t, WaitSeconds(-1))
}

func TestTimeoutSeconds(t *testing.T) {
	assert.NoError(t, TimeoutSeconds(1))
	assert.NoError(t, TimeoutSeconds(60))
	assert.Error(t, TimeoutSeconds(0))
	assert.Error(t, TimeoutSeconds(-5))
}
