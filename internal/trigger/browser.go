// Package trigger opens the alarm URL in the user's browser.
package trigger

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener launches a URL in a user-facing viewer. The launch is
// fire-and-forget: callers get an error for diagnostics but must not
// treat failure as fatal.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs with the platform's default handler.
type BrowserOpener struct{}

// NewBrowserOpener creates a browser opener for the current platform.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{}
}

// Open launches the URL in the default browser. The command is started
// and not waited on; there is no feedback channel beyond launch errors.
func (b *BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("no known browser launcher for %s", runtime.GOOS)
	}

	return cmd.Start()
}
