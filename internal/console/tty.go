package console

import (
	"errors"
	"os"
	"time"

	"golang.org/x/term"
)

// ttySource reads single keystrokes from a terminal. Begin switches
// the terminal to raw mode so keys arrive unbuffered and unechoed;
// each poll is bounded by a file read deadline.
type ttySource struct {
	f        *os.File
	oldState *term.State
}

func (t *ttySource) Begin() error {
	state, err := term.MakeRaw(int(t.f.Fd()))
	if err != nil {
		return err
	}
	t.oldState = state
	return nil
}

func (t *ttySource) End() {
	t.f.SetReadDeadline(time.Time{})
	if t.oldState != nil {
		term.Restore(int(t.f.Fd()), t.oldState)
		t.oldState = nil
	}
}

func (t *ttySource) PollKey(timeout time.Duration) (byte, bool, error) {
	if err := t.f.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return 0, false, err
	}

	buf := make([]byte, 1)
	n, err := t.f.Read(buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}
