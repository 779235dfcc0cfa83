// Package console implements line-oriented console interaction with
// deadline-bounded reads.
//
// Keystrokes are collected one at a time by polling the input source on
// a short interval, so a read can observe its deadline without a
// dedicated blocking-read-with-timeout primitive. On terminals where
// polled reads are unavailable the console falls back to plain blocking
// line reads; everything still works, only the ability to time out a
// read is lost.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
)

// DefaultPollInterval is how often the input source is polled for a
// keystroke. Short enough to feel immediate, long enough to cost
// nothing.
const DefaultPollInterval = 50 * time.Millisecond

// Result is the outcome of a deadline-bounded line read.
type Result struct {
	Line     string
	TimedOut bool
}

// KeySource delivers individual keystrokes for polled reads.
type KeySource interface {
	// Begin acquires the source, e.g. switches the terminal to raw mode.
	Begin() error
	// End releases the source.
	End()
	// PollKey waits up to timeout for one keystroke. ok is false when
	// the timeout elapsed without a key.
	PollKey(timeout time.Duration) (b byte, ok bool, err error)
}

// Console reads lines from the user and writes prompts.
type Console struct {
	out   io.Writer
	keys  KeySource     // nil when polled reads are unavailable
	plain *bufio.Reader // blocking fallback
	poll  time.Duration
	now   func() time.Time
}

// New creates a console on the given input file and output writer.
// Polled reads are used when the input is a terminal that supports
// read deadlines; otherwise the console runs in blocking mode.
func New(in *os.File, out io.Writer) *Console {
	c := &Console{
		out:   out,
		plain: bufio.NewReader(in),
		poll:  DefaultPollInterval,
		now:   time.Now,
	}

	if !term.IsTerminal(int(in.Fd())) {
		return c
	}
	// Capability check: polled reads need per-read deadlines.
	if err := in.SetReadDeadline(time.Time{}); err != nil {
		return c
	}

	c.keys = &ttySource{f: in}
	return c
}

// NewWithSource creates a console on an explicit key source. Used by
// tests and anywhere the input is not a real terminal.
func NewWithSource(keys KeySource, out io.Writer) *Console {
	return &Console{
		out:  out,
		keys: keys,
		poll: DefaultPollInterval,
		now:  time.Now,
	}
}

// Timed reports whether reads can observe a deadline.
func (c *Console) Timed() bool {
	return c.keys != nil
}

// ReadLine displays prompt and blocks until the user enters a line.
// There is no deadline; the only way out is input or process exit.
func (c *Console) ReadLine(prompt string) (string, error) {
	if c.keys == nil {
		return c.readPlain(prompt)
	}

	res, err := c.readKeys(prompt, time.Time{})
	if err != nil {
		return "", err
	}
	return res.Line, nil
}

// ReadLineWithDeadline displays prompt and collects a line of input,
// returning it if a terminator arrives before timeout elapses, or a
// timed-out Result otherwise. A timeout of zero or less behaves as a
// plain unbounded read.
func (c *Console) ReadLineWithDeadline(prompt string, timeout time.Duration) (Result, error) {
	if timeout <= 0 {
		line, err := c.ReadLine(prompt)
		return Result{Line: line}, err
	}

	if c.keys == nil {
		// Reduced-guarantee mode: without polled reads the deadline
		// cannot be enforced, so wait as long as it takes.
		fmt.Fprintln(c.out, "Timed input is not supported here. Falling back to standard input.")
		line, err := c.readPlain(prompt)
		return Result{Line: line}, err
	}

	return c.readKeys(prompt, c.now().Add(timeout))
}

// readPlain performs a blocking line read.
func (c *Console) readPlain(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.plain.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readKeys collects a line keystroke by keystroke. A zero deadline
// means no time limit. The terminal is in raw mode for the duration,
// so echo and backspace handling happen here.
func (c *Console) readKeys(prompt string, deadline time.Time) (Result, error) {
	if err := c.keys.Begin(); err != nil {
		return Result{}, errors.NewSystemErrorWithOp("console read", "could not acquire terminal", err)
	}
	defer c.keys.End()

	fmt.Fprint(c.out, prompt)

	var buf []byte
	for {
		wait := c.poll
		if !deadline.IsZero() {
			remaining := deadline.Sub(c.now())
			if remaining <= 0 {
				fmt.Fprint(c.out, "\r\n")
				return Result{TimedOut: true}, nil
			}
			if remaining < wait {
				wait = remaining
			}
		}

		b, ok, err := c.keys.PollKey(wait)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			continue
		}

		switch {
		case b == '\r' || b == '\n':
			fmt.Fprint(c.out, "\r\n")
			return Result{Line: string(buf)}, nil

		case b == 3: // Ctrl-C arrives as a byte in raw mode
			fmt.Fprint(c.out, "\r\n")
			return Result{}, errors.ErrInterrupted

		case b == 0x7f || b == '\b':
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(c.out, "\b \b")
			}

		case b >= 0x20:
			buf = append(buf, b)
			c.out.Write([]byte{b})
		}
	}
}
