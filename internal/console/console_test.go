package console

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlabb-arch/Actual-alarm/internal/errors"
)

// scriptKey is one keystroke with the delay before it becomes
// available.
type scriptKey struct {
	b     byte
	delay time.Duration
}

// scriptSource feeds a fixed sequence of keystrokes, honoring each
// key's delay against the poll timeout the way a terminal would.
type scriptSource struct {
	keys  []scriptKey
	idx   int
	begun bool
	ended bool
}

func (s *scriptSource) Begin() error { s.begun = true; return nil }
func (s *scriptSource) End()         { s.ended = true }

func (s *scriptSource) PollKey(timeout time.Duration) (byte, bool, error) {
	if s.idx >= len(s.keys) {
		time.Sleep(timeout)
		return 0, false, nil
	}
	k := &s.keys[s.idx]
	if k.delay > timeout {
		time.Sleep(timeout)
		k.delay -= timeout
		return 0, false, nil
	}
	time.Sleep(k.delay)
	k.delay = 0
	s.idx++
	return k.b, true, nil
}

func keys(line string) []scriptKey {
	var ks []scriptKey
	for i := 0; i < len(line); i++ {
		ks = append(ks, scriptKey{b: line[i]})
	}
	return ks
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: keys("hello\r")}
	c := NewWithSource(src, &out)

	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.True(t, src.begun)
	assert.True(t, src.ended)
	assert.Contains(t, out.String(), "> ")
	assert.Contains(t, out.String(), "hello")
}

func TestReadLineBackspace(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: []scriptKey{
		{b: 'h'}, {b: 'x'}, {b: 0x7f}, {b: 'i'}, {b: '\r'},
	}}
	c := NewWithSource(src, &out)

	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "hi", line)
	assert.Contains(t, out.String(), "\b \b")
}

func TestReadLineBackspaceOnEmptyBuffer(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: []scriptKey{
		{b: 0x7f}, {b: 0x7f}, {b: 'a'}, {b: '\n'},
	}}
	c := NewWithSource(src, &out)

	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)
}

func TestReadLineWithDeadlineReturnsLine(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: keys("ok\r")}
	c := NewWithSource(src, &out)

	res, err := c.ReadLineWithDeadline("> ", time.Second)
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, "ok", res.Line)
}

func TestReadLineWithDeadlineTimesOut(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{} // no input ever
	c := NewWithSource(src, &out)

	start := time.Now()
	res, err := c.ReadLineWithDeadline("> ", 200*time.Millisecond)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Line)
	// Overshoot is bounded by one poll interval.
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, 200*time.Millisecond+2*DefaultPollInterval)
}

func TestReadLineWithDeadlineKeyTooLate(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: []scriptKey{{b: 'x', delay: 500 * time.Millisecond}}}
	c := NewWithSource(src, &out)

	res, err := c.ReadLineWithDeadline("> ", 100*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
}

func TestReadLineWithDeadlineZeroIsUnbounded(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: []scriptKey{
		{b: 'l', delay: 120 * time.Millisecond}, {b: 'a'}, {b: 't'}, {b: 'e'}, {b: '\r'},
	}}
	c := NewWithSource(src, &out)

	res, err := c.ReadLineWithDeadline("> ", 0)
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, "late", res.Line)
}

func TestReadLineInterrupted(t *testing.T) {
	var out bytes.Buffer
	src := &scriptSource{keys: []scriptKey{{b: 'a'}, {b: 3}}}
	c := NewWithSource(src, &out)

	_, err := c.ReadLine("> ")
	assert.ErrorIs(t, err, errors.ErrInterrupted)
}

func TestBlockingFallback(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	c := New(r, &out)
	assert.False(t, c.Timed(), "a pipe is not a pollable terminal")

	go func() {
		w.WriteString("late answer\n")
		w.Close()
	}()

	res, err := c.ReadLineWithDeadline("> ", 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, "late answer", res.Line)
	assert.Contains(t, out.String(), "Timed input is not supported")
}

func TestBlockingReadLine(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	c := New(r, &out)

	go func() {
		w.WriteString("menu choice\r\n")
		w.Close()
	}()

	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "menu choice", line)
}
