// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Plays back scripted input bytes/timeouts and records every write individually.

package terminal

import (
	"bytes"
	"io"
	"sync"
)

// inputEvent is one scripted ReadByte result: either a byte or a timeout.
type inputEvent struct {
	b       byte
	timeout bool
}

// VirtualTerminal is a fake Terminal for unit tests. Input is scripted via
// Feed/FeedTimeout and played back one ReadByte at a time; output is
// captured both as a whole and as the individual Write calls that
// produced it, so tests can assert on write boundaries.
type VirtualTerminal struct {
	mu         sync.Mutex
	cols       int
	rows       int
	rawMode    bool
	enterCount int
	exitCount  int
	buf        bytes.Buffer
	writes     []string
	input      []inputEvent
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{cols: cols, rows: rows}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (cols, rows int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cols, v.rows, nil
}

// ReadByte pops the next scripted input event. An exhausted script reports
// io.EOF so a test's read loop always terminates.
func (v *VirtualTerminal) ReadByte() (byte, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, false, io.EOF
	}
	ev := v.input[0]
	v.input = v.input[1:]
	if ev.timeout {
		return 0, false, nil
	}
	return ev.b, true, nil
}

// Write appends data to the output buffer and the per-call write log.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes = append(v.writes, string(p))
	return v.buf.Write(p)
}

// --- Test helpers (not part of the Terminal interface) ---

// Feed queues the bytes of data for playback through ReadByte.
func (v *VirtualTerminal) Feed(data string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := 0; i < len(data); i++ {
		v.input = append(v.input, inputEvent{b: data[i]})
	}
}

// FeedTimeout queues a single read that yields no byte.
func (v *VirtualTerminal) FeedTimeout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, inputEvent{timeout: true})
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Writes returns the individual Write calls in order.
func (v *VirtualTerminal) Writes() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, len(v.writes))
	copy(out, v.writes)
	return out
}

// Reset clears the output buffer and write log.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = nil
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
