// ABOUTME: ProcessTerminal implements Terminal over os.Stdin/os.Stdout using termios ioctls.
// ABOUTME: Raw mode disables line discipline processing and sets VMIN=0/VTIME=1 polling reads.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ProcessTerminal is the real controlling terminal, backed by stdin/stdout.
type ProcessTerminal struct {
	mu       sync.Mutex
	snapshot *unix.Termios
}

// NewProcessTerminal returns a ProcessTerminal ready for use.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{}
}

// EnterRawMode snapshots the current line-discipline attributes and applies
// the raw set: no echo, no canonical buffering, no signal or flow-control
// processing, no output translation, 8-bit characters. The read policy is
// VMIN=0/VTIME=1, so a read returns as soon as a byte is available and
// gives up after 100ms.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(os.Stdin.Fd())
	state, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("querying terminal attributes: %w", err)
	}
	t.snapshot = state

	raw := *state
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("applying raw terminal attributes: %w", err)
	}
	return nil
}

// ExitRawMode restores the attribute snapshot taken by EnterRawMode.
// Calling it without a snapshot is a no-op, so it is safe to defer
// unconditionally and safe to call more than once.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(int(os.Stdin.Fd()), ioctlSetTermios, t.snapshot); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	t.snapshot = nil
	return nil
}

// Size returns the terminal dimensions. A terminal reporting zero columns
// is unusable and treated as an error.
func (t *ProcessTerminal) Size() (cols, rows int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	if w == 0 {
		return 0, 0, fmt.Errorf("getting terminal size: zero columns reported")
	}
	return w, h, nil
}

// ReadByte performs a single one-byte read against stdin. With raw mode's
// VMIN=0/VTIME=1 policy the kernel returns an empty read after 100ms of
// silence; that and EAGAIN both report as a timeout, not an error.
func (t *ProcessTerminal) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(int(os.Stdin.Fd()), buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || err == unix.EAGAIN {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("reading from stdin: %w", err)
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}
