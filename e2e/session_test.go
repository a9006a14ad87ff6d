// ABOUTME: PTY session harness for e2e tests: builds the tilde binary once and drives it.
// ABOUTME: Provides send/expect/waitExit helpers over a creack/pty master.

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// tildeBinary builds cmd/tilde once per test run and returns its path.
func tildeBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "tilde-e2e-")
		if err != nil {
			buildErr = fmt.Errorf("creating temp dir: %w", err)
			return
		}
		binPath = filepath.Join(dir, "tilde")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/tilde")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building tilde binary: %v", buildErr)
	}
	return binPath
}

// session is one running tilde process attached to a PTY.
type session struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	mu     sync.Mutex
	out    bytes.Buffer
	exitCh chan error
}

// startTilde launches the binary under an 80x24 PTY and begins collecting
// its output.
func startTilde(t *testing.T) *session {
	t.Helper()

	cmd := exec.Command(tildeBinary(t))
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting tilde under pty: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, exitCh: make(chan error, 1)}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() { s.exitCh <- cmd.Wait() }()

	return s
}

// close tears the session down; safe after the process has already exited.
func (s *session) close() {
	_ = s.ptmx.Close()
	_ = s.cmd.Process.Kill()
}

// output returns everything the process has written so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// send writes raw bytes to the process's input.
func (s *session) send(t *testing.T, data string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(data); err != nil {
		t.Fatalf("sending %q: %v", data, err)
	}
}

// sendCtrl sends the control code for a letter, e.g. sendCtrl(t, 'q').
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string([]byte{c & 0x1f}))
}

// expectStringTimeout polls the collected output until want appears or the
// timeout elapses.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%q", want, s.output())
}

// waitExit waits for the process to terminate and returns cmd.Wait's error
// (nil means exit status 0).
func (s *session) waitExit(t *testing.T, timeout time.Duration) error {
	t.Helper()

	select {
	case err := <-s.exitCh:
		return err
	case <-time.After(timeout):
		t.Fatal("timed out waiting for tilde to exit")
		return nil
	}
}
