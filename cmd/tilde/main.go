// ABOUTME: Process entry point for tilde with terminal crash recovery.
// ABOUTME: Enters raw mode, runs the editor loop, and restores the terminal on every exit path.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mauromedda/tilde/internal/editor"
	tlog "github.com/mauromedda/tilde/internal/log"
	"github.com/mauromedda/tilde/pkg/tui"
	"github.com/mauromedda/tilde/pkg/tui/terminal"
)

// Overridden at build time via -ldflags; shown in the welcome banner.
var version = "dev"

func main() {
	if err := run(); err != nil {
		tlog.Error("%v", err)
		os.Exit(1)
	}
}

// run brackets the editor session with raw-mode acquisition and
// restoration. Raw mode is released by defer on every return path; the
// panic guard covers crashes inside the loop.
func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	t := terminal.NewProcessTerminal()
	if err := t.EnterRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer func() {
		if err := t.ExitRawMode(); err != nil {
			tlog.Error("restoring terminal: %v", err)
		}
	}()
	defer terminal.RestoreOnPanic(t)

	ed, err := editor.New(t, version)
	if err != nil {
		resetScreen(t)
		return err
	}
	return ed.Run()
}

// resetScreen leaves the terminal cleared with the cursor homed when the
// session dies before the editor loop owns the screen.
func resetScreen(t terminal.Terminal) {
	_, _ = t.Write([]byte(tui.ClearScreen))
	_, _ = t.Write([]byte(tui.CursorHome))
}
