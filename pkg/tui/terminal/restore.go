// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main (or whichever
// function owns the terminal). On panic it shows the cursor, exits raw
// mode via the provided Terminal, prints the panic value and stack trace,
// then exits with code 1. Without a panic it does nothing.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: the terminal must be usable for whatever runs next.
	_, _ = t.Write([]byte("\x1b[2J\x1b[H\x1b[?25h"))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
