// ABOUTME: Editor owns the viewport geometry and cursor and drives the render/read loop.
// ABOUTME: Strictly synchronous: one render then one key read per iteration, no goroutines.

package editor

import (
	"fmt"

	"github.com/mauromedda/tilde/internal/log"
	"github.com/mauromedda/tilde/pkg/tui"
	"github.com/mauromedda/tilde/pkg/tui/key"
	"github.com/mauromedda/tilde/pkg/tui/terminal"
)

// Editor holds the mutable editor state: the viewport dimensions fixed at
// startup and the cursor position, clamped to [0,rows-1] x [0,cols-1].
type Editor struct {
	term     terminal.Terminal
	decoder  *key.Decoder
	renderer *tui.Renderer

	rows int
	cols int

	cursorRow int
	cursorCol int
}

// New queries the terminal size once and builds the editor around it.
// A terminal reporting zero columns is unusable.
func New(t terminal.Terminal, version string) (*Editor, error) {
	cols, rows, err := t.Size()
	if err != nil {
		return nil, fmt.Errorf("querying window size: %w", err)
	}
	if cols == 0 {
		return nil, fmt.Errorf("querying window size: terminal reports zero columns")
	}

	return &Editor{
		term:     t,
		decoder:  key.NewDecoder(t),
		renderer: tui.NewRenderer(cols, rows, version),
		rows:     rows,
		cols:     cols,
	}, nil
}

// Run drives the editor until Ctrl-Q or a fatal error. On every return,
// normal or not, the last two writes are a full clear and a cursor home so
// the terminal is left usable for whatever runs next.
func (e *Editor) Run() error {
	for {
		if err := e.renderer.Draw(e.term, e.cursorRow, e.cursorCol); err != nil {
			e.resetScreen()
			return fmt.Errorf("refreshing screen: %w", err)
		}

		k, err := e.decoder.Next()
		if err != nil {
			e.resetScreen()
			return fmt.Errorf("processing keypress: %w", err)
		}

		if k.Type == key.KeyRune && k.Rune == key.Ctrl('q') {
			log.Debug("quit requested")
			e.resetScreen()
			return nil
		}
		e.apply(k)
	}
}

// apply mutates the cursor for one key event. Keys outside the movement
// set are ignored, not errors.
func (e *Editor) apply(k key.Key) {
	switch k.Type {
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		e.moveCursor(k.Type)
	case key.KeyPageUp:
		for i := e.rows; i > 0; i-- {
			e.moveCursor(key.KeyUp)
		}
	case key.KeyPageDown:
		for i := e.rows; i > 0; i-- {
			e.moveCursor(key.KeyDown)
		}
	case key.KeyHome:
		e.cursorCol = 0
	case key.KeyEnd:
		e.cursorCol = e.cols - 1
	}
}

// moveCursor steps the cursor one cell, clamped to the viewport. Vertical
// movement clamps against rows, horizontal against cols; no wraparound.
func (e *Editor) moveCursor(t key.KeyType) {
	switch t {
	case key.KeyUp:
		if e.cursorRow > 0 {
			e.cursorRow--
		}
	case key.KeyDown:
		if e.cursorRow < e.rows-1 {
			e.cursorRow++
		}
	case key.KeyLeft:
		if e.cursorCol > 0 {
			e.cursorCol--
		}
	case key.KeyRight:
		if e.cursorCol < e.cols-1 {
			e.cursorCol++
		}
	}
}

// resetScreen clears the display and homes the cursor as two separate
// writes, matching the shutdown contract asserted by the tests.
func (e *Editor) resetScreen() {
	_, _ = e.term.Write([]byte(tui.ClearScreen))
	_, _ = e.term.Write([]byte(tui.CursorHome))
}
