// ABOUTME: Renderer composes one full viewport frame: tilde rows, welcome banner, cursor.
// ABOUTME: Each frame is built in a pooled FrameBuffer and flushed as a single write.

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/tilde/pkg/tui/width"
)

// ANSI control sequences emitted by the renderer.
const (
	ClearScreen = "\x1b[2J"
	CursorHome  = "\x1b[H"

	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	eraseLine  = "\x1b[K"
)

// Renderer draws the viewport for a fixed terminal geometry.
type Renderer struct {
	cols    int
	rows    int
	version string
}

// NewRenderer returns a Renderer for a cols x rows viewport. version is
// shown in the welcome banner.
func NewRenderer(cols, rows int, version string) *Renderer {
	return &Renderer{cols: cols, rows: rows, version: version}
}

// Draw renders one frame with the cursor at the given zero-based position
// and writes it to w in a single call. The cursor is hidden for the
// duration of the redraw so no artifacts are visible mid-frame.
func (r *Renderer) Draw(w io.Writer, cursorRow, cursorCol int) error {
	buf := AcquireFrame()
	defer ReleaseFrame(buf)

	buf.AppendString(hideCursor)
	buf.AppendString(CursorHome)
	r.drawRows(buf)
	fmt.Fprintf(buf, "\x1b[%d;%dH", cursorRow+1, cursorCol+1)
	buf.AppendString(showCursor)

	return buf.Flush(w)
}

// drawRows emits every viewport row. Each row ends with erase-to-end-of-line
// to clear stale content; rows are separated by \r\n with no trailing break.
func (r *Renderer) drawRows(buf *FrameBuffer) {
	for y := 0; y < r.rows; y++ {
		if y == r.rows/3 {
			buf.AppendString(r.welcomeLine())
		} else {
			buf.AppendString("~")
		}
		buf.AppendString(eraseLine)
		if y < r.rows-1 {
			buf.AppendString("\r\n")
		}
	}
}

// welcomeLine builds the centered version banner, truncated to the
// viewport width. The leading tilde keeps the banner row consistent with
// the rest of the column when there is room to center.
func (r *Renderer) welcomeLine() string {
	welcome := width.Truncate("tilde editor -- version "+r.version, r.cols)

	padding := (r.cols - width.VisibleWidth(welcome)) / 2
	var b strings.Builder
	b.Grow(padding + len(welcome))
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(welcome)
	return b.String()
}
