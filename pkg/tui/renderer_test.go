// ABOUTME: Tests for Renderer frame composition: sequence order, row shape, banner placement.
// ABOUTME: Asserts the exact escape-sequence contract for a 24x80 viewport.

package tui

import (
	"strings"
	"testing"
)

func TestRenderer_FrameShape24x80(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	r := NewRenderer(80, 24, "dev")
	if err := r.Draw(w, 0, 0); err != nil {
		t.Fatalf("Draw() unexpected error: %v", err)
	}

	out := w.data.String()

	if w.calls != 1 {
		t.Errorf("Draw() performed %d writes, want exactly 1", w.calls)
	}
	if !strings.HasPrefix(out, "\x1b[?25l\x1b[H") {
		t.Errorf("frame does not start with hide-cursor + home: %q", out[:12])
	}
	if !strings.HasSuffix(out, "\x1b[1;1H\x1b[?25h") {
		t.Errorf("frame does not end with cursor position + show-cursor: %q", out[len(out)-14:])
	}
	if got := strings.Count(out, "\x1b[K"); got != 24 {
		t.Errorf("frame has %d erase-line sequences, want 24", got)
	}
	if got := strings.Count(out, "\r\n"); got != 23 {
		t.Errorf("frame has %d row separators, want 23", got)
	}
}

func TestRenderer_CursorPositionIsOneBased(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{name: "origin", row: 0, col: 0, want: "\x1b[1;1H"},
		{name: "mid screen", row: 11, col: 39, want: "\x1b[12;40H"},
		{name: "bottom right", row: 23, col: 79, want: "\x1b[24;80H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := &recordingWriter{}
			r := NewRenderer(80, 24, "dev")
			if err := r.Draw(w, tt.row, tt.col); err != nil {
				t.Fatalf("Draw() unexpected error: %v", err)
			}
			if !strings.HasSuffix(w.data.String(), tt.want+"\x1b[?25h") {
				t.Errorf("frame does not position cursor with %q", tt.want)
			}
		})
	}
}

func TestRenderer_BannerRow(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	r := NewRenderer(80, 24, "0.1.0")
	if err := r.Draw(w, 0, 0); err != nil {
		t.Fatalf("Draw() unexpected error: %v", err)
	}

	rows := strings.Split(w.data.String(), "\r\n")
	if len(rows) != 24 {
		t.Fatalf("frame has %d rows, want 24", len(rows))
	}

	// Banner sits at rows/3; all other rows are a bare tilde.
	banner := rows[24/3]
	if !strings.Contains(banner, "tilde editor -- version 0.1.0") {
		t.Errorf("row 8 = %q, want version banner", banner)
	}
	if !strings.HasPrefix(banner, "~") {
		t.Errorf("banner row %q does not start with tilde", banner)
	}
	for i, row := range rows {
		if i == 24/3 {
			continue
		}
		cleaned := strings.TrimPrefix(strings.TrimSuffix(row, "\x1b[K"), "\x1b[?25l\x1b[H")
		if i == len(rows)-1 {
			// Last row carries the trailing cursor sequences.
			if !strings.HasPrefix(cleaned, "~\x1b[K") && !strings.HasPrefix(row, "~") {
				t.Errorf("row %d = %q, want tilde row", i, row)
			}
			continue
		}
		if cleaned != "~" {
			t.Errorf("row %d = %q, want bare tilde", i, row)
		}
	}
}

func TestRenderer_BannerTruncation(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	r := NewRenderer(10, 3, "0.1.0")
	if err := r.Draw(w, 0, 0); err != nil {
		t.Fatalf("Draw() unexpected error: %v", err)
	}

	rows := strings.Split(w.data.String(), "\r\n")
	banner := strings.TrimSuffix(rows[1], "\x1b[K")
	if banner != "tilde edit" {
		t.Errorf("banner at cols=10 = %q, want %q (10 bytes exactly)", banner, "tilde edit")
	}
}

func TestRenderer_BannerCentering(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	r := NewRenderer(80, 3, "0.1.0")
	if err := r.Draw(w, 0, 0); err != nil {
		t.Fatalf("Draw() unexpected error: %v", err)
	}

	rows := strings.Split(w.data.String(), "\r\n")
	banner := strings.TrimSuffix(rows[1], "\x1b[K")

	text := "tilde editor -- version 0.1.0"
	wantPad := (80 - len(text)) / 2
	want := "~" + strings.Repeat(" ", wantPad-1) + text
	if banner != want {
		t.Errorf("banner = %q, want %q", banner, want)
	}
}

func TestRenderer_SingleRowNoSeparator(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	r := NewRenderer(20, 1, "dev")
	if err := r.Draw(w, 0, 0); err != nil {
		t.Fatalf("Draw() unexpected error: %v", err)
	}

	if strings.Contains(w.data.String(), "\r\n") {
		t.Errorf("single-row frame contains a row separator: %q", w.data.String())
	}
}
