// ABOUTME: Display-width measurement and truncation with an ASCII fast path.
// ABOUTME: Non-ASCII strings are measured per grapheme cluster via uniseg and runewidth.

package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies.
func VisibleWidth(s string) int {
	if isASCII(s) {
		return len(s)
	}

	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += runewidth.StringWidth(g.Str())
	}
	return w
}

// Truncate cuts s so it occupies at most max cells. It never splits a
// grapheme cluster: a cluster that would cross the limit is dropped whole.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if isASCII(s) {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}

	w := 0
	end := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := runewidth.StringWidth(g.Str())
		if w+gw > max {
			break
		}
		w += gw
		_, end = g.Positions()
	}
	return s[:end]
}

// isASCII reports whether s contains only single-byte characters.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
