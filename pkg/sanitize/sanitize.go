package sanitize

import (
	"regexp"
	"strings"
)

// Matches ANSI/VT100 escape sequences: two-character escapes (ESC followed by
// a byte in @-_) and CSI sequences (ESC [ params intermediates final).
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// Line removes terminal escape sequences from a raw log line and trims
// surrounding whitespace. Every other character, including embedded quotes
// and backslashes, is left untouched.
func Line(raw string) string {
	return strings.TrimSpace(ansiEscape.ReplaceAllString(raw, ""))
}
