package table

import (
	"regexp"
	"unicode/utf8"
)

// escapePattern matches CSI terminal sequences: ESC '[' followed by
// ';'-separated numeric parameters (plus the '?' private marker) and a
// final letter. A fragment that never reaches a final letter is not a
// sequence and stays in the text untouched.
var escapePattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// StripEscapes returns s with all terminal color/style sequences removed.
func StripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// VisibleWidth is the display width of s: the rune count after escape
// sequences are stripped out.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripEscapes(s))
}
