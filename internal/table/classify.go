package table

import (
	"regexp"
	"strings"
)

// neutralValues are placeholder tokens that never veto a column's numeric
// classification: empty fields, dashes of various lengths, the asterisk,
// the true minus sign, and bare y/n markers.
var neutralValues = map[string]struct{}{
	"":    {},
	"-":   {},
	"--":  {},
	"---": {},
	"*":   {},
	"−":   {},
	"=":   {},
	"y":   {},
	"n":   {},
}

// numericPattern accepts measurements: an optionally signed integer or
// decimal, an optional magnitude prefix (p/K/M/G/T, either case), and an
// optional unit which is a byte/rate suffix ("MiB", "kb/s"), a percent
// sign, or a frequency ("60Hz", "1440p@120Hz"). It rejects identifiers
// that merely start with digits, like "5950X".
var numericPattern = regexp.MustCompile(`^[+-]?[0-9]+(?:\.[0-9]+)?\s?[pKkMmGgTt]?(?:i?[bB]?(?:/s)?|%|Hz|@[0-9]+Hz)?$`)

// IsNumeric reports whether a cell's text matches the measurement pattern
// outright, neutral placeholders excluded.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(strings.TrimSpace(StripEscapes(s)))
}

// IsNumericOrNeutral reports whether a cell's text reads as a measurement
// or as a neutral placeholder. Escape sequences and surrounding whitespace
// are ignored.
func IsNumericOrNeutral(s string) bool {
	clean := strings.TrimSpace(StripEscapes(s))
	if _, ok := neutralValues[clean]; ok {
		return true
	}
	return numericPattern.MatchString(clean)
}
