package table

import (
	"regexp"
	"strings"
)

// splitPattern delimits cells: a run of two or more whitespace characters,
// or one or more tabs. A single space does not split, so "very long"
// stays one cell.
var splitPattern = regexp.MustCompile(`\s{2,}|\t+`)

// SplitRow tokenizes one raw line into cells. Lines that are empty after
// trimming yield no cells.
func SplitRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	return splitPattern.Split(trimmed, -1)
}

// Tokenize splits every raw line into its cells, preserving row order.
func Tokenize(lines []string) [][]string {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = SplitRow(line)
	}
	return rows
}
