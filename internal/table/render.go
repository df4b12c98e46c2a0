package table

import "strings"

// DefaultSeparator is the number of spaces between adjacent columns.
const DefaultSeparator = 2

// RenderRow pads every cell of one row to its column width and joins the
// cells with sep spaces. Numeric columns right-align, everything else
// left-aligns. Missing trailing cells render as blank fields, and the last
// column keeps its full padding: re-tokenizing the output must reproduce
// the same cell boundaries.
func RenderRow(cells []string, cols Columns, sep int) string {
	var b strings.Builder
	spacer := strings.Repeat(" ", sep)

	for i, width := range cols.Widths {
		if i > 0 {
			b.WriteString(spacer)
		}

		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		pad := width - VisibleWidth(cell)
		if pad < 0 {
			pad = 0
		}

		if cols.Numeric[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}

	return b.String()
}

// Format aligns a whole table: tokenize every line, analyze the matrix,
// render each row. Deterministic and idempotent: formatting an already
// formatted table reproduces it byte for byte.
func Format(lines []string, sep int) []string {
	rows := Tokenize(lines)
	cols := Analyze(rows)

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = RenderRow(row, cols, sep)
	}
	return out
}
