package table

// Columns is the per-column metadata computed over a full row matrix.
// Widths[i] is the widest visible cell in column i across every row,
// header included. Numeric[i] is true when every data row (row index > 0)
// that has a cell at i classifies as numeric-or-neutral; a column with no
// data cells stays numeric. Confident[i] records whether at least one
// data cell matched the measurement pattern outright, as opposed to the
// column being numeric purely by neutral placeholders or absence.
type Columns struct {
	Widths    []int
	Numeric   []bool
	Confident []bool
}

// Analyze computes column metadata for the whole table. It needs the
// complete matrix up front: both the width and the numeric vote of a
// column depend on every row, so nothing can be rendered until the last
// row has been seen.
func Analyze(rows [][]string) Columns {
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	cols := Columns{
		Widths:    make([]int, numCols),
		Numeric:   make([]bool, numCols),
		Confident: make([]bool, numCols),
	}
	for i := range cols.Numeric {
		cols.Numeric[i] = true
	}

	for rowIdx, row := range rows {
		for i, cell := range row {
			if w := VisibleWidth(cell); w > cols.Widths[i] {
				cols.Widths[i] = w
			}

			// The header row contributes width but never votes.
			if rowIdx == 0 {
				continue
			}
			switch {
			case !IsNumericOrNeutral(cell):
				cols.Numeric[i] = false
			case IsNumeric(cell):
				cols.Confident[i] = true
			}
		}
	}

	return cols
}

// AlignLeftByDefault downgrades the columns whose numeric classification
// came only from defaults (every data cell neutral or missing) to left
// alignment. Columns with real measurements keep right alignment.
func (c *Columns) AlignLeftByDefault() {
	for i := range c.Numeric {
		if !c.Confident[i] {
			c.Numeric[i] = false
		}
	}
}
