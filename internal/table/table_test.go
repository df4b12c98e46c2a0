package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Numeric columns align right, runs of spaces and tabs collapse into
// column boundaries, single-spaced words stay together, and a colored
// cell pads by its visible width only.
var sampleInput = []string{
	"num  word\ta  long_word   b",
	"   1  one   ",
	"2  very long spaced  a  c  d  e\tf\tg  h  i  j  k",
	"5k  a  b  c  \x1b[31mcolored\x1b[0m  d",
}

var sampleOutput = []string{
	"num  word              a  long_word  b                           ",
	"  1  one                                                         ",
	"  2  very long spaced  a  c          d        e  f  g  h  i  j  k",
	" 5k  a                 b  c          \x1b[31mcolored\x1b[0m  d                  ",
}

var gameData = []string{
	"  #      Name            Lv.   HP      MP      ATK   DEF",
	"1      Reimu            40      193   211   63      82   ",
	"2      Marisa         28      125   166   46      57   ",
	"3      Shingyoku      89      620   505   202   182",
	"4      Yugenmagan   87      628   576   176   189",
	"5      Elis            78      495   448   215   145",
	"6      Sariel         90      690   630   164   217",
	"7      Mima            74      494   472   146   166",
}

var gameDataAligned = []string{
	"#  Name        Lv.   HP   MP  ATK  DEF",
	"1  Reimu        40  193  211   63   82",
	"2  Marisa       28  125  166   46   57",
	"3  Shingyoku    89  620  505  202  182",
	"4  Yugenmagan   87  628  576  176  189",
	"5  Elis         78  495  448  215  145",
	"6  Sariel       90  690  630  164  217",
	"7  Mima         74  494  472  146  166",
}

func TestFormat(t *testing.T) {
	assert.Equal(t, sampleOutput, Format(sampleInput, DefaultSeparator))
	assert.Equal(t, gameDataAligned, Format(gameData, DefaultSeparator))
}

func TestFormatIdempotent(t *testing.T) {
	// Formatting an already formatted table must reproduce it byte for
	// byte, trailing padding included.
	assert.Equal(t, sampleOutput, Format(sampleOutput, DefaultSeparator))
	assert.Equal(t, gameDataAligned, Format(gameDataAligned, DefaultSeparator))

	once := Format(sampleInput, DefaultSeparator)
	twice := Format(once, DefaultSeparator)
	assert.Equal(t, once, twice)
}

func TestFormatPreservesRowOrder(t *testing.T) {
	out := Format(sampleInput, DefaultSeparator)
	require.Len(t, out, len(sampleInput))
}

func TestAnalyze(t *testing.T) {
	cols := Analyze(Tokenize(sampleInput))

	require.Len(t, cols.Widths, 12)
	assert.Equal(t, 3, cols.Widths[0])  // num / 5k
	assert.Equal(t, 16, cols.Widths[1]) // very long spaced
	assert.Equal(t, 9, cols.Widths[3])  // long_word
	assert.Equal(t, 7, cols.Widths[4])  // colored, visible width

	assert.True(t, cols.Numeric[0], "1, 2, 5k all classify numeric")
	assert.False(t, cols.Numeric[1], "one vetoes the vote")
}

func TestAnalyzeHeaderNeverVotes(t *testing.T) {
	rows := Tokenize([]string{"name  count", "3  4", "7  8"})
	cols := Analyze(rows)

	// "name" would fail the classifier, but row 0 is excluded from the
	// vote; its width still counts.
	assert.True(t, cols.Numeric[0])
	assert.Equal(t, 4, cols.Widths[0])
}

func TestAnalyzeEmptyColumnDefaultsNumeric(t *testing.T) {
	rows := Tokenize([]string{"a  b  c", "x"})
	cols := Analyze(rows)

	require.Len(t, cols.Numeric, 3)
	assert.True(t, cols.Numeric[1], "no data cells, stays numeric")
	assert.True(t, cols.Numeric[2])
	assert.False(t, cols.Numeric[0])
}

func TestAlignLeftByDefault(t *testing.T) {
	// Column 1 is numeric only because every data cell is a placeholder;
	// column 2 has real measurements and must keep right alignment.
	rows := Tokenize([]string{"name  flag  size", "a  -  10", "b  --  3"})
	cols := Analyze(rows)

	require.Equal(t, []bool{false, true, true}, cols.Numeric)
	require.Equal(t, []bool{false, false, true}, cols.Confident)

	cols.AlignLeftByDefault()
	assert.Equal(t, []bool{false, false, true}, cols.Numeric)

	assert.Equal(t, "a     -       10", RenderRow(rows[1], cols, 2))
}

func TestFormatRaggedRows(t *testing.T) {
	out := Format([]string{
		"h1  h2  h3  h4  h5  h6",
		"a  bbbb  c",
		"x  y  zz  w  v  u",
	}, DefaultSeparator)

	assert.Equal(t, []string{
		"h1  h2    h3  h4  h5  h6",
		"a   bbbb  c             ",
		"x   y     zz  w   v   u ",
	}, out)
}

func TestFormatEscapeBlind(t *testing.T) {
	plain := []string{"head  word", "1  aaa", "2  bb"}
	styled := []string{"head  word", "1  \x1b[31maaa\x1b[0m", "2  bb"}

	plainCols := Analyze(Tokenize(plain))
	styledCols := Analyze(Tokenize(styled))
	assert.Equal(t, plainCols.Widths, styledCols.Widths)

	// Every rendered cell lines up once the escapes are stripped away.
	for i, line := range Format(styled, DefaultSeparator) {
		assert.Equal(t, StripEscapes(Format(plain, DefaultSeparator)[i]), StripEscapes(line))
	}
}

func TestRenderRowAlignment(t *testing.T) {
	cols := Columns{Widths: []int{5, 5}, Numeric: []bool{true, false}}

	assert.Equal(t, "   42  abc  ", RenderRow([]string{"42", "abc"}, cols, 2))
	assert.Equal(t, "       abc  ", RenderRow([]string{"", "abc"}, cols, 2))
	assert.Equal(t, "            ", RenderRow(nil, cols, 2))
}

func TestRenderRowSeparatorWidth(t *testing.T) {
	cols := Columns{Widths: []int{1, 1}, Numeric: []bool{false, false}}

	assert.Equal(t, "ab", RenderRow([]string{"a", "b"}, cols, 0))
	assert.Equal(t, "a    b", RenderRow([]string{"a", "b"}, cols, 4))
}
