package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumericOrNeutral(t *testing.T) {
	numeric := []string{
		"10.0", "123", "123K", "123.45M", "2MB", "-1.23Gi", "5TiB", "1K",
		"1k", "2.5G", "10MiB", "4.5", "2.000", "5 TiB", "+12.5", "10%",
		"2k%", "1.3 k", "1.12 kb/s", "2 MB/s", "4.4GB/s", "4K", "1080p",
		"60Hz", "1440p@120Hz",
	}

	nonNumeric := []string{
		"abc", "1.2X", "1.2.3", "1 0", "2/2", "kB", "2%k", "1440p@Hz",
		"5950X",
	}

	for _, v := range numeric {
		assert.True(t, IsNumericOrNeutral(v), "%q should classify as numeric", v)
	}

	for _, v := range nonNumeric {
		assert.False(t, IsNumericOrNeutral(v), "%q should not classify as numeric", v)
	}
}

func TestIsNumericOrNeutralNeutralTokens(t *testing.T) {
	for _, v := range []string{"", "-", "--", "---", "*", "−", "=", "y", "n"} {
		assert.True(t, IsNumericOrNeutral(v), "%q is a neutral placeholder", v)
	}
}

func TestIsNumericOrNeutralIgnoresDecoration(t *testing.T) {
	// Surrounding whitespace and color codes never change the verdict.
	assert.True(t, IsNumericOrNeutral("  42  "))
	assert.True(t, IsNumericOrNeutral("\x1b[32m128MiB\x1b[0m"))
	assert.False(t, IsNumericOrNeutral("\x1b[32mok\x1b[0m"))
}
