package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    int
	}{
		{"1.0.0", "1.0.1", -1},
		{"v1.0.0", "1.0.0", 0},
		{"2.1.0", "v2.0.9", 1},
		{"0.9.0", "1.0.0-rc.1", -1},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.current, tt.latest)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.current, tt.latest)
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	_, err := CompareVersions("not-a-version", "1.0.0")
	assert.Error(t, err)
}
