package config

import (
	"testing"

	"github.com/colwise/cli/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := &Config{Separator: 2, LogLevel: logger.LogLevelInfo}
	assert.NoError(t, cfg.Validate())

	cfg.Separator = -1
	assert.Error(t, cfg.Validate())

	cfg.Separator = 0
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}
