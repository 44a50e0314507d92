package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"warn at warn level", log.WarnLevel, func(l *log.Logger) { l.Warn("test") }, true},
		{"debug at warn level", log.WarnLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv(EnvDebug, "")
	assert.Equal(t, log.WarnLevel, logLevel())

	t.Setenv(EnvDebug, "1")
	assert.Equal(t, log.DebugLevel, logLevel())
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	assert.Same(t, custom, loggerFromContext(withLogger(context.Background(), custom)))
	assert.NotNil(t, loggerFromContext(context.Background()))
}
