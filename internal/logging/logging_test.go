package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeLevels(t *testing.T) {
	t.Cleanup(func() { _ = Initialize(DefaultConfig()) })

	tests := []struct {
		level     string
		debugOn   bool
		warningOn bool
	}{
		{level: "debug", debugOn: true, warningOn: true},
		{level: "warn", debugOn: false, warningOn: true},
		{level: "error", debugOn: false, warningOn: false},
		{level: "nonsense", debugOn: false, warningOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Initialize(Config{Level: tt.level, Format: "json"}))
			assert.Equal(t, tt.debugOn, Logger.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.warningOn, Logger.Core().Enabled(zap.WarnLevel))
			assert.NotNil(t, Sugar)
		})
	}
}

func TestDefaultLoggerIsReady(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Debug("debug message", zap.String("k", "v"))
		Sync()
	})
}
